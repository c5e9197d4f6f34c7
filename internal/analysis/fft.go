package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitudes of bins 0 through len(data)/2 of the
// spectrum of data with its mean removed.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod returns the period, in generations, of the strongest
// non-constant component of series, or 0 for flat or very short series.
func DominantPeriod(series []float64) float64 {
	if len(series) < 4 {
		return 0
	}
	ps := PowerSpectrum(series)
	best, bestPow := 0, 1e-9
	for k := 1; k < len(ps); k++ {
		if ps[k] > bestPow {
			best, bestPow = k, ps[k]
		}
	}
	if best == 0 {
		return 0
	}
	return float64(len(series)) / float64(best)
}
