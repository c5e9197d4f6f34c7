// Package synth renders the population drone: a detuned triangle chord
// through a low-pass filter and a stereo feedback delay. Fuller lattices open
// the filter; each tick adds a short decaying pulse.
package synth

import (
	"math"
	"sync"
)

const (
	SampleRate = 44100
	delaySecs  = 0.6
	volume     = 0.25
)

// chord is Gm7 add9: G2, Bb2, D3, F3, A3.
var chord = []float64{98.00, 116.54, 146.83, 174.61, 220.00}

type Synth struct {
	// written by the frame loop
	mu         sync.Mutex
	population float64
	pulses     int

	// owned by the audio callback
	time      float64
	smooth    float64
	envelope  float64
	filter    [2]float64
	delay     [2][]float64
	delayHead int
}

func New() *Synth {
	n := int(SampleRate * delaySecs)
	return &Synth{delay: [2][]float64{make([]float64, n), make([]float64, n)}}
}

// SetPopulation sets the live fraction of the lattice, clamped to [0,1].
func (s *Synth) SetPopulation(fraction float64) {
	fraction = math.Max(0, math.Min(1, fraction))
	s.mu.Lock()
	s.population = fraction
	s.mu.Unlock()
}

// Pulse queues an accent for the next rendered buffer.
func (s *Synth) Pulse() {
	s.mu.Lock()
	s.pulses++
	s.mu.Unlock()
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// lpf is a one-pole low-pass filter step.
func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}

// Cutoff is the filter frequency for a smoothed population fraction.
func Cutoff(population float64) float64 { return 300.0 + 900.0*population }

// Render fills out with one buffer of stereo samples. out[0] is left and
// out[1] right; both must have the same length.
func (s *Synth) Render(out [][]float32) {
	s.mu.Lock()
	target := s.population
	if s.pulses > 0 {
		s.envelope = 1
		s.pulses = 0
	}
	s.mu.Unlock()

	dt := 1.0 / SampleRate
	for i := range out[0] {
		s.smooth = s.smooth*0.9995 + target*0.0005
		cutoff := Cutoff(s.smooth)

		var left, right float64
		g := 1.0 / float64(len(chord))
		for j, f := range chord {
			lfo := math.Sin(s.time*0.2 + float64(j))
			amp := g * (0.7 + 0.3*lfo)
			left += triangle(s.time*f*0.999) * amp
			right += triangle(s.time*f*1.001) * amp
		}
		accent := s.envelope * math.Sin(2*math.Pi*chord[len(chord)-1]*2*s.time)
		left += accent * 0.3
		right += accent * 0.3
		s.envelope *= 0.9997

		s.filter[0] = lpf(left, cutoff, dt, s.filter[0])
		s.filter[1] = lpf(right, cutoff, dt, s.filter[1])

		dl, dr := s.delay[0][s.delayHead], s.delay[1][s.delayHead]
		mixL := s.filter[0] + dl*0.3 + dr*0.1
		mixR := s.filter[1] + dr*0.3 + dl*0.1
		s.delay[0][s.delayHead] = mixL * 0.7
		s.delay[1][s.delayHead] = mixR * 0.7
		s.delayHead = (s.delayHead + 1) % len(s.delay[0])

		out[0][i] = float32(mixL * volume)
		out[1][i] = float32(mixR * volume)
		s.time += dt
	}
}
