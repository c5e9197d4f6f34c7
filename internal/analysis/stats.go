package analysis

type Summary struct {
	Min, Max, Final int
	Mean            float64
	// Extinction is the first generation with no live cells, or -1.
	Extinction int
}

func Summarize(population []int) Summary {
	s := Summary{Extinction: -1}
	if len(population) == 0 {
		return s
	}
	s.Min, s.Max = population[0], population[0]
	sum := 0
	for i, p := range population {
		if p < s.Min {
			s.Min = p
		}
		if p > s.Max {
			s.Max = p
		}
		if p == 0 && s.Extinction < 0 {
			s.Extinction = i
		}
		sum += p
	}
	s.Mean = float64(sum) / float64(len(population))
	s.Final = population[len(population)-1]
	return s
}
