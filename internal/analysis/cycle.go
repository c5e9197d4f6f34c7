package analysis

// Cycle describes a lattice that revisits an earlier state: generation
// Start+Period equals generation Start, and so does every later multiple.
type Cycle struct {
	Start, Period int
}

// DetectCycle finds the first generation whose hash was already seen. Since
// the rule is deterministic, one repeat means the run is periodic from there.
func DetectCycle(hashes []uint64) (Cycle, bool) {
	seen := make(map[uint64]int, len(hashes))
	for i, h := range hashes {
		if j, ok := seen[h]; ok {
			return Cycle{Start: j, Period: i - j}, true
		}
		seen[h] = i
	}
	return Cycle{}, false
}
