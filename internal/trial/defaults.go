package trial

// DefaultTrials is the built-in catalog used when no experiment file is given.
func DefaultTrials() []Trial {
	return []Trial{
		{ID: 0, Swaps: []Swap{{2, 1}}},
		{ID: 1, Swaps: []Swap{{2, 3}, {1, 2}}},
		{ID: 2, Swaps: []Swap{{1, 2}, {2, 3}, {1, 3}}},
		{ID: 3, Swaps: []Swap{{1, 3}, {2, 1}, {1, 2}}},
	}
}

// DefaultSelection presents trials 1 and 2.
func DefaultSelection() Selection {
	return Selection{1, 2}
}

// Apply runs the swaps over an arrangement of token ids indexed by slot-1
// and returns the final arrangement. The input is not modified.
func Apply(arrangement []int, swaps []Swap) []int {
	out := make([]int, len(arrangement))
	copy(out, arrangement)
	for _, s := range swaps {
		out[s.A-1], out[s.B-1] = out[s.B-1], out[s.A-1]
	}
	return out
}
