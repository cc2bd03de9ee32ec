package utils

import "sync"

// SequenceRandom replays fixed values. Once a list is exhausted it repeats
// its last value, or returns zero if the list is empty. Used to make
// probabilistic code deterministic in tests and simulations.
type SequenceRandom struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
	fi, ii int
}

// NewSequenceRandom builds a SequenceRandom from float and int sequences
func NewSequenceRandom(floats []float64, ints []int) *SequenceRandom {
	return &SequenceRandom{floats: floats, ints: ints}
}

func (s *SequenceRandom) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[min(s.fi, len(s.floats)-1)]
	s.fi++
	return v
}

// Intn returns the next int modulo n
func (s *SequenceRandom) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 || n <= 0 {
		return 0
	}
	v := s.ints[min(s.ii, len(s.ints)-1)]
	s.ii++
	return v % n
}
