package counter

import "sync"

// Sequence hands out strictly increasing values. It replaces a database
// counter for data that only lives in memory.
type Sequence struct {
	mu   sync.Mutex
	last int64
}

// NewSequence returns a sequence whose first Next is start.
func NewSequence(start int64) *Sequence {
	return &Sequence{last: start - 1}
}

func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.last
}

// NextAtLeast returns floor if it is above every value handed out so far,
// otherwise the next value after the last one. Used to derive unique ids
// from timestamps that may repeat.
func (s *Sequence) NextAtLeast(floor int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if floor > s.last {
		s.last = floor
	} else {
		s.last++
	}
	return s.last
}
