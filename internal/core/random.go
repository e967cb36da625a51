package core

import "math/rand"

// RandomSource yields uniform values in [0, 1).
// *rand.Rand satisfies it; tests substitute fixed sequences.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a seeded source.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// SequenceSource replays a fixed list of values, cycling when exhausted.
type SequenceSource struct {
	values []float64
	pos    int
}

// NewSequenceSource creates a source that returns values in order.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

// Float64 returns the next value in the sequence, or 0.5 if it is empty.
func (s *SequenceSource) Float64() float64 {
	if len(s.values) == 0 {
		return 0.5
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}
