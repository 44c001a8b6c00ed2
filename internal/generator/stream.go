// Package generator builds typing word streams.
package generator

import "fmt"

const streamBatch = 32

// Stream yields an unbounded word sequence with ghost-word lookahead.
// Words are drawn from the vocabulary with repetition allowed.
type Stream struct {
	gen      *Generator
	words    []string
	capsPct  float64
	punctPct float64
	punctSet []rune
	queue    []string
}

// NewStream builds a Stream over the given vocabulary.
func NewStream(gen *Generator, words []string, capsPct, punctPct float64, punctSet []rune) (*Stream, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}
	return &Stream{
		gen:      gen,
		words:    words,
		capsPct:  capsPct,
		punctPct: punctPct,
		punctSet: punctSet,
	}, nil
}

// Next consumes and returns the next word in the stream.
func (s *Stream) Next() string {
	s.fill(1)
	word := s.queue[0]
	s.queue = s.queue[1:]
	return word
}

// Upcoming returns the next n words without consuming them.
func (s *Stream) Upcoming(n int) []string {
	if n <= 0 {
		return nil
	}
	s.fill(n)
	return append([]string(nil), s.queue[:n]...)
}

func (s *Stream) fill(n int) {
	for len(s.queue) < n {
		s.queue = append(s.queue, s.gen.Generate(s.words, streamBatch, s.capsPct, s.punctPct, s.punctSet)...)
	}
}
