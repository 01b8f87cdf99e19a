package devlog

import (
	"iter"
	"slices"
	"sync/atomic"
)

// Sequence is a single-pass iterator over a bound sequence, timed from the first element pulled
// until the bound sequence is exhausted or the consumer stops early.
type Sequence[V any] struct {
	timer *Timer
	seq   iter.Seq[V]
	state atomic.Int32
}

// Over binds seq to the timer. A nil seq yields a Sequence that refuses iteration.
func Over[V any](t *Timer, seq iter.Seq[V]) *Sequence[V] {
	return &Sequence[V]{timer: t, seq: seq}
}

// OverSlice binds the elements of s to the timer, an empty slice is a valid bound sequence
func OverSlice[V any](t *Timer, s []V) *Sequence[V] {
	return Over(t, slices.Values(s))
}

// All returns the timed iterator, or ErrNoIterable if no sequence was bound.
// Only the first traversal yields elements and reports; any later traversal yields nothing.
func (s *Sequence[V]) All() (iter.Seq[V], error) {
	if s.seq == nil {
		return nil, ErrNoIterable
	}

	return func(yield func(V) bool) {
		if !s.state.CompareAndSwap(StateNotStarted, StateRunning) {
			return
		}

		m := s.timer.Start()
		defer func() {
			s.state.Store(StateExhausted)
			m.Stop()
		}()

		for v := range s.seq {
			if !yield(v) {
				return
			}
		}
	}, nil
}

// State returns StateNotStarted, StateRunning or StateExhausted
func (s *Sequence[V]) State() int32 {
	return s.state.Load()
}
