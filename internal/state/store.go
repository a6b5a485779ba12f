package state

import (
	"iter"

	"ShapeCanvas/internal/shape"
)

// Store holds the finished shapes of one canvas in draw order.
// It is only touched from the UI goroutine, so it carries no lock.
type Store struct {
	shapes []shape.Record
}

func NewStore() *Store {
	return &Store{shapes: make([]shape.Record, 0)}
}

// Append adds rec on top of everything drawn so far.
func (s *Store) Append(rec shape.Record) {
	s.shapes = append(s.shapes, rec)
}

// Clear drops every shape.
func (s *Store) Clear() {
	s.shapes = make([]shape.Record, 0)
}

func (s *Store) Len() int {
	return len(s.shapes)
}

// All yields the shapes in insertion order. Each call starts a fresh pass
// over the store as it is at that moment.
func (s *Store) All() iter.Seq[shape.Record] {
	return func(yield func(shape.Record) bool) {
		for _, rec := range s.shapes {
			if !yield(rec) {
				return
			}
		}
	}
}
