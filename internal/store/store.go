package store

import (
	"sync"

	"github.com/samber/lo"
)

// Iter walks over the records of a store in insertion order.
// It is safe for use by several goroutines.
type Iter[T any] struct {
	lock sync.Mutex
	idx  int
	s    *Store[T]
}

func (i *Iter[T]) Next() (T, bool) {
	i.lock.Lock()
	defer i.lock.Unlock()

	var none T
	if i.idx >= i.s.Len() {
		return none, false
	}

	oldIdx := i.idx
	i.idx++

	return i.s.Get(oldIdx)
}

func (i *Iter[T]) HasNext() bool {
	i.lock.Lock()
	defer i.lock.Unlock()

	return i.idx < i.s.Len()
}

// Store is a read only, in memory collection filled once at creation.
type Store[T any] struct {
	records []T
}

func New[T any](records ...T) *Store[T] {
	r := make([]T, len(records))
	copy(r, records)

	return &Store[T]{records: r}
}

func (s *Store[T]) Iter() *Iter[T] {
	return &Iter[T]{
		idx: 0,
		s:   s,
	}
}

func (s *Store[T]) Len() int {
	return len(s.records)
}

func (s *Store[T]) Get(idx int) (T, bool) {
	var none T
	if idx < 0 || idx >= len(s.records) {
		return none, false
	}
	return s.records[idx], true
}

// All returns a copy of the records.
func (s *Store[T]) All() []T {
	all := make([]T, len(s.records))
	copy(all, s.records)
	return all
}

// Find returns the first record matching predicate.
func (s *Store[T]) Find(predicate func(T) bool) (T, bool) {
	return lo.Find(s.records, predicate)
}
