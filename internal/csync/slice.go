// Package csync provides small concurrency-safe containers used to share
// state between Bubble Tea command goroutines and the render path.
package csync

import (
	"iter"
	"slices"
	"sync"
)

// Slice is a thread-safe slice.
type Slice[T any] struct {
	mu    sync.RWMutex
	inner []T
}

// NewSlice returns an empty thread-safe slice.
func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{}
}

// NewSliceFrom returns a thread-safe slice seeded with a copy of s.
func NewSliceFrom[T any](s []T) *Slice[T] {
	return &Slice[T]{inner: slices.Clone(s)}
}

// Append appends an item to the slice.
func (s *Slice[T]) Append(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner = append(s.inner, item)
}

// Prepend inserts an item at the beginning of the slice.
func (s *Slice[T]) Prepend(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner = append([]T{item}, s.inner...)
}

// Delete removes the item at the given index.
func (s *Slice[T]) Delete(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.inner) {
		return false
	}
	s.inner = slices.Delete(s.inner, index, index+1)
	return true
}

// Get returns the item at the given index.
func (s *Slice[T]) Get(index int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.inner) {
		var zero T
		return zero, false
	}
	return s.inner[index], true
}

// Set replaces the item at the given index.
func (s *Slice[T]) Set(index int, item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.inner) {
		return false
	}
	s.inner[index] = item
	return true
}

// SetSlice replaces the whole content with a copy of items.
func (s *Slice[T]) SetSlice(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner = slices.Clone(items)
}

// Len returns the number of items.
func (s *Slice[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.inner)
}

// Slice returns a copy of the underlying slice.
func (s *Slice[T]) Slice() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.inner)
}

// Seq returns an iterator over a snapshot of the items.
func (s *Slice[T]) Seq() iter.Seq[T] {
	items := s.Slice()
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// Seq2 returns an iterator over index/item pairs of a snapshot.
func (s *Slice[T]) Seq2() iter.Seq2[int, T] {
	items := s.Slice()
	return func(yield func(int, T) bool) {
		for i, item := range items {
			if !yield(i, item) {
				return
			}
		}
	}
}
