// Package ring implements a small, fixed-capacity, slice-backed collection
// used by the scheduler's ready and suspended indexes.
//
// It is adapted from the ringBuffer type used for sliding-window rate
// limiting elsewhere in this module's ancestry: the power-of-two circular
// addressing scheme doesn't fit here (priority-class capacities are
// arbitrary, not powers of two, and FIFO head/tail semantics plus
// order-preserving and order-discarding removal are both needed), so this
// version keeps only the generic, slice-backed shape and drops the modular
// index arithmetic.
package ring

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Buffer is a fixed-capacity, slice-backed sequence of comparable elements.
// It never grows past the capacity given to NewBuffer: PushBack reports
// failure instead of reallocating, matching the bounded-memory budget of the
// scheduler state it backs.
type Buffer[E constraints.Ordered] struct {
	s []E
	n int
}

// NewBuffer allocates a Buffer with the given fixed capacity.
func NewBuffer[E constraints.Ordered](capacity int) *Buffer[E] {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}
	return &Buffer[E]{s: make([]E, capacity)}
}

// Len returns the number of elements currently stored.
func (b *Buffer[E]) Len() int { return b.n }

// Cap returns the fixed capacity.
func (b *Buffer[E]) Cap() int { return len(b.s) }

// Full reports whether the buffer is at capacity.
func (b *Buffer[E]) Full() bool { return b.n == len(b.s) }

// At returns the element at index i, in insertion/FIFO order.
func (b *Buffer[E]) At(i int) E {
	if i < 0 || i >= b.n {
		panic("ring: index out of range")
	}
	return b.s[i]
}

// PushBack appends v to the tail. Reports false without modifying the
// buffer if it is already full.
func (b *Buffer[E]) PushBack(v E) bool {
	if b.Full() {
		return false
	}
	b.s[b.n] = v
	b.n++
	return true
}

// PopFront removes and returns the head element.
func (b *Buffer[E]) PopFront() (v E, ok bool) {
	if b.n == 0 {
		return v, false
	}
	v = b.s[0]
	copy(b.s[0:b.n-1], b.s[1:b.n])
	b.n--
	return v, true
}

// RemoveAt removes the element at index i, preserving the relative order of
// the remaining elements. Used where FIFO order matters, e.g. scanning
// mutex/semaphore waiters oldest-first.
func (b *Buffer[E]) RemoveAt(i int) E {
	if i < 0 || i >= b.n {
		panic("ring: index out of range")
	}
	v := b.s[i]
	copy(b.s[i:b.n-1], b.s[i+1:b.n])
	b.n--
	return v
}

// RemoveAtUnordered removes the element at index i via swap-with-last, in
// O(1) but without preserving order. Used for the suspended index, where
// spec order is irrelevant.
func (b *Buffer[E]) RemoveAtUnordered(i int) E {
	if i < 0 || i >= b.n {
		panic("ring: index out of range")
	}
	v := b.s[i]
	b.s[i] = b.s[b.n-1]
	b.n--
	return v
}

// IndexOf returns the index of the first occurrence of v, or -1.
func (b *Buffer[E]) IndexOf(v E) int {
	return slices.Index(b.s[:b.n], v)
}

// Slice returns the live elements in FIFO order. The returned slice aliases
// the buffer's backing array and is invalidated by subsequent mutations.
func (b *Buffer[E]) Slice() []E {
	return b.s[:b.n]
}
