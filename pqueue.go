// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pqueue provides a bounded, array-backed max-heap priority queue
// and an in-place heapsort derived from it.
package pqueue

import (
	"cloudeng.io/errors"
)

// Ordered represents the set of types that can be used as priority keys.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// DefaultCapacity is the capacity used by NewMax when none is specified
// via WithCapacity or implied by WithData.
const DefaultCapacity = 64

// ErrCapacity is returned by Push when the queue already holds Cap()
// records.
var ErrCapacity = errors.New("pqueue: queue is at capacity")

// Max represents a fixed-capacity max-heap priority queue. Keys and Vals
// are parallel slices with a dummy root node at index 0, ie. Keys[0] and
// Vals[0] are never read for comparisons; the live records occupy indices
// 1..Len(). The dummy root keeps the parent/child index arithmetic
// branch-free (left(i)=2i, right(i)=2i+1, parent(i)=i/2). Slots past
// Len() are stale and must not be read.
//
// Capacity is fixed at construction and there is no growth path; callers
// must size the queue for worst-case occupancy or handle ErrCapacity.
// Max is not safe for concurrent use, callers sharing an instance must
// provide their own mutual exclusion around every operation.
type Max[K Ordered, V any] struct {
	Keys []K
	Vals []V
	n    int
}

// NewMax creates a new instance of Max. Without options the queue is
// empty with capacity DefaultCapacity. WithData adopts the supplied
// 1-indexed slices as the queue's storage and heapifies them in place.
func NewMax[K Ordered, V any](opts ...Option[K, V]) *Max[K, V] {
	var o options[K, V]
	o.capacity = DefaultCapacity
	for _, fn := range opts {
		fn(&o)
	}
	if o.keys != nil {
		h := &Max[K, V]{
			Keys: o.keys,
			Vals: o.vals,
			n:    len(o.keys) - 1,
		}
		h.heapify()
		return h
	}
	return &Max[K, V]{
		Keys: make([]K, o.capacity+1),
		Vals: make([]V, o.capacity+1),
	}
}

// Len returns the number of records currently in the queue, excluding the
// dummy root node.
func (h *Max[K, V]) Len() int {
	return h.n
}

// Cap returns the fixed capacity of the queue.
func (h *Max[K, V]) Cap() int {
	return len(h.Keys) - 1
}

// Push adds the key/value pair to the queue. It returns ErrCapacity,
// leaving the queue unchanged, if the queue is full.
func (h *Max[K, V]) Push(k K, v V) error {
	if h.n == h.Cap() {
		return ErrCapacity
	}
	h.n++
	h.Keys[h.n], h.Vals[h.n] = k, v
	h.siftUp(h.n)
	return nil
}

// PopMax removes and returns the largest key/value pair in the queue.
// It returns false, with the queue unchanged, if the queue is empty;
// draining an empty queue is a normal outcome, not an error.
func (h *Max[K, V]) PopMax() (k K, v V, ok bool) {
	if h.n == 0 {
		return
	}
	h.swap(1, h.n)
	h.n--
	h.siftDown(1)
	return h.Keys[h.n+1], h.Vals[h.n+1], true
}

// PeekMax returns the largest key/value pair without removing it, or
// false if the queue is empty.
func (h *Max[K, V]) PeekMax() (k K, v V, ok bool) {
	if h.n == 0 {
		return
	}
	return h.Keys[1], h.Vals[1], true
}

func (h *Max[K, V]) swap(i, j int) {
	h.Keys[i], h.Keys[j] = h.Keys[j], h.Keys[i]
	h.Vals[i], h.Vals[j] = h.Vals[j], h.Vals[i]
}

func (h *Max[K, V]) siftUp(i int) {
	for {
		p := i / 2
		if p < 1 || h.Keys[p] >= h.Keys[i] {
			break
		}
		h.swap(p, i)
		i = p
	}
}

func (h *Max[K, V]) siftDown(i int) {
	for {
		l := 2 * i
		if l > h.n || l < 0 { // l < 0 after int overflow
			break
		}
		j := l
		// The right child wins ties; sibling order for equal keys is
		// unspecified.
		if r := l + 1; r <= h.n && h.Keys[r] >= h.Keys[l] {
			j = r
		}
		if h.Keys[j] <= h.Keys[i] {
			break
		}
		h.swap(i, j)
		i = j
	}
}

func (h *Max[K, V]) heapify() {
	// Floyd's algorithm: sifting down from the last parent in decreasing
	// index order means both subtrees below i are already heaps, bounding
	// the total work at O(n).
	for i := h.n / 2; i >= 1; i-- {
		h.siftDown(i)
	}
}
