// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

type options[K Ordered, V any] struct {
	capacity int
	keys     []K
	vals     []V
}

// Option represents the options that can be passed to NewMax.
type Option[K Ordered, V any] func(*options[K, V])

// WithCapacity sets the capacity of the queue. The backing slices are
// allocated with capacity+1 slots to accommodate the dummy root node.
// Negative capacities are a caller error and are not checked for.
func WithCapacity[K Ordered, V any](n int) Option[K, V] {
	return func(o *options[K, V]) {
		o.capacity = n
	}
}

// WithData sets the initial data for the queue. The slices are adopted
// directly, without copying, and must be 1-indexed with an unused dummy
// root at index 0; the queue's capacity becomes len(keys)-1 and all of
// the supplied records are live. NewMax heapifies the adopted data in
// place. Supplying slices without the dummy slot is a caller error and
// is not checked for.
func WithData[K Ordered, V any](keys []K, vals []V) Option[K, V] {
	return func(o *options[K, V]) {
		if len(keys) != len(vals) {
			panic("keys and vals must be the same length")
		}
		o.keys = keys
		o.vals = vals
	}
}
