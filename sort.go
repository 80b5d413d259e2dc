// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

// Sort drains the queue, leaving the records at indices 1..Len() of the
// backing slices in ascending key order, and returns those slices. Each
// PopMax places the current maximum of the live region just past its
// shrinking boundary, so the drain doubles as an in-place sort. Afterwards
// Len() is zero; the queue remains usable for further pushes, but those
// overwrite the sorted records starting at index 1.
func (h *Max[K, V]) Sort() ([]K, []V) {
	for h.n > 0 {
		h.PopMax()
	}
	return h.Keys, h.Vals
}

// Heapsort sorts the supplied 1-indexed key/value slices in place in
// ascending key order. Index 0 is an unused dummy slot as for WithData.
// The slices are adopted rather than copied: O(n) heapify followed by an
// O(n log n) drain, with no additional allocation.
func Heapsort[K Ordered, V any](keys []K, vals []V) {
	h := NewMax(WithData(keys, vals))
	h.Sort()
}
