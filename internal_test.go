// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import (
	"testing"
)

func (h *Max[K, V]) Verify(t *testing.T) {
	t.Helper()
	h.verify(t, 1)
}

func (h *Max[K, V]) verify(t *testing.T, p int) {
	t.Helper()
	l, r := 2*p, (2*p)+1
	if l <= h.n {
		if h.Keys[l] > h.Keys[p] {
			t.Errorf("heap inconsistent: left sub tree for %v (%v < [%v]: %v)", p, h.Keys[p], l, h.Keys[l])
			return
		}
		h.verify(t, l)
	}
	if r <= h.n {
		if h.Keys[r] > h.Keys[p] {
			t.Errorf("heap inconsistent: right sub tree for %v (%v < [%v]: %v)", p, h.Keys[p], r, h.Keys[r])
			return
		}
		h.verify(t, r)
	}
}
