// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap //nolint:revive // intentional shadowing

import (
	"fmt"
	"testing"
)

// Verify checks the heap order and the consistency of the item and
// position indices.
func (h *IndexedMin[K, T, P]) Verify(t *testing.T) {
	t.Helper()
	h.verify(t, 0)
	if got, want := len(h.items), len(h.nodes); got != want {
		t.Errorf("item index inconsistent: %v entries for %v nodes", got, want)
	}
	if h.positions != nil {
		if got, want := len(h.positions), len(h.nodes); got != want {
			t.Errorf("position index inconsistent: %v entries for %v nodes", got, want)
		}
	}
	for i, n := range h.nodes {
		k := h.key(n.item)
		p, ok := h.items[k]
		if !ok {
			t.Errorf("item index inconsistent: [%v] %v is missing", i, n.item)
			continue
		}
		if p != n.priority {
			t.Errorf("item index inconsistent: [%v] %v: %v != %v", i, n.item, p, n.priority)
		}
		if h.positions == nil {
			continue
		}
		if pos, ok := h.positions[k]; !ok || pos != i {
			t.Errorf("position index inconsistent: [%v] %v: recorded at %v (%v)", i, n.item, pos, ok)
		}
	}
}

func (h *IndexedMin[K, T, P]) verify(t *testing.T, p int) {
	t.Helper()
	n := len(h.nodes)
	l, r := (2*p)+1, (2*p)+2
	if l < n {
		if h.less(l, p) {
			t.Errorf("heap inconsistent: left sub tree for %v (%v > [%v]: %v)", p, h.nodes[p].priority, l, h.nodes[l].priority)
			return
		}
		h.verify(t, l)
	}
	if r < n {
		if h.less(r, p) {
			t.Errorf("heap inconsistent: right sub tree for %v (%v > [%v]: %v)", p, h.nodes[p].priority, r, h.nodes[r].priority)
			return
		}
		h.verify(t, r)
	}
}

func (h *IndexedMin[K, T, P]) layout() string {
	s := ""
	for _, n := range h.nodes {
		s += fmt.Sprintf("%v:%v ", n.item, n.priority)
	}
	return s
}

func TestLayout(t *testing.T) {
	for _, h := range []*IndexedMin[string, string, int]{
		NewIndexedMin[string, int](),
		NewIndexedMin[string, int](WithLinearScan[string]()),
	} {
		for i, p := range []int{5, 1, 4, 2, 8, 0} {
			if err := h.Insert(string(rune('a'+i)), p); err != nil {
				t.Fatal(err)
			}
		}
		if got, want := h.layout(), "f:0 d:2 b:1 a:5 e:8 c:4 "; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		h.Verify(t)
		if _, err := h.ExtractMin(); err != nil {
			t.Fatal(err)
		}
		if got, want := h.layout(), "b:1 d:2 c:4 a:5 e:8 "; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		h.Verify(t)
	}
}

func TestSinkPrefersLeft(t *testing.T) {
	h := NewIndexedMin[string, int]()
	for _, it := range []struct {
		item string
		p    int
	}{{"x", 1}, {"l", 3}, {"r", 3}} {
		if err := h.Insert(it.item, it.p); err != nil {
			t.Fatal(err)
		}
	}
	if err := h.ChangePriority("x", 9); err != nil {
		t.Fatal(err)
	}
	if got, want := h.layout(), "l:3 x:9 r:3 "; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	h.Verify(t)

	// Equal priorities are never swapped.
	h = NewIndexedMin[string, int]()
	for _, item := range []string{"a", "b", "c", "d"} {
		if err := h.Insert(item, 7); err != nil {
			t.Fatal(err)
		}
	}
	if got, want := h.layout(), "a:7 b:7 c:7 d:7 "; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := h.ChangePriority("a", 7); err != nil {
		t.Fatal(err)
	}
	if got, want := h.layout(), "a:7 b:7 c:7 d:7 "; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractReleasesItems(t *testing.T) {
	h := NewIndexedMin[*int, int]()
	a, b := new(int), new(int)
	if err := h.Insert(a, 1); err != nil {
		t.Fatal(err)
	}
	if err := h.Insert(b, 2); err != nil {
		t.Fatal(err)
	}
	for h.Len() > 0 {
		if _, err := h.ExtractMin(); err != nil {
			t.Fatal(err)
		}
	}
	for i, n := range h.nodes[:cap(h.nodes)][:2] {
		if n.item != nil {
			t.Errorf("%v: slot still references %p", i, n.item)
		}
	}
}
