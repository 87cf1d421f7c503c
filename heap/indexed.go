// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides a min-priority queue whose items are unique and
// whose priorities may be changed in place, ie. an indexed heap. It is
// intended for use as the frontier in graph searches such as Dijkstra
// and A*.
//
// The heap is not safe for concurrent use.
package heap

// Priority represents the set of types that can be used as priorities.
type Priority interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

type node[T any, P Priority] struct {
	item     T
	priority P
}

// IndexedMin is a binary min-heap of unique items. Items are identified
// by a comparable key of type K that is derived from each item. The heap
// maintains an index from key to priority for constant time membership
// tests and, unless WithLinearScan is specified, an index from key to
// position in the heap so that ChangePriority is O(log n).
type IndexedMin[K comparable, T any, P Priority] struct {
	nodes     []node[T, P]
	items     map[K]P
	positions map[K]int // nil when using a linear scan.
	key       func(T) K
	callback  func(iv, jv T, i, j int)
}

// NewIndexedMin returns a new, empty, IndexedMin for comparable items,
// each item acting as its own key.
func NewIndexedMin[T comparable, P Priority](opts ...Option[T]) *IndexedMin[T, T, P] {
	return NewIndexedMinFunc[T, T, P](func(item T) T { return item }, opts...)
}

// NewIndexedMinFunc returns a new, empty, IndexedMin for items that are
// not comparable, or whose identity is narrower than their value. The
// key function must return the same key for the same item on every call.
func NewIndexedMinFunc[K comparable, T any, P Priority](key func(T) K, opts ...Option[T]) *IndexedMin[K, T, P] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	h := &IndexedMin[K, T, P]{
		nodes:    make([]node[T, P], 0, o.sliceCap),
		items:    make(map[K]P, o.sliceCap),
		key:      key,
		callback: o.callback,
	}
	if !o.linearScan {
		h.positions = make(map[K]int, o.sliceCap)
	}
	return h
}

// Len returns the number of items in the heap.
func (h *IndexedMin[K, T, P]) Len() int {
	return len(h.nodes)
}

// Contains returns true if item is in the heap.
func (h *IndexedMin[K, T, P]) Contains(item T) bool {
	_, ok := h.items[h.key(item)]
	return ok
}

// Priority returns the current priority of item and true, or false if
// item is not in the heap.
func (h *IndexedMin[K, T, P]) Priority(item T) (P, bool) {
	p, ok := h.items[h.key(item)]
	return p, ok
}

// PeekMin returns the item with the smallest priority without removing
// it. It returns ErrEmpty if the heap is empty.
func (h *IndexedMin[K, T, P]) PeekMin() (T, error) {
	if len(h.nodes) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.nodes[0].item, nil
}

// PeekMinPriority returns the smallest priority in the heap.
func (h *IndexedMin[K, T, P]) PeekMinPriority() (P, error) {
	if len(h.nodes) == 0 {
		var zero P
		return zero, ErrEmpty
	}
	return h.nodes[0].priority, nil
}

// Insert adds item to the heap with the specified priority. It returns
// an error that matches ErrDuplicateItem if the item is already present,
// in which case the heap is unchanged; use ChangePriority instead.
// Priorities must not be NaN, since NaN is not ordered with respect to
// any other priority and the heap order cannot be maintained.
func (h *IndexedMin[K, T, P]) Insert(item T, priority P) error {
	k := h.key(item)
	if _, ok := h.items[k]; ok {
		return newItemError("insert", item, ErrDuplicateItem)
	}
	n := len(h.nodes)
	h.nodes = append(h.nodes, node[T, P]{item: item, priority: priority})
	h.items[k] = priority
	if h.positions != nil {
		h.positions[k] = n
	}
	h.swim(n)
	return nil
}

// ExtractMin removes and returns the item with the smallest priority.
// It returns ErrEmpty if the heap is empty.
func (h *IndexedMin[K, T, P]) ExtractMin() (T, error) {
	n := len(h.nodes) - 1
	if n < 0 {
		var zero T
		return zero, ErrEmpty
	}
	item := h.nodes[0].item
	if n > 0 {
		h.swap(0, n)
	}
	h.nodes[n] = node[T, P]{} // release the item.
	h.nodes = h.nodes[:n]
	k := h.key(item)
	delete(h.items, k)
	if h.positions != nil {
		delete(h.positions, k)
	}
	h.sink(0)
	return item, nil
}

// ChangePriority sets the priority of an existing item and restores the
// heap order. It returns an error that matches ErrNoSuchItem if the item
// is not in the heap. As for Insert, the new priority must not be NaN.
func (h *IndexedMin[K, T, P]) ChangePriority(item T, priority P) error {
	k := h.key(item)
	old, ok := h.items[k]
	if !ok {
		return newItemError("change priority", item, ErrNoSuchItem)
	}
	i := h.locate(k)
	h.nodes[i].priority = priority
	h.items[k] = priority
	switch {
	case priority > old:
		h.sink(i)
	case priority < old:
		h.swim(i)
	}
	return nil
}

func (h *IndexedMin[K, T, P]) locate(k K) int {
	if h.positions != nil {
		return h.positions[k]
	}
	for i := range h.nodes {
		if h.key(h.nodes[i].item) == k {
			return i
		}
	}
	panic("heap: item index is inconsistent with the heap")
}

func (h *IndexedMin[K, T, P]) swim(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *IndexedMin[K, T, P]) sink(i int) {
	n := len(h.nodes)
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(j2, j1) {
			j = j2 // right child, only if strictly smaller
		}
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
}

func (h *IndexedMin[K, T, P]) less(i, j int) bool {
	return h.nodes[i].priority < h.nodes[j].priority
}

func (h *IndexedMin[K, T, P]) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	if h.positions != nil {
		h.positions[h.key(h.nodes[i].item)] = i
		h.positions[h.key(h.nodes[j].item)] = j
	}
	if h.callback != nil {
		h.callback(h.nodes[i].item, h.nodes[j].item, i, j)
	}
}
