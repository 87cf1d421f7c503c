// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

type options[T any] struct {
	sliceCap   int
	linearScan bool
	callback   func(iv, jv T, i, j int)
}

// Option represents the options that can be passed to NewIndexedMin and
// NewIndexedMinFunc.
type Option[T any] func(*options[T])

// WithSliceCap sets the initial capacity of the slice and maps used to
// hold items.
func WithSliceCap[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.sliceCap = n
	}
}

// WithLinearScan disables the item to position index. ChangePriority
// then locates items by scanning the heap, which is O(n), but the heap
// no longer pays for maintaining the index on every swap.
func WithLinearScan[T any]() Option[T] {
	return func(o *options[T]) {
		o.linearScan = true
	}
}

// WithCallback provides a callback function that is called after every
// swap with the items and indices of the elements that have changed
// location. Note that an item being removed by ExtractMin is swapped to
// the end of the heap before it is removed, and that the removal itself
// is not reported.
func WithCallback[T any](fn func(iv, jv T, i, j int)) Option[T] {
	return func(o *options[T]) {
		o.callback = fn
	}
}
