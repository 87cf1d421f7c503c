// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	ErrDuplicateItem = errors.New("item is already present")
	ErrEmpty         = errors.New("heap is empty")
	ErrNoSuchItem    = errors.New("no such item")
)

// ItemError is returned by operations that fail because of the state of
// a specific item. It matches one of ErrDuplicateItem or ErrNoSuchItem
// when used with errors.Is.
type ItemError struct {
	Op   string
	Item any
	err  error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%v: %v: %v", e.Op, e.Item, e.err)
}

func (e *ItemError) Unwrap() error {
	return e.err
}

func newItemError(op string, item any, err error) error {
	return &ItemError{Op: op, Item: item, err: err}
}
