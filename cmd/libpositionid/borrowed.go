// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"sync"

	"github.com/meridian-trading/ident/lib/handle"
)

// borrowedViews pairs a handle table with the foreign-memory copies of
// identifier text it has lent out. A view is allocated on the first
// expose of a handle, returned unchanged on later exposes, and freed
// when the handle is released. P is the foreign pointer type.
type borrowedViews[P any] struct {
	table    *handle.Table
	allocate func(string) P
	free     func(P)

	// mu serializes expose against release so a view is never freed
	// while being handed out.
	mu    sync.Mutex
	views map[handle.Handle]P
}

func newBorrowedViews[P any](table *handle.Table, allocate func(string) P, free func(P)) *borrowedViews[P] {
	return &borrowedViews[P]{
		table:    table,
		allocate: allocate,
		free:     free,
		views:    make(map[handle.Handle]P),
	}
}

// expose returns the foreign view of h's text.
func (b *borrowedViews[P]) expose(h handle.Handle) (P, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if view, ok := b.views[h]; ok {
		return view, nil
	}
	text, err := b.table.Expose(h)
	if err != nil {
		var zero P
		return zero, fmt.Errorf("exposing identifier: %w", err)
	}
	view := b.allocate(text)
	b.views[h] = view
	return view, nil
}

// release destroys h's identifier and frees its view, if any.
func (b *borrowedViews[P]) release(h handle.Handle) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.table.Release(h); err != nil {
		return err
	}
	if view, ok := b.views[h]; ok {
		delete(b.views, h)
		b.free(view)
	}
	return nil
}

// outstanding returns the number of views not yet freed.
func (b *borrowedViews[P]) outstanding() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.views)
}
