// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package handle

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/meridian-trading/ident/lib/ref"
)

// Options configures a Table.
type Options struct {
	// Capacity is the maximum number of live handles. Zero means no
	// limit beyond the handle encoding itself.
	Capacity int

	// ReportLeaks makes Close log a warning for every handle that was
	// still live.
	ReportLeaks bool

	// Logger receives leak reports and debug events. Nil discards.
	Logger *slog.Logger
}

// slot is one arena entry. generation is bumped on every release, so
// a live slot's generation always matches the handle that owns it.
type slot struct {
	id         ref.PositionID
	generation uint32
	live       bool
}

// Table owns identifiers on behalf of a host runtime and hands out
// opaque handles to them. A Table is safe for concurrent use.
type Table struct {
	capacity    int // 0 means unlimited
	reportLeaks bool
	logger      *slog.Logger

	mu     sync.RWMutex
	slots  []slot
	free   []int
	live   int
	closed bool
}

// New creates an empty Table.
func New(options Options) *Table {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	capacity := options.Capacity
	if capacity < 0 {
		capacity = 0
	}
	return &Table{
		capacity:    capacity,
		reportLeaks: options.ReportLeaks,
		logger:      logger,
	}
}

// Acquire validates text, copies it into a new identifier owned by the
// table, and returns its handle. text may be reused or freed by the
// caller as soon as Acquire returns.
func (t *Table) Acquire(text []byte) (Handle, error) {
	if err := ref.ValidateText(text); err != nil {
		return 0, fmt.Errorf("acquiring identifier: %w", err)
	}
	return t.insert(ref.NewPositionID(string(text)))
}

// AcquireString is Acquire for text already held as a Go string.
func (t *Table) AcquireString(text string) (Handle, error) {
	if err := ref.ValidateText([]byte(text)); err != nil {
		return 0, fmt.Errorf("acquiring identifier: %w", err)
	}
	return t.insert(ref.NewPositionID(text))
}

func (t *Table) insert(id ref.PositionID) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, ErrClosed
	}
	if t.capacity > 0 && t.live >= t.capacity {
		return 0, fmt.Errorf("acquiring identifier %q: %w (capacity %d)", id, ErrTableFull, t.capacity)
	}

	var index int
	if n := len(t.free); n > 0 {
		index = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		if uint64(len(t.slots)) >= maxSlots {
			return 0, fmt.Errorf("acquiring identifier %q: %w (handle space exhausted)", id, ErrTableFull)
		}
		index = len(t.slots)
		t.slots = append(t.slots, slot{})
	}

	entry := &t.slots[index]
	entry.id = id
	entry.live = true
	t.live++

	h := makeHandle(index, entry.generation)
	t.logger.Debug("identifier acquired", "handle", h, "position_id", id)
	return h, nil
}

// lookup returns the live slot for h. Callers hold t.mu.
func (t *Table) lookup(h Handle) (*slot, error) {
	if t.closed {
		return nil, ErrClosed
	}
	index := h.index()
	if index < 0 || index >= len(t.slots) {
		return nil, fmt.Errorf("%v: %w", h, ErrInvalidHandle)
	}
	entry := &t.slots[index]
	switch {
	case h.generation() > entry.generation:
		return nil, fmt.Errorf("%v: %w", h, ErrInvalidHandle)
	case h.generation() < entry.generation || !entry.live:
		return nil, fmt.Errorf("%v: %w", h, ErrReleased)
	}
	return entry, nil
}

// Get returns the identifier behind h. The table keeps ownership; the
// returned value is an immutable copy of the reference.
func (t *Table) Get(h Handle) (ref.PositionID, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entry, err := t.lookup(h)
	if err != nil {
		return ref.PositionID{}, err
	}
	return entry.id, nil
}

// Expose returns the identifier text as a borrowed view. The view is
// only meaningful until h is released; the host must not treat it as
// its own copy.
func (t *Table) Expose(h Handle) (string, error) {
	id, err := t.Get(h)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Equal compares the identifiers behind a and b and returns 1 when
// they are equal, 0 otherwise.
func (t *Table) Equal(a, b Handle) (uint8, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	left, err := t.lookup(a)
	if err != nil {
		return 0, err
	}
	right, err := t.lookup(b)
	if err != nil {
		return 0, err
	}
	if left.id.Equal(right.id) {
		return 1, nil
	}
	return 0, nil
}

// Hash returns the process-local hash of the identifier behind h.
func (t *Table) Hash(h Handle) (uint64, error) {
	id, err := t.Get(h)
	if err != nil {
		return 0, err
	}
	return id.Hash(), nil
}

// Digest returns the stable content digest of the identifier behind h.
func (t *Table) Digest(h Handle) (ref.Digest, error) {
	id, err := t.Get(h)
	if err != nil {
		return ref.Digest{}, err
	}
	return id.Digest(), nil
}

// Release destroys the identifier behind h. h and every copy of it
// become invalid; releasing again returns ErrReleased.
func (t *Table) Release(h Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, err := t.lookup(h)
	if err != nil {
		return fmt.Errorf("releasing: %w", err)
	}
	t.logger.Debug("identifier released", "handle", h, "position_id", entry.id)
	t.releaseSlot(h.index())
	return nil
}

// releaseSlot drops the identifier in slot index. Callers hold t.mu.
func (t *Table) releaseSlot(index int) {
	entry := &t.slots[index]
	entry.id = ref.PositionID{}
	entry.live = false
	entry.generation++
	t.live--
	// A slot whose generation wrapped would start re-issuing old
	// handles. Retire it instead of returning it to the free list.
	if entry.generation != 0 {
		t.free = append(t.free, index)
	}
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.live
}

// Close releases every live handle and marks the table closed. It
// returns the number of handles that were still live (leaked by the
// host). Closing twice returns 0.
func (t *Table) Close() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0
	}
	leaked := 0
	for index := range t.slots {
		entry := &t.slots[index]
		if !entry.live {
			continue
		}
		leaked++
		if t.reportLeaks {
			t.logger.Warn("identifier leaked by host",
				"handle", makeHandle(index, entry.generation),
				"position_id", entry.id,
			)
		}
		t.releaseSlot(index)
	}
	t.closed = true
	t.slots = nil
	t.free = nil
	return leaked
}
