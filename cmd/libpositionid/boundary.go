// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/meridian-trading/ident/lib/config"
	"github.com/meridian-trading/ident/lib/handle"
)

// errNotLoaded is reported by every entry point when the library failed
// to initialize.
var errNotLoaded = errors.New("boundary layer not loaded")

// foreignMemory converts between Go strings and the host's string
// pointers. P is the foreign pointer type; its zero value is NULL.
type foreignMemory[P comparable] struct {
	read     func(P) string
	allocate func(string) P
	free     func(P)
}

// boundary implements the exported entry points on Go types and maps
// every error to the entry point's failure value: 0 for handles,
// hashes and equality, NULL for text, a no-op for release. The cgo
// wrappers only convert between C and Go integer types.
type boundary[P comparable] struct {
	logger  *slog.Logger
	foreign foreignMemory[P]

	// table and views are nil when loadErr is set.
	table   *handle.Table
	views   *borrowedViews[P]
	loadErr error
}

func newBoundary[P comparable](cfg *config.Config, logger *slog.Logger, foreign foreignMemory[P]) *boundary[P] {
	table := handle.New(handle.Options{
		Capacity:    cfg.Boundary.Capacity,
		ReportLeaks: cfg.Boundary.ReportLeaks,
		Logger:      logger,
	})
	return &boundary[P]{
		logger:  logger,
		foreign: foreign,
		table:   table,
		views:   newBorrowedViews(table, foreign.allocate, foreign.free),
	}
}

// failedBoundary answers every call with its failure value. A host that
// loads the library with a broken configuration keeps running and sees
// the failure on its first call.
func failedBoundary[P comparable](logger *slog.Logger, err error) *boundary[P] {
	logger.Error("boundary layer disabled", "error", err)
	return &boundary[P]{logger: logger, loadErr: err}
}

func (b *boundary[P]) available(entry string) bool {
	if b.loadErr == nil {
		return true
	}
	b.logger.Error(entry+" failed", "error", fmt.Errorf("%w: %w", errNotLoaded, b.loadErr))
	return false
}

func (b *boundary[P]) acquire(text P) uint64 {
	if !b.available("position_id_new") {
		return 0
	}
	var null P
	if text == null {
		b.logger.Error("position_id_new called with NULL text")
		return 0
	}
	h, err := b.table.AcquireString(b.foreign.read(text))
	if err != nil {
		b.logger.Error("position_id_new failed", "error", err)
		return 0
	}
	return uint64(h)
}

func (b *boundary[P]) expose(h uint64) P {
	var null P
	if !b.available("position_id_to_cstr") {
		return null
	}
	view, err := b.views.expose(handle.Handle(h))
	if err != nil {
		b.logger.Error("position_id_to_cstr failed", "error", err)
		return null
	}
	return view
}

func (b *boundary[P]) equal(lhs, rhs uint64) uint8 {
	if !b.available("position_id_eq") {
		return 0
	}
	equal, err := b.table.Equal(handle.Handle(lhs), handle.Handle(rhs))
	if err != nil {
		b.logger.Error("position_id_eq failed", "error", err)
		return 0
	}
	return equal
}

func (b *boundary[P]) hash(h uint64) uint64 {
	if !b.available("position_id_hash") {
		return 0
	}
	hash, err := b.table.Hash(handle.Handle(h))
	if err != nil {
		b.logger.Error("position_id_hash failed", "error", err)
		return 0
	}
	return hash
}

func (b *boundary[P]) release(h uint64) {
	if !b.available("position_id_free") {
		return
	}
	if err := b.views.release(handle.Handle(h)); err != nil {
		b.logger.Error("position_id_free failed", "error", err)
	}
}
