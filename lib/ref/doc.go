// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides immutable identifier value types for trading
// platform entities. The only type here today is [PositionID], which
// names a single trading position.
//
// A ref owns an independent copy of its text. Two refs are equal when
// their text is equal byte for byte; equality never depends on where
// the value is stored, so the built-in == operator and [PositionID.Equal]
// agree. Refs are never mutated after construction and are safe to
// share between goroutines.
//
// Two hashes are available and they are not interchangeable:
//
//   - [PositionID.Hash] is a fast, process-local lookup key. It is
//     seeded randomly at process start and must not be persisted or
//     sent to another process.
//   - [PositionID.Digest] is a keyed BLAKE3 content digest. It is
//     stable across processes and builds and may be stored.
//
// [NewPositionID] trusts its input. Text arriving from outside the
// process goes through [ValidateText] (the boundary layer in
// lib/handle does this) or [ParsePositionID].
//
// Text serialization (JSON, CBOR via lib/codec) uses the identifier
// text unchanged through encoding.TextMarshaler.
package ref
