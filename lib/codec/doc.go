// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the module's CBOR encoding configuration.
//
// Identifiers cross process boundaries as CBOR text strings carrying
// the identifier text unchanged. ref.PositionID implements
// encoding.TextMarshaler, and both modes here are configured to route
// text marshalers through CBOR major type 3, so a PositionID field
// encodes exactly like a string field and decodes with validation.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same identifiers always produce the same bytes, so encoded records
// can be compared or digested directly.
//
//	data, err := codec.Marshal(record)
//	err = codec.Unmarshal(data, &record)
//
// Streams of records (CBOR sequences) use [NewEncoder] and
// [NewDecoder].
//
// Only the stable parts of an identifier are ever encoded. The
// process-local Hash is deliberately not a field of any wire type.
package codec
