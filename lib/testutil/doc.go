// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers.
//
// [UniqueID] generates monotonically increasing identifier text for
// tests that need many distinct position IDs (concurrency tests,
// slot-reuse tests) without reaching for time.Now() or randomness.
//
// [RequireReceive] and [RequireClosed] encapsulate the timeout safety
// valve pattern (select with time.After fallback) so that a hung
// goroutine fails the test instead of hanging the run.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no module-internal dependencies.
package testutil
