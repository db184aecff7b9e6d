// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// libpositionid exports the identifier boundary layer as a C shared
// library for embedding host runtimes:
//
//	go build -buildmode=c-shared -o libpositionid.so ./cmd/libpositionid
//
// The generated libpositionid.h declares five entry points. Identifiers
// are named by opaque uint64_t handles; 0 is never a valid handle.
//
//	uint64_t    position_id_new(const char *text);     // 0 on failure
//	const char *position_id_to_cstr(uint64_t handle);  // borrowed, NULL on failure
//	uint8_t     position_id_eq(uint64_t lhs, uint64_t rhs);
//	uint64_t    position_id_hash(uint64_t handle);
//	void        position_id_free(uint64_t handle);
//
// position_id_new copies text; the host keeps ownership of its buffer.
// The pointer from position_id_to_cstr is owned by the library: the host
// must not free it, and it stays valid until position_id_free is called
// on the same handle. position_id_hash is process-local and must not be
// persisted.
//
// Contract violations (NULL or non-UTF-8 text, stale or forged handles,
// double free) are logged to stderr and answered with the failure value
// (0 / NULL / no-op) instead of corrupting memory.
//
// The process-wide handle table is configured from the file named by
// IDENT_CONFIG when it is set, and from built-in defaults otherwise. If
// that file fails to load, the error is logged at load time and every
// entry point returns its failure value.
package main
