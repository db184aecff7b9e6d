// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"os"
	"unsafe"

	"github.com/meridian-trading/ident/lib/config"
	"github.com/meridian-trading/ident/lib/process"
	"github.com/meridian-trading/ident/lib/version"
)

var lib *boundary[*C.char]

var cStrings = foreignMemory[*C.char]{
	read: func(text *C.char) string {
		return C.GoString(text)
	},
	allocate: func(text string) *C.char {
		return C.CString(text)
	},
	free: func(view *C.char) {
		C.free(unsafe.Pointer(view))
	},
}

func init() {
	cfg := config.Default()
	var loadErr error
	if os.Getenv(config.EnvironmentVariable) != "" {
		// Exiting here would take the host process down with us; a
		// broken config instead disables every entry point.
		cfg, loadErr = config.Load()
		if loadErr != nil {
			cfg = config.Default()
		}
	}

	logger := process.NewLogger(os.Stderr, cfg).With("component", "libpositionid")
	if loadErr != nil {
		lib = failedBoundary[*C.char](logger, loadErr)
		return
	}
	lib = newBoundary(cfg, logger, cStrings)
	logger.Debug("boundary layer loaded", "version", version.Info())
}

//export position_id_new
func position_id_new(text *C.char) C.uint64_t {
	return C.uint64_t(lib.acquire(text))
}

//export position_id_to_cstr
func position_id_to_cstr(h C.uint64_t) *C.char {
	return lib.expose(uint64(h))
}

//export position_id_eq
func position_id_eq(lhs, rhs C.uint64_t) C.uint8_t {
	return C.uint8_t(lib.equal(uint64(lhs), uint64(rhs)))
}

//export position_id_hash
func position_id_hash(h C.uint64_t) C.uint64_t {
	return C.uint64_t(lib.hash(uint64(h)))
}

//export position_id_free
func position_id_free(h C.uint64_t) {
	lib.release(uint64(h))
}

// main is required by -buildmode=c-shared and never runs.
func main() {}
