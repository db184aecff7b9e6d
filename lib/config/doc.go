// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the identifier
// boundary library and its CLI.
//
// Configuration is loaded from a single file specified by either the
// IDENT_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks and no automatic file
// search. Embedders that want defaults call [Default] directly.
//
// Files ending in .json or .jsonc are parsed as JSON after comments
// and trailing commas are stripped; every other file is parsed as
// YAML. Both formats use the same field names.
//
// The file may contain environment-specific sections (development,
// staging, production) that override base values when
// [Config].Environment matches. Production defaults are stricter:
// leaked handles are always reported and logs are JSON.
//
// This package depends on no other module packages.
package config
