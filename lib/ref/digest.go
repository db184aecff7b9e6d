// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 keyed digest of an identifier's text.
type Digest [32]byte

// positionDomainKey separates position digests from digests of any
// other identifier kind with the same text. ASCII "ident.position",
// zero-padded to 32 bytes. Changing it invalidates every stored
// digest.
var positionDomainKey = [32]byte{
	'i', 'd', 'e', 'n', 't', '.', 'p', 'o', 's', 'i', 't', 'i', 'o', 'n', 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Digest returns the stable content digest of the identifier. Unlike
// Hash, the result is the same in every process and may be persisted.
func (p PositionID) Digest() Digest {
	return keyedDigest(positionDomainKey, p.value)
}

// String returns the lowercase hex encoding of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

func keyedDigest(key [32]byte, text string) Digest {
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("ref: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write([]byte(text))
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}
