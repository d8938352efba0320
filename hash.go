// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incmap

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Seeded hash functions for common key types, suitable as the hash
// argument to New and NewHint. The seed is carried into xxhash's
// internal state, so the same key hashes differently in every bank.

// HashString returns a seeded hash of s.
func HashString(seed uint64, s string) uint64 {
	var d xxhash.Digest
	d.ResetWithSeed(seed)
	d.WriteString(s)
	return d.Sum64()
}

// HashBytes returns a seeded hash of b.
func HashBytes(seed uint64, b []byte) uint64 {
	var d xxhash.Digest
	d.ResetWithSeed(seed)
	d.Write(b)
	return d.Sum64()
}

// HashUint64 returns a seeded hash of v. It does not allocate.
func HashUint64(seed uint64, v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	var d xxhash.Digest
	d.ResetWithSeed(seed)
	d.Write(buf[:])
	return d.Sum64()
}

// HashInt returns a seeded hash of v. It does not allocate.
func HashInt(seed uint64, v int) uint64 {
	return HashUint64(seed, uint64(v))
}
