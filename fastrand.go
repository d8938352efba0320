// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build go1.19 && !go1.22

package incmap

import (
	_ "unsafe"
)

//go:linkname fastrand64 runtime.fastrand64
func fastrand64() uint64

// rand64 returns a random uint64 used to seed a bank's hashing.
func rand64() uint64 {
	return fastrand64()
}
