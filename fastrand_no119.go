// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !go1.19

package incmap

import (
	_ "unsafe"
)

//go:linkname fastrand runtime.fastrand
func fastrand() uint32

// rand64 returns a random uint64 used to seed a bank's hashing.
func rand64() uint64 {
	return uint64(fastrand())<<32 | uint64(fastrand())
}
