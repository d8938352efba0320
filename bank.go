// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incmap

// A bank is one fixed-size array of hash buckets together with the
// random seed mixed into every hash computed for it and a running
// count of live entries. Each bucket holds a chain of entries in
// insertion order. Collisions are resolved by chaining only; there is
// no open addressing.
//
// A bank knows nothing about growing. Map owns two banks and drives
// the movement of chains between them; see map.go.

type entry[K, E any] struct {
	key  K
	elem E
}

type bank[K, E any] struct {
	// seed is drawn once per bank and mixed into every hash, so an
	// adversary cannot precompute keys that collide into one chain.
	seed  uint64
	count int
	// buckets is never empty. Chain i holds exactly the entries whose
	// seeded hash maps to i. A key appears at most once per bank;
	// push relies on its callers to guarantee that.
	buckets [][]entry[K, E]

	equal func(K, K) bool
	hash  func(uint64, K) uint64
}

func makeBank[K, E any](nbuckets int,
	equal func(K, K) bool,
	hash func(uint64, K) uint64) bank[K, E] {

	if nbuckets < 1 {
		nbuckets = 1
	}
	return bank[K, E]{
		seed:    rand64(),
		buckets: make([][]entry[K, E], nbuckets),
		equal:   equal,
		hash:    hash,
	}
}

func (b *bank[K, E]) bucketIdx(key K) int {
	return int(b.hash(b.seed, key) % uint64(len(b.buckets)))
}

// push appends a new entry to the chain key hashes to and returns
// that chain's new length. The caller must have established that key
// is not already in this bank.
func (b *bank[K, E]) push(key K, elem E) int {
	h := b.bucketIdx(key)
	b.buckets[h] = append(b.buckets[h], entry[K, E]{key: key, elem: elem})
	b.count++
	return len(b.buckets[h])
}

// find returns a pointer to the element stored for key, or nil if key
// is not in this bank. The pointer is valid until the chain holding
// it is taken or appended to.
func (b *bank[K, E]) find(key K) *E {
	if b.count == 0 {
		return nil
	}
	chain := b.buckets[b.bucketIdx(key)]
	for i := range chain {
		if b.equal(key, chain[i].key) {
			return &chain[i].elem
		}
	}
	return nil
}

// take empties bucket i and returns its chain, deducting the chain's
// length from the bank's count. It returns false when i is past the
// last bucket, which is how Map detects that every bucket has been
// drained.
func (b *bank[K, E]) take(i int) ([]entry[K, E], bool) {
	if i >= len(b.buckets) {
		return nil, false
	}
	chain := b.buckets[i]
	b.buckets[i] = nil
	b.count -= len(chain)
	return chain, true
}

// ensureBuckets appends empty buckets until the bank has at least n.
// Existing chains are not rehashed, so only a bank known to be empty
// may be grown.
func (b *bank[K, E]) ensureBuckets(n int) {
	if n > len(b.buckets) {
		b.buckets = append(b.buckets, make([][]entry[K, E], n-len(b.buckets))...)
	}
}

func (b *bank[K, E]) nbuckets() int {
	return len(b.buckets)
}
