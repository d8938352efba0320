// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package incmap provides the Map type, a hash table that grows
// incrementally instead of rehashing every entry at once. Its growth
// scheme is inspired by the incremental evacuation used by Go's
// built-in map, with the additional requirement that users provide an
// equal and hash function.
//
// The following requirements are the user's responsibility to follow:
//   - equal(a, b) => hash(s, a) == hash(s, b) for every seed s.
//   - equal(a, a) must be true for all values of a. Be careful around
//     NaN float values. Go's built-in `map` has special cases for
//     handling this, but `Map` does not.
//   - If a key in a `Map` contains references -- such as pointers,
//     maps, or slices -- modifying the referenced data in a way that
//     affects the result of the equal or hash functions will result in
//     undefined behavior.
//   - For good performance hash functions should return uniformly
//     distributed data across the entire 64-bits of the value.
//
// Map is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves.
package incmap

// A Map owns two banks of buckets: the active bank, which is the
// canonical table, and a grow bank, which is the destination of an
// in-progress growth and sits empty otherwise.
//
// When an insert into a stable map pushes a chain past growThreshold
// entries, the grow bank is sized to twice the active bank and
// entries start moving. From then on each insert of a new key goes
// into the grow bank and drags exactly one active bucket's chain
// along with it. Draining one bucket per insert keeps the latency of
// any single Set bounded by the length of one chain, while the
// inserts needed to fill the doubled table pay for moving all the old
// buckets. Once every active bucket has been drained the two banks
// swap roles and the map is stable again at double the capacity.
//
// A key is live in exactly one bank at any time: draining moves whole
// chains, and new keys are only inserted into the bank that survives
// the growth. Lookups consult the active bank first and fall back to
// the grow bank; lookups and updates of existing keys never advance
// the growth.

import (
	"golang.org/x/exp/rand"
)

const (
	// Target number of key/elem pairs per bucket. Chains may run
	// longer than this while a growth is underway.
	bucketCnt = 8

	// Chain length that, when exceeded by an insert into a stable
	// map, triggers a growth.
	growThreshold = bucketCnt / 2
)

// Map implements a hash table with incremental growth. The zero value
// is not usable; call New or NewHint.
type Map[K, E any] struct {
	active bank[K, E] // canonical table
	grow   bank[K, E] // destination table while growing, empty otherwise

	// nevacuate counts the active buckets whose chains have already
	// been moved into grow. Zero means no growth is underway.
	nevacuate int
}

// KeyElem contains a Key and Elem.
type KeyElem[K, E any] struct {
	Key  K
	Elem E
}

// New instantiates a new Map initialized with any KeyElems passed.
// The equal func must return true for two values of K that are equal
// and false otherwise. The hash func is called with a random seed
// private to one bucket array and must return a uniformly distributed
// hash value; HashString, HashBytes, HashUint64 and HashInt cover the
// common key types. If equal(a, b) then hash(s, a) == hash(s, b).
func New[K, E any](
	equal func(a, b K) bool,
	hash func(seed uint64, k K) uint64,
	kes ...KeyElem[K, E]) *Map[K, E] {

	if len(kes) == 0 {
		return NewHint[K, E](0, equal, hash)
	}
	m := NewHint[K, E](len(kes), equal, hash)
	for _, ke := range kes {
		m.Set(ke.Key, ke.Elem)
	}
	return m
}

// NewHint instantiates a new Map with a hint as to how many elements
// will be inserted. See [New] for discussion of the equal and hash
// arguments.
func NewHint[K, E any](hint int,
	equal func(a, b K) bool,
	hash func(seed uint64, k K) uint64) *Map[K, E] {

	nbuckets := 1
	for nbuckets*growThreshold < hint {
		nbuckets *= 2
	}
	return &Map[K, E]{
		active: makeBank[K, E](nbuckets, equal, hash),
		grow:   makeBank[K, E](1, equal, hash),
	}
}

// Len returns the count of occupied elements in m.
func (m *Map[K, E]) Len() int {
	if m == nil {
		return 0
	}
	return m.active.count + m.grow.count
}

// Empty reports whether m holds no elements.
func (m *Map[K, E]) Empty() bool {
	return m.Len() == 0
}

// Get returns the element associated with key and true if that key is
// in the Map, otherwise it returns the zero value of E and false.
func (m *Map[K, E]) Get(key K) (E, bool) {
	if p := m.Ref(key); p != nil {
		return *p, true
	}
	var zeroE E
	return zeroE, false
}

// Ref returns a pointer to the element associated with key, or nil if
// key is not in the Map. The pointer is only valid until the next
// modification of m: a growth step may move the entry to the other
// bank.
func (m *Map[K, E]) Ref(key K) *E {
	if m == nil || m.Len() == 0 {
		return nil
	}
	if p := m.active.find(key); p != nil {
		return p
	}
	return m.grow.find(key)
}

// Set associates key with elem in m.
func (m *Map[K, E]) Set(key K, elem E) {
	if m == nil {
		// We have to panic here rather than initialize an empty map
		// because we need the user to pass in hash and equal
		// functions.
		panic("Set called on nil map")
	}
	// Overwriting an existing key makes no growth progress, so
	// updates cost the same whether or not a growth is underway.
	if p := m.active.find(key); p != nil {
		*p = elem
		return
	}
	if p := m.grow.find(key); p != nil {
		*p = elem
		return
	}
	if m.growing() {
		// New keys go into the bank that survives the growth, and
		// each one pays for draining one more active bucket.
		m.grow.push(key, elem)
		m.growWork()
		return
	}
	if m.active.push(key, elem) > growThreshold {
		m.growWork()
	}
}

// Update sets the element for key to f(cur) where cur is the element
// currently associated with key, or the zero value of E if key is not
// in the Map.
func (m *Map[K, E]) Update(key K, f func(cur E) E) {
	if p := m.Ref(key); p != nil {
		*p = f(*p)
		return
	}
	var zeroE E
	m.Set(key, f(zeroE))
}

// growing reports whether m is in the middle of growing into a larger
// bank.
func (m *Map[K, E]) growing() bool {
	return m.nevacuate > 0
}

// growWork drains one bucket's chain from the active bank into the
// grow bank, starting the growth or completing it as needed.
func (m *Map[K, E]) growWork() {
	if !m.growing() {
		// Commit to growing: the grow bank is empty here, so it is
		// safe to extend its bucket array to twice the active size.
		m.grow.ensureBuckets(2 * m.active.nbuckets())
	}
	chain, ok := m.active.take(m.nevacuate)
	if !ok {
		// Every active bucket has been drained. The grow bank becomes
		// the canonical table; the emptied active bank is kept as the
		// destination of the next growth.
		m.active, m.grow = m.grow, m.active
		m.nevacuate = 0
		return
	}
	for _, e := range chain {
		m.grow.push(e.key, e.elem)
	}
	m.nevacuate++
}

// Iterator is instantiated by a call to Iter(). It allows iterating
// over a Map.
type Iterator[K, E any] struct {
	key  K
	elem E

	banks   [2]*bank[K, E]
	bankIdx int
	start   int // first bucket visited in the current bank
	n       int // buckets already visited in the current bank
	chain   []entry[K, E]
	i       int // position in chain
}

// Key returns the key at the iterator's current position. This is
// only valid after a call to Next() that returns true.
func (it *Iterator[K, E]) Key() K {
	return it.key
}

// Elem returns the element at the iterator's current position. This
// is only valid after a call to Next() that returns true.
func (it *Iterator[K, E]) Elem() E {
	return it.elem
}

// Iter instantiates an Iterator to explore the elements of the Map.
// Ordering is undefined and is intentionally randomized. Each key is
// visited exactly once, even while a growth is underway, because a
// key is live in exactly one bank. Modifying m during iteration is
// undefined behavior.
func (m *Map[K, E]) Iter() *Iterator[K, E] {
	if m == nil || m.Len() == 0 {
		return &Iterator[K, E]{}
	}
	it := &Iterator[K, E]{
		banks: [2]*bank[K, E]{&m.active, &m.grow},
	}
	// decide where to start
	it.start = int(rand.Uint64() % uint64(m.active.nbuckets()))
	return it
}

// Next moves the iterator to the next element. Next returns false
// when the iterator is complete.
func (it *Iterator[K, E]) Next() bool {
	for {
		if it.i < len(it.chain) {
			e := &it.chain[it.i]
			it.i++
			it.key = e.key
			it.elem = e.elem
			return true
		}
		// Find the next bucket, moving to the second bank once the
		// first is exhausted.
		var b *bank[K, E]
		for {
			if it.bankIdx >= len(it.banks) || it.banks[it.bankIdx] == nil {
				// end of iteration
				var (
					zeroK K
					zeroE E
				)
				it.key = zeroK
				it.elem = zeroE
				return false
			}
			b = it.banks[it.bankIdx]
			if it.n < b.nbuckets() {
				break
			}
			it.bankIdx++
			it.n = 0
			if it.bankIdx < len(it.banks) {
				it.start = int(rand.Uint64() % uint64(it.banks[it.bankIdx].nbuckets()))
			}
		}
		it.chain = b.buckets[(it.start+it.n)%b.nbuckets()]
		it.i = 0
		it.n++
	}
}
