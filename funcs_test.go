// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package incmap

import (
	"bytes"
	"testing"
)

func TestString(t *testing.T) {
	m := New(bytes.Equal, HashBytes,
		KeyElem[[]byte, struct{}]{[]byte("abc"), struct{}{}},
		KeyElem[[]byte, struct{}]{[]byte("def"), struct{}{}},
		KeyElem[[]byte, struct{}]{[]byte("ghi"), struct{}{}},
	)
	s := m.String()
	expected := "incmap.Map[[100 101 102]:{} [103 104 105]:{} [97 98 99]:{}]"
	if expected != s {
		t.Errorf("Got: %q Expected: %q", s, expected)
	}

	s = StringFunc(m,
		func(b []byte) string { return string(b) },
		func(struct{}) string { return "✅" })
	expected = "incmap.Map[abc:✅ def:✅ ghi:✅]"
	if s != expected {
		t.Errorf("Got: %q Expected: %q", s, expected)
	}

	var empty *Map[[]byte, struct{}]
	if s := empty.String(); s != "incmap.Map[]" {
		t.Errorf("Got: %q Expected: %q", s, "incmap.Map[]")
	}
}

func TestEqual(t *testing.T) {
	strEq := func(a, b string) bool { return a == b }
	m1 := New(strEq, HashString,
		KeyElem[string, int]{"one", 1},
		KeyElem[string, int]{"two", 2},
	)
	// Same contents, different insertion order and different seeds.
	m2 := New(strEq, HashString,
		KeyElem[string, int]{"two", 2},
		KeyElem[string, int]{"one", 1},
	)
	if !Equal(m1, m2) {
		t.Error("maps with equal contents reported unequal")
	}
	m2.Set("two", 3)
	if Equal(m1, m2) {
		t.Error("maps with different elems reported equal")
	}
	m2.Set("two", 2)
	m2.Set("three", 3)
	if Equal(m1, m2) {
		t.Error("maps with different lengths reported equal")
	}
}

func TestEqualFunc(t *testing.T) {
	strEq := func(a, b string) bool { return a == b }
	m1 := New(strEq, HashString,
		KeyElem[string, []int]{"a", []int{1, 2}},
	)
	m2 := New(strEq, HashString,
		KeyElem[string, []int]{"a", []int{1, 2}},
	)
	sliceEq := func(x, y []int) bool {
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
		return true
	}
	if !EqualFunc(m1, m2, sliceEq) {
		t.Error("maps with equal contents reported unequal")
	}
	m2.Set("a", []int{1})
	if EqualFunc(m1, m2, sliceEq) {
		t.Error("maps with different elems reported equal")
	}
}
