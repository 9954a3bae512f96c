// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDictSeedLiterals(t *testing.T) {
	d := newDict()
	for c := 0; c < numLiterals; c++ {
		got, ok := d.get([]byte{byte(c)})
		if !ok || got != c {
			t.Fatalf("get(%q) = (%d, %v), want (%d, true)", []byte{byte(c)}, got, ok, c)
		}
	}
	if _, ok := d.get([]byte{0, 1}); ok {
		t.Errorf("get of an unseeded two-byte key unexpectedly succeeded")
	}
}

func TestDictAddAndGet(t *testing.T) {
	d := newDict()
	d.add([]byte("ab"), 300)
	d.add([]byte("ac"), 301)
	d.add([]byte("abc"), 302)

	tests := []struct {
		key     string
		value   int
		ok      bool
		isPfx   bool
	}{
		{"a", int('a'), true, true},
		{"ab", 300, true, true},
		{"ac", 301, true, true},
		{"abc", 302, true, true},
		{"abd", 0, false, false},
		{"b", int('b'), true, true},
		{"", 0, false, false},
	}
	for _, v := range tests {
		got, ok := d.get([]byte(v.key))
		if got != v.value || ok != v.ok {
			t.Errorf("get(%q) = (%d, %v), want (%d, %v)", v.key, got, ok, v.value, v.ok)
		}
		if gotPfx := d.isPrefix([]byte(v.key)); gotPfx != v.isPfx {
			t.Errorf("isPrefix(%q) = %v, want %v", v.key, gotPfx, v.isPfx)
		}
	}
}

func TestDictAddOverwrites(t *testing.T) {
	d := newDict()
	d.add([]byte("xy"), 300)
	d.add([]byte("xy"), 301)
	if got, ok := d.get([]byte("xy")); !ok || got != 301 {
		t.Errorf("get(\"xy\") = (%d, %v), want (301, true)", got, ok)
	}
}

func TestDictAddNoOpGuards(t *testing.T) {
	d := newDict()
	before := len(d.nodes)
	d.add(nil, 300)
	d.add([]byte("z"), -1)
	if len(d.nodes) != before {
		t.Errorf("add() with an empty key or negative value grew the arena: %d -> %d", before, len(d.nodes))
	}
}

func TestDictReset(t *testing.T) {
	d := newDict()
	d.add([]byte("ab"), 300)
	d.add([]byte("abc"), 301)

	before := make([]trieNode, len(d.nodes))
	copy(before, d.nodes)
	beforeRoots := d.roots

	d.reset()

	if _, ok := d.get([]byte("ab")); ok {
		t.Errorf("get(\"ab\") succeeded after reset, want NotFound")
	}
	for c := 0; c < numLiterals; c++ {
		if got, ok := d.get([]byte{byte(c)}); !ok || got != c {
			t.Errorf("get(%q) after reset = (%d, %v), want (%d, true)", []byte{byte(c)}, got, ok, c)
		}
	}

	// Re-adding the same keys after reset should reproduce identical arena
	// state, since reset only ever truncates and insertion is deterministic.
	d.add([]byte("ab"), 300)
	d.add([]byte("abc"), 301)
	if diff := cmp.Diff(before, d.nodes, cmp.AllowUnexported(trieNode{})); diff != "" {
		t.Errorf("post-reset re-insertion produced a different arena (-before +after):\n%s", diff)
	}
	if beforeRoots != d.roots {
		t.Errorf("roots after re-insertion = %d, want %d", d.roots, beforeRoots)
	}
}

func TestDictIsPrefixWithoutValue(t *testing.T) {
	d := newDict()
	d.add([]byte("abc"), 300)
	if !d.isPrefix([]byte("ab")) {
		t.Errorf("isPrefix(\"ab\") = false, want true (ab is a prefix of the stored key abc)")
	}
	if got, ok := d.get([]byte("ab")); !ok || got != -1 {
		t.Errorf("get(\"ab\") = (%d, %v), want (-1, true) (path exists but stores no value)", got, ok)
	}
}
