// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"bytes"
	"testing"
)

func TestSymtabSeedLiterals(t *testing.T) {
	st := newSymtab()
	if got, want := st.len(), numLiterals+1; got != want {
		t.Fatalf("len() = %d, want %d", got, want)
	}
	scratch := make([]byte, maxCodes+1)
	for c := 0; c < numLiterals; c++ {
		got := st.expand(c, scratch)
		if !bytes.Equal(got, []byte{byte(c)}) {
			t.Errorf("expand(%d) = %q, want %q", c, got, []byte{byte(c)})
		}
	}
}

func TestSymtabAppendAndExpand(t *testing.T) {
	st := newSymtab()
	scratch := make([]byte, maxCodes+1)

	c1 := st.append(int32('a'), 'b') // "ab"
	c2 := st.append(int32(c1), 'c')  // "abc"
	c3 := st.append(int32(c2), 'd')  // "abcd"

	tests := []struct {
		code int
		want string
	}{
		{c1, "ab"},
		{c2, "abc"},
		{c3, "abcd"},
	}
	for _, v := range tests {
		got := st.expand(v.code, scratch)
		if string(got) != v.want {
			t.Errorf("expand(%d) = %q, want %q", v.code, got, v.want)
		}
	}
}

func TestSymtabReset(t *testing.T) {
	st := newSymtab()
	st.append(int32('a'), 'b')
	if st.len() != numLiterals+2 {
		t.Fatalf("len() after append = %d, want %d", st.len(), numLiterals+2)
	}
	st.reset()
	if got, want := st.len(), numLiterals+1; got != want {
		t.Errorf("len() after reset = %d, want %d", got, want)
	}
	scratch := make([]byte, maxCodes+1)
	if got := st.expand(int('a'), scratch); !bytes.Equal(got, []byte{'a'}) {
		t.Errorf("expand('a') after reset = %q, want %q", got, []byte{'a'})
	}
}
