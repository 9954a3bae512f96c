// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBin = regexp.MustCompile("^[01]{1,64}$")
	reDec = regexp.MustCompile("^D[0-9]+:[0-9]+$")
	reHex = regexp.MustCompile("^H[0-9]+:[0-9a-fA-F]{1,16}$")
	reRaw = regexp.MustCompile("^X:[0-9a-fA-F]+$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBitGen decodes a BitGen formatted string into the exact bytes an
// MSB-first bit writer would produce. Every bit-string and numeric token
// is packed most-significant-bit first, matching lzw.BitWriter exactly.
//
// The format consists of whitespace-separated tokens. '#' starts a
// line comment.
//
//   - "[01]{1,64}"        a literal bit-string, MSB written first.
//   - "D<n>:<v>"          an n-bit decimal value v, MSB written first.
//   - "H<n>:<v>"          an n-bit hexadecimal value v, MSB written first.
//   - "X:<hex>"           literal bytes, only valid at a byte boundary.
//   - a trailing "*<n>" on any token repeats it n times.
//
// The result is right-padded with zero bits to the next byte boundary.
func DecodeBitGen(str string) ([]byte, error) {
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		for _, t := range strings.Split(s, " ") {
			t = strings.TrimSpace(t)
			if len(t) > 0 {
				toks = append(toks, t)
			}
		}
	}

	var bw bitBuffer
	for _, t := range toks {
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			tt, tn := t[:i], t[i+1:]
			n, err := strconv.Atoi(tn)
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = tt, n
		}

		switch {
		case reBin.MatchString(t):
			var v uint64
			for _, b := range t {
				v <<= 1
				v |= uint64(b - '0')
			}
			for i := 0; i < rep; i++ {
				bw.WriteBitsMSB(v, uint(len(t)))
			}
		case reDec.MatchString(t) || reHex.MatchString(t):
			i := strings.IndexByte(t, ':')
			tb, tn, tv := t[0], t[1:i], t[i+1:]

			base := 10
			if tb == 'H' {
				base = 16
			}

			n, err1 := strconv.Atoi(tn)
			v, err2 := strconv.ParseUint(tv, base, 64)
			if err1 != nil || err2 != nil || n > 64 {
				return nil, errors.New("testutil: invalid numeric token: " + t)
			}
			if n < 64 && v&((1<<uint(n))-1) != v {
				return nil, errors.New("testutil: integer overflow on token: " + t)
			}
			for i := 0; i < rep; i++ {
				bw.WriteBitsMSB(v, uint(n))
			}
		case reRaw.MatchString(t):
			tx := t[2:]
			b, err := hex.DecodeString(tx)
			if err != nil {
				return nil, errors.New("testutil: invalid raw bytes token: " + t)
			}
			b = bytes.Repeat(b, rep)
			if err := bw.WriteRaw(b); err != nil {
				return nil, err
			}
		default:
			return nil, errors.New("testutil: invalid token: " + t)
		}
	}
	return bw.Bytes(), nil
}

// MustDecodeBitGen must decode a BitGen formatted string or else panics.
func MustDecodeBitGen(s string) []byte {
	b, err := DecodeBitGen(s)
	if err != nil {
		panic(err)
	}
	return b
}

// bitBuffer is a minimal standalone MSB-first bit accumulator, kept
// independent of the lzw package's own BitWriter so that tests exercising
// BitWriter can generate expected output without relying on the code under
// test.
type bitBuffer struct {
	b []byte
	n uint // number of valid bits in the trailing byte of b
}

func (bb *bitBuffer) WriteRaw(buf []byte) error {
	if bb.n != 0 {
		return errors.New("testutil: unaligned raw write")
	}
	bb.b = append(bb.b, buf...)
	return nil
}

func (bb *bitBuffer) WriteBitsMSB(v uint64, n uint) {
	for i := n; i > 0; i-- {
		bit := byte((v >> (i - 1)) & 1)
		if bb.n == 0 {
			bb.b = append(bb.b, 0)
		}
		bb.b[len(bb.b)-1] |= bit << (7 - bb.n)
		bb.n++
		if bb.n == 8 {
			bb.n = 0
		}
	}
}

func (bb *bitBuffer) Bytes() []byte {
	return bb.b
}
