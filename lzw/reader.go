// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import "io"

// Reader is an LZW decoder. It reads a compressed stream produced by a
// Writer and returns the original bytes through Read.
type Reader struct {
	br *BitReader
	st *symtab

	reset bool

	width    uint
	capacity int
	nextCode int
	prevCode int

	// scratch backs every call to symtab.expand. It is sized one byte
	// larger than the largest possible codeword count so the
	// same-iteration back-reference case always has room to shift a
	// materialized string one byte toward the front and append one byte
	// after it.
	scratch []byte

	toRead  []byte
	started bool
	eof     bool
	err     error
}

// NewReader returns a Reader that decompresses r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		br:      NewBitReader(r),
		st:      newSymtab(),
		scratch: make([]byte, maxCodes+1),
	}
}

// Reset reconfigures the Reader to decompress r, as if newly constructed
// via NewReader.
func (zr *Reader) Reset(r io.Reader) {
	zr.br.Reset(r)
	zr.st.reset()
	zr.reset = false
	zr.width = 0
	zr.capacity = 0
	zr.nextCode = 0
	zr.prevCode = 0
	zr.toRead = zr.toRead[:0]
	zr.started = false
	zr.eof = false
	zr.err = nil
}

// Read decompresses into p, returning io.EOF once the end-of-stream
// codeword has been consumed and every decoded byte returned.
func (zr *Reader) Read(p []byte) (int, error) {
	if zr.err != nil {
		return 0, zr.err
	}
	for len(zr.toRead) == 0 && !zr.eof {
		if err := zr.fill(); err != nil {
			zr.err = err
			return 0, err
		}
	}
	if len(zr.toRead) == 0 {
		return 0, io.EOF
	}
	n := copy(p, zr.toRead)
	zr.toRead = zr.toRead[n:]
	return n, nil
}

func (zr *Reader) fill() (err error) {
	defer errRecover(&err)
	if !zr.started {
		zr.init()
	} else {
		zr.step()
	}
	return nil
}

// init consumes the one-bit reset header and the stream's first
// codeword. The first codeword never assigns a new dictionary entry and
// never triggers the width/reset schedule: there is no previous decoded
// string yet to form one.
func (zr *Reader) init() {
	zr.reset = zr.br.readBit() != 0
	zr.width = widthMin
	zr.capacity = 1 << widthMin
	zr.nextCode = firstCode
	zr.started = true

	c := int(zr.br.readBits(zr.width))
	if c == eof {
		zr.eof = true
		return
	}
	if c >= zr.st.len() {
		panic(ErrCorrupt)
	}
	s := zr.st.expand(c, zr.scratch)
	zr.toRead = append(zr.toRead, s...)
	zr.prevCode = c
}

// step decodes one codeword per the loop in the component design: resolve
// the emitted string (handling the same-iteration back-reference case
// where the codeword names the very slot about to be assigned), assign
// the next dictionary entry if there is room, emit, then apply the
// width/reset schedule.
func (zr *Reader) step() {
	c := int(zr.br.readBits(zr.width))
	if c == eof {
		zr.eof = true
		return
	}

	var s []byte
	if c == zr.nextCode {
		// The codeword names the very slot about to be assigned: the
		// emitted string is the previous one with its own first byte
		// appended (val + val[0]), not prepended. Since expand fills
		// scratch back-to-front ending at its last index, there is no
		// room to grow past the tail in place; shift prev one slot to
		// the left instead, freeing the slot right after it for the
		// appended byte.
		prev := zr.st.expand(zr.prevCode, zr.scratch)
		n := len(prev)
		i := len(zr.scratch) - n
		if i == 0 {
			panic(ErrCorrupt)
		}
		first := prev[0] // prev aliases scratch; read it before the shift
		copy(zr.scratch[i-1:i-1+n], prev)
		zr.scratch[i-1+n] = first
		s = zr.scratch[i-1 : i+n]
	} else {
		if c >= zr.st.len() {
			panic(ErrCorrupt)
		}
		s = zr.st.expand(c, zr.scratch)
	}

	if zr.nextCode < zr.capacity {
		zr.st.append(int32(zr.prevCode), s[0])
		zr.nextCode++
	}

	zr.toRead = append(zr.toRead, s...)
	zr.prevCode = c
	zr.applySchedule()
}

// applySchedule mirrors the encoder's: widen first, using the same
// trigger the encoder just inserted into, then reset if the dictionary
// is full, at maximum width, and the reset policy is enabled. A reset
// demands one extra codeword be read immediately, at the new width,
// before control returns to the caller.
func (zr *Reader) applySchedule() {
	if zr.nextCode >= zr.capacity && zr.width < widthMax {
		zr.width++
		zr.capacity <<= 1
		return
	}
	if zr.nextCode >= zr.capacity && zr.width == widthMax && zr.reset {
		zr.st.reset()
		zr.width = widthMin
		zr.capacity = 1 << widthMin
		zr.nextCode = firstCode

		c := int(zr.br.readBits(zr.width))
		if c == eof {
			zr.eof = true
			return
		}
		if c >= zr.st.len() {
			panic(ErrCorrupt)
		}
		s := zr.st.expand(c, zr.scratch)
		zr.toRead = append(zr.toRead, s...)
		zr.prevCode = c
	}
}
