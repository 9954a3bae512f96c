// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import "io"

// Writer is an LZW encoder. Bytes written through it are compressed and
// written to the underlying writer, starting with a one-bit header
// carrying the reset policy. Callers must call Close to flush the final
// match, the end-of-stream codeword, and any pending bits.
type Writer struct {
	bw *BitWriter
	d  *dict

	reset         bool
	headerWritten bool

	width    uint
	capacity int
	nextCode int

	match []byte
	toAdd []byte

	closed bool
	err    error
}

// NewWriter returns a Writer that compresses to w. reset selects whether
// the dictionary rebuilds from its seeds once it fills at the maximum
// codeword width, or freezes instead.
func NewWriter(w io.Writer, reset bool) *Writer {
	return &Writer{
		bw:       NewBitWriter(w),
		d:        newDict(),
		reset:    reset,
		width:    widthMin,
		capacity: 1 << widthMin,
		nextCode: firstCode,
	}
}

// Reset reconfigures the Writer to compress to w with a fresh dictionary
// and codec state, as if newly constructed via NewWriter.
func (zw *Writer) Reset(w io.Writer, reset bool) {
	zw.bw.Reset(w)
	zw.d.reset()
	zw.reset = reset
	zw.headerWritten = false
	zw.width = widthMin
	zw.capacity = 1 << widthMin
	zw.nextCode = firstCode
	zw.match = zw.match[:0]
	zw.toAdd = zw.toAdd[:0]
	zw.closed = false
	zw.err = nil
}

// Write compresses p. It never buffers more than one byte of state beyond
// the longest dictionary match in progress.
func (zw *Writer) Write(p []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	if zw.closed {
		return 0, ErrClosed
	}
	for i, b := range p {
		if err := zw.writeByte(b); err != nil {
			zw.err = err
			return i, err
		}
	}
	return len(p), nil
}

func (zw *Writer) writeByte(b byte) (err error) {
	defer errRecover(&err)

	if !zw.headerWritten {
		zw.bw.writeBit(boolToBit(zw.reset))
		zw.headerWritten = true
	}

	zw.toAdd = append(zw.toAdd, b)
	if zw.d.isPrefix(zw.toAdd) {
		zw.match = append(zw.match[:0], zw.toAdd...)
		return nil
	}

	code, ok := zw.d.get(zw.match)
	if !ok || code < 0 {
		panic(ErrCorrupt)
	}
	zw.bw.writeBits(uint32(code), zw.width)
	zw.applySchedule()

	zw.match = append(zw.match[:0], b)
	zw.toAdd = append(zw.toAdd[:0], b)
	return nil
}

// applySchedule widens the codeword width and grows or resets the
// dictionary exactly as a decoder observing the same codeword stream
// would, in the same order: widen first, then insert only if the
// post-widen dictionary still has room, then reset if the dictionary is
// full, at maximum width, and the reset policy is enabled.
func (zw *Writer) applySchedule() {
	if zw.nextCode >= zw.capacity && zw.width < widthMax {
		zw.width++
		zw.capacity <<= 1
	}
	if zw.nextCode < zw.capacity {
		zw.d.add(zw.toAdd, zw.nextCode)
		zw.nextCode++
	} else if zw.width == widthMax && zw.reset {
		zw.d.reset()
		zw.width = widthMin
		zw.capacity = 1 << widthMin
		zw.nextCode = firstCode
	}
}

// Close emits the final match's codeword (if any bytes were written), the
// end-of-stream codeword, and flushes any pending bits. It is safe to call
// more than once; subsequent calls are no-ops.
func (zw *Writer) Close() error {
	if zw.closed {
		return nil
	}
	err := func() (err error) {
		defer errRecover(&err)

		if !zw.headerWritten {
			zw.bw.writeBit(boolToBit(zw.reset))
			zw.headerWritten = true
		}
		if len(zw.match) > 0 {
			code, ok := zw.d.get(zw.match)
			if !ok || code < 0 {
				panic(ErrCorrupt)
			}
			zw.bw.writeBits(uint32(code), zw.width)

			// The decoder applies its width/reset schedule after this
			// codeword too, so write the end-of-stream codeword at the
			// width the decoder will read it at.
			if zw.nextCode >= zw.capacity {
				if zw.width < widthMax {
					zw.width++
					zw.capacity <<= 1
				} else if zw.reset {
					zw.width = widthMin
					zw.capacity = 1 << widthMin
					zw.nextCode = firstCode
				}
			}
		}
		zw.bw.writeBits(uint32(eof), zw.width)
		zw.bw.flush()
		return nil
	}()
	zw.closed = true
	if err != nil {
		zw.err = err
	}
	return err
}

func boolToBit(b bool) uint {
	if b {
		return 1
	}
	return 0
}
