// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"io"

	stdlzw "compress/lzw"

	"github.com/dsnet/compress/bzip2"
	"github.com/go-lzw/lzwc/lzw"
	kpflate "github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz/lzma"
)

// Encoder wraps a byte sink into a compressing io.WriteCloser.
type Encoder func(io.Writer) io.WriteCloser

// Decoder wraps a byte source into a decompressing io.ReadCloser.
type Decoder func(io.Reader) io.ReadCloser

var encoders = map[string]Encoder{}
var decoders = map[string]Decoder{}

func registerCodec(name string, enc Encoder, dec Decoder) {
	encoders[name] = enc
	decoders[name] = dec
}

type nopCloseReader struct{ io.Reader }

func (nopCloseReader) Close() error { return nil }

func init() {
	registerCodec("lzw",
		func(w io.Writer) io.WriteCloser { return lzw.NewWriter(w, true) },
		func(r io.Reader) io.ReadCloser { return nopCloseReader{lzw.NewReader(r)} },
	)

	registerCodec("lzw-gif",
		func(w io.Writer) io.WriteCloser { return stdlzw.NewWriter(w, stdlzw.MSB, 8) },
		func(r io.Reader) io.ReadCloser { return stdlzw.NewReader(r, stdlzw.MSB, 8) },
	)

	registerCodec("bzip2",
		func(w io.Writer) io.WriteCloser {
			zw, err := bzip2.NewWriterLevel(w, 6)
			if err != nil {
				panic(err)
			}
			return zw
		},
		func(r io.Reader) io.ReadCloser {
			zr, err := bzip2.NewReader(r, nil)
			if err != nil {
				panic(err)
			}
			return zr
		},
	)

	registerCodec("flate",
		func(w io.Writer) io.WriteCloser {
			zw, err := kpflate.NewWriter(w, kpflate.DefaultCompression)
			if err != nil {
				panic(err)
			}
			return zw
		},
		func(r io.Reader) io.ReadCloser { return nopCloseReader{kpflate.NewReader(r)} },
	)

	registerCodec("lzma",
		func(w io.Writer) io.WriteCloser {
			zw, err := lzma.NewWriter(w)
			if err != nil {
				panic(err)
			}
			return zw
		},
		func(r io.Reader) io.ReadCloser {
			zr, err := lzma.NewReader(r)
			if err != nil {
				panic(err)
			}
			return nopCloseReader{zr}
		},
	)
}
