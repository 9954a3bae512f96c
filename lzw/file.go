// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzw

import (
	"io"
	"os"
	"strings"
)

// compressedExt and decompressedExt are the file-extension convention
// CompressFile and DecompressFile apply to the path they are given.
const (
	compressedExt   = ".lzwc"
	decompressedExt = ".lzwd"
)

// CompressFile compresses the file at path and writes the result beside
// it with a .lzwc extension appended, returning the output path.
func CompressFile(path string, reset bool) (outPath string, err error) {
	in, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer in.Close()

	outPath = path + compressedExt
	out, err := os.Create(outPath)
	if err != nil {
		return "", err
	}

	zw := NewWriter(out, reset)
	_, copyErr := io.Copy(zw, in)
	closeErr := zw.Close()
	if err := firstNonNil(copyErr, closeErr); err != nil {
		out.Close()
		os.Remove(outPath)
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(outPath)
		return "", err
	}
	return outPath, nil
}

// DecompressFile decompresses the file at path, which must have been
// produced by CompressFile or a Writer, writing the result beside it with
// a trailing .lzwc removed (if present) and .lzwd appended, and returns
// the output path.
func DecompressFile(path string) (outPath string, err error) {
	in, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer in.Close()

	outPath = strings.TrimSuffix(path, compressedExt) + decompressedExt
	out, err := os.Create(outPath)
	if err != nil {
		return "", err
	}

	zr := NewReader(in)
	_, copyErr := io.Copy(out, zr)
	closeErr := out.Close()
	if err := firstNonNil(copyErr, closeErr); err != nil {
		os.Remove(outPath)
		return "", err
	}
	return outPath, nil
}

func firstNonNil(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
