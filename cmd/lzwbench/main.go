// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command lzwbench compares this module's lzw codec against a handful of
// other compression implementations on a given file, reporting compression
// ratio and encode/decode throughput per codec.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"runtime"
	"sort"
	"testing"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lzwbench file")
		os.Exit(1)
	}

	input, err := ioutil.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var names []string
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%-10s %12s %10s %12s %12s\n", "codec", "compressed", "ratio", "enc MB/s", "dec MB/s")
	for _, name := range names {
		compressed, err := compress(encoders[name], input)
		if err != nil {
			fmt.Printf("%-10s error: %v\n", name, err)
			continue
		}
		ratio := float64(len(input)) / float64(len(compressed))
		encRate := benchmarkEncode(encoders[name], input)
		decRate := benchmarkDecode(decoders[name], compressed, len(input))
		fmt.Printf("%-10s %12d %10.2f %12.2f %12.2f\n", name, len(compressed), ratio, encRate, decRate)
	}
}

func compress(enc Encoder, input []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := enc(&buf)
	if _, err := io.Copy(zw, bytes.NewReader(input)); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// benchmarkEncode reports encode throughput in MB/s: discard the output,
// time only the compress loop, and force a GC before starting so prior
// trials don't skew timing.
func benchmarkEncode(enc Encoder, input []byte) float64 {
	result := testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			zw := enc(ioutil.Discard)
			if _, err := io.Copy(zw, bytes.NewReader(input)); err != nil {
				b.Fatalf("encode: %v", err)
			}
			if err := zw.Close(); err != nil {
				b.Fatalf("encode: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
	return rateMBs(result)
}

func benchmarkDecode(dec Decoder, compressed []byte, rawSize int) float64 {
	result := testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			zr := dec(bytes.NewReader(compressed))
			n, err := io.Copy(ioutil.Discard, zr)
			if err != nil {
				b.Fatalf("decode: %v", err)
			}
			if err := zr.Close(); err != nil {
				b.Fatalf("decode: %v", err)
			}
			if int(n) != rawSize {
				b.Fatalf("decode: got %d bytes, want %d", n, rawSize)
			}
			b.SetBytes(int64(rawSize))
		}
	})
	return rateMBs(result)
}

func rateMBs(result testing.BenchmarkResult) float64 {
	if result.N == 0 {
		return 0
	}
	us := float64(result.T.Nanoseconds()) / 1e3 / float64(result.N)
	return float64(result.Bytes) / us
}
