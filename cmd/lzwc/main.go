// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command lzwc compresses or decompresses a single file using the lzw
// package.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-lzw/lzwc/lzw"
)

const (
	ansiReset   = "\033[0m"
	ansiBold    = "\033[1m"
	ansiUnder   = "\033[4m"
	ansiBoldRed = "\033[1;31m"
)

func usage() {
	fmt.Printf("%sUSAGE: %s%s [%soption%s] %sfile-name%s\n\n",
		ansiBold, os.Args[0], ansiReset, ansiUnder, ansiReset, ansiUnder, ansiReset)
	fmt.Println("-d   --decompress   Decompress a file")
	fmt.Println("-h   --help         Open this help menu (requires no file name)")
	fmt.Println("-r   --reset        Reset the keys dictionary during compression")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%sERROR: %s%s\n", ansiBoldRed, fmt.Sprintf(format, args...), ansiReset)
	os.Exit(1)
}

func main() {
	decompress := flag.Bool("d", false, "decompress the given file")
	reset := flag.Bool("r", false, "reset the keys dictionary during compression")
	flag.BoolVar(decompress, "decompress", false, "decompress the given file")
	flag.BoolVar(reset, "reset", false, "reset the keys dictionary during compression")
	help := flag.Bool("h", false, "show usage")
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return
	}
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "%sERROR: expected exactly one file name%s\n\n", ansiBoldRed, ansiReset)
		usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	var outPath string
	var err error
	if *decompress {
		outPath, err = lzw.DecompressFile(path)
	} else {
		outPath, err = lzw.CompressFile(path, *reset)
	}
	if err != nil {
		fail("%v", err)
	}
	fmt.Println(outPath)
}
