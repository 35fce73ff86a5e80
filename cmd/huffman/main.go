// Package main provides the huffman command line interface.
//
// It compresses a file into a self-describing Huffman container and
// decompresses such containers back to the original bytes.
package main

import (
	"fmt"
	"os"

	"github.com/prefixcode/huffman/huffman"
)

func printVersion() {
	fmt.Printf("huffman %s (Go)\n", huffman.Version)
}

func printHelp(progName string) {
	fmt.Printf("Huffman file compressor (v%s)\n", huffman.Version)
	fmt.Println("=================================")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s [-t] <input>\n", progName)
	fmt.Printf("  %s -d [-t] <input.bin>\n", progName)
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -d             Decompress (default is compress)")
	fmt.Println("  -t             Text mode: translate newlines (CRLF <-> LF)")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("Output:")
	fmt.Println("  Compress:   <stem>.bin alongside the input")
	fmt.Println("  Decompress: <stem>_uncompressed.txt alongside the input")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Printf("  %s notes.txt          # compress to notes.bin\n", progName)
	fmt.Printf("  %s -d notes.bin       # decompress to notes_uncompressed.txt\n", progName)
	fmt.Println()
}

func doCompress(inputPath string, opts *huffman.Options) int {
	result, err := huffman.Encode(inputPath, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Compression failed: %v\n", err)
		return 1
	}

	ratio := float64(result.UncompressedSize) / float64(result.CompressedSize)
	fmt.Printf("Input:   %s (%d bytes)\n", inputPath, result.UncompressedSize)
	fmt.Printf("Output:  %s (%d bytes)\n", result.OutputPath, result.CompressedSize)
	fmt.Printf("Ratio:   %.2fx\n", ratio)

	return 0
}

func doDecompress(inputPath string, opts *huffman.Options) int {
	result, err := huffman.Decode(inputPath, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Decompression failed: %v\n", err)
		return 1
	}

	fmt.Printf("Input:   %s\n", inputPath)
	fmt.Printf("Output:  %s\n", result.OutputPath)

	return 0
}

func main() {
	args := os.Args
	progName := args[0]

	if len(args) < 2 || args[1] == "-h" || args[1] == "--help" {
		printHelp(progName)
		if len(args) < 2 {
			os.Exit(1)
		}
		os.Exit(0)
	}

	if args[1] == "-v" || args[1] == "--version" {
		printVersion()
		os.Exit(0)
	}

	decompressMode := false
	opts := &huffman.Options{}
	var inputPath string

	for _, arg := range args[1:] {
		switch arg {
		case "-d":
			decompressMode = true
		case "-t":
			opts.TextMode = true
		default:
			if inputPath != "" {
				fmt.Fprintln(os.Stderr, "Error: Exactly one input file expected")
				os.Exit(1)
			}
			inputPath = arg
		}
	}

	if inputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: Input file is required")
		os.Exit(1)
	}

	if decompressMode {
		os.Exit(doDecompress(inputPath, opts))
	}
	os.Exit(doCompress(inputPath, opts))
}
