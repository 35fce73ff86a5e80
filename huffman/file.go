package huffman

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Options controls file-level encode/decode behavior.
type Options struct {
	// TextMode enables newline translation: CRLF in the input is
	// normalized to LF before encoding, and LF is expanded back to CRLF
	// when writing decoded output. It only affects how raw bytes are
	// read and written, never the codec itself.
	TextMode bool
}

// EncodeResult reports the outcome of a file encode.
type EncodeResult struct {
	OutputPath       string
	UncompressedSize int64
	CompressedSize   int64
}

// DecodeResult reports the outcome of a file decode.
type DecodeResult struct {
	OutputPath string
}

var (
	crlf = []byte("\r\n")
	lf   = []byte("\n")
)

// Encode compresses the file at path and writes the container to
// "<stem>.bin" alongside the input.
func Encode(path string, opts *Options) (*EncodeResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	if opts != nil && opts.TextMode {
		data = bytes.ReplaceAll(data, crlf, lf)
	}

	compressed, err := Compress(data)
	if err != nil {
		return nil, err
	}

	outPath := filepath.Join(filepath.Dir(path), stem(path)+".bin")
	if err := writeFileAtomic(outPath, compressed); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &EncodeResult{
		OutputPath:       outPath,
		UncompressedSize: int64(len(data)),
		CompressedSize:   int64(len(compressed)),
	}, nil
}

// Decode decompresses the container at path and writes the recovered
// bytes to "<stem>_uncompressed.txt" alongside the input. The container
// does not record the original file name, so the extension defaults to
// .txt.
func Decode(path string, opts *Options) (*DecodeResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	original, err := Decompress(data)
	if err != nil {
		return nil, err
	}
	if opts != nil && opts.TextMode {
		original = bytes.ReplaceAll(original, lf, crlf)
	}

	outPath := filepath.Join(filepath.Dir(path), stem(path)+"_uncompressed.txt")
	if err := writeFileAtomic(outPath, original); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return &DecodeResult{OutputPath: outPath}, nil
}

// stem returns the base name of path without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// writeFileAtomic writes data to a temp file in the destination
// directory and renames it into place, so a failed write never leaves a
// truncated file under the final name.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".huffman-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
