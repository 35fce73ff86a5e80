package huffman

import "errors"

var (
	// ErrEmptyInput is returned when there is nothing to encode.
	ErrEmptyInput = errors.New("nothing to encode: input is empty")

	// ErrMalformedContainer is returned when a compressed file violates the
	// container format: short header, tree blob length past end of file,
	// structurally invalid tree, or an impossible padding count.
	ErrMalformedContainer = errors.New("malformed container")

	// ErrUnmatchedBits is returned when the packed bitstream contains a bit
	// sequence that matches no code in the tree. This usually means the
	// payload was truncated or corrupted.
	ErrUnmatchedBits = errors.New("unmatched bit sequence in payload")

	// ErrEOF is returned when reading past the end of available bits.
	ErrEOF = errors.New("no more bits to read")
)
