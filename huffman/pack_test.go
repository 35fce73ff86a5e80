package huffman

import (
	"bytes"
	"errors"
	"testing"
)

func TestPackBitsPadByte(t *testing.T) {
	// {a:2, b:3, c:4} codes: c="0", a="10", b="11".
	// "aabbbcccc" encodes to 2*2 + 3*2 + 4*1 = 14 code bits, so pad = 2.
	ct := mustCodes(t, []byte("aabbbcccc"))

	payload, err := PackBits([]byte("aabbbcccc"), ct)
	if err != nil {
		t.Fatalf("PackBits failed: %v", err)
	}

	// 8 (pad field) + 14 (code bits) + 2 (pad) = 24 bits = 3 bytes
	if len(payload) != 3 {
		t.Fatalf("Expected 3 payload bytes, got %d", len(payload))
	}
	if payload[0] != 2 {
		t.Errorf("Expected pad byte 2, got %d", payload[0])
	}
	// Code bits: 10 10 11 11 11 0 0 0 0 || 00
	if !bytes.Equal(payload[1:], []byte{0xAF, 0xC0}) {
		t.Errorf("Expected code bytes [0xAF, 0xC0], got %v", payload[1:])
	}
}

func TestPackBitsAlignedStillPads(t *testing.T) {
	// "abababab": codes a="0", b="1", exactly 8 code bits. A bitstream
	// already at a byte boundary still gets a full padding byte.
	ct := mustCodes(t, []byte("abababab"))

	payload, err := PackBits([]byte("abababab"), ct)
	if err != nil {
		t.Fatalf("PackBits failed: %v", err)
	}

	if payload[0] != 8 {
		t.Errorf("Expected pad byte 8 for aligned bitstream, got %d", payload[0])
	}
	if len(payload) != 3 {
		t.Errorf("Expected 3 payload bytes, got %d", len(payload))
	}
}

func TestPackBitsUnknownSymbol(t *testing.T) {
	ct := mustCodes(t, []byte("aabb"))

	if _, err := PackBits([]byte("abc"), ct); err == nil {
		t.Error("Expected error for symbol without a code")
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte("aabbbcccc"),
		[]byte("aaaa"),
		[]byte("a"),
		[]byte("the quick brown fox jumps over the lazy dog"),
		bytes.Repeat([]byte("abcdefgh"), 100),
		{0x00, 0xFF, 0x00, 0xFF, 0x7F},
	}

	for _, input := range inputs {
		ct := mustCodes(t, input)

		payload, err := PackBits(input, ct)
		if err != nil {
			t.Fatalf("PackBits(%q) failed: %v", input, err)
		}

		output, err := UnpackBits(payload, ct)
		if err != nil {
			t.Fatalf("UnpackBits(%q) failed: %v", input, err)
		}
		if !bytes.Equal(output, input) {
			t.Errorf("Round trip mismatch: expected %q, got %q", input, output)
		}
	}
}

func TestUnpackBitsEmptyPayload(t *testing.T) {
	ct := mustCodes(t, []byte("aabb"))

	_, err := UnpackBits(nil, ct)
	if !errors.Is(err, ErrMalformedContainer) {
		t.Errorf("Expected ErrMalformedContainer, got %v", err)
	}
}

func TestUnpackBitsBadPadCount(t *testing.T) {
	ct := mustCodes(t, []byte("aabb"))

	// Pad field 0 is outside [1,8]
	_, err := UnpackBits([]byte{0x00, 0x00}, ct)
	if !errors.Is(err, ErrMalformedContainer) {
		t.Errorf("Pad 0: expected ErrMalformedContainer, got %v", err)
	}

	// Pad field 9 is outside [1,8]
	_, err = UnpackBits([]byte{0x09, 0x00}, ct)
	if !errors.Is(err, ErrMalformedContainer) {
		t.Errorf("Pad 9: expected ErrMalformedContainer, got %v", err)
	}
}

func TestUnpackBitsPaddingExceedsPayload(t *testing.T) {
	ct := mustCodes(t, []byte("aabb"))

	// Declares 8 bits of padding but has none after the pad field
	_, err := UnpackBits([]byte{0x08}, ct)
	if !errors.Is(err, ErrMalformedContainer) {
		t.Errorf("Expected ErrMalformedContainer, got %v", err)
	}
}

func TestUnpackBitsTrailingPartialCode(t *testing.T) {
	// {a:2, b:3, c:4} codes: c="0", a="10", b="11". Pad field 7 leaves
	// one code bit, '1', which is a proper prefix of "10"/"11" and
	// never completes.
	ct := mustCodes(t, []byte("aabbbcccc"))

	_, err := UnpackBits([]byte{0x07, 0x80}, ct)
	if !errors.Is(err, ErrUnmatchedBits) {
		t.Errorf("Expected ErrUnmatchedBits, got %v", err)
	}
}

func TestUnpackBitsAccumulatorOverrun(t *testing.T) {
	// A sparse table (not derivable from a full tree) where "11" has no
	// entry: the accumulator outgrows the longest known code.
	ct := &CodeTable{
		forward: map[byte]string{'a': "00"},
		reverse: map[string]byte{"00": 'a'},
		maxLen:  2,
	}

	// Pad 5, code bits 111: no prefix of it ever matches
	_, err := UnpackBits([]byte{0x05, 0xE0}, ct)
	if !errors.Is(err, ErrUnmatchedBits) {
		t.Errorf("Expected ErrUnmatchedBits, got %v", err)
	}
}
