package huffman

import "fmt"

// PackBits encodes the input through the code table into the packed
// payload format.
//
// Payload layout, MSB-first:
//
//	BIT8(pad) || code bits || pad zero bits
//
// pad = 8 - (len(code bits) mod 8) and is always in [1, 8]: a bitstream
// that is already byte-aligned still gets a full byte of padding, which
// keeps the unpad step unambiguous.
func PackBits(data []byte, ct *CodeTable) ([]byte, error) {
	if ct == nil {
		return nil, fmt.Errorf("pack: nil code table")
	}

	totalBits := 0
	for _, b := range data {
		code, ok := ct.Code(b)
		if !ok {
			return nil, fmt.Errorf("pack: no code for symbol 0x%02X", b)
		}
		totalBits += len(code)
	}

	pad := 8 - totalBits%8 // 8 when already aligned, never 0

	bb := NewBitBuffer()
	bb.AppendValue(uint64(pad), 8)
	for _, b := range data {
		code, _ := ct.Code(b)
		bb.AppendCode(code)
	}
	for i := 0; i < pad; i++ {
		bb.AppendBit(0)
	}

	return bb.ToBytes(), nil
}

// UnpackBits decodes a packed payload back into the original bytes.
//
// The first 8 bits are the padding count; the code bits are everything
// between the pad field and the last pad bits. Decoding accumulates bits
// until the accumulator matches a code in the reverse map, which is
// unambiguous because the code set is prefix-free. An accumulator that
// grows past the longest known code, or a leftover partial code at the
// end of the stream, means the payload is corrupt.
func UnpackBits(payload []byte, ct *CodeTable) ([]byte, error) {
	if ct == nil {
		return nil, fmt.Errorf("unpack: nil code table")
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: payload is missing its padding field", ErrMalformedContainer)
	}

	br := NewBitReader(payload)

	padRaw, err := br.ReadBits(8)
	if err != nil {
		return nil, fmt.Errorf("unpack: %w", err)
	}
	pad := int(padRaw)
	if pad < 1 || pad > 8 {
		return nil, fmt.Errorf("%w: padding count %d out of range [1,8]", ErrMalformedContainer, pad)
	}
	if br.Remaining() < pad {
		return nil, fmt.Errorf("%w: payload shorter than declared padding", ErrMalformedContainer)
	}

	codeBits := br.Remaining() - pad
	maxLen := ct.MaxCodeLen()

	var out []byte
	acc := make([]byte, 0, maxLen)

	for i := 0; i < codeBits; i++ {
		bit, err := br.ReadBit()
		if err != nil {
			return nil, fmt.Errorf("unpack: %w", err)
		}
		acc = append(acc, '0'+byte(bit))
		if len(acc) > maxLen {
			return nil, fmt.Errorf("%w: %d bits without a code match", ErrUnmatchedBits, len(acc))
		}
		if sym, ok := ct.Symbol(string(acc)); ok {
			out = append(out, sym)
			acc = acc[:0]
		}
	}

	if len(acc) > 0 {
		return nil, fmt.Errorf("%w: %d trailing bits form no complete code", ErrUnmatchedBits, len(acc))
	}

	return out, nil
}
