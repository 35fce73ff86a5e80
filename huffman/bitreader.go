package huffman

import "fmt"

// BitReader provides sequential bit-level reading from bytes.
//
// Bits are read MSB-first within each byte (matching BitBuffer output):
//   - First bit read is bit position 7 (MSB)
//   - Last bit read is bit position 0 (LSB)
type BitReader struct {
	data      []byte
	totalBits int
	position  int
}

// NewBitReader creates a new bit reader from bytes.
func NewBitReader(data []byte) *BitReader {
	return &BitReader{
		data:      data,
		totalBits: len(data) * 8,
		position:  0,
	}
}

// Remaining returns the number of bits remaining to read.
func (br *BitReader) Remaining() int {
	return br.totalBits - br.position
}

// Position returns the current bit position.
func (br *BitReader) Position() int {
	return br.position
}

// ReadBit reads and consumes a single bit.
func (br *BitReader) ReadBit() (int, error) {
	if br.position >= br.totalBits {
		return 0, ErrEOF
	}

	byteIndex := br.position / 8
	bitIndex := br.position % 8

	// MSB-first: bit 0 in stream is bit 7 of first byte
	bit := (br.data[byteIndex] >> (7 - bitIndex)) & 1
	br.position++
	return int(bit), nil
}

// ReadBits reads and consumes multiple bits as an integer.
// Bits are returned MSB-first as an integer value.
func (br *BitReader) ReadBits(numBits int) (uint64, error) {
	if numBits == 0 {
		return 0, nil
	}

	if numBits > 64 {
		return 0, fmt.Errorf("cannot read more than 64 bits at once")
	}

	if br.position+numBits > br.totalBits {
		return 0, fmt.Errorf("not enough bits: need %d, have %d", numBits, br.Remaining())
	}

	var result uint64
	for i := 0; i < numBits; i++ {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, err
		}
		result = (result << 1) | uint64(bit)
	}

	return result, nil
}
