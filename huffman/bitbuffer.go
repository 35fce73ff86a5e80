package huffman

// BitBuffer is a variable-length bit buffer for building packed output.
//
// Bits are appended sequentially using MSB-first ordering, matching the
// payload layout of the container format.
//
// Bit Ordering:
//   - First bit appended goes to bit position 7
//   - Second bit goes to position 6, etc.
type BitBuffer struct {
	data    []byte
	numBits int
}

// NewBitBuffer creates a new empty bit buffer.
func NewBitBuffer() *BitBuffer {
	return &BitBuffer{
		data:    make([]byte, 0, 256), // Pre-allocate reasonable capacity
		numBits: 0,
	}
}

// Clear resets the buffer to empty.
func (bb *BitBuffer) Clear() {
	bb.data = bb.data[:0]
	bb.numBits = 0
}

// NumBits returns the number of bits in the buffer.
func (bb *BitBuffer) NumBits() int {
	return bb.numBits
}

// AppendBit appends a single bit to the buffer.
func (bb *BitBuffer) AppendBit(bit int) {
	byteIndex := bb.numBits / 8
	bitIndex := bb.numBits % 8

	// Extend buffer if needed
	for byteIndex >= len(bb.data) {
		bb.data = append(bb.data, 0)
	}

	// MSB-first bit ordering: first bit goes to position 7
	if bit != 0 {
		bb.data[byteIndex] |= 1 << (7 - bitIndex)
	}

	bb.numBits++
}

// AppendValue appends a value as count bits (MSB-first).
func (bb *BitBuffer) AppendValue(value uint64, count int) {
	for i := count - 1; i >= 0; i-- {
		bit := int((value >> i) & 1)
		bb.AppendBit(bit)
	}
}

// AppendCode appends a code given as a string of '0' and '1' characters.
func (bb *BitBuffer) AppendCode(code string) {
	for i := 0; i < len(code); i++ {
		if code[i] == '1' {
			bb.AppendBit(1)
		} else {
			bb.AppendBit(0)
		}
	}
}

// ToBytes converts buffer contents to bytes.
// The final byte is zero-filled past the last appended bit.
func (bb *BitBuffer) ToBytes() []byte {
	if bb.numBits == 0 {
		return []byte{}
	}

	numBytes := (bb.numBits + 7) / 8
	result := make([]byte, numBytes)
	copy(result, bb.data[:numBytes])
	return result
}
