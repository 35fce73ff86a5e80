package huffman

import "fmt"

// Version is the library version.
const Version = "1.0.0"

// Compress compresses the input into a self-describing container.
//
// Pipeline: frequency count, tree construction, code derivation, bit
// packing, container framing. Empty input returns ErrEmptyInput: a
// container with an empty alphabet has no meaningful tree to serialize.
func Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	ft := CountFrequencies(data)
	root, err := BuildTree(ft)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	ct, err := DeriveCodes(root)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	payload, err := PackBits(data, ct)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	return WriteContainer(root, payload)
}

// Decompress reverses Compress, reconstructing the original bytes from
// container bytes. The code table is rebuilt from the deserialized tree,
// so the container is the only input needed.
func Decompress(data []byte) ([]byte, error) {
	root, payload, err := ReadContainer(data)
	if err != nil {
		return nil, err
	}
	ct, err := DeriveCodes(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedContainer, err)
	}
	return UnpackBits(payload, ct)
}
