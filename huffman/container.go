package huffman

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/icza/bitio"
)

// Container format:
//
//	[4-byte big-endian tree blob length][tree blob][packed payload]
//
// The tree blob is a pre-order bit encoding of the code tree: an internal
// node is the bit 0 followed by its two children, a leaf is the bit 1
// followed by the 8-bit symbol. The encoding is self-terminating, so the
// blob needs no node count; the bitio writer zero-fills the final byte.

// maxTreeNodes bounds tree deserialization. A byte alphabet has at most
// 256 leaves and 255 internal nodes; a blob declaring more is corrupt.
const maxTreeNodes = 511

// WriteContainer frames a code tree and a packed payload into the
// on-disk container format.
func WriteContainer(root *Node, payload []byte) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("container: nil tree")
	}

	blob, err := marshalTree(root)
	if err != nil {
		return nil, fmt.Errorf("container: %w", err)
	}

	out := make([]byte, 4, 4+len(blob)+len(payload))
	binary.BigEndian.PutUint32(out, uint32(len(blob)))
	out = append(out, blob...)
	out = append(out, payload...)
	return out, nil
}

// ReadContainer parses container bytes back into the code tree and the
// packed payload. The payload slice aliases the input.
func ReadContainer(data []byte) (*Node, []byte, error) {
	if len(data) < 4 {
		return nil, nil, fmt.Errorf("%w: missing tree length header", ErrMalformedContainer)
	}

	blobLen := int(binary.BigEndian.Uint32(data))
	if blobLen < 1 || 4+blobLen > len(data) {
		return nil, nil, fmt.Errorf("%w: tree blob length %d exceeds container size %d",
			ErrMalformedContainer, blobLen, len(data))
	}

	root, err := unmarshalTree(data[4 : 4+blobLen])
	if err != nil {
		return nil, nil, err
	}

	payload := data[4+blobLen:]
	if len(payload) == 0 {
		return nil, nil, fmt.Errorf("%w: container has no payload", ErrMalformedContainer)
	}

	return root, payload, nil
}

func marshalTree(root *Node) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	var write func(n *Node)
	write = func(n *Node) {
		if n.Leaf {
			w.TryWriteBool(true)
			w.TryWriteBits(uint64(n.Symbol), 8)
			return
		}
		w.TryWriteBool(false)
		write(n.Left)
		write(n.Right)
	}
	write(root)

	if w.TryError != nil {
		return nil, w.TryError
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unmarshalTree(blob []byte) (*Node, error) {
	r := bitio.NewReader(bytes.NewReader(blob))
	nodes := 0

	var read func() (*Node, error)
	read = func() (*Node, error) {
		nodes++
		if nodes > maxTreeNodes {
			return nil, fmt.Errorf("%w: tree blob encodes more than %d nodes",
				ErrMalformedContainer, maxTreeNodes)
		}

		isLeaf, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("%w: truncated tree blob", ErrMalformedContainer)
		}

		if isLeaf {
			sym, err := r.ReadBits(8)
			if err != nil {
				return nil, fmt.Errorf("%w: truncated leaf symbol", ErrMalformedContainer)
			}
			return &Node{Symbol: byte(sym), Leaf: true}, nil
		}

		left, err := read()
		if err != nil {
			return nil, err
		}
		right, err := read()
		if err != nil {
			return nil, err
		}
		return &Node{Left: left, Right: right}, nil
	}

	return read()
}
