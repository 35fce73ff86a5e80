// Package huffman implements a lossless Huffman file compressor.
//
// The compressor builds an optimal prefix code from the byte frequencies
// of the input, packs the encoded bitstream behind a pad-count byte, and
// frames it together with a serialized copy of the code tree so the file
// is self-describing: decoding needs nothing but the file itself.
//
// Basic usage:
//
//	// Compress a byte slice
//	compressed, err := huffman.Compress(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Decompress it again
//	original, err := huffman.Decompress(compressed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Encode and Decode operate on files directly and handle output naming;
// see their documentation for the on-disk conventions.
package huffman
