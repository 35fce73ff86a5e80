package huffman

import (
	"bytes"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	ft := CountFrequencies([]byte("aabbbcccc"))

	if ft.Len() != 3 {
		t.Errorf("Expected 3 distinct symbols, got %d", ft.Len())
	}
	if ft.Count('a') != 2 {
		t.Errorf("Expected count 2 for 'a', got %d", ft.Count('a'))
	}
	if ft.Count('b') != 3 {
		t.Errorf("Expected count 3 for 'b', got %d", ft.Count('b'))
	}
	if ft.Count('c') != 4 {
		t.Errorf("Expected count 4 for 'c', got %d", ft.Count('c'))
	}
	if ft.Count('z') != 0 {
		t.Errorf("Expected count 0 for absent symbol, got %d", ft.Count('z'))
	}
}

func TestCountFrequenciesEmpty(t *testing.T) {
	ft := CountFrequencies(nil)
	if ft.Len() != 0 {
		t.Errorf("Expected empty table, got %d symbols", ft.Len())
	}
}

func TestCountFrequenciesOrder(t *testing.T) {
	// Symbols are recorded in first-appearance order, not value order
	ft := CountFrequencies([]byte("cabcab"))

	if !bytes.Equal(ft.Symbols(), []byte{'c', 'a', 'b'}) {
		t.Errorf("Expected [c a b], got %q", ft.Symbols())
	}
}

func TestCountFrequenciesAllBytes(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	ft := CountFrequencies(data)
	if ft.Len() != 256 {
		t.Errorf("Expected 256 distinct symbols, got %d", ft.Len())
	}
	for i := 0; i < 256; i++ {
		if ft.Count(byte(i)) != 1 {
			t.Errorf("Expected count 1 for byte %d, got %d", i, ft.Count(byte(i)))
		}
	}
}
