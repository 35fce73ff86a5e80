package huffman

// FrequencyTable counts byte occurrences in an input.
//
// Besides the counts it remembers the order in which distinct bytes first
// appeared. Tree construction inserts leaves in that order, which keeps
// the heap tie-break deterministic: the same input always produces the
// same tree and therefore byte-identical compressed output.
type FrequencyTable struct {
	counts map[byte]int
	order  []byte // distinct bytes in first-appearance order
}

// CountFrequencies builds a frequency table over the input.
func CountFrequencies(data []byte) *FrequencyTable {
	ft := &FrequencyTable{
		counts: make(map[byte]int),
	}
	for _, b := range data {
		if ft.counts[b] == 0 {
			ft.order = append(ft.order, b)
		}
		ft.counts[b]++
	}
	return ft
}

// Len returns the number of distinct bytes counted.
func (ft *FrequencyTable) Len() int {
	return len(ft.order)
}

// Count returns the number of occurrences of b, 0 if b never appeared.
func (ft *FrequencyTable) Count(b byte) int {
	return ft.counts[b]
}

// Symbols returns the distinct bytes in first-appearance order.
// The returned slice is owned by the table and must not be modified.
func (ft *FrequencyTable) Symbols() []byte {
	return ft.order
}
