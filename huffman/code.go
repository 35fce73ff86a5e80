package huffman

import "errors"

// CodeTable holds the bit-string code assignments derived from a tree.
//
// Forward maps each symbol to its code ('0' = left edge, '1' = right
// edge, root to leaf). Reverse is the exact inverse. Codes terminate
// only at leaves, so no code is a prefix of another.
type CodeTable struct {
	forward map[byte]string
	reverse map[string]byte
	maxLen  int // longest code length, bounds the decoder's accumulator
}

// DeriveCodes walks the tree and builds the code table.
//
// The walk uses an explicit stack so deeply unbalanced trees cannot
// overflow the call stack. A tree consisting of a single leaf gets the
// fixed code "0"; without it the lone symbol would receive the empty
// string and the reverse mapping would be unusable.
func DeriveCodes(root *Node) (*CodeTable, error) {
	if root == nil {
		return nil, errors.New("cannot derive codes from nil tree")
	}

	ct := &CodeTable{
		forward: make(map[byte]string),
		reverse: make(map[string]byte),
	}

	if root.Leaf {
		ct.assign(root.Symbol, "0")
		return ct, nil
	}

	type frame struct {
		node *Node
		code string
	}

	stack := []frame{{root, ""}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.Leaf {
			ct.assign(f.node.Symbol, f.code)
			continue
		}
		if f.node.Left == nil || f.node.Right == nil {
			return nil, errors.New("internal node is missing a child")
		}
		// Right pushed first so the left subtree is visited first,
		// same order as the recursive formulation.
		stack = append(stack, frame{f.node.Right, f.code + "1"})
		stack = append(stack, frame{f.node.Left, f.code + "0"})
	}

	return ct, nil
}

func (ct *CodeTable) assign(sym byte, code string) {
	ct.forward[sym] = code
	ct.reverse[code] = sym
	if len(code) > ct.maxLen {
		ct.maxLen = len(code)
	}
}

// Code returns the bit-string code for a symbol.
func (ct *CodeTable) Code(sym byte) (string, bool) {
	code, ok := ct.forward[sym]
	return code, ok
}

// Symbol returns the symbol for a full code, if the code exists.
func (ct *CodeTable) Symbol(code string) (byte, bool) {
	sym, ok := ct.reverse[code]
	return sym, ok
}

// Len returns the number of coded symbols.
func (ct *CodeTable) Len() int {
	return len(ct.forward)
}

// MaxCodeLen returns the length of the longest code in the table.
func (ct *CodeTable) MaxCodeLen() int {
	return ct.maxLen
}
