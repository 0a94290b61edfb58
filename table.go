package hufftext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol of an alphabet to its Huffman code, and back.
// A CodeTable is read-only once built.
type CodeTable struct {
	codes   map[Symbol]Code
	symbols map[Code]Symbol
	minSize byte
	maxSize byte
}

// NewCodeTable assigns a Code to every leaf of the tree rooted at root.  The
// code of a leaf is its path from the root, with "0" for each step to a Left
// child and "1" for each step to a Right child.
//
// A nil root yields an empty table.  A root that is itself a leaf has no
// path, so its Symbol is given the 1-bit code "0".
//
func NewCodeTable(root *Node) *CodeTable {
	t := newEmptyTable()
	if root == nil {
		return t
	}
	if root.IsLeaf() {
		t.add(root.Symbol, MakeCode(1, 0))
		return t
	}

	// Walk the tree with an explicit stack.  The stack holds at most one
	// pending right sibling per level of the tree.

	type stackItem struct {
		node *Node
		code Code
	}

	stack := make([]stackItem, 0, 2*log2uint32(256))
	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node.IsLeaf() {
			t.add(top.node.Symbol, top.code)
			continue
		}

		assert.Assertf(top.node.Left != nil && top.node.Right != nil, "internal node with weight %d has only one child", top.node.Freq)
		assert.Assertf(top.code.Size < maxBitsPerCode, "Huffman tree deeper than %d bits", maxBitsPerCode)

		stack = append(stack,
			stackItem{node: top.node.Right, code: top.code.Append(1)},
			stackItem{node: top.node.Left, code: top.code.Append(0)})
	}
	return t
}

// NewCodeTableFromCodes reconstructs a CodeTable from a previously persisted
// Symbol → Code mapping.  The mapping must be a non-degenerate prefix code:
// every Code holds between 1 and 64 bits, and no Code is a prefix of
// another.
//
func NewCodeTableFromCodes(codes map[Symbol]Code) (*CodeTable, error) {
	t := newEmptyTable()
	for _, symbol := range sortedSymbols(codes) {
		hc := codes[symbol]
		if hc.Size == 0 || hc.Size > maxBitsPerCode {
			return nil, fmt.Errorf("%w: symbol %s has a code of %d bits", ErrCorruptStream, quoteSymbol(symbol), hc.Size)
		}
		if hc != MakeCode(hc.Size, hc.Bits) {
			return nil, fmt.Errorf("%w: symbol %s has stray bits above its %d-bit code", ErrCorruptStream, quoteSymbol(symbol), hc.Size)
		}
		if other, found := t.symbols[hc]; found {
			return nil, fmt.Errorf("%w: symbols %s and %s share the code %s", ErrCorruptStream, quoteSymbol(other), quoteSymbol(symbol), hc)
		}
		t.add(symbol, hc)
	}

	for symbol, hc := range t.codes {
		prefix := Code{}
		for prefix.Size < hc.Size-1 {
			prefix = MakeCode(prefix.Size+1, hc.Bits>>(hc.Size-prefix.Size-1))
			if other, found := t.symbols[prefix]; found {
				return nil, fmt.Errorf("%w: code %s of symbol %s is a prefix of code %s of symbol %s", ErrCorruptStream, prefix, quoteSymbol(other), hc, quoteSymbol(symbol))
			}
		}
	}
	return t, nil
}

func newEmptyTable() *CodeTable {
	return &CodeTable{
		codes:   make(map[Symbol]Code),
		symbols: make(map[Code]Symbol),
	}
}

func (t *CodeTable) add(symbol Symbol, hc Code) {
	_, dupSymbol := t.codes[symbol]
	_, dupCode := t.symbols[hc]
	assert.Assertf(!dupSymbol, "symbol %s assigned twice", quoteSymbol(symbol))
	assert.Assertf(!dupCode, "code %s assigned twice", hc)

	if len(t.codes) == 0 {
		t.minSize = hc.Size
		t.maxSize = hc.Size
	} else if t.minSize > hc.Size {
		t.minSize = hc.Size
	} else if t.maxSize < hc.Size {
		t.maxSize = hc.Size
	}
	t.codes[symbol] = hc
	t.symbols[hc] = symbol
}

// Encode returns the Code assigned to symbol.
func (t *CodeTable) Encode(symbol Symbol) (hc Code, found bool) {
	hc, found = t.codes[symbol]
	return
}

// Decode returns the Symbol whose Code is exactly hc.
func (t *CodeTable) Decode(hc Code) (symbol Symbol, found bool) {
	symbol, found = t.symbols[hc]
	return
}

// Len returns the number of symbols in the table.
func (t *CodeTable) Len() int {
	return len(t.codes)
}

// MinSize is the bit length of the shortest legal code.
func (t *CodeTable) MinSize() byte {
	return t.minSize
}

// MaxSize is the bit length of the longest legal code.
func (t *CodeTable) MaxSize() byte {
	return t.maxSize
}

// Symbols returns the symbols of the table in ascending order.
func (t *CodeTable) Symbols() []Symbol {
	return sortedSymbols(t.codes)
}

// Codes returns a copy of the Symbol → Code mapping.
func (t *CodeTable) Codes() map[Symbol]Code {
	out := make(map[Symbol]Code, len(t.codes))
	for symbol, hc := range t.codes {
		out[symbol] = hc
	}
	return out
}

// Equal reports whether t and other assign the same Code to every Symbol.
func (t *CodeTable) Equal(other *CodeTable) bool {
	if len(t.codes) != len(other.codes) {
		return false
	}
	for symbol, hc := range t.codes {
		if otherCode, found := other.codes[symbol]; !found || otherCode != hc {
			return false
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for _, symbol := range t.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", quoteSymbol(symbol), t.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// WriteDictionary writes one "symbol: code" line per Symbol, sorted by
// Symbol.  The listing is for humans; it is not needed to decompress.
func (t *CodeTable) WriteDictionary(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, symbol := range t.Symbols() {
		fmt.Fprintf(&buf, "%s: %s\n", quoteSymbol(symbol), t.codes[symbol].Digits())
	}
	return buf.WriteTo(w)
}

// MarshalJSON encodes the table as a JSON object mapping each symbol's byte
// value to its code digits, e.g. {"97":"0","98":"10"}.
func (t *CodeTable) MarshalJSON() ([]byte, error) {
	raw := make(map[Symbol]string, len(t.codes))
	for symbol, hc := range t.codes {
		raw[symbol] = hc.Digits()
	}
	return json.Marshal(raw)
}

// UnmarshalJSON decodes the format written by MarshalJSON.
func (t *CodeTable) UnmarshalJSON(data []byte) error {
	var raw map[Symbol]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	codes := make(map[Symbol]Code, len(raw))
	for symbol, digits := range raw {
		hc, err := ParseCode(digits)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptStream, err)
		}
		codes[symbol] = hc
	}
	parsed, err := NewCodeTableFromCodes(codes)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

var (
	_ json.Marshaler   = (*CodeTable)(nil)
	_ json.Unmarshaler = (*CodeTable)(nil)
)

func sortedSymbols(codes map[Symbol]Code) []Symbol {
	out := make([]Symbol, 0, len(codes))
	for symbol := range codes {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
