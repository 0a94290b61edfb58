package hufftext

import (
	"errors"
)

// ErrUnknownSymbol is returned when a text contains a Symbol that has no
// entry in the CodeTable used to encode it.
var ErrUnknownSymbol = errors.New("symbol not present in code table")

// ErrCorruptStream is returned when an encoded stream, a padding header, or a
// persisted code table is malformed or does not match its counterpart.
var ErrCorruptStream = errors.New("corrupt Huffman stream")
