package hufftext

import (
	"github.com/chronos-tachyon/assert"
)

// Compress builds a CodeTable for text and returns it together with the
// padded, byte-packed encoding of text.
//
// Each call owns its CodeTable; nothing is shared between calls.  An empty
// text yields an empty CodeTable and an empty payload.
//
func Compress(text []byte) (*CodeTable, []byte) {
	table := NewCodeTable(BuildTree(Count(text)))
	if len(text) == 0 {
		return table, nil
	}

	bs, err := EncodeText(text, table)
	assert.Assertf(err == nil, "table built from text cannot encode it: %v", err)

	return table, ToBytes(PadEncodedText(bs))
}

// Decompress reverses Compress.  It fails with ErrCorruptStream if payload
// was not produced with table.
func Decompress(table *CodeTable, payload []byte) ([]byte, error) {
	bs, err := RemovePadding(FromBytes(payload))
	if err != nil {
		return nil, err
	}
	return DecodeText(bs, table)
}
