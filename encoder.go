package hufftext

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// headerBits is the width of the padding header that precedes the encoded
// bits in a packed payload.
const headerBits = 8

// EncodeText concatenates, in order, the Code of each byte of text.  It
// fails with ErrUnknownSymbol if a byte has no Code in table.
func EncodeText(text []byte, table *CodeTable) (BitString, error) {
	b := newBitBuilder()
	for offset, ch := range text {
		hc, found := table.Encode(Symbol(ch))
		if !found {
			return BitString{}, fmt.Errorf("%w: %s at offset %d", ErrUnknownSymbol, quoteSymbol(Symbol(ch)), offset)
		}
		b.writeCode(hc)
	}
	return b.finish(), nil
}

// PadEncodedText byte-aligns bs.  The result is an 8-bit header holding the
// number of padding bits (0 to 7), then bs, then that many zero bits.
func PadEncodedText(bs BitString) BitString {
	padding := paddingFor(bs.size)
	b := newBitBuilder()
	b.writeCode(MakeCode(headerBits, uint64(padding)))
	b.writeBitString(bs)
	b.writeCode(MakeCode(byte(padding), 0))
	return b.finish()
}

// ToBytes returns the bytes of a byte-aligned BitString, such as one
// returned by PadEncodedText.  It panics if padded.Len() is not a multiple
// of 8.
func ToBytes(padded BitString) []byte {
	assert.Assertf(padded.size%8 == 0, "ToBytes: %d bits is not a whole number of bytes", padded.size)
	out := make([]byte, padded.size/8)
	copy(out, padded.data)
	return out
}
