package hufftext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// BitString is an in-memory sequence of bits, packed into bytes with the
// first bit in the most significant position.  Unused trailing bits of the
// last byte are zero.
type BitString struct {
	data []byte
	size int
}

// ParseBitString parses a string of '0' and '1' digits.
func ParseBitString(str string) (BitString, error) {
	b := newBitBuilder()
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			b.writeCode(MakeCode(1, 0))
		case '1':
			b.writeCode(MakeCode(1, 1))
		default:
			return BitString{}, fmt.Errorf("invalid digit %q at offset %d in bit string", str[i], i)
		}
	}
	return b.finish(), nil
}

// Len returns the number of bits.
func (bs BitString) Len() int {
	return bs.size
}

// String returns the bits as a string of '0' and '1' digits.
func (bs BitString) String() string {
	var sb strings.Builder
	sb.Grow(bs.size)
	for i := 0; i < bs.size; i++ {
		if bs.data[i/8]&(0x80>>uint(i%8)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (bs BitString) reader() *bitio.Reader {
	return bitio.NewReader(bytes.NewReader(bs.data))
}

var _ fmt.Stringer = BitString{}

// type bitBuilder {{{

// bitBuilder accumulates bits into a BitString.
type bitBuilder struct {
	buf  bytes.Buffer
	w    *bitio.Writer
	size int
}

func newBitBuilder() *bitBuilder {
	b := &bitBuilder{}
	b.w = bitio.NewWriter(&b.buf)
	return b
}

func (b *bitBuilder) writeCode(hc Code) {
	// Writes to a bytes.Buffer cannot fail.
	err := b.w.WriteBits(hc.Bits, hc.Size)
	assert.Assertf(err == nil, "bitio.Writer.WriteBits: %v", err)
	b.size += int(hc.Size)
}

func (b *bitBuilder) writeBitString(bs BitString) {
	whole := bs.size / 8
	for _, ch := range bs.data[:whole] {
		b.writeCode(MakeCode(8, uint64(ch)))
	}
	if rest := byte(bs.size % 8); rest != 0 {
		b.writeCode(MakeCode(rest, uint64(bs.data[whole]>>(8-rest))))
	}
}

func (b *bitBuilder) finish() BitString {
	err := b.w.Close()
	assert.Assertf(err == nil, "bitio.Writer.Close: %v", err)
	return BitString{data: b.buf.Bytes(), size: b.size}
}

// }}}
