package hufftext

import (
	"fmt"
)

// FromBytes returns the bits of data, eight per byte, most significant bit
// first.
func FromBytes(data []byte) BitString {
	out := make([]byte, len(data))
	copy(out, data)
	return BitString{data: out, size: 8 * len(out)}
}

// RemovePadding reverses PadEncodedText: it reads the 8-bit header and
// returns the bits that follow it, minus the trailing padding bits that the
// header counts.
//
// An empty BitString is returned unchanged.  A header larger than 7, or a
// stream too short to hold its header and padding, fails with
// ErrCorruptStream.
//
func RemovePadding(padded BitString) (BitString, error) {
	if padded.size == 0 {
		return BitString{}, nil
	}
	if padded.size < headerBits {
		return BitString{}, fmt.Errorf("%w: %d bits is too short for the padding header", ErrCorruptStream, padded.size)
	}

	r := padded.reader()
	padding, err := r.ReadBits(headerBits)
	if err != nil {
		return BitString{}, fmt.Errorf("%w: reading padding header: %v", ErrCorruptStream, err)
	}
	if padding > 7 {
		return BitString{}, fmt.Errorf("%w: padding header holds %d, max 7", ErrCorruptStream, padding)
	}

	remaining := padded.size - headerBits - int(padding)
	if remaining < 0 {
		return BitString{}, fmt.Errorf("%w: %d padding bits but only %d bits after the header", ErrCorruptStream, padding, padded.size-headerBits)
	}

	b := newBitBuilder()
	for remaining > 0 {
		n := remaining
		if n > maxBitsPerCode {
			n = maxBitsPerCode
		}
		bits, err := r.ReadBits(uint8(n))
		if err != nil {
			return BitString{}, fmt.Errorf("%w: %v", ErrCorruptStream, err)
		}
		b.writeCode(MakeCode(byte(n), bits))
		remaining -= n
	}
	return b.finish(), nil
}

// DecodeText decodes bs back into text by matching bits against table from
// left to right.  It fails with ErrCorruptStream if some run of bits grows
// longer than any code in table without matching, or if bits are left over
// at the end.
func DecodeText(bs BitString, table *CodeTable) ([]byte, error) {
	out := make([]byte, 0, bs.size/int(table.maxSize|1))
	r := bs.reader()

	var hc Code
	for i := 0; i < bs.size; i++ {
		bit, err := r.ReadBits(1)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
		}

		hc = hc.Append(bit)
		if symbol, found := table.Decode(hc); found {
			out = append(out, byte(symbol))
			hc = Code{}
			continue
		}
		if hc.Size >= table.MaxSize() {
			return nil, fmt.Errorf("%w: no code matches %s ending at bit %d", ErrCorruptStream, hc, i)
		}
	}
	if hc.Size != 0 {
		return nil, fmt.Errorf("%w: %d trailing bits %s match no code", ErrCorruptStream, hc.Size, hc)
	}
	return out, nil
}
