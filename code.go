package hufftext

import (
	"fmt"
	"strconv"
)

// maxBitsPerCode is the longest Code that fits in Code.Bits.
const maxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low-order bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.  Bits above
// position size are discarded.
func MakeCode(size byte, bits uint64) Code {
	if size < maxBitsPerCode {
		bits &= (uint64(1) << size) - 1
	}
	return Code{Size: size, Bits: bits}
}

// ParseCode parses a string of '0' and '1' digits, first bit first.
func ParseCode(str string) (Code, error) {
	if len(str) > maxBitsPerCode {
		return Code{}, fmt.Errorf("code %q is too long: %d bits, max %d", str, len(str), maxBitsPerCode)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("invalid digit %q at offset %d in code %q", str[i], i, str)
		}
	}
	return hc, nil
}

// Append returns the Code extended by one bit at the end.
func (hc Code) Append(bit uint64) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | (bit & 1)}
}

// HasPrefix reports whether the first prefix.Size bits of hc equal prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// Digits returns the bits of this Code as a string of '0' and '1' digits.
func (hc Code) Digits() string {
	if hc.Size == 0 {
		return ""
	}
	return fmt.Sprintf("%0*b", int(hc.Size), hc.Bits)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Digits())
}

var _ fmt.Stringer = Code{}
