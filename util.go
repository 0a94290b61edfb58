package hufftext

import (
	"fmt"
	mathbits "math/bits"
	"strconv"
	"unicode/utf8"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// paddingFor returns the number of zero bits needed to round size up to a
// multiple of 8.
func paddingFor(size int) int {
	return (8 - size%8) % 8
}

// quoteSymbol renders a Symbol as a Go character literal.  Bytes outside of
// ASCII are written as '\xNN' so they are not mistaken for Latin-1 runes.
func quoteSymbol(symbol Symbol) string {
	if symbol < utf8.RuneSelf {
		return strconv.QuoteRuneToASCII(rune(symbol))
	}
	return fmt.Sprintf("'\\x%02x'", byte(symbol))
}
