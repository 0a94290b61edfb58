package hufftext

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompress_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	random := make([]byte, 4096)
	rng.Read(random)

	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	type testRow struct {
		name  string
		input []byte
	}

	testData := [...]testRow{
		{name: "empty", input: nil},
		{name: "single", input: []byte("aaaa")},
		{name: "single-byte", input: []byte("z")},
		{name: "two", input: []byte("abababbbbb")},
		{name: "abracadabra", input: []byte("abracadabra")},
		{name: "pangram", input: []byte("The quick brown fox jumps over the lazy dog.\n")},
		{name: "all-bytes", input: allBytes},
		{name: "random", input: random},
		{name: "long", input: []byte(strings.Repeat("mississippi river ", 1000))},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			table, payload := Compress(row.input)
			require.Equal(t, len(Count(row.input)), table.Len())

			output, err := Decompress(table, payload)
			require.NoError(t, err)
			if !bytes.Equal(row.input, output) {
				t.Errorf("round trip mismatch:\n\texpect: %q\n\tactual: %q", row.input, output)
			}
		})
	}
}

func TestCompress_Empty(t *testing.T) {
	table, payload := Compress(nil)
	require.Equal(t, 0, table.Len())
	require.Empty(t, payload)

	output, err := Decompress(table, payload)
	require.NoError(t, err)
	require.Empty(t, output)
}

func TestCompress_Single(t *testing.T) {
	table, payload := Compress([]byte("aaaa"))

	// "0000" plus 4 padding bits, after a header of 4.
	require.Equal(t, []byte{0x04, 0x00}, payload)

	output, err := Decompress(table, payload)
	require.NoError(t, err)
	require.Equal(t, "aaaa", string(output))
}

func TestCompress_Abracadabra(t *testing.T) {
	table, payload := Compress([]byte("abracadabra"))
	require.True(t, makeTestTable().Equal(table))
	require.Equal(t, []byte{0x01, 0x69, 0xcf, 0x68}, payload)
}

func TestCompress_Shrinks(t *testing.T) {
	input := []byte(strings.Repeat("aaaaaaab", 512))
	_, payload := Compress(input)
	require.Less(t, len(payload), len(input)/4)
}

func TestDecompress_MismatchedTable(t *testing.T) {
	_, payload := Compress([]byte("abracadabra"))
	// Every code of this table is 2 bits, and the payload holds 23 bits.
	other, _ := Compress([]byte("wxyz"))

	_, err := Decompress(other, payload)
	require.ErrorIs(t, err, ErrCorruptStream)
}
