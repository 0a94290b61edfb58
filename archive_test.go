package hufftext

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArchive_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"aaaa",
		"abracadabra",
		"binary \x00\x01\xfe\xff data",
	}
	for _, input := range inputs {
		table, payload := Compress([]byte(input))

		var buf bytes.Buffer
		require.NoError(t, WriteArchive(&buf, table, payload))

		raw := buf.Bytes()
		require.True(t, bytes.HasPrefix(raw, []byte("HUFT\x01")), "%q", raw)
		require.True(t, bytes.HasSuffix(raw, payload), "%q", raw)

		readTable, readPayload, err := ReadArchive(bytes.NewReader(raw))
		require.NoError(t, err)
		require.True(t, table.Equal(readTable), "%q", input)
		require.Equal(t, len(payload), len(readPayload))

		output, err := Decompress(readTable, readPayload)
		require.NoError(t, err)
		require.Equal(t, input, string(output))
	}
}

func TestArchive_Layout(t *testing.T) {
	table, payload := Compress([]byte("aaaa"))

	var buf bytes.Buffer
	require.NoError(t, WriteArchive(&buf, table, payload))

	// magic, version, count=1, 'a', size=1, code "0" + 7 alignment bits,
	// then the payload.
	expect := []byte{'H', 'U', 'F', 'T', 0x01, 0x00, 0x01, 'a', 0x01, 0x00, 0x04, 0x00}
	require.Equal(t, expect, buf.Bytes())
}

func TestArchive_DeepCodes(t *testing.T) {
	const numSymbols = 60
	hist := make(Histogram, numSymbols)
	for i := range hist {
		hist[i] = FrequencyEntry{Symbol: Symbol(i), Count: uint64(1) << i}
	}
	table := NewCodeTable(BuildTree(hist))

	text := []byte{0, 1, 59, 30, 0, 58}
	bs, err := EncodeText(text, table)
	require.NoError(t, err)
	payload := ToBytes(PadEncodedText(bs))

	var buf bytes.Buffer
	require.NoError(t, WriteArchive(&buf, table, payload))
	readTable, readPayload, err := ReadArchive(&buf)
	require.NoError(t, err)
	require.True(t, table.Equal(readTable))

	output, err := Decompress(readTable, readPayload)
	require.NoError(t, err)
	require.Equal(t, text, output)
}

func TestReadArchive_Corrupt(t *testing.T) {
	type testRow struct {
		name string
		raw  []byte
	}

	testData := [...]testRow{
		{name: "empty", raw: nil},
		{name: "bad-magic", raw: []byte("HUFX\x01\x00\x00")},
		{name: "bad-version", raw: []byte("HUFT\x02\x00\x00")},
		{name: "truncated-count", raw: []byte("HUFT\x01\x00")},
		{name: "truncated-entry", raw: []byte("HUFT\x01\x00\x01a")},
		{name: "zero-size", raw: []byte("HUFT\x01\x00\x01a\x00")},
		{name: "too-many", raw: []byte("HUFT\x01\x01\x01")},
		// 'a' and 'b' both coded "0".
		{name: "duplicate-code", raw: []byte("HUFT\x01\x00\x02a\x01\x31\x00\x80")},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, _, err := ReadArchive(bytes.NewReader(row.raw))
			require.ErrorIs(t, err, ErrCorruptStream)
		})
	}
}
