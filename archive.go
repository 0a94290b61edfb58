package hufftext

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Archive layout:
//
//     magic    4 bytes   "HUFT"
//     version  1 byte    archiveVersion
//     count    16 bits   number of table entries
//     entries  count × { symbol: 8 bits, size: 8 bits, code: size bits }
//     (zero bits up to the next byte boundary)
//     payload  the rest of the stream, as returned by Compress
//
const (
	archiveMagic   = "HUFT"
	archiveVersion = 1
)

// WriteArchive writes table followed by payload to w.
func WriteArchive(w io.Writer, table *CodeTable, payload []byte) error {
	bw := bitio.NewWriter(w)

	if _, err := io.WriteString(bw, archiveMagic); err != nil {
		return err
	}
	if err := bw.WriteByte(archiveVersion); err != nil {
		return err
	}
	if err := bw.WriteBits(uint64(table.Len()), 16); err != nil {
		return err
	}
	for _, symbol := range table.Symbols() {
		hc := table.codes[symbol]
		if err := bw.WriteBits(uint64(symbol), 8); err != nil {
			return err
		}
		if err := bw.WriteBits(uint64(hc.Size), 8); err != nil {
			return err
		}
		if err := bw.WriteBits(hc.Bits, hc.Size); err != nil {
			return err
		}
	}
	if _, err := bw.Align(); err != nil {
		return err
	}
	if _, err := bw.Write(payload); err != nil {
		return err
	}
	return bw.Close()
}

// ReadArchive reads a stream written by WriteArchive.  The payload is read
// to the end of r.
func ReadArchive(r io.Reader) (*CodeTable, []byte, error) {
	br := bitio.NewReader(r)

	var magic [len(archiveMagic)]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, nil, fmt.Errorf("%w: reading archive magic: %v", ErrCorruptStream, err)
	}
	if !bytes.Equal(magic[:], []byte(archiveMagic)) {
		return nil, nil, fmt.Errorf("%w: bad archive magic %q", ErrCorruptStream, magic[:])
	}

	version, err := br.ReadByte()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading archive version: %v", ErrCorruptStream, err)
	}
	if version != archiveVersion {
		return nil, nil, fmt.Errorf("%w: unsupported archive version %d", ErrCorruptStream, version)
	}

	count, err := br.ReadBits(16)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading table size: %v", ErrCorruptStream, err)
	}
	if count > 256 {
		return nil, nil, fmt.Errorf("%w: table has %d entries, max 256", ErrCorruptStream, count)
	}

	codes := make(map[Symbol]Code, count)
	for i := uint64(0); i < count; i++ {
		symbol, size, bits, err := readTableEntry(br)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: reading table entry %d: %v", ErrCorruptStream, i, err)
		}
		if _, found := codes[symbol]; found {
			return nil, nil, fmt.Errorf("%w: symbol %s listed twice", ErrCorruptStream, quoteSymbol(symbol))
		}
		codes[symbol] = MakeCode(size, bits)
	}
	br.Align()

	table, err := NewCodeTableFromCodes(codes)
	if err != nil {
		return nil, nil, err
	}

	payload, err := io.ReadAll(br)
	if err != nil {
		return nil, nil, err
	}
	return table, payload, nil
}

func readTableEntry(br *bitio.Reader) (symbol Symbol, size byte, bits uint64, err error) {
	var u uint64
	if u, err = br.ReadBits(8); err != nil {
		return
	}
	symbol = Symbol(u)
	if u, err = br.ReadBits(8); err != nil {
		return
	}
	size = byte(u)
	if size == 0 || size > maxBitsPerCode {
		err = fmt.Errorf("symbol %s has a code of %d bits", quoteSymbol(symbol), size)
		return
	}
	bits, err = br.ReadBits(size)
	return
}
