// Command hufftext compresses and decompresses files with Huffman coding.
//
// Usage:
//
//     hufftext compress <input> <output>
//     hufftext decompress <input> <output>
//
// Compressing also writes a listing of each byte's code to
// <output>_dictionary.txt.
//
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chronos-tachyon/hufftext"
)

const dictionarySuffix = "_dictionary.txt"

func main() {
	log.SetFlags(0)
	log.SetPrefix("hufftext: ")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s compress|decompress <input> <output>\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch action := flag.Arg(0); action {
	case "compress":
		err = compressFile(flag.Arg(1), flag.Arg(2))
	case "decompress":
		err = decompressFile(flag.Arg(1), flag.Arg(2))
	default:
		log.Printf("unexpected action %q, expected \"compress\" or \"decompress\"", action)
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func compressFile(inputPath, outputPath string) error {
	text, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	table, payload := hufftext.Compress(text)

	var buf bytes.Buffer
	if err := hufftext.WriteArchive(&buf, table, payload); err != nil {
		return fmt.Errorf("failed to encode archive: %w", err)
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	var dict bytes.Buffer
	if _, err := table.WriteDictionary(&dict); err != nil {
		return fmt.Errorf("failed to format dictionary: %w", err)
	}
	if err := os.WriteFile(outputPath+dictionarySuffix, dict.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write dictionary: %w", err)
	}

	log.Printf("compressed %s: %d bytes -> %d bytes (%d symbols)", inputPath, len(text), buf.Len(), table.Len())
	return nil
}

func decompressFile(inputPath, outputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()

	table, payload, err := hufftext.ReadArchive(file)
	if err != nil {
		return fmt.Errorf("failed to read archive: %w", err)
	}

	text, err := hufftext.Decompress(table, payload)
	if err != nil {
		return fmt.Errorf("failed to decompress data: %w", err)
	}

	if err := os.WriteFile(outputPath, text, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Printf("decompressed %s: %d bytes -> %d bytes", inputPath, len(payload), len(text))
	return nil
}
