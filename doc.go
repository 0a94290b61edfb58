// Package hufftext implements lossless Huffman compression of byte text.
//
// A text is reduced to a Histogram of byte frequencies, the Histogram is
// merged into a Huffman tree with a MinHeap, and the tree's root-to-leaf
// paths become a CodeTable.  The encoded bits are prefixed with an 8-bit
// header recording how many zero bits were appended to reach a byte
// boundary.
//
// Codes are taken directly from the shape of the tree; they are not
// canonicalized.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hufftext
