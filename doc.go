// Package huffman implements minimum-redundancy (Huffman) prefix codes over
// arbitrary ordered symbols.
//
// A Coder is built once from a FrequencyTable.  It owns an immutable Huffman
// tree, used for decoding, and a Table derived from that tree, used for
// encoding.  Both are safe for concurrent use by multiple readers.
//
// Codes are stored as growable bit vectors, so there is no limit on code
// length.  An alphabet with a single symbol is assigned the one-bit code "0".
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
//
//	<https://en.wikipedia.org/wiki/Canonical_Huffman_code>
package huffman
