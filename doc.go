// Package huffpack implements a lossless file compressor based on static
// Huffman coding.
//
// A compressed file is laid out as follows, bit-packed with no alignment
// between the sections:
//
//     32 bits   Magic
//     header    the code tree, preorder: "0" for an internal node followed
//               by its left and right subtrees, "1" for a leaf followed by
//               its symbol in HeaderSymbolBits bits
//     payload   the code of every input byte, then the code of EOF
//
// The final partial byte is padded with zero bits.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
