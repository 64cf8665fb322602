// Package varuint implements a compact, self-describing binary encoding for
// signed and unsigned integers up to 64 bits.
//
// An encoded value is 1 to 9 bytes. The first byte (the header byte) alone
// determines the total length, so values can be packed contiguously with no
// delimiters and decoded with no lookahead. The two shortest classes fold
// part of the value into the header byte itself, minimizing overhead for the
// common case of small integers.
//
// Length Classes
//
// This table gives the nine length classes. Ranges are inclusive and b1..b8
// are the payload bytes following the header.
//
//  | Header  | Total | Value                        | Range                                    |
//  |---------|-------|------------------------------|------------------------------------------|
//  | 0-240   | 1     | header                       | 0 .. 240                                 |
//  | 241-247 | 2     | 240 + 256*(header-241) + b1  | 241 .. 2031                              |
//  | 248     | 3     | 2032 + 256*b1 + b2           | 2032 .. 67567                            |
//  | 249     | 4     | b1..b3 big-endian            | 67568 .. 16777215                        |
//  | 250     | 5     | b1..b4 big-endian            | 16777216 .. 4294967295                   |
//  | 251     | 6     | b1..b5 big-endian            | 4294967296 .. 1099511627775              |
//  | 252     | 7     | b1..b6 big-endian            | 1099511627776 .. 281474976710655         |
//  | 253     | 8     | b1..b7 big-endian            | 281474976710656 .. 72057594037927935     |
//  | 254     | 9     | b1..b8 big-endian            | 72057594037927936 .. 2^64-1              |
//  | 255     | -     | reserved                     |                                          |
//
// The classes are contiguous and exhaustive over the unsigned 64-bit domain,
// so every value has exactly one minimal encoding. Encoding is based on the
// SQLite4 varuint format (https://sqlite.org/src4/doc/trunk/www/varint.wiki)
// with the header value 255 held back for a future extension to integers
// wider than 64 bits; decoding it is an error in this version.
//
// Signed integers are interleaved into the unsigned domain by magnitude with
// the ZigZag transform (0, -1, 1, -2, 2, ... map to 0, 1, 2, 3, 4, ...) and
// reuse the unsigned wire format, so small-magnitude values of either sign
// stay short.
package varuint
