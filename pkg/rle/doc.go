// Package rle decodes Run Length Encoded cellular automaton patterns into a
// dense grid of 0/1 cells.
//
// An RLE document has optional comment lines starting with '#', one header
// line of the form
//
//	x = 36, y = 9, rule = B3/S23
//
// and body lines made of runs: an optional count followed by 'b' (dead) or
// 'o' (alive). '$' ends a row, where a count adds blank rows, and '!' ends the
// pattern.
//
// Decoding is pure. A Decoder keeps no state between calls and the returned
// Pattern is never mutated, so both may be shared between goroutines.
package rle
