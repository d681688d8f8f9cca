package tinflate

/*
 * Copyright (c) 2021 Josh Varga
 * Original C version: Copyright 2021 Birte Kristina Friesel
 *
 * SPDX-License-Identifier: BSD-2-Clause
 *
 * This code has been adapted to Go from inflate.c in zlib-deflate-nostdlib,
 * some of the comments are from the original source.
 */

/*
 * A canonical huffman code, described entirely by the bit length of each
 * symbol's code. blCount[n] is the number of codes of length n and
 * nextCode[n] is the smallest code value of length n, per the algorithm
 * in RFC 1951 section 3.2.2. Individual symbols are not assigned code
 * values up front: the decoder recovers them from the same recurrence.
 *
 * codes, when present, lists the symbols in (length, symbol) order and
 * turns the symbol lookup into a single index. The tables of the two
 * payload alphabets take about 650 bytes; without one the decoder scans
 * the length slice instead, which is substantially slower. The decoder
 * state reserves the table storage in both modes.
 */
type alphabet struct {
	blCount  [maxCodeLen + 1]uint16
	nextCode [maxCodeLen + 1]uint16
	lengths  []uint8  // per-symbol code lengths, 0 = unused
	codes    []uint16 // symbols in (length, symbol) order; nil = table-free
}

// build derives the decoding state from the given code lengths. codes may
// be nil to decode without a lookup table.
func (a *alphabet) build(lengths []uint8, codes []uint16) {
	a.lengths = lengths
	a.codes = codes
	for i := range a.blCount {
		a.blCount[i] = 0
	}
	maxLen := uint8(0)
	for _, l := range lengths {
		if l != 0 {
			a.blCount[l]++
		}
		if l > maxLen {
			maxLen = l
		}
	}
	code := uint16(0)
	for n := uint8(1); n <= maxLen; n++ {
		code = (code + a.blCount[n-1]) << 1
		a.nextCode[n] = code
	}
	if codes == nil {
		return
	}
	k := 0
	for n := uint8(1); n <= maxLen; n++ {
		for sym, l := range lengths {
			if l == n {
				codes[k] = uint16(sym)
				k++
			}
		}
	}
}

// rev16 reverses the low n bits of w. Huffman codes are packed into the
// stream most significant bit first, against the grain of the LSB-first
// bit order, so the peeked window must be reversed before it can be
// compared against code values.
func rev16(w uint16, n uint) uint16 {
	var r uint16
	for ; n > 0; n-- {
		r = r<<1 | w&1
		w >>= 1
	}
	return r
}

// huffSym decodes one symbol from the input using alphabet a.
//
// For each candidate length n the reversed n-bit window is tested against
// the range [nextCode[n], nextCode[n]+blCount[n]); the first length that
// matches identifies the code. With a lookup table the symbol is then one
// index away; without it, the length slice is scanned for the matching
// symbol of that length.
func (s *state) huffSym(a *alphabet) (int, error) {
	w := s.peek16()
	off := uint16(0)
	for n := uint(1); n <= maxCodeLen; n++ {
		cnt := a.blCount[n]
		code := rev16(w, n)
		if cnt != 0 && code >= a.nextCode[n] && code < a.nextCode[n]+cnt {
			if err := s.advance(n); err != nil {
				return 0, err
			}
			if a.codes != nil {
				return int(a.codes[off+code-a.nextCode[n]]), nil
			}
			rank := a.nextCode[n]
			for sym, l := range a.lengths {
				if uint(l) == n {
					if rank == code {
						return sym, nil
					}
					rank++
				}
			}
			return 0, ErrHuffman
		}
		off += cnt
	}
	return 0, ErrHuffman
}
