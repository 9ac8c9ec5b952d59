// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

package crypto

import "encoding/binary"

// ListEncode concatenates items into a single length-prefixed list:
// each item is preceded by its 4-byte big-endian length, and the whole
// list is concatenated with no separator otherwise. This is the chain's
// own minimal substitute for RLP, used everywhere the domain types need a
// stable binary encoding to hash or sign over.
//
// No general-purpose RLP library with a demonstrated API surfaced anywhere
// in the retrieval pack, so this is hand-rolled rather than imported — see
// DESIGN.md.
func ListEncode(items [][]byte) []byte {
	total := 0
	for _, it := range items {
		total += 4 + len(it)
	}
	out := make([]byte, 0, total)
	var lenBuf [4]byte
	for _, it := range items {
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(it)))
		out = append(out, lenBuf[:]...)
		out = append(out, it...)
	}
	return out
}

// ListEncodeWithSignature list-encodes items and appends the recoverable
// signature's (V, R, S) components as three additional list entries —
// the "list-encode plus optionally append (v, r, s)" helper the signing
// path needs when a signature must be folded into the same encoding as the
// unsigned fields.
func ListEncodeWithSignature(items [][]byte, sig RecoverableSignature) []byte {
	full := make([][]byte, 0, len(items)+3)
	full = append(full, items...)
	full = append(full, []byte{sig.V}, sig.R[:], sig.S[:])
	return ListEncode(full)
}

// DecodeList reverses ListEncode, splitting the buffer back into its
// original items.
func DecodeList(data []byte) ([][]byte, error) {
	var items [][]byte
	for len(data) > 0 {
		if len(data) < 4 {
			return nil, ErrInvalidConversion
		}
		n := binary.BigEndian.Uint32(data[:4])
		data = data[4:]
		if uint64(len(data)) < uint64(n) {
			return nil, ErrInvalidConversion
		}
		items = append(items, data[:n])
		data = data[n:]
	}
	return items, nil
}
