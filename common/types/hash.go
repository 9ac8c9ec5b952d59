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

package types

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// HashLength is the number of bytes in a Hash (H256).
const HashLength = 32

// Hash is a 32-byte digest.
type Hash [HashLength]byte

// ZeroHash is the all-zero hash, used as the genesis parent hash.
var ZeroHash = Hash{}

// BytesToHash right-aligns b into a Hash, truncating from the left if b is
// longer than HashLength.
func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

// Bytes returns h's contents as a newly allocated slice.
func (h Hash) Bytes() []byte {
	return h[:]
}

// Hex returns h's lowercase 0x-prefixed hex encoding.
func (h Hash) Hex() string {
	return "0x" + hex.EncodeToString(h[:])
}

// String implements fmt.Stringer.
func (h Hash) String() string {
	return h.Hex()
}

// IsZero reports whether h is the zero hash.
func (h Hash) IsZero() bool {
	return h == ZeroHash
}

// HashFromHex parses a 0x-prefixed hex string into a Hash.
func HashFromHex(s string) (Hash, error) {
	raw, err := decodeHexPrefixed(s)
	if err != nil {
		return Hash{}, err
	}
	if len(raw) != HashLength {
		return Hash{}, fmt.Errorf("invalid hash length: got %d, want %d", len(raw), HashLength)
	}
	var h Hash
	copy(h[:], raw)
	return h, nil
}

// MustHashFromHex is like HashFromHex but panics on error.
func MustHashFromHex(s string) Hash {
	h, err := HashFromHex(s)
	if err != nil {
		panic(err)
	}
	return h
}

// MarshalJSON implements json.Marshaler.
func (h Hash) MarshalJSON() ([]byte, error) {
	return []byte(`"` + h.Hex() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *Hash) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := HashFromHex(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
