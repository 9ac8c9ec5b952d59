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
	"strings"
)

// Bytes is an opaque byte string whose wire form is 0x-prefixed hex.
// Unlike Address/Hash it has no fixed length.
type Bytes []byte

// Hex returns b's lowercase 0x-prefixed hex encoding.
func (b Bytes) Hex() string {
	return "0x" + hex.EncodeToString(b)
}

// String implements fmt.Stringer.
func (b Bytes) String() string {
	return b.Hex()
}

// BytesFromHex parses a 0x-prefixed hex string into Bytes. An empty "0x"
// decodes to an empty, non-nil slice.
func BytesFromHex(s string) (Bytes, error) {
	raw, err := decodeHexPrefixed(s)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		raw = []byte{}
	}
	return Bytes(raw), nil
}

// MarshalJSON implements json.Marshaler.
func (b Bytes) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.Hex() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := BytesFromHex(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
