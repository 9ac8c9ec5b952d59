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
	"strings"

	"github.com/holiman/uint256"
)

// U256 is the wire form of a u256 value: 0x-prefixed hex, same discipline
// as every other numeric field. It wraps *uint256.Int for arithmetic.
type U256 struct {
	*uint256.Int
}

// NewU256 wraps v (nil becomes zero).
func NewU256(v *uint256.Int) U256 {
	if v == nil {
		v = new(uint256.Int)
	}
	return U256{v}
}

// MarshalJSON implements json.Marshaler.
func (u U256) MarshalJSON() ([]byte, error) {
	v := u.Int
	if v == nil {
		v = new(uint256.Int)
	}
	return []byte(`"` + v.Hex() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *U256) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" {
		u.Int = new(uint256.Int)
		return nil
	}
	v, err := uint256.FromHex(s)
	if err != nil {
		return err
	}
	u.Int = v
	return nil
}
