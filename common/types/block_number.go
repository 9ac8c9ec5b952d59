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
	"fmt"
	"strconv"
	"strings"
)

// LatestBlockNumber is the sentinel value meaning "the current chain head".
const LatestBlockNumber uint64 = ^uint64(0)

// BlockNumber is a block height. On the wire it is the literal "latest" or
// 0x-prefixed hex; in memory it is a plain uint64, with LatestBlockNumber
// standing in for the "latest" literal until resolved against a chain head.
type BlockNumber uint64

// IsLatest reports whether n denotes the "latest" literal rather than a
// concrete height.
func (n BlockNumber) IsLatest() bool {
	return uint64(n) == LatestBlockNumber
}

// Uint64 returns n's numeric value. Callers must check IsLatest first.
func (n BlockNumber) Uint64() uint64 {
	return uint64(n)
}

// MarshalJSON implements json.Marshaler.
func (n BlockNumber) MarshalJSON() ([]byte, error) {
	if n.IsLatest() {
		return []byte(`"latest"`), nil
	}
	return []byte(`"0x` + strconv.FormatUint(uint64(n), 16) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *BlockNumber) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseBlockNumber(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// ParseBlockNumber parses the wire form of a block number parameter:
// the literal "latest", or a 0x-prefixed hex integer.
func ParseBlockNumber(s string) (BlockNumber, error) {
	if s == "latest" || s == "" {
		return BlockNumber(LatestBlockNumber), nil
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return 0, fmt.Errorf("invalid block number %q: missing 0x prefix", s)
	}
	v, err := strconv.ParseUint(s[2:], 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid block number %q: %w", s, err)
	}
	return BlockNumber(v), nil
}

// EncodeUint64 renders v as a 0x-prefixed hex string, the wire form used for
// every plain numeric RPC result (balances, nonces, block numbers).
func EncodeUint64(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}
