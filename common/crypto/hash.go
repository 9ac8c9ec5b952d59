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

// Package crypto implements the chain's signing primitives: keypair
// generation, a 32-byte digest, recoverable ECDSA signatures over secp256k1,
// and address derivation from a public key.
package crypto

import (
	"golang.org/x/crypto/blake2s"

	"github.com/eduledger/chain/common/types"
)

// Hash computes the fixed 32-byte digest used everywhere the system needs
// a collision-resistant commitment: transaction/block hashing, address
// derivation, and the account trie's root.
func Hash(data []byte) types.Hash {
	return types.Hash(blake2s.Sum256(data))
}

// HashConcat hashes the concatenation of its arguments. The parts are
// copied into one buffer sized to their total length, then hashed.
func HashConcat(parts ...[]byte) types.Hash {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	buf := make([]byte, 0, total)
	for _, p := range parts {
		buf = append(buf, p...)
	}
	return Hash(buf)
}
