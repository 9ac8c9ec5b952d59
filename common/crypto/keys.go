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

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/eduledger/chain/common/types"
)

// SecretKey is a secp256k1 private key.
type SecretKey = secp256k1.PrivateKey

// PublicKey is a secp256k1 public key.
type PublicKey = secp256k1.PublicKey

// Keypair generates a new secp256k1 keypair using a cryptographically
// secure RNG.
func Keypair() (*SecretKey, *PublicKey, error) {
	sk, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, nil, err
	}
	return sk, sk.PubKey(), nil
}

// SecretKeyFromBytes parses a 32-byte scalar into a SecretKey.
func SecretKeyFromBytes(b []byte) (*SecretKey, error) {
	if len(b) != 32 {
		return nil, ErrInvalidConversion
	}
	return secp256k1.PrivKeyFromBytes(b), nil
}

// ParsePublicKey parses a compressed or uncompressed SEC1-encoded point.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, ErrInvalidConversion
	}
	return pub, nil
}

// AddressOf derives the account address from a public key: the last
// AddressLength bytes of Hash(uncompressed_public_key[1:]) — the leading
// 0x04 format byte is dropped before hashing.
func AddressOf(pub *PublicKey) types.Address {
	uncompressed := pub.SerializeUncompressed()
	h := Hash(uncompressed[1:])
	return types.BytesToAddress(h[:])
}
