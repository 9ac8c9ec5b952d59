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

package transaction

import (
	"github.com/eduledger/chain/common/crypto"
	"github.com/eduledger/chain/common/types"
)

// SignedTransaction wraps a Transaction's binary encoding with a
// recoverable signature over it. Its own hash (TransactionHash) is the hash
// of the signature bytes, distinct from the wrapped Transaction's own Hash.
type SignedTransaction struct {
	V               byte
	R               types.Hash
	S               types.Hash
	RawTransaction  types.Bytes
	TransactionHash types.Hash
}

// Sign binary-encodes tx and produces a SignedTransaction: a recoverable
// ECDSA signature over the encoding, plus the hash of that signature.
func Sign(tx *Transaction, sk *crypto.SecretKey) (*SignedTransaction, error) {
	raw := tx.Encode()
	sig, err := crypto.SignRecoverable(raw, sk)
	if err != nil {
		return nil, err
	}
	sigBytes := sig.Bytes()
	return &SignedTransaction{
		V:               sig.V,
		R:               sig.R,
		S:               sig.S,
		RawTransaction:  raw,
		TransactionHash: crypto.Hash(sigBytes),
	}, nil
}

func (st *SignedTransaction) signature() crypto.RecoverableSignature {
	return crypto.RecoverableSignature{V: st.V, R: [32]byte(st.R), S: [32]byte(st.S)}
}

// RecoverAddress recovers and returns the signer's address from st's
// signature over its raw transaction bytes.
func (st *SignedTransaction) RecoverAddress() (types.Address, error) {
	pub, err := crypto.RecoverPublicKey(st.RawTransaction, st.signature())
	if err != nil {
		return types.Address{}, err
	}
	return crypto.AddressOf(pub), nil
}

// Verify decodes the embedded transaction and checks that recovering the
// signer from st's signature over the raw bytes yields the same address the
// transaction claims as its From. Comparing against an independently-known
// expected signer is required here: recovering a key and then re-deriving
// its own address from it always satisfies the verification equation for
// the exact (r,s) it came from, even a tampered s, so that self-check alone
// proves nothing.
func (st *SignedTransaction) Verify() bool {
	tx, err := st.Transaction()
	if err != nil {
		return false
	}
	return crypto.VerifyRecoverable(st.RawTransaction, st.signature(), tx.From)
}

// Transaction decodes the embedded raw transaction bytes.
func (st *SignedTransaction) Transaction() (*Transaction, error) {
	return Decode(st.RawTransaction)
}

// Encode renders the full binary encoding of the signed envelope, used as
// the wire/storage form consumed by eth_sendRawTransaction.
func (st *SignedTransaction) Encode() []byte {
	return crypto.ListEncode([][]byte{
		{st.V},
		st.R.Bytes(),
		st.S.Bytes(),
		st.RawTransaction,
		st.TransactionHash.Bytes(),
	})
}

// DecodeSigned parses the binary encoding produced by Encode.
func DecodeSigned(data []byte) (*SignedTransaction, error) {
	items, err := crypto.DecodeList(data)
	if err != nil {
		return nil, err
	}
	if len(items) != 5 || len(items[0]) != 1 {
		return nil, crypto.ErrInvalidConversion
	}
	return &SignedTransaction{
		V:               items[0][0],
		R:               types.BytesToHash(items[1]),
		S:               types.BytesToHash(items[2]),
		RawTransaction:  items[3],
		TransactionHash: types.BytesToHash(items[4]),
	}, nil
}
