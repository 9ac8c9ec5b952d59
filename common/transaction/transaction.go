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

// Package transaction defines the unsigned Transaction, the signed
// envelope wrapping it, and the Receipt produced once it executes.
package transaction

import (
	"github.com/holiman/uint256"

	"github.com/eduledger/chain/common/crypto"
	"github.com/eduledger/chain/common/types"
)

// Kind classifies a transaction by its (to, data) shape.
type Kind int

const (
	// KindInvalid marks a (to, data) shape with no defined effect.
	KindInvalid Kind = iota
	// KindValueTransfer is (Some to, None data).
	KindValueTransfer
	// KindDeployment is (None to, Some data).
	KindDeployment
	// KindCall is (Some to, Some data).
	KindCall
)

// Non-economic sentinel values for gas/gas_price: transported on the wire,
// never charged against an account, per the gas/fee Non-goal.
const (
	SentinelGas      uint64 = 21000
	SentinelGasPrice uint64 = 1
)

// Transaction is the unsigned transfer/deployment/call request.
type Transaction struct {
	From     types.Address
	To       *types.Address
	Value    *uint256.Int
	Nonce    *uint256.Int
	Data     []byte
	Gas      uint64
	GasPrice *uint256.Int
	hash     *types.Hash
}

// New constructs a Transaction, immediately computing and storing its hash.
// Gas and GasPrice are populated with the fixed, non-economic sentinel
// values; they are transported but never charged (see the gas/fee Non-goal).
func New(from types.Address, to *types.Address, value *uint256.Int, nonce *uint256.Int, data []byte) *Transaction {
	if value == nil {
		value = new(uint256.Int)
	}
	if nonce == nil {
		nonce = new(uint256.Int)
	}
	tx := &Transaction{
		From:     from,
		To:       to,
		Value:    value,
		Nonce:    nonce,
		Data:     data,
		Gas:      SentinelGas,
		GasPrice: uint256.NewInt(SentinelGasPrice),
	}
	h := crypto.Hash(tx.encodeUnhashed())
	tx.hash = &h
	return tx
}

// Kind classifies the transaction by its (to, data) shape.
func (tx *Transaction) Kind() Kind {
	hasTo := tx.To != nil
	hasData := len(tx.Data) > 0
	switch {
	case hasTo && !hasData:
		return KindValueTransfer
	case !hasTo && hasData:
		return KindDeployment
	case hasTo && hasData:
		return KindCall
	default:
		return KindInvalid
	}
}

// Hash returns the transaction's identity hash, computed once at
// construction time and frozen thereafter.
func (tx *Transaction) Hash() types.Hash {
	if tx.hash == nil {
		// Only reachable for a Transaction built by hand (e.g. decoded)
		// without going through New; recompute rather than panic.
		h := crypto.Hash(tx.encodeUnhashed())
		tx.hash = &h
	}
	return *tx.hash
}

// encodeUnhashed list-encodes every field except the hash itself — this is
// exactly the "binary_encoding(self with hash=None)" spec'd for hashing.
func (tx *Transaction) encodeUnhashed() []byte {
	to := []byte{}
	if tx.To != nil {
		to = tx.To.Bytes()
	}
	var gasBuf [8]byte
	putUint64(gasBuf[:], tx.Gas)

	return crypto.ListEncode([][]byte{
		tx.From.Bytes(),
		to,
		tx.Value.Bytes(),
		tx.Nonce.Bytes(),
		tx.Data,
		gasBuf[:],
		tx.GasPrice.Bytes(),
	})
}

// Encode renders the full binary encoding used for signing and for
// SignedTransaction.raw_transaction. It is the same as encodeUnhashed:
// the hash is derived, never itself encoded, so there is nothing to
// exclude besides the already-absent field.
func (tx *Transaction) Encode() []byte {
	return tx.encodeUnhashed()
}

// Decode parses the binary form produced by Encode back into a Transaction,
// recomputing (not trusting) the hash.
func Decode(data []byte) (*Transaction, error) {
	items, err := crypto.DecodeList(data)
	if err != nil {
		return nil, err
	}
	if len(items) != 7 {
		return nil, crypto.ErrInvalidConversion
	}

	tx := &Transaction{
		From:     types.BytesToAddress(items[0]),
		Value:    new(uint256.Int).SetBytes(items[2]),
		Nonce:    new(uint256.Int).SetBytes(items[3]),
		Data:     items[4],
		GasPrice: new(uint256.Int).SetBytes(items[6]),
	}
	if len(items[1]) > 0 {
		to := types.BytesToAddress(items[1])
		tx.To = &to
	}
	tx.Gas = getUint64(items[5])

	h := crypto.Hash(tx.encodeUnhashed())
	tx.hash = &h
	return tx, nil
}

func putUint64(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

func getUint64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}
