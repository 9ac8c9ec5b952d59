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

// Package account defines the account record stored in the trie: balance,
// nonce and an optional code hash marking a contract account.
package account

import (
	"encoding/binary"

	"github.com/holiman/uint256"

	cherrors "github.com/eduledger/chain/pkg/errors"
)

// Record is the persisted representation of a single account.
//
// CodeHash is non-nil iff the account is a contract, per the
// "code_hash.is_some() iff the account is a contract" invariant.
type Record struct {
	Nonce    uint64
	Balance  *uint256.Int
	CodeHash []byte
}

// NewEmptyRecord returns a freshly created externally-owned account record:
// zero nonce, zero balance, no code.
func NewEmptyRecord() *Record {
	return &Record{
		Nonce:   0,
		Balance: new(uint256.Int),
	}
}

// NewContractRecord returns a record for a freshly deployed contract.
func NewContractRecord(codeHash []byte) *Record {
	return &Record{
		Nonce:    0,
		Balance:  new(uint256.Int),
		CodeHash: codeHash,
	}
}

// IsContract reports whether the record carries a code hash.
func (r *Record) IsContract() bool {
	return len(r.CodeHash) > 0
}

// Clone returns a deep copy so callers may mutate the balance/nonce of a
// cached record without corrupting the cache.
func (r *Record) Clone() *Record {
	c := &Record{Nonce: r.Nonce, Balance: new(uint256.Int)}
	if r.Balance != nil {
		c.Balance.Set(r.Balance)
	}
	if r.CodeHash != nil {
		c.CodeHash = append([]byte(nil), r.CodeHash...)
	}
	return c
}

// Encode renders the record into its flat binary storage form:
//
//	nonce(8 BE) | balance_len(1) | balance_bytes | code_len(2 BE) | code_hash
//
// balance_len/balance_bytes is the big-endian minimal encoding of Balance
// (at most 32 bytes); code_len is 0 when the account has no code.
func (r *Record) Encode() []byte {
	balanceBytes := r.Balance.Bytes()
	out := make([]byte, 0, 8+1+len(balanceBytes)+2+len(r.CodeHash))

	var nonceBuf [8]byte
	binary.BigEndian.PutUint64(nonceBuf[:], r.Nonce)
	out = append(out, nonceBuf[:]...)

	out = append(out, byte(len(balanceBytes)))
	out = append(out, balanceBytes...)

	var codeLenBuf [2]byte
	binary.BigEndian.PutUint16(codeLenBuf[:], uint16(len(r.CodeHash)))
	out = append(out, codeLenBuf[:]...)
	out = append(out, r.CodeHash...)

	return out
}

// DecodeRecord parses the flat binary form produced by Encode.
func DecodeRecord(data []byte) (*Record, error) {
	if len(data) < 8+1 {
		return nil, cherrors.Wrap(cherrors.ErrInvalidTransaction, "account record too short")
	}
	r := &Record{Balance: new(uint256.Int)}
	r.Nonce = binary.BigEndian.Uint64(data[:8])
	off := 8

	balanceLen := int(data[off])
	off++
	if off+balanceLen > len(data) {
		return nil, cherrors.Wrap(cherrors.ErrInvalidTransaction, "account record balance truncated")
	}
	r.Balance.SetBytes(data[off : off+balanceLen])
	off += balanceLen

	if off+2 > len(data) {
		return nil, cherrors.Wrap(cherrors.ErrInvalidTransaction, "account record code length truncated")
	}
	codeLen := int(binary.BigEndian.Uint16(data[off : off+2]))
	off += 2
	if off+codeLen > len(data) {
		return nil, cherrors.Wrap(cherrors.ErrInvalidTransaction, "account record code truncated")
	}
	if codeLen > 0 {
		r.CodeHash = append([]byte(nil), data[off:off+codeLen]...)
	}

	return r, nil
}
