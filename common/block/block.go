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

// Package block defines the sealed Block and the WorldState echo of the
// account trie's root at the chain head.
package block

import (
	"github.com/eduledger/chain/common/crypto"
	"github.com/eduledger/chain/common/transaction"
	"github.com/eduledger/chain/common/types"
)

// Block is a sealed batch of transactions, hash-linked to its parent.
type Block struct {
	Number           uint64
	ParentHash       types.Hash
	Transactions     []*transaction.Transaction
	TransactionsRoot types.Hash
	StateRoot        types.Hash
	hash             *types.Hash
}

// Genesis returns block 0: no transactions, zero parent hash, zero roots.
// It is the sole element of the chain at startup.
func Genesis() *Block {
	b := &Block{
		Number:     0,
		ParentHash: types.ZeroHash,
	}
	h := crypto.Hash(b.encodeUnhashed())
	b.hash = &h
	return b
}

// New seals a block from a batch of already-executed transactions.
// Number, ParentHash and the two roots must already have been computed by
// the caller (the chain engine, during sealing); New only assigns the
// block's own hash, exactly once.
func New(number uint64, parentHash types.Hash, txs []*transaction.Transaction, txRoot, stateRoot types.Hash) *Block {
	b := &Block{
		Number:           number,
		ParentHash:       parentHash,
		Transactions:     txs,
		TransactionsRoot: txRoot,
		StateRoot:        stateRoot,
	}
	h := crypto.Hash(b.encodeUnhashed())
	b.hash = &h
	return b
}

// Hash returns the block's identity hash, frozen at construction.
func (b *Block) Hash() types.Hash {
	if b.hash == nil {
		h := crypto.Hash(b.encodeUnhashed())
		b.hash = &h
	}
	return *b.hash
}

func (b *Block) encodeUnhashed() []byte {
	var numberBuf [8]byte
	putUint64(numberBuf[:], b.Number)

	txHashes := make([][]byte, len(b.Transactions))
	for i, tx := range b.Transactions {
		h := tx.Hash()
		txHashes[i] = h.Bytes()
	}

	return crypto.ListEncode([][]byte{
		numberBuf[:],
		b.ParentHash.Bytes(),
		crypto.ListEncode(txHashes),
		b.TransactionsRoot.Bytes(),
		b.StateRoot.Bytes(),
	})
}

func putUint64(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

// TransactionsRootOf computes the root hash of a trie built by inserting
// each transaction's hash mapped to its binary encoding — here realized as
// a single digest folding every (hash, encoding) pair in order, the same
// "flat authenticated structure" the account trie uses for its own root
// (see modules/trie for why a full Merkle-Patricia trie is out of scope).
func TransactionsRootOf(txs []*transaction.Transaction) types.Hash {
	if len(txs) == 0 {
		return types.ZeroHash
	}
	parts := make([][]byte, 0, len(txs)*2)
	for _, tx := range txs {
		h := tx.Hash()
		parts = append(parts, h.Bytes(), tx.Encode())
	}
	return crypto.Hash(crypto.ListEncode(parts))
}
