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
	"sync"

	"github.com/holiman/uint256"
)

// BuilderPool provides pooled, reusable Transaction objects. The admission
// path does not draw from it: the chain engine builds each admitted
// Transaction with New.
var BuilderPool = &sync.Pool{
	New: func() interface{} {
		return &Transaction{
			Value:    new(uint256.Int),
			Nonce:    new(uint256.Int),
			GasPrice: new(uint256.Int),
		}
	},
}

// GetBuilder gets a zeroed Transaction from the pool.
func GetBuilder() *Transaction {
	return BuilderPool.Get().(*Transaction)
}

// PutBuilder returns a Transaction to the pool after clearing it. Callers
// must not retain tx or anything derived from its hash after this call.
func PutBuilder(tx *Transaction) {
	if tx == nil {
		return
	}
	tx.From = [20]byte{}
	tx.To = nil
	tx.Value.Clear()
	tx.Nonce.Clear()
	tx.Data = nil
	tx.Gas = 0
	tx.GasPrice.Clear()
	tx.hash = nil
	BuilderPool.Put(tx)
}

// Uint256Pool provides pooled uint256.Int scratch values for transaction
// encoding and balance arithmetic.
var Uint256Pool = &sync.Pool{
	New: func() interface{} {
		return new(uint256.Int)
	},
}

// GetUint256 gets a zeroed uint256.Int from the pool.
func GetUint256() *uint256.Int {
	return Uint256Pool.Get().(*uint256.Int)
}

// PutUint256 returns a uint256.Int to the pool.
func PutUint256(v *uint256.Int) {
	if v != nil {
		v.Clear()
		Uint256Pool.Put(v)
	}
}

// ByteBufferPool provides pooled byte buffers for temporary use during
// serialization.
var ByteBufferPool = &sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 256)
		return &b
	},
}

// GetByteBuffer gets a byte buffer from the pool.
func GetByteBuffer() *[]byte {
	return ByteBufferPool.Get().(*[]byte)
}

// PutByteBuffer returns a byte buffer to the pool.
func PutByteBuffer(b *[]byte) {
	if b != nil {
		*b = (*b)[:0]
		ByteBufferPool.Put(b)
	}
}
