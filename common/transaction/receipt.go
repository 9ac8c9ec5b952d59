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

import "github.com/eduledger/chain/common/types"

// Receipt tracks a transaction from its admission to the pool through block
// finalization. BlockHash/BlockNumber are nil until the block containing the
// transaction is sealed; ContractAddress is populated only for a deployment
// transaction.
type Receipt struct {
	TransactionHash types.Hash
	BlockHash       *types.Hash
	BlockNumber     *uint64
	ContractAddress *types.Address
}

// NewPendingReceipt returns a pending receipt with no block fields set. The
// transaction pool creates it when a transaction is admitted, before the
// transaction is executed; sealing does not create receipts.
func NewPendingReceipt(txHash types.Hash) *Receipt {
	return &Receipt{TransactionHash: txHash}
}

// Finalize backfills the block-identifying fields once the block
// containing this receipt's transaction has been sealed.
func (r *Receipt) Finalize(blockHash types.Hash, blockNumber uint64) {
	r.BlockHash = &blockHash
	r.BlockNumber = &blockNumber
}
