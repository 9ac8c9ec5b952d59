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

// Package txpool holds transactions awaiting sealing and the receipts of
// transactions already sealed.
package txpool

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/eduledger/chain/common/transaction"
	"github.com/eduledger/chain/common/types"
)

// TransactionPool is a FIFO mempool plus a receipt index, per spec.md's
// data model: an ordered queue of (already-nonced) Transaction values and a
// map from transaction hash to Receipt. Its lock is always acquired after
// the chain engine's own lock is already held — never independently from a
// call path that also needs the chain lock.
type TransactionPool struct {
	mu       sync.Mutex
	mempool  []*transaction.Transaction
	receipts map[types.Hash]*transaction.Receipt

	// seenRaw tracks signed-transaction hashes already admitted through
	// send_raw_transaction, so resubmitting identical signed bytes is
	// rejected before a second send_transaction round-trip reassigns it a
	// fresh nonce. spec.md is silent on replay; this supplements it.
	seenRaw mapset.Set[types.Hash]
}

// New returns an empty pool.
func New() *TransactionPool {
	return &TransactionPool{
		receipts: make(map[types.Hash]*transaction.Receipt),
		seenRaw:  mapset.NewSet[types.Hash](),
	}
}

// MarkRawSeen records signedTxHash as admitted and reports whether it was
// new. A false result means this exact signed transaction was already
// admitted once before.
func (p *TransactionPool) MarkRawSeen(signedTxHash types.Hash) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.seenRaw.Contains(signedTxHash) {
		return false
	}
	p.seenRaw.Add(signedTxHash)
	return true
}

// Admit appends tx to the back of the mempool and records a pending
// receipt for it, keyed by tx's own hash.
func (p *TransactionPool) Admit(tx *transaction.Transaction) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mempool = append(p.mempool, tx)
	p.receipts[tx.Hash()] = transaction.NewPendingReceipt(tx.Hash())
}

// Drain removes and returns every transaction currently queued, in FIFO
// order, leaving the pool empty. Called by the sealer at each tick.
func (p *TransactionPool) Drain() []*transaction.Transaction {
	p.mu.Lock()
	defer p.mu.Unlock()

	batch := p.mempool
	p.mempool = nil
	return batch
}

// Requeue puts txs back at the front of the mempool, preserving their
// relative order. Used when a sealing batch fails partway through and the
// failing transaction plus everything after it must be retried.
func (p *TransactionPool) Requeue(txs []*transaction.Transaction) {
	if len(txs) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mempool = append(txs, p.mempool...)
}

// Receipt returns the receipt for hash, if one exists (pending or final).
func (p *TransactionPool) Receipt(hash types.Hash) (*transaction.Receipt, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	r, ok := p.receipts[hash]
	return r, ok
}

// Finalize stamps the receipt for hash with the sealing block's identity.
// A no-op if no pending receipt was ever recorded for hash.
func (p *TransactionPool) Finalize(hash types.Hash, blockHash types.Hash, blockNumber uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if r, ok := p.receipts[hash]; ok {
		r.Finalize(blockHash, blockNumber)
	}
}

// Len reports how many transactions are currently queued.
func (p *TransactionPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.mempool)
}
