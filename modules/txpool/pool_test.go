// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package txpool

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/eduledger/chain/common/transaction"
	"github.com/eduledger/chain/common/types"
)

func newTx(t *testing.T, nonce uint64) *transaction.Transaction {
	t.Helper()
	to := types.MustAddressFromHex("0x1111111111111111111111111111111111111111")
	return transaction.New(types.ZeroAddress, &to, uint256.NewInt(1), uint256.NewInt(nonce), nil)
}

func TestAdmitAndDrainFIFOOrder(t *testing.T) {
	p := New()
	tx1 := newTx(t, 0)
	tx2 := newTx(t, 1)

	p.Admit(tx1)
	p.Admit(tx2)
	require.Equal(t, 2, p.Len())

	batch := p.Drain()
	require.Equal(t, []*transaction.Transaction{tx1, tx2}, batch)
	require.Equal(t, 0, p.Len())
}

func TestMarkRawSeenRejectsDuplicate(t *testing.T) {
	p := New()
	h := types.MustHashFromHex("0x0000000000000000000000000000000000000000000000000000000000000001")

	require.True(t, p.MarkRawSeen(h))
	require.False(t, p.MarkRawSeen(h))
}

func TestRequeuePreservesOrderAtFront(t *testing.T) {
	p := New()
	tx1 := newTx(t, 0)
	tx2 := newTx(t, 1)
	tx3 := newTx(t, 2)

	p.Admit(tx3)
	p.Requeue([]*transaction.Transaction{tx1, tx2})

	batch := p.Drain()
	require.Equal(t, []*transaction.Transaction{tx1, tx2, tx3}, batch)
}

func TestReceiptPendingThenFinalized(t *testing.T) {
	p := New()
	tx := newTx(t, 0)
	p.Admit(tx)

	r, ok := p.Receipt(tx.Hash())
	require.True(t, ok)
	require.Nil(t, r.BlockHash)

	blockHash := types.MustHashFromHex("0x0000000000000000000000000000000000000000000000000000000000000002")
	p.Finalize(tx.Hash(), blockHash, 1)

	r, ok = p.Receipt(tx.Hash())
	require.True(t, ok)
	require.Equal(t, blockHash, *r.BlockHash)
	require.Equal(t, uint64(1), *r.BlockNumber)
}
