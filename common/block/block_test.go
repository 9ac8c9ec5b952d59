// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package block

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/eduledger/chain/common/transaction"
	"github.com/eduledger/chain/common/types"
)

func TestGenesisBlock(t *testing.T) {
	g := Genesis()
	require.Equal(t, uint64(0), g.Number)
	require.Equal(t, types.ZeroHash, g.ParentHash)
	require.Empty(t, g.Transactions)
	require.False(t, g.Hash().IsZero())
}

func TestBlockParentLinkage(t *testing.T) {
	g := Genesis()
	child := New(1, g.Hash(), nil, types.ZeroHash, types.ZeroHash)

	require.Equal(t, g.Hash(), child.ParentHash)
	require.Equal(t, g.Number+1, child.Number)
}

func TestBlockHashFrozenAtConstruction(t *testing.T) {
	b := New(1, types.ZeroHash, nil, types.ZeroHash, types.ZeroHash)
	h1 := b.Hash()
	h2 := b.Hash()
	require.Equal(t, h1, h2)
}

func TestTransactionsRootChangesWithContent(t *testing.T) {
	to := types.MustAddressFromHex("0x1111111111111111111111111111111111111111")
	tx1 := transaction.New(types.ZeroAddress, &to, uint256.NewInt(1), uint256.NewInt(0), nil)
	tx2 := transaction.New(types.ZeroAddress, &to, uint256.NewInt(2), uint256.NewInt(1), nil)

	rootEmpty := TransactionsRootOf(nil)
	root1 := TransactionsRootOf([]*transaction.Transaction{tx1})
	root2 := TransactionsRootOf([]*transaction.Transaction{tx1, tx2})

	require.Equal(t, types.ZeroHash, rootEmpty)
	require.NotEqual(t, root1, root2)
	require.NotEqual(t, rootEmpty, root1)
}
