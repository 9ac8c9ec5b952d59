// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package chain

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/eduledger/chain/common/crypto"
	"github.com/eduledger/chain/common/transaction"
	"github.com/eduledger/chain/common/types"
	"github.com/eduledger/chain/modules/kv"
	pkgerrors "github.com/eduledger/chain/pkg/errors"
)

func newTestChain(t *testing.T) *Chain {
	t.Helper()
	c, err := New(kv.NewMemStore())
	require.NoError(t, err)
	return c
}

func TestGenesisIsSoleBlockAtStartup(t *testing.T) {
	c := newTestChain(t)
	cur := c.CurrentBlock()
	require.Equal(t, uint64(0), cur.Number)
}

func TestBalanceTransferScenario(t *testing.T) {
	c := newTestChain(t)
	a := types.MustAddressFromHex("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	b := types.MustAddressFromHex("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	require.NoError(t, c.SeedAccount(a, uint256.NewInt(100)))

	hash, err := c.SendTransaction(a, &b, uint256.NewInt(10), nil)
	require.NoError(t, err)

	require.NoError(t, c.Seal())

	balA, err := c.GetBalance(a)
	require.NoError(t, err)
	require.Equal(t, uint64(90), balA.Uint64())

	balB, err := c.GetBalance(b)
	require.NoError(t, err)
	require.Equal(t, uint64(10), balB.Uint64())

	r, ok := c.GetTransactionReceipt(hash)
	require.True(t, ok)
	require.Equal(t, uint64(1), *r.BlockNumber)
}

func TestRawTransferRoundTripScenario(t *testing.T) {
	c := newTestChain(t)
	sk, pub, err := crypto.Keypair()
	require.NoError(t, err)
	a := crypto.AddressOf(pub)
	b := types.MustAddressFromHex("0xcccccccccccccccccccccccccccccccccccccccc")

	require.NoError(t, c.SeedAccount(a, uint256.NewInt(100)))

	tx := transaction.New(a, &b, uint256.NewInt(10), uint256.NewInt(0), nil)
	signed, err := transaction.Sign(tx, sk)
	require.NoError(t, err)

	_, err = c.SendRawTransaction(signed.Encode())
	require.NoError(t, err)
	require.NoError(t, c.Seal())

	balB, err := c.GetBalance(b)
	require.NoError(t, err)
	require.Equal(t, uint64(10), balB.Uint64())
}

func TestInvalidSignatureRejected(t *testing.T) {
	c := newTestChain(t)
	sk, pub, err := crypto.Keypair()
	require.NoError(t, err)
	a := crypto.AddressOf(pub)
	b := types.MustAddressFromHex("0xdddddddddddddddddddddddddddddddddddddddd")

	tx := transaction.New(a, &b, uint256.NewInt(1), uint256.NewInt(0), nil)
	signed, err := transaction.Sign(tx, sk)
	require.NoError(t, err)
	signed.S[0] ^= 0xff

	_, err = c.SendRawTransaction(signed.Encode())
	require.ErrorIs(t, err, pkgerrors.ErrTransactionNotVerified)
}

func TestContractDeploymentScenario(t *testing.T) {
	c := newTestChain(t)
	a := types.MustAddressFromHex("0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	require.NoError(t, c.SeedAccount(a, uint256.NewInt(0)))

	code := []byte{0x00, 0x01}
	_, err := c.SendTransaction(a, nil, nil, code)
	require.NoError(t, err)
	require.NoError(t, c.Seal())

	block := c.CurrentBlock()
	require.Len(t, block.Transactions, 1)

	r, ok := c.GetTransactionReceipt(block.Transactions[0].Hash())
	require.True(t, ok)
	require.NotNil(t, r.ContractAddress)

	gotCode, err := c.GetCode(*r.ContractAddress)
	require.NoError(t, err)
	require.Equal(t, code, gotCode)
}

func TestBlockMonotonicityUnderLoad(t *testing.T) {
	c := newTestChain(t)
	a := types.MustAddressFromHex("0xf0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0")
	b := types.MustAddressFromHex("0xf1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1f1")
	require.NoError(t, c.SeedAccount(a, uint256.NewInt(1000)))

	for i := 0; i < 5; i++ {
		_, err := c.SendTransaction(a, &b, uint256.NewInt(1), nil)
		require.NoError(t, err)
	}
	require.NoError(t, c.Seal())

	block := c.CurrentBlock()
	require.Equal(t, uint64(1), block.Number)
	require.Len(t, block.Transactions, 5)

	count, err := c.GetTransactionCount(a)
	require.NoError(t, err)
	require.Equal(t, uint64(5), count)
}

func TestRootHashSensitivityScenario(t *testing.T) {
	c := newTestChain(t)
	a := types.MustAddressFromHex("0xf2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2f2")

	before := c.trie.RootHash()
	require.NoError(t, c.SeedAccount(a, uint256.NewInt(5)))
	after := c.trie.RootHash()
	require.NotEqual(t, before, after)
}
