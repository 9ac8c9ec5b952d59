// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package trie

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/eduledger/chain/common/types"
	"github.com/eduledger/chain/modules/kv"
	pkgerrors "github.com/eduledger/chain/pkg/errors"
)

func newTestTrie(t *testing.T) *AccountTrie {
	t.Helper()
	tr, err := New(kv.NewMemStore())
	require.NoError(t, err)
	return tr
}

func TestGetUnknownAccountFails(t *testing.T) {
	tr := newTestTrie(t)
	addr := types.MustAddressFromHex("0x1111111111111111111111111111111111111111")

	_, err := tr.Get(addr)
	require.ErrorIs(t, err, pkgerrors.ErrAccountNotFound)
}

func TestAddEmptyAccountIsIdempotent(t *testing.T) {
	tr := newTestTrie(t)
	addr := types.MustAddressFromHex("0x2222222222222222222222222222222222222222")

	created, err := tr.AddEmptyAccount(addr)
	require.NoError(t, err)
	require.True(t, created)

	createdAgain, err := tr.AddEmptyAccount(addr)
	require.NoError(t, err)
	require.False(t, createdAgain)
}

func TestBalanceAddSubAndTransfer(t *testing.T) {
	tr := newTestTrie(t)
	a := types.MustAddressFromHex("0x3333333333333333333333333333333333333333")
	b := types.MustAddressFromHex("0x4444444444444444444444444444444444444444")

	_, err := tr.AddEmptyAccount(a)
	require.NoError(t, err)
	_, err = tr.AddEmptyAccount(b)
	require.NoError(t, err)

	require.NoError(t, tr.AddAccountBalance(a, uint256.NewInt(100)))
	require.NoError(t, tr.Transfer(a, b, uint256.NewInt(10)))

	recA, err := tr.Get(a)
	require.NoError(t, err)
	require.Equal(t, uint64(90), recA.Balance.Uint64())

	recB, err := tr.Get(b)
	require.NoError(t, err)
	require.Equal(t, uint64(10), recB.Balance.Uint64())
}

func TestSubtractSaturatesAtZero(t *testing.T) {
	tr := newTestTrie(t)
	a := types.MustAddressFromHex("0x5555555555555555555555555555555555555555")
	_, err := tr.AddEmptyAccount(a)
	require.NoError(t, err)

	require.NoError(t, tr.SubAccountBalance(a, uint256.NewInt(50)))
	rec, err := tr.Get(a)
	require.NoError(t, err)
	require.True(t, rec.Balance.IsZero())
}

func TestAddSaturatesAtMaxUint256(t *testing.T) {
	tr := newTestTrie(t)
	a := types.MustAddressFromHex("0x6666666666666666666666666666666666666666")
	_, err := tr.AddEmptyAccount(a)
	require.NoError(t, err)

	max := new(uint256.Int).Not(new(uint256.Int))
	require.NoError(t, tr.AddAccountBalance(a, max))
	require.NoError(t, tr.AddAccountBalance(a, uint256.NewInt(1)))

	rec, err := tr.Get(a)
	require.NoError(t, err)
	require.True(t, rec.Balance.Eq(max))
}

func TestIncrementNonce(t *testing.T) {
	tr := newTestTrie(t)
	a := types.MustAddressFromHex("0x7777777777777777777777777777777777777777")
	_, err := tr.AddEmptyAccount(a)
	require.NoError(t, err)

	n, err := tr.IncrementNonce(a)
	require.NoError(t, err)
	require.Equal(t, uint64(1), n)

	n, err = tr.IncrementNonce(a)
	require.NoError(t, err)
	require.Equal(t, uint64(2), n)
}

func TestAddContractAccountDerivesAddressFromOwnerNonce(t *testing.T) {
	tr := newTestTrie(t)
	owner := types.MustAddressFromHex("0x8888888888888888888888888888888888888888")
	_, err := tr.AddEmptyAccount(owner)
	require.NoError(t, err)

	contractAddr, err := tr.AddContractAccount(owner, []byte{0x60, 0x60})
	require.NoError(t, err)
	require.False(t, contractAddr.IsZero())

	rec, err := tr.Get(contractAddr)
	require.NoError(t, err)
	require.True(t, rec.IsContract())

	ownerRec, err := tr.Get(owner)
	require.NoError(t, err)
	require.Equal(t, uint64(0), ownerRec.Nonce)
}

func TestRootHashChangesOnDistinctUpsert(t *testing.T) {
	tr := newTestTrie(t)
	a := types.MustAddressFromHex("0x9999999999999999999999999999999999999999")

	r0 := tr.RootHash()
	_, err := tr.AddEmptyAccount(a)
	require.NoError(t, err)
	r1 := tr.RootHash()
	require.NotEqual(t, r0, r1)

	require.NoError(t, tr.AddAccountBalance(a, uint256.NewInt(5)))
	r2 := tr.RootHash()
	require.NotEqual(t, r1, r2)
}
