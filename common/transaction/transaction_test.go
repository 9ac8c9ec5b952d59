// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package transaction

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/eduledger/chain/common/crypto"
	"github.com/eduledger/chain/common/types"
)

func TestNewTransactionHashNeverNil(t *testing.T) {
	to := types.MustAddressFromHex("0x1111111111111111111111111111111111111111")
	tx := New(types.ZeroAddress, &to, uint256.NewInt(10), uint256.NewInt(1), nil)
	require.False(t, tx.Hash().IsZero())
}

func TestTransactionKindClassification(t *testing.T) {
	to := types.MustAddressFromHex("0x1111111111111111111111111111111111111111")

	transfer := New(types.ZeroAddress, &to, uint256.NewInt(1), uint256.NewInt(0), nil)
	require.Equal(t, KindValueTransfer, transfer.Kind())

	deploy := New(types.ZeroAddress, nil, uint256.NewInt(0), uint256.NewInt(0), []byte{0x00, 0x01})
	require.Equal(t, KindDeployment, deploy.Kind())

	call := New(types.ZeroAddress, &to, uint256.NewInt(0), uint256.NewInt(0), []byte{0x01})
	require.Equal(t, KindCall, call.Kind())

	invalid := New(types.ZeroAddress, nil, uint256.NewInt(0), uint256.NewInt(0), nil)
	require.Equal(t, KindInvalid, invalid.Kind())
}

func TestTransactionEncodeDecodeRoundTrip(t *testing.T) {
	to := types.MustAddressFromHex("0x2222222222222222222222222222222222222222")
	tx := New(types.ZeroAddress, &to, uint256.NewInt(42), uint256.NewInt(3), []byte("payload"))

	decoded, err := Decode(tx.Encode())
	require.NoError(t, err)
	require.Equal(t, tx.From, decoded.From)
	require.Equal(t, *tx.To, *decoded.To)
	require.True(t, tx.Value.Eq(decoded.Value))
	require.True(t, tx.Nonce.Eq(decoded.Nonce))
	require.Equal(t, tx.Data, decoded.Data)
	require.Equal(t, tx.Hash(), decoded.Hash())
}

func TestSignVerifyRecoverAddressRoundTrip(t *testing.T) {
	sk, pub, err := crypto.Keypair()
	require.NoError(t, err)
	from := crypto.AddressOf(pub)

	to := types.MustAddressFromHex("0x3333333333333333333333333333333333333333")
	tx := New(from, &to, uint256.NewInt(10), uint256.NewInt(0), nil)

	signed, err := Sign(tx, sk)
	require.NoError(t, err)
	require.True(t, signed.Verify())

	recovered, err := signed.RecoverAddress()
	require.NoError(t, err)
	require.Equal(t, from, recovered)
}

func TestSignedTransactionHashDiffersFromTransactionHash(t *testing.T) {
	sk, pub, err := crypto.Keypair()
	require.NoError(t, err)
	from := crypto.AddressOf(pub)

	tx := New(from, nil, uint256.NewInt(0), uint256.NewInt(0), []byte{0x01})
	signed, err := Sign(tx, sk)
	require.NoError(t, err)

	require.NotEqual(t, tx.Hash(), signed.TransactionHash)
}

func TestVerifyFailsOnTamperedSignature(t *testing.T) {
	sk, pub, err := crypto.Keypair()
	require.NoError(t, err)
	from := crypto.AddressOf(pub)

	to := types.MustAddressFromHex("0x4444444444444444444444444444444444444444")
	tx := New(from, &to, uint256.NewInt(1), uint256.NewInt(0), nil)
	signed, err := Sign(tx, sk)
	require.NoError(t, err)

	signed.S[0] ^= 0xff
	require.False(t, signed.Verify())
}

func TestSignedTransactionEncodeDecodeRoundTrip(t *testing.T) {
	sk, pub, err := crypto.Keypair()
	require.NoError(t, err)
	from := crypto.AddressOf(pub)

	tx := New(from, nil, uint256.NewInt(0), uint256.NewInt(0), []byte{0xaa})
	signed, err := Sign(tx, sk)
	require.NoError(t, err)

	decoded, err := DecodeSigned(signed.Encode())
	require.NoError(t, err)
	require.Equal(t, signed.V, decoded.V)
	require.Equal(t, signed.R, decoded.R)
	require.Equal(t, signed.S, decoded.S)
	require.Equal(t, signed.TransactionHash, decoded.TransactionHash)
}

func TestReceiptFinalize(t *testing.T) {
	r := NewPendingReceipt(types.MustHashFromHex("0x0000000000000000000000000000000000000000000000000000000000000001"))
	require.Nil(t, r.BlockHash)
	require.Nil(t, r.BlockNumber)

	blockHash := types.MustHashFromHex("0x0000000000000000000000000000000000000000000000000000000000000002")
	r.Finalize(blockHash, 1)
	require.Equal(t, blockHash, *r.BlockHash)
	require.Equal(t, uint64(1), *r.BlockNumber)
}

func TestBuilderPoolReuse(t *testing.T) {
	tx := GetBuilder()
	tx.From = types.MustAddressFromHex("0x5555555555555555555555555555555555555555")
	PutBuilder(tx)

	reused := GetBuilder()
	require.True(t, reused.From.IsZero())
	PutBuilder(reused)
}
