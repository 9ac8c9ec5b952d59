// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package account

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestRecordEncodeDecodeRoundTrip(t *testing.T) {
	r := &Record{
		Nonce:    7,
		Balance:  uint256.NewInt(12345),
		CodeHash: []byte{0x00, 0x01, 0x02},
	}

	decoded, err := DecodeRecord(r.Encode())
	require.NoError(t, err)
	require.Equal(t, r.Nonce, decoded.Nonce)
	require.True(t, r.Balance.Eq(decoded.Balance))
	require.Equal(t, r.CodeHash, decoded.CodeHash)
}

func TestRecordEncodeDecodeEmptyAccount(t *testing.T) {
	r := NewEmptyRecord()
	decoded, err := DecodeRecord(r.Encode())
	require.NoError(t, err)
	require.False(t, decoded.IsContract())
	require.True(t, decoded.Balance.IsZero())
}

func TestRecordIsContract(t *testing.T) {
	require.False(t, NewEmptyRecord().IsContract())
	require.True(t, NewContractRecord([]byte{0x01}).IsContract())
}

func TestRecordCloneIndependence(t *testing.T) {
	r := &Record{Nonce: 1, Balance: uint256.NewInt(100), CodeHash: []byte{0xff}}
	c := r.Clone()
	c.Nonce = 2
	c.Balance.SetUint64(200)
	c.CodeHash[0] = 0x00

	require.Equal(t, uint64(1), r.Nonce)
	require.Equal(t, uint64(100), r.Balance.Uint64())
	require.Equal(t, byte(0xff), r.CodeHash[0])
}

func TestDecodeRecordRejectsTruncated(t *testing.T) {
	_, err := DecodeRecord([]byte{0x01, 0x02})
	require.Error(t, err)
}
