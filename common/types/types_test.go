// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressHexRoundTrip(t *testing.T) {
	a := MustAddressFromHex("0x000102030405060708090a0b0c0d0e0f10111213")
	parsed, err := AddressFromHex(a.Hex())
	require.NoError(t, err)
	require.Equal(t, a, parsed)
}

func TestAddressMissingPrefix(t *testing.T) {
	_, err := AddressFromHex("deadbeef")
	require.Error(t, err)
}

func TestAddressJSONRoundTrip(t *testing.T) {
	a := MustAddressFromHex("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	data, err := json.Marshal(a)
	require.NoError(t, err)

	var out Address
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, a, out)
}

func TestHashJSONRoundTrip(t *testing.T) {
	h := MustHashFromHex("0x0000000000000000000000000000000000000000000000000000000000000001")
	data, err := json.Marshal(h)
	require.NoError(t, err)

	var out Hash
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, h, out)
}

func TestBytesHexRoundTrip(t *testing.T) {
	b, err := BytesFromHex("0xdeadbeef")
	require.NoError(t, err)
	require.Equal(t, Bytes{0xde, 0xad, 0xbe, 0xef}, b)
	require.Equal(t, "0xdeadbeef", b.Hex())
}

func TestBytesEmpty(t *testing.T) {
	b, err := BytesFromHex("0x")
	require.NoError(t, err)
	require.Equal(t, Bytes{}, b)
}

func TestBlockNumberLatest(t *testing.T) {
	n, err := ParseBlockNumber("latest")
	require.NoError(t, err)
	require.True(t, n.IsLatest())

	data, err := json.Marshal(n)
	require.NoError(t, err)
	require.Equal(t, `"latest"`, string(data))
}

func TestBlockNumberHex(t *testing.T) {
	n, err := ParseBlockNumber("0x2a")
	require.NoError(t, err)
	require.False(t, n.IsLatest())
	require.Equal(t, uint64(42), n.Uint64())
}

func TestBlockNumberMissingPrefix(t *testing.T) {
	_, err := ParseBlockNumber("42")
	require.Error(t, err)
}

func TestEncodeUint64(t *testing.T) {
	require.Equal(t, "0x2a", EncodeUint64(42))
	require.Equal(t, "0x0", EncodeUint64(0))
}
