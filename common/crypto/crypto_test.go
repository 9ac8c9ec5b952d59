// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashDeterministic(t *testing.T) {
	a := Hash([]byte("hello"))
	b := Hash([]byte("hello"))
	require.Equal(t, a, b)
	require.NotEqual(t, a, Hash([]byte("world")))
}

func TestHashConcatMatchesManualConcat(t *testing.T) {
	a := HashConcat([]byte("foo"), []byte("bar"))
	b := Hash([]byte("foobar"))
	require.Equal(t, a, b)
}

func TestSignRecoverableRoundTrip(t *testing.T) {
	sk, pub, err := Keypair()
	require.NoError(t, err)

	message := []byte("transfer 10 from A to B")
	sig, err := SignRecoverable(message, sk)
	require.NoError(t, err)

	recovered, err := RecoverPublicKey(message, sig)
	require.NoError(t, err)
	require.Equal(t, AddressOf(pub), AddressOf(recovered))
}

func TestVerifyRecoverableRejectsTamperedSignature(t *testing.T) {
	sk, pub, err := Keypair()
	require.NoError(t, err)

	message := []byte("transfer 10 from A to B")
	sig, err := SignRecoverable(message, sk)
	require.NoError(t, err)

	sig.S[0] ^= 0xff // tamper
	require.False(t, VerifyRecoverable(message, sig, AddressOf(pub)))
}

func TestSignVerifyRoundTrip(t *testing.T) {
	sk, pub, err := Keypair()
	require.NoError(t, err)

	message := []byte("plain signature path")
	sigBytes := Sign(message, sk)
	require.True(t, Verify(message, sigBytes, pub))
	require.False(t, Verify([]byte("different message"), sigBytes, pub))
}

func TestRecoverableSignatureBytesRoundTrip(t *testing.T) {
	sk, _, err := Keypair()
	require.NoError(t, err)

	sig, err := SignRecoverable([]byte("x"), sk)
	require.NoError(t, err)

	parsed, err := RecoverableSignatureFromBytes(sig.Bytes())
	require.NoError(t, err)
	require.Equal(t, sig, parsed)
}

func TestListEncodeDecodeRoundTrip(t *testing.T) {
	items := [][]byte{[]byte("a"), []byte("bb"), {}}
	encoded := ListEncode(items)

	decoded, err := DecodeList(encoded)
	require.NoError(t, err)
	require.Equal(t, items, decoded)
}

func TestListEncodeWithSignatureAppendsComponents(t *testing.T) {
	sk, _, err := Keypair()
	require.NoError(t, err)
	sig, err := SignRecoverable([]byte("x"), sk)
	require.NoError(t, err)

	items := [][]byte{[]byte("a")}
	encoded := ListEncodeWithSignature(items, sig)
	decoded, err := DecodeList(encoded)
	require.NoError(t, err)
	require.Len(t, decoded, 4)
	require.Equal(t, []byte{sig.V}, decoded[1])
}

func TestAddressOfDeterministic(t *testing.T) {
	sk, pub, err := Keypair()
	require.NoError(t, err)
	_ = sk
	require.Equal(t, AddressOf(pub), AddressOf(pub))
}
