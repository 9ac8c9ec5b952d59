// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemStoreGetPutRoundTrip(t *testing.T) {
	s := NewMemStore()

	_, ok, err := s.Get("accounts", []byte("a"))
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Put("accounts", []byte("a"), []byte("1")))
	v, ok, err := s.Get("accounts", []byte("a"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("1"), v)
}

func TestMemStoreBucketsAreIndependent(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.Put("accounts", []byte("k"), []byte("accounts-value")))
	require.NoError(t, s.Put("info", []byte("k"), []byte("info-value")))

	v, ok, err := s.Get("info", []byte("k"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("info-value"), v)
}

func TestMemStoreIterateRespectsPrefixAndOrder(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.Put("accounts", []byte("ab"), []byte("1")))
	require.NoError(t, s.Put("accounts", []byte("aa"), []byte("2")))
	require.NoError(t, s.Put("accounts", []byte("zz"), []byte("3")))

	var keys []string
	err := s.Iterate("accounts", []byte("a"), func(key, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"aa", "ab"}, keys)
}

func TestMemStorePutCopiesValue(t *testing.T) {
	s := NewMemStore()
	value := []byte("mutable")
	require.NoError(t, s.Put("accounts", []byte("k"), value))
	value[0] = 'X'

	v, ok, err := s.Get("accounts", []byte("k"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("mutable"), v)
}
