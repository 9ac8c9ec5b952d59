// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package chain

import (
	"context"
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/eduledger/chain/common/types"
)

func TestSealerProducesBlocksOnTick(t *testing.T) {
	c := newTestChain(t)
	a := types.MustAddressFromHex("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	b := types.MustAddressFromHex("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	require.NoError(t, c.SeedAccount(a, uint256.NewInt(100)))

	_, err := c.SendTransaction(a, &b, uint256.NewInt(1), nil)
	require.NoError(t, err)

	sealer := NewSealer(c, 10*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	sealer.Run(ctx)

	require.Equal(t, uint64(1), c.CurrentBlock().Number)
}

func TestSealerIdleTickProducesNoBlock(t *testing.T) {
	c := newTestChain(t)
	sealer := NewSealer(c, 10*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	sealer.Run(ctx)

	require.Equal(t, uint64(0), c.CurrentBlock().Number)
}
