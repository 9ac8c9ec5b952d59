// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.

package devgen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eduledger/chain/conf"
	"github.com/eduledger/chain/internal/chain"
	"github.com/eduledger/chain/modules/kv"
)

func TestGeneratorSeedsAccountsAndSubmitsTransfers(t *testing.T) {
	c, err := chain.New(kv.NewMemStore())
	require.NoError(t, err)

	cfg := conf.DevConfig{
		TxGenEnabled:     true,
		TxGenMaxPerBlock: 3,
		TxGenInterval:    5 * time.Millisecond,
	}
	gen := New(c, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	gen.Run(ctx)

	require.Len(t, gen.accounts, accountPoolSize)
	require.NoError(t, c.Seal())
	require.Equal(t, uint64(1), c.CurrentBlock().Number)
}
