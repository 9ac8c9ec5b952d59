// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

// Package devgen is the node's built-in load generator: it seeds a small
// pool of accounts and cycles transfers between them, giving the sealer
// something to seal when no external client is driving traffic.
package devgen

import (
	"context"
	"time"

	"github.com/holiman/uint256"

	"github.com/eduledger/chain/common/crypto"
	"github.com/eduledger/chain/common/types"
	"github.com/eduledger/chain/conf"
	"github.com/eduledger/chain/internal/chain"
	"github.com/eduledger/chain/log"
)

const accountPoolSize = 8

// startingBalance funds every generated account so transfers never run dry
// across a single run.
var startingBalance = uint256.NewInt(1_000_000_000)

// Generator periodically submits synthetic transfers among a fixed pool of
// pre-seeded accounts.
type Generator struct {
	chain    *chain.Chain
	cfg      conf.DevConfig
	accounts []types.Address
}

// New returns a Generator over chain's accounts, not yet seeded.
func New(c *chain.Chain, cfg conf.DevConfig) *Generator {
	return &Generator{chain: c, cfg: cfg}
}

// Run seeds the account pool and submits up to cfg.TxGenMaxPerBlock
// transfers every cfg.TxGenInterval, until ctx is cancelled.
func (g *Generator) Run(ctx context.Context) {
	if err := g.seed(); err != nil {
		log.Error("devgen: seeding accounts failed", "err", err)
		return
	}

	interval := g.cfg.TxGenInterval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.generateBatch()
		case <-ctx.Done():
			return
		}
	}
}

func (g *Generator) seed() error {
	for i := 0; i < accountPoolSize; i++ {
		_, pub, err := crypto.Keypair()
		if err != nil {
			return err
		}
		addr := crypto.AddressOf(pub)
		if err := g.chain.SeedAccount(addr, startingBalance); err != nil {
			return err
		}
		g.accounts = append(g.accounts, addr)
	}
	return nil
}

func (g *Generator) generateBatch() {
	n := g.cfg.TxGenMaxPerBlock
	if n <= 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		from := g.accounts[i%len(g.accounts)]
		to := g.accounts[(i+1)%len(g.accounts)]
		value := uint256.NewInt(uint64(i + 1))
		if _, err := g.chain.SendTransaction(from, &to, value, nil); err != nil {
			log.Debug("devgen: transaction rejected", "err", err)
		}
	}
}
