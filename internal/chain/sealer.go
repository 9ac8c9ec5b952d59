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

package chain

import (
	"context"
	"time"

	"github.com/paulbellamy/ratecounter"

	"github.com/eduledger/chain/log"
)

// Sealer drives Chain.Seal on a fixed tick, the background half of the
// otherwise request-driven engine. Per spec.md §4.4, sealing only produces
// a block when the pool is non-empty; an idle tick is silent.
type Sealer struct {
	chain    *Chain
	interval time.Duration

	blockRate *ratecounter.RateCounter
	txRate    *ratecounter.RateCounter
}

// NewSealer returns a Sealer that calls chain.Seal every interval.
func NewSealer(c *Chain, interval time.Duration) *Sealer {
	if interval <= 0 {
		interval = time.Second
	}
	return &Sealer{
		chain:     c,
		interval:  interval,
		blockRate: ratecounter.NewRateCounter(time.Second),
		txRate:    ratecounter.NewRateCounter(time.Second),
	}
}

// Run ticks until ctx is cancelled, sealing and logging a rate summary on
// every tick that actually produced a block.
func (s *Sealer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tick()
		case <-ctx.Done():
			log.Info("sealer stopped")
			return
		}
	}
}

func (s *Sealer) tick() {
	before := s.chain.CurrentBlock().Number
	if err := s.chain.Seal(); err != nil {
		log.Error("sealer: seal failed", "err", err)
		return
	}
	after := s.chain.CurrentBlock()
	if after.Number == before {
		return
	}

	s.blockRate.Incr(1)
	s.txRate.Incr(int64(len(after.Transactions)))
	log.Debug("sealed block",
		"number", after.Number,
		"txs", len(after.Transactions),
		"blocks_per_sec", s.blockRate.Rate(),
		"txs_per_sec", s.txRate.Rate(),
	)
}
