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

// Package api implements the ten JSON-RPC methods of spec.md §6 on top of
// the chain engine.
package api

import (
	"github.com/eduledger/chain/internal/chain"
)

// EthAPI is registered under the "eth" namespace; its exported methods are
// reached as eth_<methodName> (first rune lowercased) by the jsonrpc registry.
type EthAPI struct {
	chain *chain.Chain
}

// NewEthAPI wraps chain for RPC dispatch.
func NewEthAPI(c *chain.Chain) *EthAPI {
	return &EthAPI{chain: c}
}
