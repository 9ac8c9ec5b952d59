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

package main

import (
	"github.com/eduledger/chain/conf"
)

// DefaultConfig is the node's configuration before flags are parsed; every
// flag in flags.go has its Destination pointed at one of these fields, the
// same "flags overwrite the struct in place" convention the flags carry
// from the larger node this one was distilled from.
var DefaultConfig = conf.DefaultNodeConfig()
