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

// Package wasmrt declares the boundary the chain engine would call through
// to execute a contract call, without providing an implementation —
// contract-call execution is out of scope; only the call(...) entry point
// is a consumed collaborator.
package wasmrt

// Caller executes a single contract call and returns its output bytes.
// No implementation ships in this repository; internal/chain's
// transaction.KindCall case is wired to this interface but always returns
// ErrUnimplemented because no Caller is ever constructed.
type Caller interface {
	Call(moduleBytes []byte, function string, params []byte) ([]byte, error)
}
