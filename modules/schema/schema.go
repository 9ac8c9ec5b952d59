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

// Package schema names the database buckets shared by modules/kv and
// params. There is exactly one KV namespace (spec.md §6's persisted state
// layout), split into two buckets: one for account records, keyed by raw
// 20-byte address, and one metadata bucket holding the version stamp.
package schema

import "github.com/ledgerwatch/erigon-lib/kv"

const (
	// Accounts holds the binary-encoded account.Record for every known
	// address, keyed by its raw 20-byte address bytes.
	Accounts = "Accounts"

	// DatabaseInfo holds small metadata key/value pairs, such as the
	// version stamp written by params.SetVersion. The account trie does not
	// use it.
	DatabaseInfo = "DatabaseInfo"
)

// TableCfg is the bucket configuration erigon-lib/kv expects at Open time.
var TableCfg = kv.TableCfg{
	Accounts:     kv.TableCfgItem{},
	DatabaseInfo: kv.TableCfgItem{},
}
