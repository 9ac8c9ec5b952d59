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

// Package kv defines the single key/value storage contract every account
// trie backend satisfies, plus two implementations: an in-memory store for
// tests and an erigon-lib/kv-backed store for a running node.
package kv

// Store is the narrow persistence contract modules/trie depends on. It
// knows nothing about accounts, addresses, or roots — just bytes in, bytes
// out, one bucket at a time.
type Store interface {
	// Get looks up key in bucket. The bool is false when the key is absent;
	// that is not an error.
	Get(bucket string, key []byte) ([]byte, bool, error)

	// Put writes key/value into bucket, overwriting any existing value.
	Put(bucket string, key, value []byte) error

	// Iterate calls fn for every key/value pair in bucket whose key has the
	// given prefix, in key order. Iterate stops and returns fn's error the
	// first time fn returns non-nil.
	Iterate(bucket string, prefix []byte, fn func(key, value []byte) error) error

	// Close releases any resources the store holds open.
	Close() error
}
