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

// Package errors defines the sentinel error taxonomy shared across the
// chain, trie, pool and rpc packages. Centralizing definitions here keeps
// errors.Is/As checks stable across module boundaries.
package errors

import (
	"errors"
	"fmt"
)

// =====================
// Account & Trie Errors
// =====================

var (
	// ErrAccountNotFound is returned when an address has no record in the trie.
	ErrAccountNotFound = errors.New("account not found")

	// ErrCannotCreateRootHash is returned when the trie fails to compute its root hash.
	ErrCannotCreateRootHash = errors.New("cannot create root hash")

	// ErrMissingHash is returned when a referenced hash is absent from storage.
	ErrMissingHash = errors.New("missing hash")
)

// =====================
// Block & Chain Errors
// =====================

var (
	// ErrBlockNotFound is returned when a requested block number has no block.
	ErrBlockNotFound = errors.New("block not found")

	// ErrInvalidBlockNumber is returned when a block number argument is malformed
	// or refers to a number that does not yet exist on the chain.
	ErrInvalidBlockNumber = errors.New("invalid block number")
)

// =====================
// Transaction Errors
// =====================

// Transaction pre-checking errors. All submitted transactions are
// pre-checked before being admitted to the pool or sealed into a block.
// If any invalidation is detected, the corresponding error below is returned.
var (
	// ErrTransactionNotFound is returned when a transaction hash has no receipt.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransaction is returned when a transaction fails structural or
	// signature validation.
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrTransactionNotVerified is returned when the recovered signer does not
	// match the transaction's claimed sender.
	ErrTransactionNotVerified = errors.New("transaction signature does not match sender")

	// ErrNonceTooLow is returned if the nonce of a transaction is lower than the
	// one present in the local account state.
	ErrNonceTooLow = errors.New("nonce too low")

	// ErrNonceTooHigh is returned if the nonce of a transaction is higher than the
	// next one expected based on the local account state.
	ErrNonceTooHigh = errors.New("nonce too high")
)

// =====================
// Storage Errors
// =====================

var (
	// ErrStorageNotFound is returned when a key is absent from the key/value store.
	ErrStorageNotFound = errors.New("storage: key not found")

	// ErrStoragePutError is returned when a write to the key/value store fails.
	ErrStoragePutError = errors.New("storage: put failed")

	// ErrCannotOpenDb is returned when the underlying database cannot be opened.
	ErrCannotOpenDb = errors.New("cannot open database")
)

// =====================
// Execution Errors
// =====================

var (
	// ErrUnimplemented is returned by execution paths that are intentionally
	// stubbed out, such as contract-call execution.
	ErrUnimplemented = errors.New("not implemented")

	// ErrInternal wraps unexpected conditions that indicate a bug rather than
	// bad input.
	ErrInternal = errors.New("internal error")
)

// =====================
// RPC Errors
// =====================

var (
	// ErrParseError is returned when a JSON-RPC request body cannot be decoded.
	ErrParseError = errors.New("parse error")
)

// =====================
// Helper Functions
// =====================

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error.
func Errorf(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}
