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

// Package trie implements the account trie: a flat, authenticated address
// to account.Record mapping backed by modules/kv, with its root hash
// changing under any distinct upsert. It is not a Merkle-Patricia trie —
// see RootHash for why a folded digest satisfies the same invariant.
package trie

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/holiman/uint256"

	"github.com/eduledger/chain/common/account"
	"github.com/eduledger/chain/common/crypto"
	"github.com/eduledger/chain/common/types"
	"github.com/eduledger/chain/log"
	"github.com/eduledger/chain/modules/kv"
	"github.com/eduledger/chain/modules/schema"
	pkgerrors "github.com/eduledger/chain/pkg/errors"
)

const accountCacheSize = 4096

// AccountTrie is the address-keyed account store. All mutation methods
// assume the caller already holds the chain engine's exclusive lock —
// AccountTrie itself does no locking beyond protecting its decode cache.
type AccountTrie struct {
	store kv.Store
	cache *lru.Cache[types.Address, *account.Record]

	// root is the running fold of every upsert this trie has ever
	// performed, composed in upsert. It is the cheapest structure that
	// satisfies "root changes whenever a distinct value is written": a
	// real Merkle-Patricia trie would additionally let siblings be
	// recomputed independently, which this system never needs since the
	// chain engine is the sole writer and always recomputes after sealing.
	mu   sync.Mutex
	root types.Hash
}

// New opens an account trie over store. Decoded records are cached up to
// accountCacheSize entries; every write replaces the cached copy for its key.
func New(store kv.Store) (*AccountTrie, error) {
	c, err := lru.New[types.Address, *account.Record](accountCacheSize)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.ErrInternal, err.Error())
	}
	return &AccountTrie{store: store, cache: c, root: types.ZeroHash}, nil
}

// Get returns the account record at addr. Fails with ErrAccountNotFound if
// absent; ErrStorageNotFound if the backing store itself errors.
func (t *AccountTrie) Get(addr types.Address) (*account.Record, error) {
	if rec, ok := t.cache.Get(addr); ok {
		return rec.Clone(), nil
	}

	raw, found, err := t.store.Get(schema.Accounts, addr.Bytes())
	if err != nil {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrStorageNotFound, "get account %s: %v", addr.Hex(), err)
	}
	if !found {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrAccountNotFound, "%s", addr.Hex())
	}

	rec, err := account.DecodeRecord(raw)
	if err != nil {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrInternal, "decode account %s: %v", addr.Hex(), err)
	}
	t.cache.Add(addr, rec.Clone())
	return rec, nil
}

// AddEmptyAccount inserts a fresh, zero-balance record at addr iff none
// exists yet. Returns true if it inserted, false if addr was already known.
func (t *AccountTrie) AddEmptyAccount(addr types.Address) (bool, error) {
	if _, err := t.Get(addr); err == nil {
		return false, nil
	} else if !pkgerrors.Is(err, pkgerrors.ErrAccountNotFound) {
		return false, err
	}
	if err := t.upsert(addr, account.NewEmptyRecord()); err != nil {
		return false, err
	}
	return true, nil
}

// AddContractAccount derives a contract address from owner's current nonce
// and inserts a new record there holding codeBytes, without touching
// owner's nonce (the chain engine increments it separately).
func (t *AccountTrie) AddContractAccount(owner types.Address, codeBytes []byte) (types.Address, error) {
	ownerRec, err := t.Get(owner)
	if err != nil {
		return types.Address{}, err
	}

	var nonceBuf [8]byte
	n := ownerRec.Nonce
	for i := 7; i >= 0; i-- {
		nonceBuf[i] = byte(n)
		n >>= 8
	}
	digest := crypto.Hash(crypto.ListEncode([][]byte{owner.Bytes(), nonceBuf[:]}))

	var contractAddr types.Address
	copy(contractAddr[:], digest[len(digest)-types.AddressLength:])

	if err := t.upsert(contractAddr, account.NewContractRecord(codeBytes)); err != nil {
		return types.Address{}, err
	}
	return contractAddr, nil
}

// AddAccountBalance increases addr's balance by amount, saturating at
// 2^256-1 on overflow rather than wrapping or erroring (see the open
// question this resolves, recorded in DESIGN.md).
func (t *AccountTrie) AddAccountBalance(addr types.Address, amount *uint256.Int) error {
	rec, err := t.Get(addr)
	if err != nil {
		return err
	}
	overflowed := rec.Balance.AddOverflow(rec.Balance, amount)
	if overflowed {
		rec.Balance.SetAllOne()
		log.Warn("account balance saturated at max uint256", "address", addr.Hex())
	}
	return t.upsert(addr, rec)
}

// SubAccountBalance decreases addr's balance by amount, saturating at zero
// on underflow.
func (t *AccountTrie) SubAccountBalance(addr types.Address, amount *uint256.Int) error {
	rec, err := t.Get(addr)
	if err != nil {
		return err
	}
	if rec.Balance.Lt(amount) {
		rec.Balance.Clear()
	} else {
		rec.Balance.Sub(rec.Balance, amount)
	}
	return t.upsert(addr, rec)
}

// Transfer moves amount from from to to. Both mutations happen under the
// same call; atomicity across the pair is the chain engine's
// responsibility (it holds its own lock for the whole operation).
func (t *AccountTrie) Transfer(from, to types.Address, amount *uint256.Int) error {
	if err := t.SubAccountBalance(from, amount); err != nil {
		return err
	}
	return t.AddAccountBalance(to, amount)
}

// IncrementNonce bumps addr's nonce by one and returns the new value.
func (t *AccountTrie) IncrementNonce(addr types.Address) (uint64, error) {
	rec, err := t.Get(addr)
	if err != nil {
		return 0, err
	}
	rec.Nonce++
	if err := t.upsert(addr, rec); err != nil {
		return 0, err
	}
	return rec.Nonce, nil
}

// RootHash returns the trie's current root. Each upsert folds the previous
// root together with the written address and encoded record, so the root
// advances on every write, including one that stores a value identical to
// the one already held, and a value that round-trips back to an earlier
// state does not restore an earlier root.
func (t *AccountTrie) RootHash() types.Hash {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.root
}

func (t *AccountTrie) upsert(addr types.Address, rec *account.Record) error {
	encoded := rec.Encode()
	if err := t.store.Put(schema.Accounts, addr.Bytes(), encoded); err != nil {
		return pkgerrors.Wrapf(pkgerrors.ErrStoragePutError, "put account %s: %v", addr.Hex(), err)
	}
	t.cache.Add(addr, rec.Clone())

	t.mu.Lock()
	t.root = crypto.HashConcat(t.root.Bytes(), addr.Bytes(), encoded)
	t.mu.Unlock()
	return nil
}
