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

// Package chain implements the execution engine: the block list, the
// per-transaction sealing logic, and world-state root tracking. It is the
// single owner of the account trie and the transaction pool; every other
// package reaches them only through Chain's methods.
package chain

import (
	"sync"

	"github.com/holiman/uint256"

	"github.com/eduledger/chain/common/account"
	"github.com/eduledger/chain/common/block"
	"github.com/eduledger/chain/common/transaction"
	"github.com/eduledger/chain/common/types"
	"github.com/eduledger/chain/log"
	"github.com/eduledger/chain/modules/kv"
	"github.com/eduledger/chain/modules/schema"
	"github.com/eduledger/chain/modules/trie"
	"github.com/eduledger/chain/modules/txpool"
	"github.com/eduledger/chain/modules/wasmrt"
	pkgerrors "github.com/eduledger/chain/pkg/errors"
)

// Chain is the sole owner of the account trie (exclusive) and the
// transaction pool (shared, inner lock). Callers never see either
// directly. Lock order: Chain.mu before pool's own lock, exactly as
// spec.md's concurrency model mandates — Chain never calls into pool while
// holding nothing, and pool is never locked independently of Chain.mu by a
// call path that also needs the chain lock.
type Chain struct {
	mu sync.Mutex

	store  kv.Store
	trie   *trie.AccountTrie
	pool   *txpool.TransactionPool
	blocks []*block.Block
	world  block.WorldState

	// wasmCaller is declared but never constructed: contract-call
	// execution is out of scope, so this is always nil and every call
	// dispatch reaching it returns ErrUnimplemented before using it.
	wasmCaller wasmrt.Caller
}

// New opens a chain over store, seeding it with the genesis block.
func New(store kv.Store) (*Chain, error) {
	t, err := trie.New(store)
	if err != nil {
		return nil, err
	}
	genesis := block.Genesis()
	return &Chain{
		store:  store,
		trie:   t,
		pool:   txpool.New(),
		blocks: []*block.Block{genesis},
		world:  block.WorldState{StateTrieRoot: types.ZeroHash},
	}, nil
}

// SeedAccount creates addr with the given balance if it does not already
// exist. Used by tests and the dev load generator to bootstrap accounts
// the spec's admission path otherwise has no way to create (send_transaction
// requires `from` to already exist).
func (c *Chain) SeedAccount(addr types.Address, balance *uint256.Int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.trie.AddEmptyAccount(addr); err != nil {
		return err
	}
	if balance != nil && !balance.IsZero() {
		if err := c.trie.AddAccountBalance(addr, balance); err != nil {
			return err
		}
	}
	return nil
}

// SendTransaction implements spec.md §4.3's admission: resolve defaults,
// atomically assign the next nonce for from, build the Transaction, append
// it to the pool, and return its hash.
func (c *Chain) SendTransaction(from types.Address, to *types.Address, value *uint256.Int, data []byte) (types.Hash, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if value == nil {
		value = new(uint256.Int)
	}

	nonce, err := c.trie.IncrementNonce(from)
	if err != nil {
		return types.Hash{}, err
	}

	tx := transaction.New(from, to, value, uint256.NewInt(nonce), data)
	c.pool.Admit(tx)
	return tx.Hash(), nil
}

// SendRawTransaction implements spec.md §4.3's raw admission: decode,
// verify, reject replay of the same signed bytes, then dispatch to
// SendTransaction on the reconstituted Transaction. The nonce carried in
// the signed payload is discarded and reassigned by SendTransaction — a
// known quirk the spec documents rather than hides (see DESIGN.md).
func (c *Chain) SendRawTransaction(raw []byte) (types.Hash, error) {
	signed, err := transaction.DecodeSigned(raw)
	if err != nil {
		return types.Hash{}, pkgerrors.Wrap(pkgerrors.ErrTransactionNotVerified, err.Error())
	}
	if !signed.Verify() {
		return types.Hash{}, pkgerrors.Wrapf(pkgerrors.ErrTransactionNotVerified, "%s", signed.TransactionHash.Hex())
	}

	c.mu.Lock()
	fresh := c.pool.MarkRawSeen(signed.TransactionHash)
	c.mu.Unlock()
	if !fresh {
		return types.Hash{}, pkgerrors.Wrapf(pkgerrors.ErrTransactionNotVerified, "duplicate raw transaction %s", signed.TransactionHash.Hex())
	}

	tx, err := signed.Transaction()
	if err != nil {
		return types.Hash{}, pkgerrors.Wrap(pkgerrors.ErrTransactionNotVerified, err.Error())
	}
	return c.SendTransaction(tx.From, tx.To, tx.Value, tx.Data)
}

// Seal drains the pool and, if non-empty, applies and seals exactly one
// new block, per spec.md §4.4 steps 1-8.
func (c *Chain) Seal() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	batch := c.pool.Drain()
	if len(batch) == 0 {
		return nil
	}

	executed := make([]*transaction.Transaction, 0, len(batch))
	contractAddrs := make(map[types.Hash]types.Address)

	for i, tx := range batch {
		if err := c.execute(tx, contractAddrs); err != nil {
			log.Error("sealing: transaction execution failed, requeuing remainder",
				"hash", tx.Hash().Hex(), "err", err)
			c.pool.Requeue(batch[i:])
			break
		}
		executed = append(executed, tx)
	}

	if len(executed) == 0 {
		return nil
	}

	current := c.blocks[len(c.blocks)-1]
	stateRoot := c.trie.RootHash()
	txRoot := block.TransactionsRootOf(executed)
	sealed := block.New(current.Number+1, current.Hash(), executed, txRoot, stateRoot)
	c.blocks = append(c.blocks, sealed)
	c.world = block.WorldState{StateTrieRoot: stateRoot}

	for _, tx := range executed {
		c.pool.Finalize(tx.Hash(), sealed.Hash(), sealed.Number)
		if addr, ok := contractAddrs[tx.Hash()]; ok {
			if r, ok := c.pool.Receipt(tx.Hash()); ok {
				r.ContractAddress = &addr
			}
		}
	}

	return nil
}

// execute applies tx's kind-specific effect, per spec.md §4.3's dispatch
// table. Called with Chain.mu already held.
func (c *Chain) execute(tx *transaction.Transaction, contractAddrs map[types.Hash]types.Address) error {
	switch tx.Kind() {
	case transaction.KindValueTransfer:
		if _, err := c.trie.AddEmptyAccount(*tx.To); err != nil {
			return err
		}
		return c.trie.Transfer(tx.From, *tx.To, tx.Value)

	case transaction.KindDeployment:
		if _, err := c.trie.AddEmptyAccount(tx.From); err != nil {
			return err
		}
		contractAddr, err := c.trie.AddContractAccount(tx.From, tx.Data)
		if err != nil {
			return err
		}
		contractAddrs[tx.Hash()] = contractAddr
		return nil

	case transaction.KindCall:
		if c.wasmCaller == nil {
			return pkgerrors.Wrap(pkgerrors.ErrUnimplemented, "contract call execution")
		}
		_, err := c.wasmCaller.Call(nil, "", tx.Data)
		return err

	default:
		return pkgerrors.Wrap(pkgerrors.ErrInvalidTransaction, "kind")
	}
}

// CurrentBlock returns the chain head.
func (c *Chain) CurrentBlock() *block.Block {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.blocks[len(c.blocks)-1]
}

// GetBlockByNumber returns the block at number, or ErrInvalidBlockNumber if
// it does not yet exist.
func (c *Chain) GetBlockByNumber(number uint64) (*block.Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if number >= uint64(len(c.blocks)) {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrInvalidBlockNumber, "%d", number)
	}
	return c.blocks[number], nil
}

// GetBalance returns addr's current balance. The chain keeps only current
// account state, not a per-block snapshot, so GetBalanceByBlock (the RPC
// surface's historical variant) resolves to the same value regardless of
// which block number is given — documented as a design decision, not an
// oversight, since spec.md never specifies a historical-state mechanism.
func (c *Chain) GetBalance(addr types.Address) (*uint256.Int, error) {
	rec, err := c.getAccount(addr)
	if err != nil {
		return nil, err
	}
	return rec.Balance, nil
}

// GetTransactionCount returns addr's current persisted nonce.
func (c *Chain) GetTransactionCount(addr types.Address) (uint64, error) {
	rec, err := c.getAccount(addr)
	if err != nil {
		return 0, err
	}
	return rec.Nonce, nil
}

// GetCode returns the contract code stored at addr, empty if addr is not a
// contract.
func (c *Chain) GetCode(addr types.Address) ([]byte, error) {
	rec, err := c.getAccount(addr)
	if err != nil {
		return nil, err
	}
	return rec.CodeHash, nil
}

// GetTransactionReceipt returns the receipt for hash, if one has ever been
// recorded (pending or finalized).
func (c *Chain) GetTransactionReceipt(hash types.Hash) (*transaction.Receipt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pool.Receipt(hash)
}

// getAccount looks up addr's record, defaulting to an empty record (rather
// than AccountNotFound) for balance/nonce/code reads — eth_getBalance on an
// address nobody has ever transacted with returns zero, the same as a real
// Ethereum node, not an error.
func (c *Chain) getAccount(addr types.Address) (*account.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, err := c.trie.Get(addr)
	if err == nil {
		return rec, nil
	}
	if pkgerrors.Is(err, pkgerrors.ErrAccountNotFound) {
		return account.NewEmptyRecord(), nil
	}
	return nil, err
}

// Accounts enumerates every address the trie has ever recorded. Backed by
// Iterate over the accounts bucket, as spec.md's eth_accounts note
// ("enumerates the KV store keyspace") describes.
func (c *Chain) Accounts() ([]types.Address, error) {
	var addrs []types.Address
	err := c.store.Iterate(schema.Accounts, nil, func(key, _ []byte) error {
		addrs = append(addrs, types.BytesToAddress(key))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return addrs, nil
}
