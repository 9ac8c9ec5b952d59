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

package api

import (
	"github.com/holiman/uint256"

	"github.com/eduledger/chain/common/block"
	"github.com/eduledger/chain/common/transaction"
	"github.com/eduledger/chain/common/types"
)

// TxRequest is the wire form of spec.md §6's transaction request object.
// Gas and GasPrice are accepted and ignored — transported, never charged,
// per the gas/fee Non-goal.
type TxRequest struct {
	From     *types.Address `json:"from,omitempty"`
	To       *types.Address `json:"to,omitempty"`
	Value    *types.U256    `json:"value,omitempty"`
	Gas      uint64         `json:"gas,omitempty"`
	GasPrice *types.U256    `json:"gas_price,omitempty"`
	Data     *types.Bytes   `json:"data,omitempty"`
}

// TransactionObject is the wire form of an executed transaction embedded
// in a BlockObject.
type TransactionObject struct {
	Hash  types.Hash     `json:"hash"`
	From  types.Address  `json:"from"`
	To    *types.Address `json:"to,omitempty"`
	Value string         `json:"value"`
	Nonce string         `json:"nonce"`
	Data  types.Bytes    `json:"data,omitempty"`
}

// BlockObject is the wire form of a sealed block.
type BlockObject struct {
	Number           string               `json:"number"`
	Hash             types.Hash           `json:"hash"`
	ParentHash       types.Hash           `json:"parentHash"`
	TransactionsRoot types.Hash           `json:"transactionsRoot"`
	StateRoot        types.Hash           `json:"stateRoot"`
	Transactions     []TransactionObject  `json:"transactions"`
}

// ReceiptObject is the wire form of a transaction receipt.
type ReceiptObject struct {
	TransactionHash types.Hash     `json:"transactionHash"`
	BlockHash       *types.Hash    `json:"blockHash,omitempty"`
	BlockNumber     *string        `json:"blockNumber,omitempty"`
	ContractAddress *types.Address `json:"contractAddress,omitempty"`
}

func toBlockObject(b *block.Block) BlockObject {
	txs := make([]TransactionObject, len(b.Transactions))
	for i, tx := range b.Transactions {
		txs[i] = toTransactionObject(tx)
	}
	return BlockObject{
		Number:           types.EncodeUint64(b.Number),
		Hash:             b.Hash(),
		ParentHash:       b.ParentHash,
		TransactionsRoot: b.TransactionsRoot,
		StateRoot:        b.StateRoot,
		Transactions:     txs,
	}
}

func toTransactionObject(tx *transaction.Transaction) TransactionObject {
	return TransactionObject{
		Hash:  tx.Hash(),
		From:  tx.From,
		To:    tx.To,
		Value: tx.Value.Hex(),
		Nonce: tx.Nonce.Hex(),
		Data:  types.Bytes(tx.Data),
	}
}

func toReceiptObject(r *transaction.Receipt) ReceiptObject {
	out := ReceiptObject{
		TransactionHash: r.TransactionHash,
		BlockHash:       r.BlockHash,
		ContractAddress: r.ContractAddress,
	}
	if r.BlockNumber != nil {
		s := types.EncodeUint64(*r.BlockNumber)
		out.BlockNumber = &s
	}
	return out
}

// Accounts enumerates every address known to the trie.
func (api *EthAPI) Accounts() ([]types.Address, error) {
	return api.chain.Accounts()
}

// BlockNumber returns the current chain head's number.
func (api *EthAPI) BlockNumber() (string, error) {
	return types.EncodeUint64(api.chain.CurrentBlock().Number), nil
}

// GetBlockByNumber resolves number (or "latest") to a block object. full is
// accepted and ignored: the result is always the full transaction list.
func (api *EthAPI) GetBlockByNumber(number types.BlockNumber, full bool) (*BlockObject, error) {
	resolved := number.Uint64()
	if number.IsLatest() {
		resolved = api.chain.CurrentBlock().Number
	}
	b, err := api.chain.GetBlockByNumber(resolved)
	if err != nil {
		return nil, err
	}
	obj := toBlockObject(b)
	return &obj, nil
}

// GetBalance returns address's current balance.
func (api *EthAPI) GetBalance(address types.Address) (string, error) {
	bal, err := api.chain.GetBalance(address)
	if err != nil {
		return "", err
	}
	return bal.Hex(), nil
}

// GetBalanceByBlock returns address's balance as of block. Only current
// state is tracked, so the result does not vary with block (see
// chain.Chain.GetBalance's doc comment).
func (api *EthAPI) GetBalanceByBlock(address types.Address, block types.BlockNumber) (string, error) {
	return api.GetBalance(address)
}

// GetTransactionCount returns address's current persisted nonce.
func (api *EthAPI) GetTransactionCount(address types.Address) (string, error) {
	n, err := api.chain.GetTransactionCount(address)
	if err != nil {
		return "", err
	}
	return types.EncodeUint64(n), nil
}

// SendTransaction admits req per spec.md §4.3 and returns the assigned
// transaction's hash.
func (api *EthAPI) SendTransaction(req TxRequest) (types.Hash, error) {
	from := types.ZeroAddress
	if req.From != nil {
		from = *req.From
	}
	var value *uint256.Int
	if req.Value != nil {
		value = req.Value.Int
	}
	var data []byte
	if req.Data != nil {
		data = *req.Data
	}
	return api.chain.SendTransaction(from, req.To, value, data)
}

// SendRawTransaction decodes, verifies, and admits a signed transaction.
func (api *EthAPI) SendRawTransaction(data types.Bytes) (types.Hash, error) {
	return api.chain.SendRawTransaction(data)
}

// GetTransactionReceipt returns the receipt for hash, or nil if it has
// never been recorded or is still pending finalization — spec.md §6's
// "receipt or null, null ≡ unfinalized" covers both cases alike.
func (api *EthAPI) GetTransactionReceipt(hash types.Hash) (*ReceiptObject, error) {
	r, ok := api.chain.GetTransactionReceipt(hash)
	if !ok || r.BlockHash == nil {
		return nil, nil
	}
	obj := toReceiptObject(r)
	return &obj, nil
}

// GetCode returns address's stored contract code, empty for a non-contract
// account.
func (api *EthAPI) GetCode(address types.Address, block types.BlockNumber) (types.Bytes, error) {
	code, err := api.chain.GetCode(address)
	if err != nil {
		return nil, err
	}
	return types.Bytes(code), nil
}
