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

// Package client is a thin JSON-RPC 2.0 wrapper over the node's HTTP
// endpoint, plus an interactive console built on it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/eduledger/chain/pkg/errors"
)

// Client calls a single educhain node's JSON-RPC endpoint over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
}

// New returns a Client targeting endpoint (e.g. "http://127.0.0.1:8545").
func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

type request struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      string        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Call invokes method with params and decodes the result into out. Every
// call carries a fresh UUID request id, matching the teacher's convention
// of traceable, non-reused RPC identifiers.
func (c *Client) Call(ctx context.Context, method string, params []interface{}, out interface{}) error {
	req := request{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return pkgerrors.Wrap(err, "rpc call")
	}
	defer httpResp.Body.Close()

	var resp response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return pkgerrors.Wrap(err, "decoding rpc response")
	}
	if resp.Error != nil {
		return fmt.Errorf("rpc error %d: %s", resp.Error.Code, resp.Error.Message)
	}
	if out == nil || len(resp.Result) == 0 {
		return nil
	}
	return json.Unmarshal(resp.Result, out)
}

// BlockNumber calls eth_blockNumber.
func (c *Client) BlockNumber(ctx context.Context) (string, error) {
	var out string
	err := c.Call(ctx, "eth_blockNumber", nil, &out)
	return out, err
}

// GetBalance calls eth_getBalance.
func (c *Client) GetBalance(ctx context.Context, address string) (string, error) {
	var out string
	err := c.Call(ctx, "eth_getBalance", []interface{}{address}, &out)
	return out, err
}

// GetTransactionCount calls eth_getTransactionCount.
func (c *Client) GetTransactionCount(ctx context.Context, address string) (string, error) {
	var out string
	err := c.Call(ctx, "eth_getTransactionCount", []interface{}{address}, &out)
	return out, err
}

// SendTransaction calls eth_sendTransaction.
func (c *Client) SendTransaction(ctx context.Context, req map[string]interface{}) (string, error) {
	var out string
	err := c.Call(ctx, "eth_sendTransaction", []interface{}{req}, &out)
	return out, err
}

// SendRawTransaction calls eth_sendRawTransaction.
func (c *Client) SendRawTransaction(ctx context.Context, rawHex string) (string, error) {
	var out string
	err := c.Call(ctx, "eth_sendRawTransaction", []interface{}{rawHex}, &out)
	return out, err
}

// GetTransactionReceipt calls eth_getTransactionReceipt.
func (c *Client) GetTransactionReceipt(ctx context.Context, hash string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.Call(ctx, "eth_getTransactionReceipt", []interface{}{hash}, &out)
	return out, err
}

// GetBlockByNumber calls eth_getBlockByNumber.
func (c *Client) GetBlockByNumber(ctx context.Context, number string, full bool) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.Call(ctx, "eth_getBlockByNumber", []interface{}{number, full}, &out)
	return out, err
}

// GetCode calls eth_getCode.
func (c *Client) GetCode(ctx context.Context, address, block string) (string, error) {
	var out string
	err := c.Call(ctx, "eth_getCode", []interface{}{address, block}, &out)
	return out, err
}

// Accounts calls eth_accounts.
func (c *Client) Accounts(ctx context.Context) ([]string, error) {
	var out []string
	err := c.Call(ctx, "eth_accounts", nil, &out)
	return out, err
}
