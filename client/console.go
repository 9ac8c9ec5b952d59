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

package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// Console is a liner-backed REPL over a Client, the same shape as the
// teacher's node console: readline history, a fixed command set, no
// scripting language.
type Console struct {
	client  *Client
	line    *liner.State
	history []string
	out     io.Writer
}

// NewConsole wraps client with an interactive prompt writing to out.
func NewConsole(client *Client, out io.Writer) *Console {
	l := liner.NewLiner()
	l.SetCtrlCAborts(true)
	return &Console{client: client, line: l, out: out}
}

// Close releases the underlying terminal state.
func (c *Console) Close() error {
	return c.line.Close()
}

// Run reads commands until EOF, Ctrl-D, or "exit".
func (c *Console) Run(ctx context.Context) error {
	defer c.Close()
	for {
		input, err := c.line.Prompt("educhain> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		c.line.AppendHistory(input)

		if input == "exit" || input == "quit" {
			return nil
		}

		if err := c.dispatch(ctx, input); err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
}

func (c *Console) dispatch(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "blockNumber":
		n, err := c.client.BlockNumber(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, n)

	case "getBalance":
		if len(args) != 1 {
			return fmt.Errorf("usage: getBalance <address>")
		}
		bal, err := c.client.GetBalance(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, bal)

	case "getTransactionCount":
		if len(args) != 1 {
			return fmt.Errorf("usage: getTransactionCount <address>")
		}
		n, err := c.client.GetTransactionCount(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, n)

	case "sendTransaction":
		if len(args) < 2 {
			return fmt.Errorf("usage: sendTransaction <from> <to> [value]")
		}
		req := map[string]interface{}{"from": args[0], "to": args[1]}
		if len(args) > 2 {
			req["value"] = args[2]
		}
		hash, err := c.client.SendTransaction(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, hash)

	case "getTransactionReceipt":
		if len(args) != 1 {
			return fmt.Errorf("usage: getTransactionReceipt <hash>")
		}
		receipt, err := c.client.GetTransactionReceipt(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, string(receipt))

	case "accounts":
		addrs, err := c.client.Accounts(ctx)
		if err != nil {
			return err
		}
		for _, a := range addrs {
			fmt.Fprintln(c.out, a)
		}

	case "help":
		fmt.Fprintln(c.out, "commands: blockNumber, getBalance, getTransactionCount, sendTransaction, getTransactionReceipt, accounts, exit")

	default:
		return fmt.Errorf("unknown command %q, try \"help\"", cmd)
	}
	return nil
}
