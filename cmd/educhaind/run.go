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
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/eduledger/chain/client"
	"github.com/eduledger/chain/internal/api"
	"github.com/eduledger/chain/internal/chain"
	"github.com/eduledger/chain/log"
	"github.com/eduledger/chain/modules/devgen"
	"github.com/eduledger/chain/modules/kv"
	"github.com/eduledger/chain/modules/rpc/jsonrpc"
	"github.com/eduledger/chain/node"
)

// appRun wires config -> log -> kv -> chain -> sealer -> node and blocks
// until an interrupt, the shape every long-running command in this tree
// follows.
func appRun(_ *cli.Context) error {
	log.Init(DefaultConfig, DefaultConfig.Logger)

	store, err := kv.OpenErigonKVStore(DefaultConfig.DataDir, DefaultConfig.DBName, DefaultConfig.MaxDBSize)
	if err != nil {
		return err
	}
	defer store.Close()

	c, err := chain.New(store)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sealer := chain.NewSealer(c, DefaultConfig.SealInterval)
	go sealer.Run(ctx)

	if DefaultConfig.Dev.TxGenEnabled {
		gen := devgen.New(c, DefaultConfig.Dev)
		go gen.Run(ctx)
	}

	registry := jsonrpc.NewRegistry()
	registry.RegisterService("eth", api.NewEthAPI(c))

	srv := node.New(DefaultConfig.ListenAddr, registry)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		log.Info("shutting down")
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	}
}

var consoleCommand = &cli.Command{
	Name:  "console",
	Usage: "attach an interactive JSON-RPC console to a running node",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "rpc.endpoint",
			Usage: "node JSON-RPC endpoint",
			Value: "http://127.0.0.1:8545",
		},
	},
	Action: func(cctx *cli.Context) error {
		c := client.New(cctx.String("rpc.endpoint"))
		console := client.NewConsole(c, os.Stdout)
		return console.Run(context.Background())
	},
}
