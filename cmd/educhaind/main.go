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
	"fmt"
	"os"

	"github.com/mgutz/ansi"
	"github.com/urfave/cli/v2"

	"github.com/eduledger/chain/params"
)

const banner = `
 ███████╗██████╗ ██╗   ██╗ ██████╗██╗  ██╗ █████╗ ██╗███╗   ██╗
 ██╔════╝██╔══██╗██║   ██║██╔════╝██║  ██║██╔══██╗██║████╗  ██║
 █████╗  ██║  ██║██║   ██║██║     ███████║███████║██║██╔██╗ ██║
 ██╔══╝  ██║  ██║██║   ██║██║     ██╔══██║██╔══██║██║██║╚██╗██║
 ███████╗██████╗╝╚██████╔╝╚██████╗██║  ██║██║  ██║██║██║ ╚████║
 ╚══════╝╚═════╝  ╚═════╝  ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝
`

const usageText = `educhaind [options] [command]

Quick start:
  educhaind                      run a node with defaults
  educhaind --http.addr 0.0.0.0  expose RPC beyond localhost
  educhaind --dev.txgen          seed synthetic traffic while running

Data:
  educhaind --data.dir /data/educhain

Console:
  educhaind console              attach an interactive RPC console`

func main() {
	fmt.Print(ansi.Color(banner, "cyan"))

	app := &cli.App{
		Name:                 "educhaind",
		Usage:                "a small Ethereum-compatible teaching node",
		UsageText:            usageText,
		Version:              params.VersionWithCommit(params.GitCommit),
		Flags:                AllFlags(),
		Commands:             []*cli.Command{consoleCommand},
		UseShortOptionHandling: true,
		Action:               appRun,
		Suggest:              true,
		Copyright:            "Copyright 2022-2026 The N42 Authors",
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
