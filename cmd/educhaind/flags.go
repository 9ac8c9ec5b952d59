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
	"github.com/urfave/cli/v2"
)

var (
	DataDirFlag = &cli.StringFlag{
		Name:        "data.dir",
		Aliases:     []string{"datadir"},
		Usage:       "data directory",
		Category:    "DATA",
		Value:       DefaultConfig.DataDir,
		Destination: &DefaultConfig.DataDir,
	}
	DBNameFlag = &cli.StringFlag{
		Name:        "data.dbname",
		Usage:       "database file name within the data directory",
		Category:    "DATA",
		Value:       DefaultConfig.DBName,
		Destination: &DefaultConfig.DBName,
	}
	HTTPAddrFlag = &cli.StringFlag{
		Name:        "http.addr",
		Usage:       "JSON-RPC listen address",
		Category:    "HTTP-RPC",
		Value:       DefaultConfig.ListenAddr,
		Destination: &DefaultConfig.ListenAddr,
	}
	SealIntervalFlag = &cli.DurationFlag{
		Name:        "seal.interval",
		Usage:       "interval between sealing attempts",
		Category:    "SEALING",
		Value:       DefaultConfig.SealInterval,
		Destination: &DefaultConfig.SealInterval,
	}

	LogLevelFlag = &cli.StringFlag{
		Name:        "log.level",
		Aliases:     []string{"verbosity"},
		Usage:       "log level: trace, debug, info, warn, error, fatal",
		Category:    "LOGGING",
		Value:       DefaultConfig.Logger.Level,
		Destination: &DefaultConfig.Logger.Level,
	}
	LogFileFlag = &cli.StringFlag{
		Name:        "log.file",
		Usage:       "log file name (empty logs to console only)",
		Category:    "LOGGING",
		Value:       DefaultConfig.Logger.LogFile,
		Destination: &DefaultConfig.Logger.LogFile,
	}

	DevTxGenFlag = &cli.BoolFlag{
		Name:        "dev.txgen",
		Usage:       "enable the built-in synthetic load generator",
		Category:    "DEVELOPMENT",
		Value:       DefaultConfig.Dev.TxGenEnabled,
		Destination: &DefaultConfig.Dev.TxGenEnabled,
	}
	DevTxGenMaxFlag = &cli.IntFlag{
		Name:        "dev.txgen.max",
		Usage:       "max synthetic transactions submitted per generation interval (dev.txgen.interval)",
		Category:    "DEVELOPMENT",
		Value:       DefaultConfig.Dev.TxGenMaxPerBlock,
		Destination: &DefaultConfig.Dev.TxGenMaxPerBlock,
	}
	DevTxGenIntervalFlag = &cli.DurationFlag{
		Name:        "dev.txgen.interval",
		Usage:       "interval between synthetic transaction batches",
		Category:    "DEVELOPMENT",
		Value:       DefaultConfig.Dev.TxGenInterval,
		Destination: &DefaultConfig.Dev.TxGenInterval,
	}
)

// AllFlags returns every flag accepted by the root command.
func AllFlags() []cli.Flag {
	return []cli.Flag{
		DataDirFlag,
		DBNameFlag,
		HTTPAddrFlag,
		SealIntervalFlag,
		LogLevelFlag,
		LogFileFlag,
		DevTxGenFlag,
		DevTxGenMaxFlag,
		DevTxGenIntervalFlag,
	}
}
