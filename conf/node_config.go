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

package conf

import (
	"time"

	"github.com/c2h5oh/datasize"
)

// NodeConfig holds everything needed to start a node: where it listens, where
// it persists state, and how often it seals.
type NodeConfig struct {
	// DataDir is the root directory for the node's database and log file.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// DBName names the KV database directory under DataDir.
	DBName string `json:"db_name" yaml:"db_name"`

	// ListenAddr is the HTTP JSON-RPC bind address, e.g. "127.0.0.1:8545".
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"`

	// SealInterval is how often the sealer drains the pool into a new block.
	SealInterval time.Duration `json:"seal_interval" yaml:"seal_interval"`

	// MaxDBSize bounds the on-disk size erigon-lib/kv will map for the
	// database; expressed with datasize so config files can read "2GB"
	// rather than a raw byte count.
	MaxDBSize datasize.ByteSize `json:"max_db_size" yaml:"max_db_size"`

	Logger LoggerConfig `json:"logger" yaml:"logger"`
	Dev    DevConfig    `json:"dev" yaml:"dev"`
}

// DefaultNodeConfig returns the configuration educhaind starts from before
// command-line flags are applied.
func DefaultNodeConfig() NodeConfig {
	return NodeConfig{
		DataDir:      "./.tmp",
		DBName:       "chaindata",
		ListenAddr:   "127.0.0.1:8545",
		SealInterval: time.Second,
		MaxDBSize:    2 * datasize.GB,
		Logger:       DefaultLoggerConfig(),
		Dev:          DefaultDevConfig(),
	}
}
