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

package kv

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/c2h5oh/datasize"
	"github.com/ledgerwatch/erigon-lib/kv"
	"github.com/ledgerwatch/erigon-lib/kv/mdbx"
	"github.com/sirupsen/logrus"

	"github.com/eduledger/chain/modules/schema"
	pkgerrors "github.com/eduledger/chain/pkg/errors"
)

// ErigonKVStore wraps an erigon-lib/kv RwDB opened against schema.TableCfg.
// It is the store a running node persists its account trie through.
type ErigonKVStore struct {
	db kv.RwDB
}

// OpenErigonKVStore opens (creating if absent) an MDBX database rooted at
// dataDir/dbName, capped at maxSize (zero leaves erigon-lib's own default).
// Failure here is fatal at startup, wrapped as pkgerrors.ErrCannotOpenDb.
func OpenErigonKVStore(dataDir, dbName string, maxSize datasize.ByteSize) (*ErigonKVStore, error) {
	path := filepath.Join(dataDir, dbName)
	opts := mdbx.NewMDBX(logrus.StandardLogger()).
		Path(path).
		WithTableCfg(func(kv.TableCfg) kv.TableCfg { return schema.TableCfg })
	if maxSize > 0 {
		opts = opts.MapSize(maxSize)
	}
	db, err := opts.Open()
	if err != nil {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrCannotOpenDb, "open %s: %v", path, err)
	}
	return &ErigonKVStore{db: db}, nil
}

func (s *ErigonKVStore) Get(bucket string, key []byte) ([]byte, bool, error) {
	var out []byte
	var found bool
	err := s.db.View(context.Background(), func(tx kv.Tx) error {
		v, err := tx.GetOne(bucket, key)
		if err != nil {
			return err
		}
		if v == nil {
			return nil
		}
		found = true
		out = make([]byte, len(v))
		copy(out, v)
		return nil
	})
	if err != nil {
		return nil, false, pkgerrors.Wrapf(pkgerrors.ErrStorageNotFound, "get %x: %v", key, err)
	}
	return out, found, nil
}

func (s *ErigonKVStore) Put(bucket string, key, value []byte) error {
	err := s.db.Update(context.Background(), func(tx kv.RwTx) error {
		return tx.Put(bucket, key, value)
	})
	if err != nil {
		return pkgerrors.Wrapf(pkgerrors.ErrStoragePutError, "put %x: %v", key, err)
	}
	return nil
}

func (s *ErigonKVStore) Iterate(bucket string, prefix []byte, fn func(key, value []byte) error) error {
	return s.db.View(context.Background(), func(tx kv.Tx) error {
		c, err := tx.Cursor(bucket)
		if err != nil {
			return err
		}
		defer c.Close()

		for k, v, err := c.Seek(prefix); k != nil; k, v, err = c.Next() {
			if err != nil {
				return err
			}
			if !bytes.HasPrefix(k, prefix) {
				break
			}
			if err := fn(k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *ErigonKVStore) Close() error {
	s.db.Close()
	return nil
}
