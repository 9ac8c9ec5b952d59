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

package params

import (
	"fmt"

	"github.com/ledgerwatch/erigon-lib/kv"

	"github.com/eduledger/chain/modules/schema"
)

var (
	// Following vars are injected at build time through -ldflags "-X ..."
	GitCommit string
	GitBranch string
	GitTag    string
)

// Version format: Major.Minor.Build
// - Major: incremented on breaking changes to the account/trie encoding
// - Minor: feature release
// - Build: auto-incremented on each build
const (
	VersionMajor      = 0
	VersionMinor      = 1
	VersionBuild      = 1
	VersionModifier   = "alpha"
	VersionKeyCreated = "chainVersionCreated"
)

func withModifier(vsn string) string {
	if !isStable() {
		vsn += "-" + VersionModifier
	}
	return vsn
}

func isStable() bool {
	return VersionModifier == "stable"
}

// Version holds the textual version string.
var Version = func() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionBuild)
}()

// VersionWithMeta holds the textual version string including the metadata.
var VersionWithMeta = func() string {
	v := Version
	if VersionModifier != "" {
		v += "-" + VersionModifier
	}
	return v
}()

// ArchiveVersion holds the textual version string with a short commit suffix,
// e.g. "0.1.1-alpha-21c059b6".
func ArchiveVersion(gitCommit string) string {
	vsn := withModifier(Version)
	if len(gitCommit) >= 8 {
		vsn += "-" + gitCommit[:8]
	}
	return vsn
}

func VersionWithCommit(gitCommit string) string {
	vsn := VersionWithMeta
	if len(gitCommit) >= 8 {
		vsn += "-" + gitCommit[:8]
	}
	return vsn
}

// SetVersion stamps the running binary's version into the database info
// bucket the first time a data directory is opened. Subsequent opens are
// no-ops so the stamp always reflects the version that created the store.
func SetVersion(tx kv.RwTx, versionKey string) error {
	key := []byte(versionKey)
	has, err := tx.Has(schema.DatabaseInfo, key)
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	return tx.Put(schema.DatabaseInfo, key, []byte(Version))
}
