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

package crypto

import "errors"

// Crypto-specific errors. These are narrower than the shared taxonomy in
// pkg/errors because they describe failure modes only this package produces.
var (
	ErrBadSignature      = errors.New("bad signature")
	ErrBadRecoveryId     = errors.New("bad recovery id")
	ErrRecoverFailed     = errors.New("recover failed")
	ErrInvalidConversion = errors.New("invalid conversion")
)
