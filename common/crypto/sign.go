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

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/eduledger/chain/common/types"
)

// RecoverableSignature is the 65-byte (V, R, S) recoverable ECDSA signature
// form spec'd for SignedTransaction: V carries the recovery id normalized to
// Ethereum's 27/28 convention, R and S are the raw 32-byte scalars.
type RecoverableSignature struct {
	V byte
	R [32]byte
	S [32]byte
}

// Bytes packs the signature into the 65-byte wire form (V || R || S).
func (s RecoverableSignature) Bytes() []byte {
	out := make([]byte, 65)
	out[0] = s.V
	copy(out[1:33], s.R[:])
	copy(out[33:65], s.S[:])
	return out
}

// RecoverableSignatureFromBytes parses the 65-byte wire form produced by
// Bytes.
func RecoverableSignatureFromBytes(b []byte) (RecoverableSignature, error) {
	if len(b) != 65 {
		return RecoverableSignature{}, ErrBadSignature
	}
	var sig RecoverableSignature
	sig.V = b[0]
	copy(sig.R[:], b[1:33])
	copy(sig.S[:], b[33:65])
	return sig, nil
}

// recoveryID maps the on-wire V byte to its 0-3 recovery id, accepting
// either the 27-offset form or a raw 0-3 id, and rejects anything else with
// ErrBadRecoveryId. RecoverCompact itself is handed the V byte unchanged
// (via Bytes), and it reads the 27-offset header form.
func recoveryID(v byte) (byte, error) {
	switch {
	case v >= 27 && v <= 30:
		return v - 27, nil
	case v <= 3:
		return v, nil
	default:
		return 0, ErrBadRecoveryId
	}
}

// SignRecoverable hashes message with Hash and produces a recoverable
// signature over the digest.
func SignRecoverable(message []byte, sk *SecretKey) (RecoverableSignature, error) {
	digest := Hash(message)
	compact := ecdsa.SignCompact(sk, digest[:], false)
	if len(compact) != 65 {
		return RecoverableSignature{}, ErrBadSignature
	}
	sig, err := RecoverableSignatureFromBytes(compact)
	if err != nil {
		return RecoverableSignature{}, err
	}
	// SignCompact's header byte is already the 27-offset recovery id.
	return sig, nil
}

// RecoverPublicKey recovers the signer's public key from message and a
// recoverable signature over it.
func RecoverPublicKey(message []byte, sig RecoverableSignature) (*PublicKey, error) {
	if _, err := recoveryID(sig.V); err != nil {
		return nil, err
	}
	digest := Hash(message)
	pub, _, err := ecdsa.RecoverCompact(sig.Bytes(), digest[:])
	if err != nil {
		return nil, ErrRecoverFailed
	}
	return pub, nil
}

// Sign produces a non-recoverable ECDSA signature (DER-encoded) over
// Hash(message).
func Sign(message []byte, sk *SecretKey) []byte {
	digest := Hash(message)
	return ecdsa.Sign(sk, digest[:]).Serialize()
}

// Verify checks a DER-encoded signature produced by Sign against pub.
func Verify(message []byte, sigBytes []byte, pub *PublicKey) bool {
	sig, err := ecdsa.ParseDERSignature(sigBytes)
	if err != nil {
		return false
	}
	digest := Hash(message)
	return sig.Verify(digest[:], pub)
}

// VerifyRecoverable is the recoverable-signature counterpart of Verify,
// used by SignedTransaction.Verify: recover the public key, then check the
// recovered address matches the transaction's claimed sender before trusting
// the signature at all.
func VerifyRecoverable(message []byte, sig RecoverableSignature, claimed types.Address) bool {
	pub, err := RecoverPublicKey(message, sig)
	if err != nil {
		return false
	}
	return AddressOf(pub) == claimed
}
