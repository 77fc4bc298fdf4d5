// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package hmacdrbg implements the NIST SP 800-90A HMAC_DRBG mechanism over
// SHA-224, SHA-256, SHA-384, SHA-512, SHA-512/224, and SHA-512/256, built
// on the standard library's crypto/hmac and crypto/sha256, crypto/sha512
// digest constructors.
package hmacdrbg

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// HashID selects the hash function an HMAC_DRBG mechanism is built over.
type HashID int

// Supported hash functions. SHA-1 is intentionally absent.
const (
	SHA224 HashID = iota
	SHA256
	SHA384
	SHA512
	SHA512_224
	SHA512_256
)

// hashSpec binds a HashID to its HMAC output length, security strength
// (both in bytes), and underlying digest constructor.
type hashSpec struct {
	outLen           int
	securityStrength int
	newHash          func() hash.Hash
}

func specFor(id HashID) (hashSpec, error) {
	switch id {
	case SHA224:
		return hashSpec{28, 28, sha256.New224}, nil
	case SHA256:
		return hashSpec{32, 32, sha256.New}, nil
	case SHA384:
		return hashSpec{48, 32, sha512.New384}, nil
	case SHA512:
		return hashSpec{64, 32, sha512.New}, nil
	case SHA512_224:
		return hashSpec{28, 28, sha512.New512_224}, nil
	case SHA512_256:
		return hashSpec{32, 32, sha512.New512_256}, nil
	default:
		return hashSpec{}, fmt.Errorf("hmacdrbg: unknown hash id %d", id)
	}
}

func (s hashSpec) hmac(key, data []byte) []byte {
	mac := hmac.New(s.newHash, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// seedLen reports the seed_len constant conventionally associated with
// this hash function: 55 bytes for digests at or under 256 bits, 111
// bytes otherwise. HMAC_DRBG working state (K, V) does not
// itself use a seed_len-sized buffer, but the constant is still exposed
// through Params for parity with Hash_DRBG and CTR_DRBG.
func (s hashSpec) seedLen() int {
	if s.outLen > 32 {
		return 111
	}
	return 55
}
