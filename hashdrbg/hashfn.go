// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package hashdrbg implements the NIST SP 800-90A Hash_DRBG mechanism over
// SHA-224, SHA-256, SHA-384, SHA-512, SHA-512/224, and SHA-512/256, all
// provided by the Go standard library (crypto/sha256, crypto/sha512).
package hashdrbg

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
)

// HashID selects the hash function a Hash_DRBG mechanism is built over.
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

// hashSpec binds a HashID to its digest length, conditioned seed length,
// security strength (all in bytes), and digest function.
type hashSpec struct {
	digestLen        int
	seedLen          int
	securityStrength int
	hash             func([]byte) []byte
}

func specFor(id HashID) (hashSpec, error) {
	switch id {
	case SHA224:
		return hashSpec{28, 55, 28, func(b []byte) []byte { h := sha256.Sum224(b); return h[:] }}, nil
	case SHA256:
		return hashSpec{32, 55, 32, func(b []byte) []byte { h := sha256.Sum256(b); return h[:] }}, nil
	case SHA384:
		return hashSpec{48, 111, 32, func(b []byte) []byte { h := sha512.Sum384(b); return h[:] }}, nil
	case SHA512:
		return hashSpec{64, 111, 32, func(b []byte) []byte { h := sha512.Sum512(b); return h[:] }}, nil
	case SHA512_224:
		return hashSpec{28, 55, 28, func(b []byte) []byte { h := sha512.Sum512_224(b); return h[:] }}, nil
	case SHA512_256:
		return hashSpec{32, 55, 32, func(b []byte) []byte { h := sha512.Sum512_256(b); return h[:] }}, nil
	default:
		return hashSpec{}, fmt.Errorf("hashdrbg: unknown hash id %d", id)
	}
}
