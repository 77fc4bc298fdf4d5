// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package mechanism defines the contract shared by the three NIST SP 800-90A
// DRBG mechanism cores (CTR_DRBG, Hash_DRBG, HMAC_DRBG) together with the
// big-endian byte arithmetic they all rely on.
//
// A Mechanism owns exactly the "working state" described by SP 800-90A
// Section 8.6 for its family (K/V for CTR and HMAC, V/C for Hash) and
// implements instantiate, reseed, and generate as pure, deterministic
// operations over caller-supplied entropy and additional input. It never
// reads an entropy source itself and never applies the reseed-counter/PR
// policy — both are handled one level up, in package drbg.
package mechanism

import "golang.org/x/exp/constraints"

// Params are the compile-time constants SP 800-90A Section 10 binds to a
// mechanism once its underlying primitive (AES key size, or hash function)
// is fixed. They carry no secrets and are safe to expose to callers.
type Params struct {
	// SecurityStrength is the mechanism's security strength in bytes.
	SecurityStrength int

	// SeedLen is the length, in bytes, of the conditioned seed the
	// derivation function produces. HMAC_DRBG reports it for parity only;
	// its working state does not use a seed_len-sized buffer.
	SeedLen int

	// MinEntropy is the number of entropy-source bytes drawn per
	// instantiate/reseed. Equal to SecurityStrength.
	MinEntropy int

	// MaxBytesPerRequest bounds a single generate call; the wrapper's
	// caller (package drbg) splits larger requests into this many bytes
	// per chunk.
	MaxBytesPerRequest uint64

	// MaxAdditionalInputLength bounds the additional_input argument to
	// reseed and generate.
	MaxAdditionalInputLength uint64

	// MaxPersonalizationStringLength bounds the personalization_string
	// argument to instantiate.
	MaxPersonalizationStringLength uint64

	// MaxReseedInterval bounds the reseed_interval a caller may configure.
	MaxReseedInterval uint64
}

// Mechanism is implemented by each of the three mechanism cores
// (ctrdrbg.Mechanism, hashdrbg.Mechanism, hmacdrbg.Mechanism). Instantiate,
// Reseed, and Generate mutate the receiver's working state in place;
// Generate additionally receives the wrapper's current (pre-increment)
// reseed counter, which Hash_DRBG mixes into its final state update.
type Mechanism interface {
	// Instantiate resets working state from entropy, nonce, and
	// personalization string, per the mechanism's instantiate algorithm.
	Instantiate(entropy, nonce, personalizationString []byte) error

	// Reseed conditions working state from fresh entropy and additional
	// input.
	Reseed(entropy, additionalInput []byte) error

	// Generate fills out with pseudorandom bytes, mixing in
	// additionalInput if non-empty, and advances working state.
	// reseedCounter is the wrapper's counter value for this call, prior
	// to increment.
	Generate(out, additionalInput []byte, reseedCounter uint64) error

	// Params reports this mechanism's fixed, primitive-bound constants.
	Params() Params
}

// IncBE increments buf in place, treating it as a big-endian unsigned
// integer modulo 2^(8*len(buf)). Overflow wraps to the all-zero value.
func IncBE(buf []byte) {
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i]++
		if buf[i] != 0 {
			return
		}
	}
}

// AddBE adds addend into acc in place, modulo 2^(8*len(acc)), both
// interpreted as big-endian unsigned integers. addend may be shorter than
// acc; the missing leading bytes are treated as zero.
func AddBE(acc, addend []byte) {
	var carry uint16
	j := len(addend)
	for i := len(acc) - 1; i >= 0; i-- {
		var b byte
		if j > 0 {
			j--
			b = addend[j]
		}
		sum := uint16(acc[i]) + uint16(b) + carry
		acc[i] = byte(sum)
		carry = sum >> 8
	}
}

// Min returns the lesser of a and b. Used by callers (package drbg's
// request-chunking loop) that need an ordering-generic clamp without
// duplicating it per integer type.
func Min[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Concat returns a freshly allocated slice holding the concatenation of
// parts, in order.
func Concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
