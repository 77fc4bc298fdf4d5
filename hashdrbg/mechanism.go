// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hashdrbg

import (
	"encoding/binary"

	"github.com/kpartal1/drbg/mechanism"
)

// Mechanism is the Hash_DRBG working state: V and C, each seed_len bytes,
// treated as big-endian unsigned integers modulo 2^(8*seed_len). It
// implements mechanism.Mechanism.
type Mechanism struct {
	spec hashSpec
	v    []byte
	c    []byte
}

// New constructs a Hash_DRBG mechanism over the given hash function. The
// returned Mechanism holds no working state until Instantiate is called.
func New(id HashID) (*Mechanism, error) {
	spec, err := specFor(id)
	if err != nil {
		return nil, err
	}
	return &Mechanism{spec: spec, v: make([]byte, spec.seedLen), c: make([]byte, spec.seedLen)}, nil
}

// Params reports this mechanism's SP 800-90A constants for the configured
// hash function.
func (m *Mechanism) Params() mechanism.Params {
	return mechanism.Params{
		SecurityStrength:               m.spec.securityStrength,
		SeedLen:                        m.spec.seedLen,
		MinEntropy:                     m.spec.securityStrength,
		MaxBytesPerRequest:             1 << 16,
		MaxAdditionalInputLength:       1 << 35,
		MaxPersonalizationStringLength: 1 << 35,
		MaxReseedInterval:              1 << 48,
	}
}

// hashgen is the Hashgen algorithm (SP 800-90A 10.1.1.4): it derives n
// bytes by repeatedly hashing a working copy of V, incrementing it
// between blocks, and concatenating/truncating the digests.
func (m *Mechanism) hashgen(out []byte) {
	data := make([]byte, len(m.v))
	copy(data, m.v)

	produced := 0
	for produced < len(out) {
		h := m.spec.hash(data)
		produced += copy(out[produced:], h)
		mechanism.IncBE(data)
	}
}

// Instantiate implements mechanism.Mechanism.
func (m *Mechanism) Instantiate(entropy, nonce, personalizationString []byte) error {
	seedMaterial := mechanism.Concat(entropy, nonce, personalizationString)
	m.v = hashDF(m.spec, seedMaterial)
	m.c = hashDF(m.spec, mechanism.Concat([]byte{0x00}, m.v))
	return nil
}

// Reseed implements mechanism.Mechanism.
func (m *Mechanism) Reseed(entropy, additionalInput []byte) error {
	seedMaterial := mechanism.Concat([]byte{0x01}, m.v, entropy, additionalInput)
	m.v = hashDF(m.spec, seedMaterial)
	m.c = hashDF(m.spec, mechanism.Concat([]byte{0x00}, m.v))
	return nil
}

// Generate implements mechanism.Mechanism. reseedCounter is mixed into
// the final state update, as SP 800-90A 10.1.1.4 requires for Hash_DRBG
// (but not for CTR_DRBG or HMAC_DRBG).
func (m *Mechanism) Generate(out, additionalInput []byte, reseedCounter uint64) error {
	if len(additionalInput) > 0 {
		w := m.spec.hash(mechanism.Concat([]byte{0x02}, m.v, additionalInput))
		mechanism.AddBE(m.v, w)
	}

	m.hashgen(out)

	h := m.spec.hash(mechanism.Concat([]byte{0x03}, m.v))
	mechanism.AddBE(m.v, h)
	mechanism.AddBE(m.v, m.c)

	var counterBE [8]byte
	binary.BigEndian.PutUint64(counterBE[:], reseedCounter)
	mechanism.AddBE(m.v, counterBE[:])

	return nil
}
