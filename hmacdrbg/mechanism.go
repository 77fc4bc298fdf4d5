// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hmacdrbg

import "github.com/kpartal1/drbg/mechanism"

// Mechanism is the HMAC_DRBG working state: K and V, each sized to the
// underlying hash function's output length. It implements
// mechanism.Mechanism.
type Mechanism struct {
	spec hashSpec
	k    []byte
	v    []byte
}

// New constructs an HMAC_DRBG mechanism over the given hash function. The
// returned Mechanism holds no working state until Instantiate is called.
func New(id HashID) (*Mechanism, error) {
	spec, err := specFor(id)
	if err != nil {
		return nil, err
	}
	return &Mechanism{spec: spec, k: make([]byte, spec.outLen), v: make([]byte, spec.outLen)}, nil
}

// Params reports this mechanism's SP 800-90A constants for the configured
// hash function.
func (m *Mechanism) Params() mechanism.Params {
	return mechanism.Params{
		SecurityStrength:               m.spec.securityStrength,
		SeedLen:                        m.spec.seedLen(),
		MinEntropy:                     m.spec.securityStrength,
		MaxBytesPerRequest:             1 << 16,
		MaxAdditionalInputLength:       1 << 35,
		MaxPersonalizationStringLength: 1 << 35,
		MaxReseedInterval:              1 << 48,
	}
}

// update is the HMAC_DRBG update routine (SP 800-90A 10.1.2.2).
func (m *Mechanism) update(provided []byte) {
	m.k = m.spec.hmac(m.k, mechanism.Concat(m.v, []byte{0x00}, provided))
	m.v = m.spec.hmac(m.k, m.v)
	if len(provided) == 0 {
		return
	}
	m.k = m.spec.hmac(m.k, mechanism.Concat(m.v, []byte{0x01}, provided))
	m.v = m.spec.hmac(m.k, m.v)
}

// Instantiate implements mechanism.Mechanism.
func (m *Mechanism) Instantiate(entropy, nonce, personalizationString []byte) error {
	for i := range m.k {
		m.k[i] = 0x00
	}
	for i := range m.v {
		m.v[i] = 0x01
	}
	m.update(mechanism.Concat(entropy, nonce, personalizationString))
	return nil
}

// Reseed implements mechanism.Mechanism.
func (m *Mechanism) Reseed(entropy, additionalInput []byte) error {
	m.update(mechanism.Concat(entropy, additionalInput))
	return nil
}

// Generate implements mechanism.Mechanism. reseedCounter is unused:
// HMAC_DRBG does not mix the reseed counter into its state update.
func (m *Mechanism) Generate(out, additionalInput []byte, _ uint64) error {
	if len(additionalInput) > 0 {
		m.update(additionalInput)
	}

	produced := 0
	for produced < len(out) {
		m.v = m.spec.hmac(m.k, m.v)
		produced += copy(out[produced:], m.v)
	}

	m.update(additionalInput)
	return nil
}
