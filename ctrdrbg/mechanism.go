// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package ctrdrbg

import "github.com/kpartal1/drbg/mechanism"

// Mechanism is the CTR_DRBG working state: the AES key K, sized by the
// configured AES key length, and the counter block V, one AES block
// (16 bytes) long. It implements mechanism.Mechanism.
type Mechanism struct {
	keyLen int
	key    []byte
	v      [blockLen]byte
}

// New constructs a CTR_DRBG mechanism over AES with the given key length
// in bytes (KeySize128, KeySize192, or KeySize256). The returned Mechanism
// holds no working state until Instantiate is called.
func New(keyLen int) (*Mechanism, error) {
	if err := validKeyLen(keyLen); err != nil {
		return nil, err
	}
	return &Mechanism{keyLen: keyLen, key: make([]byte, keyLen)}, nil
}

// Params reports this mechanism's SP 800-90A constants for the configured
// AES key length.
func (m *Mechanism) Params() mechanism.Params {
	return mechanism.Params{
		SecurityStrength:               m.keyLen,
		SeedLen:                        m.keyLen + blockLen,
		MinEntropy:                     m.keyLen,
		MaxBytesPerRequest:             1 << 16,
		MaxAdditionalInputLength:       1 << 35,
		MaxPersonalizationStringLength: 1 << 35,
		MaxReseedInterval:              1 << 48,
	}
}

// update is the CTR_DRBG update routine (SP 800-90A 10.2.1.2): it derives
// seed_len fresh bytes by repeatedly incrementing V and encrypting it
// under the current key, XORs the result with provided (which must be
// exactly seed_len bytes), and re-splits the XORed output into (K, V).
func (m *Mechanism) update(provided []byte) error {
	cph, err := newAESCipher(m.key)
	if err != nil {
		return err
	}

	seedLen := m.keyLen + blockLen
	out := make([]byte, 0, seedLen+blockLen)
	block := make([]byte, blockLen)
	for len(out) < seedLen {
		mechanism.IncBE(m.v[:])
		cph.Encrypt(block, m.v[:])
		out = append(out, block...)
	}
	out = out[:seedLen]
	for i := range out {
		out[i] ^= provided[i]
	}

	copy(m.key, out[:m.keyLen])
	copy(m.v[:], out[m.keyLen:])
	return nil
}

// Instantiate implements mechanism.Mechanism.
func (m *Mechanism) Instantiate(entropy, nonce, personalizationString []byte) error {
	seedMaterial := mechanism.Concat(entropy, nonce, personalizationString)
	seed, err := blockCipherDF(m.keyLen, seedMaterial)
	if err != nil {
		return err
	}
	for i := range m.key {
		m.key[i] = 0
	}
	for i := range m.v {
		m.v[i] = 0
	}
	return m.update(seed)
}

// Reseed implements mechanism.Mechanism.
func (m *Mechanism) Reseed(entropy, additionalInput []byte) error {
	seedMaterial := mechanism.Concat(entropy, additionalInput)
	seed, err := blockCipherDF(m.keyLen, seedMaterial)
	if err != nil {
		return err
	}
	return m.update(seed)
}

// Generate implements mechanism.Mechanism. reseedCounter is unused: the
// CTR_DRBG generate algorithm does not mix the reseed counter into its
// state update (unlike Hash_DRBG).
func (m *Mechanism) Generate(out, additionalInput []byte, _ uint64) error {
	seedLen := m.keyLen + blockLen

	var a []byte
	if len(additionalInput) > 0 {
		derived, err := blockCipherDF(m.keyLen, additionalInput)
		if err != nil {
			return err
		}
		if err := m.update(derived); err != nil {
			return err
		}
		a = derived
	} else {
		a = make([]byte, seedLen)
	}

	cph, err := newAESCipher(m.key)
	if err != nil {
		return err
	}

	block := make([]byte, blockLen)
	produced := 0
	for produced < len(out) {
		mechanism.IncBE(m.v[:])
		cph.Encrypt(block, m.v[:])
		produced += copy(out[produced:], block)
	}

	return m.update(a)
}
