// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"github.com/kpartal1/drbg/entropy"
	"github.com/kpartal1/drbg/mechanism"
)

// Config collects the options a Builder or PRBuilder accumulates before
// Build is called. It is never exposed directly; use the Builder/PRBuilder
// methods to populate it.
type Config struct {
	PersonalizationString []byte
	Nonce                 []byte
	Source                entropy.Source
	ReseedInterval        uint64
	ReseedIntervalSet     bool
}

// baseBuilder holds the state and validation logic shared by Builder
// (non-prediction-resistant handles) and PRBuilder (prediction-resistant
// handles). It is embedded by both, which expose disjoint method sets on
// top of it — in particular, only Builder exposes ReseedInterval, per the
// specification's "builders for PR variants must not expose
// reseed_interval" rule, enforced here at compile time rather than at
// runtime.
type baseBuilder struct {
	cfg          Config
	newMechanism func() (mechanism.Mechanism, error)
	pr           bool
}

func (b *baseBuilder) personalizationString(p []byte) { b.cfg.PersonalizationString = p }
func (b *baseBuilder) nonce(n []byte)                  { b.cfg.Nonce = n }
func (b *baseBuilder) entropySource(s entropy.Source)  { b.cfg.Source = s }

// build validates the accumulated configuration, draws the entropy and
// (if unset) nonce this mechanism's instantiate algorithm needs, and
// returns a ready-to-use DRBG. See spec.md Section 4.5.
func (b *baseBuilder) build() (*DRBG, error) {
	mech, err := b.newMechanism()
	if err != nil {
		return nil, err
	}
	params := mech.Params()

	if uint64(len(b.cfg.PersonalizationString)) > params.MaxPersonalizationStringLength {
		return nil, ErrPersonalizationStringTooLong
	}

	source := b.cfg.Source
	if source == nil {
		source = entropy.Default
	}

	nonce := b.cfg.Nonce
	if nonce != nil {
		minNonceLen := params.SecurityStrength / 2
		if len(nonce) < minNonceLen {
			return nil, ErrNonceTooShort
		}
		if uint64(len(nonce)) > (uint64(1) << 32) {
			return nil, ErrNonceTooLong
		}
	} else {
		nonce = make([]byte, params.SecurityStrength/2)
		if err := source.Fill(nonce); err != nil {
			return nil, &EntropySourceError{Err: err}
		}
	}

	reseedInterval := params.MaxReseedInterval
	if b.cfg.ReseedIntervalSet {
		if b.cfg.ReseedInterval < 1 {
			return nil, ErrReseedIntervalTooShort
		}
		if b.cfg.ReseedInterval > params.MaxReseedInterval {
			return nil, ErrReseedIntervalTooLong
		}
		reseedInterval = b.cfg.ReseedInterval
	}

	entropyInput := make([]byte, params.MinEntropy)
	if err := source.Fill(entropyInput); err != nil {
		return nil, &EntropySourceError{Err: err}
	}

	w := newWrapper(mech, reseedInterval)
	if err := w.instantiate(entropyInput, nonce, b.cfg.PersonalizationString); err != nil {
		return nil, err
	}

	return &DRBG{w: w, source: source, pr: b.pr, params: params}, nil
}

// Builder configures and constructs a non-prediction-resistant DRBG
// instance. Obtain one from a named constructor such as CtrAES256 or
// HashSHA512.
type Builder struct{ baseBuilder }

// PersonalizationString sets the per-instance domain-separation string
// mixed into instantiate.
func (b *Builder) PersonalizationString(p []byte) *Builder {
	b.personalizationString(p)
	return b
}

// Nonce overrides the entropy-drawn nonce used at instantiate time.
func (b *Builder) Nonce(n []byte) *Builder {
	b.nonce(n)
	return b
}

// EntropySource overrides the default (crypto/rand-backed) entropy
// source.
func (b *Builder) EntropySource(s entropy.Source) *Builder {
	b.entropySource(s)
	return b
}

// ReseedInterval lowers the reseed-interval bound: once the reseed
// counter exceeds it, the wrapper forces a reseed before the next
// generate. Must be at least 1 and at most the mechanism's
// MaxReseedInterval.
func (b *Builder) ReseedInterval(n uint64) *Builder {
	b.cfg.ReseedInterval = n
	b.cfg.ReseedIntervalSet = true
	return b
}

// Build validates the configuration and constructs the DRBG.
func (b *Builder) Build() (*DRBG, error) { return b.build() }

// PRBuilder configures and constructs a prediction-resistant DRBG
// instance. Obtain one from a named constructor such as CtrAES256PR or
// HashSHA512PR. Unlike Builder, it has no ReseedInterval method: a
// prediction-resistant instance reseeds on every generate call, so a
// reseed interval has no effect.
type PRBuilder struct{ baseBuilder }

// PersonalizationString sets the per-instance domain-separation string
// mixed into instantiate.
func (b *PRBuilder) PersonalizationString(p []byte) *PRBuilder {
	b.personalizationString(p)
	return b
}

// Nonce overrides the entropy-drawn nonce used at instantiate time.
func (b *PRBuilder) Nonce(n []byte) *PRBuilder {
	b.nonce(n)
	return b
}

// EntropySource overrides the default (crypto/rand-backed) entropy
// source.
func (b *PRBuilder) EntropySource(s entropy.Source) *PRBuilder {
	b.entropySource(s)
	return b
}

// Build validates the configuration and constructs the DRBG.
func (b *PRBuilder) Build() (*DRBG, error) { return b.build() }

func newBuilder(newMech func() (mechanism.Mechanism, error)) *Builder {
	return &Builder{baseBuilder{newMechanism: newMech, pr: false}}
}

func newPRBuilder(newMech func() (mechanism.Mechanism, error)) *PRBuilder {
	return &PRBuilder{baseBuilder{newMechanism: newMech, pr: true}}
}
