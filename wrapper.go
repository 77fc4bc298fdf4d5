// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import "github.com/kpartal1/drbg/mechanism"

// wrapper owns the reseed counter and reseed interval shared by every
// mechanism family (SP 800-90A Section 9), on top of a single
// mechanism.Mechanism. It is the only place the reseed_counter >
// reseed_interval policy is enforced; the mechanisms themselves are
// unaware of it.
type wrapper struct {
	mech           mechanism.Mechanism
	reseedCounter  uint64
	reseedInterval uint64
}

func newWrapper(mech mechanism.Mechanism, reseedInterval uint64) *wrapper {
	return &wrapper{mech: mech, reseedCounter: 1, reseedInterval: reseedInterval}
}

// instantiate delegates to the mechanism and resets the reseed counter to
// 1, as required after every instantiate.
func (w *wrapper) instantiate(entropyInput, nonce, personalizationString []byte) error {
	if err := w.mech.Instantiate(entropyInput, nonce, personalizationString); err != nil {
		return err
	}
	w.reseedCounter = 1
	return nil
}

// reseed delegates to the mechanism and resets the reseed counter to 1.
func (w *wrapper) reseed(entropyInput, additionalInput []byte) error {
	if err := w.mech.Reseed(entropyInput, additionalInput); err != nil {
		return err
	}
	w.reseedCounter = 1
	return nil
}

// generate enforces the reseed-interval policy before delegating to the
// mechanism. It returns errReseedRequired, without mutating any state,
// once the counter has been exhausted.
func (w *wrapper) generate(out, additionalInput []byte) error {
	if w.reseedCounter > w.reseedInterval {
		return errReseedRequired
	}
	if err := w.mech.Generate(out, additionalInput, w.reseedCounter); err != nil {
		return err
	}
	w.reseedCounter++
	return nil
}

// generateBypass calls the mechanism directly, skipping the reseed-
// interval check. The top-level DRBG uses this immediately after a
// just-completed reseed: per SP 800-90A Section 9.3.1 step 7.4, the
// caller's additional_input was already folded into that reseed, so it is
// not passed again here.
func (w *wrapper) generateBypass(out []byte) error {
	if err := w.mech.Generate(out, nil, w.reseedCounter); err != nil {
		return err
	}
	w.reseedCounter++
	return nil
}
