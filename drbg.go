// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package drbg implements the NIST SP 800-90A Rev. 1 deterministic random
// bit generator mechanisms — CTR_DRBG, Hash_DRBG, and HMAC_DRBG — behind a
// single builder-configured, prediction-resistance-aware API.
//
// Construct an instance from one of the named handles (CtrAES256,
// HashSHA512, HmacSHA256PR, and so on), optionally tune it with the
// returned Builder or PRBuilder, then call Fill or
// FillWithAdditionalInput to draw bytes.
package drbg

import (
	"errors"

	"github.com/kpartal1/drbg/entropy"
	"github.com/kpartal1/drbg/mechanism"
)

// DRBG is an instantiated, stateful generator built from exactly one
// mechanism. It is not safe for concurrent use: callers that need
// concurrent access should construct one DRBG per goroutine, or guard a
// shared instance with their own lock, mirroring the underlying
// mechanisms' requirement that Generate/Reseed calls observe and mutate
// state in strict sequence.
type DRBG struct {
	w      *wrapper
	source entropy.Source
	pr     bool
	params mechanism.Params
}

// Info reports the static parameters and current policy of a DRBG,
// useful for logging and diagnostics.
type Info struct {
	Params               mechanism.Params
	ReseedInterval       uint64
	PredictionResistance bool
}

// Config reports this instance's parameters and reseed policy.
func (d *DRBG) Config() Info {
	return Info{
		Params:               d.params,
		ReseedInterval:       d.w.reseedInterval,
		PredictionResistance: d.pr,
	}
}

// Fill draws len(buf) random bytes into buf, with no additional input.
// It is equivalent to FillWithAdditionalInput(buf, nil).
func (d *DRBG) Fill(buf []byte) error {
	return d.FillWithAdditionalInput(buf, nil)
}

// FillWithAdditionalInput draws len(buf) random bytes into buf, mixing in
// additionalInput per SP 800-90A Section 9.3.1. Requests larger than the
// mechanism's MaxBytesPerRequest are served internally as a sequence of
// smaller Generate calls; the prediction-resistance and reseed-interval
// policy is re-evaluated before each one.
//
// A prediction-resistant instance reseeds from its entropy source before
// every chunk. A non-prediction-resistant instance reseeds only once its
// reseed counter exceeds the configured reseed interval, and transparently
// retries the chunk after doing so.
func (d *DRBG) FillWithAdditionalInput(buf, additionalInput []byte) error {
	if uint64(len(additionalInput)) > d.params.MaxAdditionalInputLength {
		return ErrAdditionalInputTooLong
	}

	maxChunk := int(d.params.MaxBytesPerRequest)
	for len(buf) > 0 {
		chunkLen := len(buf)
		if maxChunk > 0 {
			chunkLen = mechanism.Min(chunkLen, maxChunk)
		}
		chunk := buf[:chunkLen]

		needsReseed := d.pr
		if !needsReseed {
			err := d.w.generate(chunk, additionalInput)
			switch {
			case err == nil:
				buf = buf[len(chunk):]
				continue
			case errors.Is(err, errReseedRequired):
				needsReseed = true
			default:
				return err
			}
		}

		freshEntropy := make([]byte, d.params.MinEntropy)
		if err := d.source.Fill(freshEntropy); err != nil {
			return &EntropySourceError{Err: err}
		}
		if err := d.w.reseed(freshEntropy, additionalInput); err != nil {
			return err
		}
		if err := d.w.generateBypass(chunk); err != nil {
			return err
		}

		buf = buf[len(chunk):]
	}
	return nil
}
