// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import "errors"

// Sentinel errors returned by Builder.Build, PRBuilder.Build, DRBG.Fill,
// and DRBG.FillWithAdditionalInput. All length validations happen before
// any working state is mutated or any entropy is drawn.
var (
	// ErrPersonalizationStringTooLong is returned when the
	// personalization string supplied to a Builder exceeds the
	// mechanism's MaxPersonalizationStringLength.
	ErrPersonalizationStringTooLong = errors.New("drbg: personalization string too long")

	// ErrNonceTooShort is returned when an explicit nonce is shorter
	// than half the mechanism's security strength.
	ErrNonceTooShort = errors.New("drbg: nonce too short")

	// ErrNonceTooLong is returned when an explicit nonce exceeds 2^32
	// bytes.
	ErrNonceTooLong = errors.New("drbg: nonce too long")

	// ErrAdditionalInputTooLong is returned when additional input
	// supplied to Fill exceeds the mechanism's
	// MaxAdditionalInputLength.
	ErrAdditionalInputTooLong = errors.New("drbg: additional input too long")

	// ErrReseedIntervalTooLong is returned when
	// Builder.ReseedInterval exceeds the mechanism's
	// MaxReseedInterval.
	ErrReseedIntervalTooLong = errors.New("drbg: reseed interval too long")

	// ErrReseedIntervalTooShort is returned when
	// Builder.ReseedInterval is set below 1.
	ErrReseedIntervalTooShort = errors.New("drbg: reseed interval too short")

	// errReseedRequired is the wrapper's internal signal that the
	// reseed counter has been exhausted. It never escapes Fill or
	// FillWithAdditionalInput: the top-level DRBG reacts to it by
	// reseeding and retrying.
	errReseedRequired = errors.New("drbg: reseed required")
)

// EntropySourceError wraps a failure returned by the configured entropy
// Source, surfaced directly to the caller without retry or recovery.
type EntropySourceError struct {
	Err error
}

// Error implements the error interface.
func (e *EntropySourceError) Error() string {
	return "drbg: entropy source failed: " + e.Err.Error()
}

// Unwrap allows errors.Is/errors.As to reach the underlying Source error.
func (e *EntropySourceError) Unwrap() error {
	return e.Err
}
