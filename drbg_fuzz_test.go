// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// FuzzFill fuzzes DRBG.Fill across a range of requested lengths, including
// ones spanning several internal MaxBytesPerRequest-sized chunks, checking
// only that Fill never errors.
func FuzzFill(f *testing.F) {
	f.Add(0)
	f.Add(1)
	f.Add(64)
	f.Add(1 << 17) // spans more than one internal chunk
	f.Fuzz(func(t *testing.T, n int) {
		if n < 0 || n > 1<<18 {
			t.Skip()
		}

		is := assert.New(t)
		d, err := CtrAES128().Build()
		is.NoError(err)

		out := make([]byte, n)
		is.NoError(d.Fill(out))
	})
}

// FuzzFillWithAdditionalInput fuzzes additional-input lengths against a
// prediction-resistant instance, which reseeds on every call.
func FuzzFillWithAdditionalInput(f *testing.F) {
	f.Add(32, 16)
	f.Fuzz(func(t *testing.T, n, additionalLen int) {
		if n < 0 || n > 1<<12 || additionalLen < 0 || additionalLen > 1<<12 {
			t.Skip()
		}

		is := assert.New(t)
		d, err := HashSHA256PR().Build()
		is.NoError(err)

		out := make([]byte, n)
		additionalInput := make([]byte, additionalLen)
		is.NoError(d.FillWithAdditionalInput(out, additionalInput))
	})
}
