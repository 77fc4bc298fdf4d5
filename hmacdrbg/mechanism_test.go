// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hmacdrbg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_New_UnknownHash(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	_, err := New(HashID(999))
	is.Error(err)
}

func Test_Generate_Deterministic(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	entropyInput := bytes.Repeat([]byte{0x5a}, 32)
	nonce := bytes.Repeat([]byte{0xa5}, 16)
	personalization := []byte("personalization-string")

	m1, err := New(SHA256)
	is.NoError(err)
	is.NoError(m1.Instantiate(entropyInput, nonce, personalization))

	m2, err := New(SHA256)
	is.NoError(err)
	is.NoError(m2.Instantiate(entropyInput, nonce, personalization))

	out1 := make([]byte, 80)
	out2 := make([]byte, 80)
	is.NoError(m1.Generate(out1, nil, 1))
	is.NoError(m2.Generate(out2, nil, 1))

	is.Equal(out1, out2)
}

// Test_Generate_AdditionalInputConsumedTwice verifies that additional
// input changes both the output of the call it is passed to and, through
// the working state that call leaves behind, the output of the next call,
// versus calls with no additional input at all. It does not separate the
// effect of the final update from that of the first one.
func Test_Generate_AdditionalInputConsumedTwice(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	entropyInput := bytes.Repeat([]byte{0x11}, 32)
	nonce := bytes.Repeat([]byte{0x22}, 16)

	m1, err := New(SHA256)
	is.NoError(err)
	is.NoError(m1.Instantiate(entropyInput, nonce, nil))

	m2, err := New(SHA256)
	is.NoError(err)
	is.NoError(m2.Instantiate(entropyInput, nonce, nil))

	first1 := make([]byte, 32)
	first2 := make([]byte, 32)
	is.NoError(m1.Generate(first1, nil, 1))
	is.NoError(m2.Generate(first2, []byte("add-in"), 1))
	is.NotEqual(first1, first2)

	second1 := make([]byte, 32)
	second2 := make([]byte, 32)
	is.NoError(m1.Generate(second1, nil, 1))
	is.NoError(m2.Generate(second2, nil, 1))
	is.NotEqual(second1, second2, "state must have diverged from the differing first call")
}

func Test_SeedLenByDigestSize(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	for _, tc := range []struct {
		id      HashID
		seedLen int
	}{
		{SHA224, 55},
		{SHA256, 55},
		{SHA512_224, 55},
		{SHA512_256, 55},
		{SHA384, 111},
		{SHA512, 111},
	} {
		m, err := New(tc.id)
		is.NoError(err)
		is.Equal(tc.seedLen, m.Params().SeedLen)
	}
}
