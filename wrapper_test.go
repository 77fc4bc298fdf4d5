// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpartal1/drbg/ctrdrbg"
)

func newTestWrapper(t *testing.T, reseedInterval uint64) *wrapper {
	t.Helper()
	req := require.New(t)

	mech, err := ctrdrbg.New(ctrdrbg.KeySize128)
	req.NoError(err)

	w := newWrapper(mech, reseedInterval)
	req.NoError(w.instantiate(bytes.Repeat([]byte{0x01}, ctrdrbg.KeySize128), bytes.Repeat([]byte{0x02}, ctrdrbg.KeySize128/2), nil))
	return w
}

func Test_Wrapper_CounterIncrementsOnGenerate(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	req := require.New(t)

	w := newTestWrapper(t, 10)
	is.Equal(uint64(1), w.reseedCounter)

	out := make([]byte, 16)
	req.NoError(w.generate(out, nil))
	is.Equal(uint64(2), w.reseedCounter)
}

func Test_Wrapper_GenerateReturnsReseedRequiredPastInterval(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	req := require.New(t)

	w := newTestWrapper(t, 1)
	out := make([]byte, 16)

	req.NoError(w.generate(out, nil))
	is.Equal(uint64(2), w.reseedCounter)

	err := w.generate(out, nil)
	is.True(errors.Is(err, errReseedRequired))
	is.Equal(uint64(2), w.reseedCounter, "a rejected generate call must not mutate the counter")
}

func Test_Wrapper_ReseedResetsCounter(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	req := require.New(t)

	w := newTestWrapper(t, 1)
	out := make([]byte, 16)
	req.NoError(w.generate(out, nil))
	req.ErrorIs(w.generate(out, nil), errReseedRequired)

	req.NoError(w.reseed(bytes.Repeat([]byte{0x03}, ctrdrbg.KeySize128), nil))
	is.Equal(uint64(1), w.reseedCounter)

	req.NoError(w.generateBypass(out))
	is.Equal(uint64(2), w.reseedCounter)
}
