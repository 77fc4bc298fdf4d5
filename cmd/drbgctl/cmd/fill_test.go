// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Fill_CtrDefault(t *testing.T) {
	is := assert.New(t)
	req := require.New(t)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs([]string{"fill", "--count", "16"})

	req.NoError(RootCmd.Execute())

	decoded, err := hex.DecodeString(out.String()[:len(out.String())-1])
	req.NoError(err)
	is.Len(decoded, 16)
}

func Test_Fill_HashSHA512PR(t *testing.T) {
	is := assert.New(t)
	req := require.New(t)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs([]string{"fill", "--mechanism", "hash", "--hash", "sha512", "--pr", "--count", "8"})

	req.NoError(RootCmd.Execute())

	decoded, err := hex.DecodeString(out.String()[:len(out.String())-1])
	req.NoError(err)
	is.Len(decoded, 8)
}

func Test_Fill_UnknownMechanism(t *testing.T) {
	is := assert.New(t)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs([]string{"fill", "--mechanism", "bogus"})

	is.Error(RootCmd.Execute())
}
