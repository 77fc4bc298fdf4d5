// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "drbgctl",
	Short: "Draw random bytes from a NIST SP 800-90A DRBG mechanism",
	Long:  `drbgctl draws pseudorandom bytes from an instantiated CTR_DRBG, Hash_DRBG, or HMAC_DRBG mechanism and writes them to stdout.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing drbgctl: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(newFillCommand())
}
