// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kpartal1/drbg"
)

var (
	mechanism string
	hashName  string
	keySize   int
	pr        bool
	count     int
	asHex     bool
	verbose   bool
)

// newFillCommand builds the "fill" subcommand, the CLI's only operation:
// instantiate one mechanism and draw --count bytes from it.
func newFillCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "fill",
		Short: "Draw bytes from a DRBG mechanism",
		Long: `Draw --count bytes from a freshly instantiated DRBG mechanism.

--mechanism selects the family: ctr, hash, or hmac.
--key-size (ctr only) selects the AES key size: 128, 192, or 256.
--hash (hash/hmac only) selects the underlying hash function.`,
		RunE: runFill,
	}

	c.Flags().StringVarP(&mechanism, "mechanism", "m", "ctr", "Mechanism family: ctr, hash, or hmac")
	c.Flags().StringVar(&hashName, "hash", "sha256", "Hash function for hash/hmac: sha224, sha256, sha384, sha512, sha512_224, sha512_256")
	c.Flags().IntVar(&keySize, "key-size", 256, "AES key size for ctr: 128, 192, or 256")
	c.Flags().BoolVar(&pr, "pr", false, "Use the prediction-resistant variant")
	c.Flags().IntVarP(&count, "count", "c", 32, "Number of bytes to draw")
	c.Flags().BoolVar(&asHex, "hex", true, "Write output as hex instead of raw bytes")
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print mechanism, byte count, and timing to stderr")

	return c
}

func runFill(cmd *cobra.Command, args []string) error {
	if count <= 0 {
		return fmt.Errorf("--count must be a positive integer")
	}

	d, err := buildDRBG()
	if err != nil {
		return fmt.Errorf("failed to build DRBG: %w", err)
	}

	out := make([]byte, count)
	start := time.Now()
	if err := d.Fill(out); err != nil {
		return fmt.Errorf("fill failed: %w", err)
	}
	duration := time.Since(start)

	writer := bufio.NewWriter(cmd.OutOrStdout())
	if asHex {
		_, _ = writer.WriteString(hex.EncodeToString(out) + "\n")
	} else {
		_, _ = writer.Write(out)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("error flushing writer: %w", err)
	}

	if verbose {
		info := d.Config()
		_, _ = fmt.Fprintln(cmd.OutOrStderr(), "")
		_, _ = fmt.Fprintf(cmd.OutOrStderr(), "Mechanism...............: %s\n", describe())
		_, _ = fmt.Fprintf(cmd.OutOrStderr(), "Prediction resistance...: %v\n", info.PredictionResistance)
		_, _ = fmt.Fprintf(cmd.OutOrStderr(), "Reseed interval.........: %d\n", info.ReseedInterval)
		_, _ = fmt.Fprintf(cmd.OutOrStderr(), "Bytes drawn.............: %s\n", humanize.Bytes(uint64(count)))
		_, _ = fmt.Fprintf(cmd.OutOrStderr(), "Time taken..............: %s\n", duration)
	}

	return nil
}

func describe() string {
	switch strings.ToLower(mechanism) {
	case "ctr":
		if pr {
			return fmt.Sprintf("ctr-aes%d-pr", keySize)
		}
		return fmt.Sprintf("ctr-aes%d", keySize)
	case "hash":
		if pr {
			return "hash-" + strings.ToLower(hashName) + "-pr"
		}
		return "hash-" + strings.ToLower(hashName)
	case "hmac":
		if pr {
			return "hmac-" + strings.ToLower(hashName) + "-pr"
		}
		return "hmac-" + strings.ToLower(hashName)
	default:
		return mechanism
	}
}

func buildDRBG() (*drbg.DRBG, error) {
	switch strings.ToLower(mechanism) {
	case "ctr":
		return buildCtr()
	case "hash":
		return buildHash()
	case "hmac":
		return buildHmac()
	default:
		return nil, fmt.Errorf("unknown mechanism %q: expected ctr, hash, or hmac", mechanism)
	}
}

func buildCtr() (*drbg.DRBG, error) {
	switch keySize {
	case 128:
		if pr {
			return drbg.CtrAES128PR().Build()
		}
		return drbg.CtrAES128().Build()
	case 192:
		if pr {
			return drbg.CtrAES192PR().Build()
		}
		return drbg.CtrAES192().Build()
	case 256:
		if pr {
			return drbg.CtrAES256PR().Build()
		}
		return drbg.CtrAES256().Build()
	default:
		return nil, fmt.Errorf("unknown --key-size %d: expected 128, 192, or 256", keySize)
	}
}

func buildHash() (*drbg.DRBG, error) {
	switch strings.ToLower(hashName) {
	case "sha224":
		if pr {
			return drbg.HashSHA224PR().Build()
		}
		return drbg.HashSHA224().Build()
	case "sha256":
		if pr {
			return drbg.HashSHA256PR().Build()
		}
		return drbg.HashSHA256().Build()
	case "sha384":
		if pr {
			return drbg.HashSHA384PR().Build()
		}
		return drbg.HashSHA384().Build()
	case "sha512":
		if pr {
			return drbg.HashSHA512PR().Build()
		}
		return drbg.HashSHA512().Build()
	case "sha512_224":
		if pr {
			return drbg.HashSHA512_224PR().Build()
		}
		return drbg.HashSHA512_224().Build()
	case "sha512_256":
		if pr {
			return drbg.HashSHA512_256PR().Build()
		}
		return drbg.HashSHA512_256().Build()
	default:
		return nil, fmt.Errorf("unknown --hash %q", hashName)
	}
}

func buildHmac() (*drbg.DRBG, error) {
	switch strings.ToLower(hashName) {
	case "sha224":
		if pr {
			return drbg.HmacSHA224PR().Build()
		}
		return drbg.HmacSHA224().Build()
	case "sha256":
		if pr {
			return drbg.HmacSHA256PR().Build()
		}
		return drbg.HmacSHA256().Build()
	case "sha384":
		if pr {
			return drbg.HmacSHA384PR().Build()
		}
		return drbg.HmacSHA384().Build()
	case "sha512":
		if pr {
			return drbg.HmacSHA512PR().Build()
		}
		return drbg.HmacSHA512().Build()
	case "sha512_224":
		if pr {
			return drbg.HmacSHA512_224PR().Build()
		}
		return drbg.HmacSHA512_224().Build()
	case "sha512_256":
		if pr {
			return drbg.HmacSHA512_256PR().Build()
		}
		return drbg.HmacSHA512_256().Build()
	default:
		return nil, fmt.Errorf("unknown --hash %q", hashName)
	}
}
