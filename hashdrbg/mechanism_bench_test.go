// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hashdrbg

import "testing"

func benchmarkGenerate(b *testing.B, id HashID, n int) {
	m, err := New(id)
	if err != nil {
		b.Fatal(err)
	}
	entropyInput := make([]byte, m.spec.securityStrength)
	nonce := make([]byte, m.spec.securityStrength/2)
	if err := m.Instantiate(entropyInput, nonce, nil); err != nil {
		b.Fatal(err)
	}

	out := make([]byte, n)
	b.SetBytes(int64(n))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Generate(out, nil, uint64(i)+1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_SHA256_64B(b *testing.B)  { benchmarkGenerate(b, SHA256, 64) }
func BenchmarkGenerate_SHA512_64B(b *testing.B)  { benchmarkGenerate(b, SHA512, 64) }
func BenchmarkGenerate_SHA512_4KiB(b *testing.B) { benchmarkGenerate(b, SHA512, 4096) }
