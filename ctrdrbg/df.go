// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package ctrdrbg

import "encoding/binary"

// blockCipherDF implements SP 800-90A's Block_Cipher_df: it conditions an
// arbitrary-length input string down to exactly keyLen+blockLen
// (seed_len) bytes, keyed internally by the fixed constant
// 0x00 0x01 0x02 ... (key_len-1).
//
// The no-df CTR_DRBG variant is out of scope; this is the only derivation
// function this package implements.
func blockCipherDF(keyLen int, input []byte) ([]byte, error) {
	seedLen := keyLen + blockLen

	// S = L || N || input || 0x80 || zero-pad to a multiple of blockLen.
	s := make([]byte, 0, 8+len(input)+1+blockLen)
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(input)))
	s = append(s, lenBuf[:]...)
	binary.BigEndian.PutUint32(lenBuf[:], uint32(seedLen))
	s = append(s, lenBuf[:]...)
	s = append(s, input...)
	s = append(s, 0x80)
	for len(s)%blockLen != 0 {
		s = append(s, 0)
	}

	kdf := make([]byte, keyLen)
	for i := range kdf {
		kdf[i] = byte(i)
	}
	bccCipher, err := newAESCipher(kdf)
	if err != nil {
		return nil, err
	}

	// T = BCC(K_df, IV_0 || S) || BCC(K_df, IV_1 || S) || ... until
	// key_len + seed_len bytes are produced. IV_i is blockLen bytes: a
	// big-endian u32 counter left-aligned, zero-padded to the right.
	t := make([]byte, 0, keyLen+seedLen+blockLen)
	ivBlock := make([]byte, blockLen+len(s))
	copy(ivBlock[blockLen:], s)
	for i := uint32(0); len(t) < keyLen+seedLen; i++ {
		for j := range ivBlock[:blockLen] {
			ivBlock[j] = 0
		}
		binary.BigEndian.PutUint32(ivBlock[:4], i)
		t = append(t, bcc(bccCipher, ivBlock)...)
	}

	kPrime := t[:keyLen]
	x := make([]byte, blockLen)
	copy(x, t[keyLen:keyLen+blockLen])

	outCipher, err := newAESCipher(kPrime)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, seedLen+blockLen)
	block := make([]byte, blockLen)
	for len(out) < seedLen {
		outCipher.Encrypt(block, x)
		copy(x, block)
		out = append(out, block...)
	}
	return out[:seedLen], nil
}

// bcc computes the CBC-MAC chaining value of data (whose length must be a
// multiple of blockLen) under key, starting from a zero IV, returning only
// the final chaining block.
func bcc(blockCipher interface {
	Encrypt(dst, src []byte)
}, data []byte) []byte {
	chain := make([]byte, blockLen)
	out := make([]byte, blockLen)
	for len(data) > 0 {
		for i := 0; i < blockLen; i++ {
			chain[i] ^= data[i]
		}
		blockCipher.Encrypt(out, chain)
		copy(chain, out)
		data = data[blockLen:]
	}
	return chain
}
