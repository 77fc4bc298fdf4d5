// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hashdrbg

import "encoding/binary"

// hashDF implements SP 800-90A's Hash_df, conditioning input down to
// exactly spec.seedLen bytes by iterating
// hash(counter || (seedLen*8 as big-endian u32) || input) over
// counter = 1, 2, ... and concatenating digests.
func hashDF(spec hashSpec, input []byte) []byte {
	var lenBits [4]byte
	binary.BigEndian.PutUint32(lenBits[:], uint32(spec.seedLen)*8)

	out := make([]byte, 0, spec.seedLen+spec.digestLen)
	data := make([]byte, 0, 1+4+len(input))
	for counter := byte(1); len(out) < spec.seedLen; counter++ {
		data = data[:0]
		data = append(data, counter)
		data = append(data, lenBits[:]...)
		data = append(data, input...)
		out = append(out, spec.hash(data)...)
	}
	return out[:spec.seedLen]
}
