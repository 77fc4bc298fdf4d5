// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package drbg

import (
	"github.com/kpartal1/drbg/ctrdrbg"
	"github.com/kpartal1/drbg/hashdrbg"
	"github.com/kpartal1/drbg/hmacdrbg"
	"github.com/kpartal1/drbg/mechanism"
)

// wrapMechanism adapts a concrete mechanism constructor (ctrdrbg.New,
// hashdrbg.New, hmacdrbg.New) to the mechanism.Mechanism-returning
// signature baseBuilder needs, so every handle below can share the same
// builder plumbing regardless of which concrete type its family returns.
func wrapMechanism[T mechanism.Mechanism](ctor func() (T, error)) func() (mechanism.Mechanism, error) {
	return func() (mechanism.Mechanism, error) {
		return ctor()
	}
}

// CtrAES128 returns a Builder for a non-prediction-resistant CTR_DRBG
// instance keyed with AES-128.
func CtrAES128() *Builder {
	return newBuilder(wrapMechanism(func() (*ctrdrbg.Mechanism, error) { return ctrdrbg.New(ctrdrbg.KeySize128) }))
}

// CtrAES128PR returns a PRBuilder for a prediction-resistant CTR_DRBG
// instance keyed with AES-128.
func CtrAES128PR() *PRBuilder {
	return newPRBuilder(wrapMechanism(func() (*ctrdrbg.Mechanism, error) { return ctrdrbg.New(ctrdrbg.KeySize128) }))
}

// CtrAES192 returns a Builder for a non-prediction-resistant CTR_DRBG
// instance keyed with AES-192.
func CtrAES192() *Builder {
	return newBuilder(wrapMechanism(func() (*ctrdrbg.Mechanism, error) { return ctrdrbg.New(ctrdrbg.KeySize192) }))
}

// CtrAES192PR returns a PRBuilder for a prediction-resistant CTR_DRBG
// instance keyed with AES-192.
func CtrAES192PR() *PRBuilder {
	return newPRBuilder(wrapMechanism(func() (*ctrdrbg.Mechanism, error) { return ctrdrbg.New(ctrdrbg.KeySize192) }))
}

// CtrAES256 returns a Builder for a non-prediction-resistant CTR_DRBG
// instance keyed with AES-256.
func CtrAES256() *Builder {
	return newBuilder(wrapMechanism(func() (*ctrdrbg.Mechanism, error) { return ctrdrbg.New(ctrdrbg.KeySize256) }))
}

// CtrAES256PR returns a PRBuilder for a prediction-resistant CTR_DRBG
// instance keyed with AES-256.
func CtrAES256PR() *PRBuilder {
	return newPRBuilder(wrapMechanism(func() (*ctrdrbg.Mechanism, error) { return ctrdrbg.New(ctrdrbg.KeySize256) }))
}

// HashSHA224 returns a Builder for a non-prediction-resistant Hash_DRBG
// instance over SHA-224.
func HashSHA224() *Builder {
	return newBuilder(wrapMechanism(func() (*hashdrbg.Mechanism, error) { return hashdrbg.New(hashdrbg.SHA224) }))
}

// HashSHA224PR returns a PRBuilder for a prediction-resistant Hash_DRBG
// instance over SHA-224.
func HashSHA224PR() *PRBuilder {
	return newPRBuilder(wrapMechanism(func() (*hashdrbg.Mechanism, error) { return hashdrbg.New(hashdrbg.SHA224) }))
}

// HashSHA256 returns a Builder for a non-prediction-resistant Hash_DRBG
// instance over SHA-256.
func HashSHA256() *Builder {
	return newBuilder(wrapMechanism(func() (*hashdrbg.Mechanism, error) { return hashdrbg.New(hashdrbg.SHA256) }))
}

// HashSHA256PR returns a PRBuilder for a prediction-resistant Hash_DRBG
// instance over SHA-256.
func HashSHA256PR() *PRBuilder {
	return newPRBuilder(wrapMechanism(func() (*hashdrbg.Mechanism, error) { return hashdrbg.New(hashdrbg.SHA256) }))
}

// HashSHA384 returns a Builder for a non-prediction-resistant Hash_DRBG
// instance over SHA-384.
func HashSHA384() *Builder {
	return newBuilder(wrapMechanism(func() (*hashdrbg.Mechanism, error) { return hashdrbg.New(hashdrbg.SHA384) }))
}

// HashSHA384PR returns a PRBuilder for a prediction-resistant Hash_DRBG
// instance over SHA-384.
func HashSHA384PR() *PRBuilder {
	return newPRBuilder(wrapMechanism(func() (*hashdrbg.Mechanism, error) { return hashdrbg.New(hashdrbg.SHA384) }))
}

// HashSHA512 returns a Builder for a non-prediction-resistant Hash_DRBG
// instance over SHA-512.
func HashSHA512() *Builder {
	return newBuilder(wrapMechanism(func() (*hashdrbg.Mechanism, error) { return hashdrbg.New(hashdrbg.SHA512) }))
}

// HashSHA512PR returns a PRBuilder for a prediction-resistant Hash_DRBG
// instance over SHA-512.
func HashSHA512PR() *PRBuilder {
	return newPRBuilder(wrapMechanism(func() (*hashdrbg.Mechanism, error) { return hashdrbg.New(hashdrbg.SHA512) }))
}

// HashSHA512_224 returns a Builder for a non-prediction-resistant
// Hash_DRBG instance over SHA-512/224.
func HashSHA512_224() *Builder {
	return newBuilder(wrapMechanism(func() (*hashdrbg.Mechanism, error) { return hashdrbg.New(hashdrbg.SHA512_224) }))
}

// HashSHA512_224PR returns a PRBuilder for a prediction-resistant
// Hash_DRBG instance over SHA-512/224.
func HashSHA512_224PR() *PRBuilder {
	return newPRBuilder(wrapMechanism(func() (*hashdrbg.Mechanism, error) { return hashdrbg.New(hashdrbg.SHA512_224) }))
}

// HashSHA512_256 returns a Builder for a non-prediction-resistant
// Hash_DRBG instance over SHA-512/256.
func HashSHA512_256() *Builder {
	return newBuilder(wrapMechanism(func() (*hashdrbg.Mechanism, error) { return hashdrbg.New(hashdrbg.SHA512_256) }))
}

// HashSHA512_256PR returns a PRBuilder for a prediction-resistant
// Hash_DRBG instance over SHA-512/256.
func HashSHA512_256PR() *PRBuilder {
	return newPRBuilder(wrapMechanism(func() (*hashdrbg.Mechanism, error) { return hashdrbg.New(hashdrbg.SHA512_256) }))
}

// HmacSHA224 returns a Builder for a non-prediction-resistant HMAC_DRBG
// instance over HMAC-SHA-224.
func HmacSHA224() *Builder {
	return newBuilder(wrapMechanism(func() (*hmacdrbg.Mechanism, error) { return hmacdrbg.New(hmacdrbg.SHA224) }))
}

// HmacSHA224PR returns a PRBuilder for a prediction-resistant HMAC_DRBG
// instance over HMAC-SHA-224.
func HmacSHA224PR() *PRBuilder {
	return newPRBuilder(wrapMechanism(func() (*hmacdrbg.Mechanism, error) { return hmacdrbg.New(hmacdrbg.SHA224) }))
}

// HmacSHA256 returns a Builder for a non-prediction-resistant HMAC_DRBG
// instance over HMAC-SHA-256.
func HmacSHA256() *Builder {
	return newBuilder(wrapMechanism(func() (*hmacdrbg.Mechanism, error) { return hmacdrbg.New(hmacdrbg.SHA256) }))
}

// HmacSHA256PR returns a PRBuilder for a prediction-resistant HMAC_DRBG
// instance over HMAC-SHA-256.
func HmacSHA256PR() *PRBuilder {
	return newPRBuilder(wrapMechanism(func() (*hmacdrbg.Mechanism, error) { return hmacdrbg.New(hmacdrbg.SHA256) }))
}

// HmacSHA384 returns a Builder for a non-prediction-resistant HMAC_DRBG
// instance over HMAC-SHA-384.
func HmacSHA384() *Builder {
	return newBuilder(wrapMechanism(func() (*hmacdrbg.Mechanism, error) { return hmacdrbg.New(hmacdrbg.SHA384) }))
}

// HmacSHA384PR returns a PRBuilder for a prediction-resistant HMAC_DRBG
// instance over HMAC-SHA-384.
func HmacSHA384PR() *PRBuilder {
	return newPRBuilder(wrapMechanism(func() (*hmacdrbg.Mechanism, error) { return hmacdrbg.New(hmacdrbg.SHA384) }))
}

// HmacSHA512 returns a Builder for a non-prediction-resistant HMAC_DRBG
// instance over HMAC-SHA-512.
func HmacSHA512() *Builder {
	return newBuilder(wrapMechanism(func() (*hmacdrbg.Mechanism, error) { return hmacdrbg.New(hmacdrbg.SHA512) }))
}

// HmacSHA512PR returns a PRBuilder for a prediction-resistant HMAC_DRBG
// instance over HMAC-SHA-512.
func HmacSHA512PR() *PRBuilder {
	return newPRBuilder(wrapMechanism(func() (*hmacdrbg.Mechanism, error) { return hmacdrbg.New(hmacdrbg.SHA512) }))
}

// HmacSHA512_224 returns a Builder for a non-prediction-resistant
// HMAC_DRBG instance over HMAC-SHA-512/224.
func HmacSHA512_224() *Builder {
	return newBuilder(wrapMechanism(func() (*hmacdrbg.Mechanism, error) { return hmacdrbg.New(hmacdrbg.SHA512_224) }))
}

// HmacSHA512_224PR returns a PRBuilder for a prediction-resistant
// HMAC_DRBG instance over HMAC-SHA-512/224.
func HmacSHA512_224PR() *PRBuilder {
	return newPRBuilder(wrapMechanism(func() (*hmacdrbg.Mechanism, error) { return hmacdrbg.New(hmacdrbg.SHA512_224) }))
}

// HmacSHA512_256 returns a Builder for a non-prediction-resistant
// HMAC_DRBG instance over HMAC-SHA-512/256.
func HmacSHA512_256() *Builder {
	return newBuilder(wrapMechanism(func() (*hmacdrbg.Mechanism, error) { return hmacdrbg.New(hmacdrbg.SHA512_256) }))
}

// HmacSHA512_256PR returns a PRBuilder for a prediction-resistant
// HMAC_DRBG instance over HMAC-SHA-512/256.
func HmacSHA512_256PR() *PRBuilder {
	return newPRBuilder(wrapMechanism(func() (*hmacdrbg.Mechanism, error) { return hmacdrbg.New(hmacdrbg.SHA512_256) }))
}
