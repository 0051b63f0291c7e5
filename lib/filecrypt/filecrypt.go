// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package filecrypt

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/pbkdf2"
)

// KeySize is the size of a derived content-encryption key.
const KeySize = 32

// iterations is the PBKDF2 round count. Fixed: raising it would derive
// a different key from the same passphrase and orphan existing
// ciphertext.
const iterations = 60000

// Key is a derived content-encryption key.
type Key [KeySize]byte

// DeriveKey derives the content-encryption key for an account from its
// stored passphrase and salt (PBKDF2-SHA256). The passphrase must be
// non-empty; the salt may be empty, in which case a fixed domain string
// stands in so that derivation still succeeds deterministically.
func DeriveKey(passphrase, salt string) (Key, error) {
	if passphrase == "" {
		return Key{}, fmt.Errorf("filecrypt: empty passphrase")
	}
	if salt == "" {
		salt = "skyvault.filecrypt.v1"
	}

	var key Key
	copy(key[:], pbkdf2.Key([]byte(passphrase), []byte(salt), iterations, KeySize, sha256.New))
	return key, nil
}

// Fingerprint returns a short hex identifier for a key, safe to print.
// It is a truncated BLAKE3 hash of the key bytes — displaying it never
// reveals the key, but lets the user check which passphrase is active.
func Fingerprint(key Key) string {
	sum := blake3.Sum256(key[:])
	return hex.EncodeToString(sum[:6])
}
