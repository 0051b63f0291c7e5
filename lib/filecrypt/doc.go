// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

// Package filecrypt derives content-encryption keys from the
// per-account encryption passphrase and salt stored in the registry.
//
// The derived key encrypts file content before upload; the vault only
// ever sees ciphertext. This package owns the derivation parameters so
// that every upload and download path produces the same key from the
// same passphrase/salt pair. Changing the parameters invalidates all
// previously encrypted content, so they are fixed constants.
package filecrypt
