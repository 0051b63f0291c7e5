// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

// Skyvault is the CLI for the Skyvault cloud storage service. It
// provides subcommands for user registration and switching (user),
// identity inspection (whoami), remote session navigation (cd, pwd),
// and file encryption key management (encrypt-key).
package main
