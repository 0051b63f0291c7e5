// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the Skyvault CLI.
//
// Configuration is resolved in three layers, later layers overriding
// earlier ones:
//
//  1. built-in defaults rooted at ~/.config/skyvault
//  2. the YAML config file named by SKYVAULT_CONFIG (optional)
//  3. SKYVAULT_* environment variables
//
// The CLI must work with no config file at all — a fresh install has
// nothing on disk, and the account registry creates its own state.
package config
