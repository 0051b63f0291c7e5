// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-tree infrastructure for the
// skyvault binary: command dispatch with help output and typo
// suggestions, tag-driven flag binding over spf13/pflag, and the
// shared plumbing that opens the account registry for commands.
package cli
