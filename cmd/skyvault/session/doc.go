// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

// Package session implements the commands that act on the active
// user's session state: whoami, cd, pwd, and encrypt-key.
package session
