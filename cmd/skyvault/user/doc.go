// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

// Package user implements the "skyvault user" command group: adding,
// listing, removing, switching, and refreshing registered users.
package user
