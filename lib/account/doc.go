// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

// Package account is the local registry of Skyvault user identities.
//
// An [Account] is an immutable snapshot of one identity's session
// state: the identity record fetched from the service plus local-only
// state (remote working directory, optional content-encryption
// settings). A [Manager] keys accounts by their stable numeric user id,
// tracks which one is active, and persists the whole registry to a
// single CBOR snapshot file.
//
// Loading never fails: a missing, corrupt, or version-incompatible
// snapshot yields an empty registry bound to the same path, so a broken
// state file can never block the CLI from starting. The cost is silent
// loss of the unreadable state — an accepted tradeoff for this class of
// tool. Older snapshot versions are upgraded in place at load time by
// re-fetching each identity from the service.
//
// The registry is single-threaded by design. Exactly one Manager per
// process, no internal locking, and no protection against concurrent
// processes clobbering each other's snapshot writes.
package account
