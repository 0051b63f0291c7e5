// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Skyvault's standard CBOR encoding configuration.
//
// Skyvault uses two serialization formats with a clear boundary:
//
//   - JSON for external interfaces: the cloud-storage HTTP API and CLI
//     --json output.
//   - CBOR for internal state: the on-disk account registry snapshot.
//
// This package provides the shared CBOR encoding and decoding modes so
// that every Skyvault package encodes identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes, which keeps snapshot checksums stable across re-saves of
// unchanged registries.
//
// Unknown fields are ignored on decode so that older binaries can read
// snapshots written by newer ones, within the same snapshot version.
package codec
