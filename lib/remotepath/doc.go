// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

// Package remotepath manipulates paths in the remote vault namespace.
//
// Remote paths are always slash-separated and absolute, independent of
// the local operating system. This package must be used instead of
// path/filepath for anything that names a remote file or directory —
// filepath would produce backslash paths on Windows.
package remotepath
