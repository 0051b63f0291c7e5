// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package account

import "errors"

// Precondition errors. These signal that the caller invoked an
// operation in an invalid state; they abort the operation and are
// never silently recovered.
var (
	// ErrNoActiveUser is returned by operations that target the active
	// account when no active user is set (or the active id no longer
	// names a registered account).
	ErrNoActiveUser = errors.New("account: no active user")

	// ErrUnknownUser is returned when an explicit user id does not
	// name a registered account.
	ErrUnknownUser = errors.New("account: unknown user")

	// ErrNoDataPath is returned by Save when neither an explicit path
	// nor a stored data path is available.
	ErrNoDataPath = errors.New("account: no data path")

	// ErrMissingAuth is returned when an account has no auth material
	// to open an API session with.
	ErrMissingAuth = errors.New("account: missing auth material")
)
