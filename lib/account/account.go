// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package account

import (
	"context"
	"fmt"

	"github.com/skyvault-io/skyvault/api"
)

// Account is an immutable snapshot of one identity's session state.
// Updates go through the With methods, which return a new value with
// selected fields replaced — there is no in-place mutation. The
// Manager stores accounts by value, so handing one out can never alias
// registry state.
type Account struct {
	// User is the identity record fetched from the service, including
	// the auth material needed to act as this user.
	User api.UserInfo

	// WorkingDir is the current remote working directory. Always an
	// absolute, normalized slash path.
	WorkingDir string

	// EncryptKey and Salt are the optional content-encryption
	// settings for this account. Empty means uploads are stored in
	// the clear. See lib/filecrypt for how the key is derived.
	EncryptKey string
	Salt       string
}

// New wraps a freshly fetched identity in an Account with default
// session state: working directory "/" and no encryption settings.
func New(user api.UserInfo) Account {
	return Account{User: user, WorkingDir: "/"}
}

// Login authenticates raw credentials against the service and returns
// the resulting identity as a fresh Account. Invalid credentials
// surface as the client's *api.APIError.
func Login(ctx context.Context, client *api.Client, credentials api.Credentials) (Account, error) {
	user, err := client.Login(ctx, credentials)
	if err != nil {
		return Account{}, fmt.Errorf("account: login: %w", err)
	}
	return New(user), nil
}

// ID returns the stable numeric id of the account's identity.
func (a Account) ID() api.UserID {
	return a.User.ID
}

// Session derives an authenticated API session from the account's
// stored auth material. Returns ErrMissingAuth when the account has
// none (an identity that was persisted before its auth was known, or
// hand-edited state).
func (a Account) Session(client *api.Client) (*api.Session, error) {
	if !a.User.Auth.Valid() {
		return nil, fmt.Errorf("%w: user %d", ErrMissingAuth, a.User.ID)
	}
	session, err := client.Session(a.User.Auth)
	if err != nil {
		return nil, fmt.Errorf("account: derive session for user %d: %w", a.User.ID, err)
	}
	return session, nil
}

// WithUser returns a copy of the account with the identity record
// replaced. Local session state (working directory, encryption
// settings) is carried over unchanged — this is the refresh path.
func (a Account) WithUser(user api.UserInfo) Account {
	a.User = user
	return a
}

// WithWorkingDir returns a copy of the account with the working
// directory replaced.
func (a Account) WithWorkingDir(dir string) Account {
	a.WorkingDir = dir
	return a
}

// WithEncryption returns a copy of the account with the encryption
// settings replaced. Empty values clear them.
func (a Account) WithEncryption(key, salt string) Account {
	a.EncryptKey = key
	a.Salt = salt
	return a
}
