// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package api

// UserID is the stable numeric identifier the service assigns to a
// user. It never changes for the lifetime of the account and is the
// key under which the local registry stores accounts.
type UserID int64

// Auth is the auth material for one signed-in user: the long-lived
// credential token plus the session token granted at login. The
// service never echoes auth material back; the client attaches it to
// the identities it returns so that a stored identity is sufficient to
// reconstruct a session later.
type Auth struct {
	// Token is the long-lived credential token (the secret the user
	// pastes in at registration).
	Token string `json:"token,omitempty"`

	// SessionToken is the short-lived bearer token granted at login.
	SessionToken string `json:"session_token,omitempty"`

	// Cookies are extra service cookies some deployments require
	// alongside the token.
	Cookies map[string]string `json:"cookies,omitempty"`
}

// Valid reports whether the auth material is sufficient to open a
// session.
func (a Auth) Valid() bool {
	return a.Token != ""
}

// UserInfo is the identity record for one user: the stable id, profile
// metadata, and the auth material needed to act as that user. This is
// what the registry persists per account.
type UserInfo struct {
	ID       UserID    `json:"id"`
	Name     string    `json:"name"`
	Auth     Auth      `json:"auth,omitempty"`
	Quota    Quota     `json:"quota"`
	Products []Product `json:"products,omitempty"`
}

// Quota is the storage quota of a user, in bytes.
type Quota struct {
	Total int64 `json:"total"`
	Used  int64 `json:"used"`
}

// Product is one service entitlement attached to a user (premium
// tiers, promotional capacity, and so on).
type Product struct {
	Name    string `json:"name"`
	Expires int64  `json:"expires,omitempty"` // unix seconds, 0 = never
}

// Credentials is what a user supplies to register an identity with the
// CLI: the credential token and optional cookies.
type Credentials struct {
	Token   string
	Cookies map[string]string
}

// userPayload is the wire shape of a user object in API responses.
// Identical to UserInfo minus auth, which the service never sends.
type userPayload struct {
	ID       UserID    `json:"id"`
	Name     string    `json:"name"`
	Quota    Quota     `json:"quota"`
	Products []Product `json:"products"`
}

// loginResponse is the wire shape of a successful login.
type loginResponse struct {
	User         userPayload `json:"user"`
	SessionToken string      `json:"session_token"`
}
