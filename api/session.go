// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Session is an authenticated handle on the Skyvault service for one
// user. Sessions are lightweight and safe to create per operation.
type Session struct {
	client *Client
	auth   Auth
}

// Auth returns the auth material backing this session.
func (s *Session) Auth() Auth {
	return s.auth
}

// UserInfo re-fetches the identity record of the session's user. The
// returned UserInfo carries the session's own auth material, so the
// result can replace a stored identity without losing the ability to
// reconnect.
func (s *Session) UserInfo(ctx context.Context) (UserInfo, error) {
	body, err := s.client.doRequest(ctx, http.MethodGet, "/v1/user/info", s.bearerToken(), nil)
	if err != nil {
		return UserInfo{}, fmt.Errorf("api: user info failed: %w", err)
	}

	var payload userPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return UserInfo{}, fmt.Errorf("api: failed to parse user info response: %w", err)
	}

	return UserInfo{
		ID:       payload.ID,
		Name:     payload.Name,
		Quota:    payload.Quota,
		Products: payload.Products,
		Auth:     s.auth,
	}, nil
}

// bearerToken returns the token to present on authenticated calls.
// Deployments that grant session tokens use those; otherwise the
// credential token itself authenticates.
func (s *Session) bearerToken() string {
	if s.auth.SessionToken != "" {
		return s.auth.SessionToken
	}
	return s.auth.Token
}
