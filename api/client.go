// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// maxResponseSize bounds API response body reads: 16 MB. Identity and
// quota payloads are tiny; the bound only guards against a misbehaving
// server exhausting memory.
const maxResponseSize int64 = 16 << 20

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the base URL of the Skyvault API endpoint
	// (e.g., "https://api.skyvault.io").
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient
	// is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Client is an unauthenticated Skyvault API client. It holds the
// endpoint URL and HTTP transport, shared across Sessions.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new unauthenticated Skyvault API client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}

	// Validate the URL structure. The string form (trailing slash
	// stripped) is stored and request URLs are built by concatenation.
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid BaseURL %q: %w", config.BaseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Login exchanges a credential token for the user's identity record,
// validating the token with the service. The returned UserInfo has its
// Auth field populated (credential token, granted session token,
// cookies), so it is sufficient to open a [Session] later.
func (c *Client) Login(ctx context.Context, credentials Credentials) (UserInfo, error) {
	if credentials.Token == "" {
		return UserInfo{}, fmt.Errorf("api: credential token is required for login")
	}

	request := map[string]any{"token": credentials.Token}
	if len(credentials.Cookies) > 0 {
		request["cookies"] = credentials.Cookies
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/login", "", request)
	if err != nil {
		return UserInfo{}, fmt.Errorf("api: login failed: %w", err)
	}

	var response loginResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return UserInfo{}, fmt.Errorf("api: failed to parse login response: %w", err)
	}

	c.logger.Info("logged in to skyvault",
		"user_id", response.User.ID,
		"user_name", response.User.Name,
	)

	return UserInfo{
		ID:       response.User.ID,
		Name:     response.User.Name,
		Quota:    response.User.Quota,
		Products: response.User.Products,
		Auth: Auth{
			Token:        credentials.Token,
			SessionToken: response.SessionToken,
			Cookies:      credentials.Cookies,
		},
	}, nil
}

// Session creates an authenticated session from stored auth material.
// This does NOT validate the auth — the first API call will fail if it
// is stale.
func (c *Client) Session(auth Auth) (*Session, error) {
	if !auth.Valid() {
		return nil, fmt.Errorf("api: auth material has no credential token")
	}
	return &Session{client: c, auth: auth}, nil
}

// doRequest performs an HTTP request against the service and returns
// the response body. On 2xx, returns the body. On 4xx/5xx, returns the
// body alongside an *APIError. sessionToken may be empty for
// unauthenticated endpoints.
func (c *Client) doRequest(ctx context.Context, method, path, sessionToken string, requestBody any) ([]byte, error) {
	requestURL := c.baseURL + path

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("api: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("api: failed to create request: %w", err)
	}

	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if sessionToken != "" {
		request.Header.Set("Authorization", "Bearer "+sessionToken)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("api: request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("api: failed to read response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	// All service error responses share the same JSON shape.
	var apiErr APIError
	if jsonErr := json.Unmarshal(responseBody, &apiErr); jsonErr != nil {
		// Non-JSON error body. Should not happen with a healthy
		// deployment — fail loud with the raw body.
		return nil, fmt.Errorf("api: unexpected %d response from %s %s: %s",
			response.StatusCode, method, path, string(responseBody))
	}
	apiErr.StatusCode = response.StatusCode

	return responseBody, &apiErr
}
