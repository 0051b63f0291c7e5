// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the HTTP client for the Skyvault cloud-storage
// service.
//
// A [Client] is an unauthenticated handle on the service: it knows the
// base URL and HTTP transport and can exchange a credential token for
// an identity via [Client.Login]. A [Session] wraps a Client with the
// auth material of one signed-in user and serves the authenticated
// endpoints ([Session.UserInfo]).
//
// The client performs no retries, backoff, or caching — callers decide
// how to handle transient failures. Service-level errors are returned
// as [*APIError] values; use errors.As to inspect the code.
package api
