// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
)

// APIError represents a structured error response from the Skyvault
// service. Callers can use errors.As to extract the structured
// information:
//
//	var apiErr *api.APIError
//	if errors.As(err, &apiErr) {
//	    if apiErr.Code == api.ErrCodeInvalidCredentials { ... }
//	}
type APIError struct {
	// Code is the service error number (e.g., 4 for bad credentials).
	Code int `json:"errno"`
	// Message is the human-readable description from the server.
	Message string `json:"errmsg"`
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: errno %d (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Service error numbers the CLI distinguishes.
const (
	ErrCodeInvalidCredentials = 4
	ErrCodeSessionExpired     = 6
	ErrCodeRateLimited        = 31
	ErrCodeServerFault        = 2
)

// IsAPIError checks whether err is an *APIError with the given code.
func IsAPIError(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}
