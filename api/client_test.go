// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestNewClient(t *testing.T) {
	t.Run("valid URL", func(t *testing.T) {
		client, err := NewClient(ClientConfig{BaseURL: "https://api.skyvault.io"})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if client == nil {
			t.Fatal("NewClient returned nil")
		}
	})

	t.Run("empty URL", func(t *testing.T) {
		_, err := NewClient(ClientConfig{})
		if err == nil {
			t.Fatal("expected error for empty URL")
		}
	})

	t.Run("invalid URL", func(t *testing.T) {
		_, err := NewClient(ClientConfig{BaseURL: "://invalid"})
		if err == nil {
			t.Fatal("expected error for invalid URL")
		}
	})
}

func TestLogin(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/v1/auth/login" {
				t.Errorf("unexpected path: %s", request.URL.Path)
				writer.WriteHeader(http.StatusNotFound)
				return
			}

			var body map[string]any
			if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode request body: %v", err)
			}
			if body["token"] != "cred-token-1" {
				t.Errorf("unexpected token: %v", body["token"])
			}

			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(map[string]any{
				"user": map[string]any{
					"id":    70001,
					"name":  "alice",
					"quota": map[string]any{"total": 2199023255552, "used": 1024},
					"products": []map[string]any{
						{"name": "premium", "expires": 1790000000},
					},
				},
				"session_token": "sess-abc",
			})
		}))
		defer server.Close()

		client, err := NewClient(ClientConfig{BaseURL: server.URL})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}

		user, err := client.Login(context.Background(), Credentials{Token: "cred-token-1"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		if user.ID != 70001 {
			t.Errorf("user ID = %d, want 70001", user.ID)
		}
		if user.Name != "alice" {
			t.Errorf("user name = %q, want alice", user.Name)
		}
		if user.Auth.Token != "cred-token-1" {
			t.Errorf("auth token not carried: %q", user.Auth.Token)
		}
		if user.Auth.SessionToken != "sess-abc" {
			t.Errorf("session token not carried: %q", user.Auth.SessionToken)
		}
		if len(user.Products) != 1 || user.Products[0].Name != "premium" {
			t.Errorf("products not parsed: %+v", user.Products)
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(writer).Encode(map[string]any{
				"errno":  ErrCodeInvalidCredentials,
				"errmsg": "credential token rejected",
			})
		}))
		defer server.Close()

		client, err := NewClient(ClientConfig{BaseURL: server.URL})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}

		_, err = client.Login(context.Background(), Credentials{Token: "expired"})
		if err == nil {
			t.Fatal("expected error for rejected credentials")
		}
		if !IsAPIError(err, ErrCodeInvalidCredentials) {
			t.Errorf("error is not an invalid-credentials APIError: %v", err)
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("error is not an *APIError: %v", err)
		}
		if apiErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("status code = %d, want 401", apiErr.StatusCode)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		client, err := NewClient(ClientConfig{BaseURL: "https://api.skyvault.io"})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if _, err := client.Login(context.Background(), Credentials{}); err == nil {
			t.Fatal("expected error for missing token")
		}
	})
}

func TestSessionUserInfo(t *testing.T) {
	t.Run("bearer token and auth carry-over", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/v1/user/info" {
				t.Errorf("unexpected path: %s", request.URL.Path)
				writer.WriteHeader(http.StatusNotFound)
				return
			}
			if got := request.Header.Get("Authorization"); got != "Bearer sess-abc" {
				t.Errorf("Authorization = %q, want Bearer sess-abc", got)
			}

			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(map[string]any{
				"id":       70001,
				"name":     "alice",
				"quota":    map[string]any{"total": 100, "used": 7},
				"products": []map[string]any{{"name": "premium"}},
			})
		}))
		defer server.Close()

		client, err := NewClient(ClientConfig{BaseURL: server.URL})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}

		auth := Auth{
			Token:        "cred-token-1",
			SessionToken: "sess-abc",
			Cookies:      map[string]string{"region": "eu-1"},
		}
		session, err := client.Session(auth)
		if err != nil {
			t.Fatalf("Session failed: %v", err)
		}

		user, err := session.UserInfo(context.Background())
		if err != nil {
			t.Fatalf("UserInfo failed: %v", err)
		}
		if user.ID != 70001 {
			t.Errorf("user ID = %d, want 70001", user.ID)
		}
		if !reflect.DeepEqual(user.Auth, auth) {
			t.Errorf("auth not re-attached to refreshed identity: %+v", user.Auth)
		}
	})

	t.Run("credential token fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if got := request.Header.Get("Authorization"); got != "Bearer cred-token-1" {
				t.Errorf("Authorization = %q, want Bearer cred-token-1", got)
			}
			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(map[string]any{"id": 1, "name": "a", "quota": map[string]any{}})
		}))
		defer server.Close()

		client, _ := NewClient(ClientConfig{BaseURL: server.URL})
		session, err := client.Session(Auth{Token: "cred-token-1"})
		if err != nil {
			t.Fatalf("Session failed: %v", err)
		}
		if _, err := session.UserInfo(context.Background()); err != nil {
			t.Fatalf("UserInfo failed: %v", err)
		}
	})

	t.Run("empty auth rejected", func(t *testing.T) {
		client, _ := NewClient(ClientConfig{BaseURL: "https://api.skyvault.io"})
		if _, err := client.Session(Auth{}); err == nil {
			t.Fatal("expected error for empty auth")
		}
	})
}
