// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skyvault-io/skyvault/api"
)

// testUser builds an identity record with enough auth material to
// derive a session.
func testUser(id api.UserID, name string) api.UserInfo {
	return api.UserInfo{
		ID:   id,
		Name: name,
		Auth: api.Auth{Token: "token-" + name},
		Quota: api.Quota{
			Total: 1 << 40,
			Used:  1 << 20,
		},
		Products: []api.Product{{Name: "premium", Expires: 1790000000}},
	}
}

// testClient returns an api.Client pointed at an httptest server that
// serves /v1/user/info with the given identity and counts calls.
func testClient(t *testing.T, user api.UserInfo, calls *int) *api.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/v1/user/info" {
			writer.WriteHeader(http.StatusNotFound)
			return
		}
		if calls != nil {
			*calls++
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(map[string]any{
			"id":       user.ID,
			"name":     user.Name,
			"quota":    map[string]any{"total": user.Quota.Total, "used": user.Quota.Used},
			"products": user.Products,
		})
	}))
	t.Cleanup(server.Close)

	client, err := api.NewClient(api.ClientConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNew(t *testing.T) {
	account := New(testUser(1, "alice"))

	if account.WorkingDir != "/" {
		t.Errorf("WorkingDir = %q, want /", account.WorkingDir)
	}
	if account.EncryptKey != "" || account.Salt != "" {
		t.Error("fresh account has encryption settings")
	}
	if account.ID() != 1 {
		t.Errorf("ID = %d, want 1", account.ID())
	}
}

func TestWithMethods(t *testing.T) {
	original := New(testUser(1, "alice")).
		WithWorkingDir("/backups").
		WithEncryption("passphrase", "salt")

	t.Run("WithUser preserves session state", func(t *testing.T) {
		updated := original.WithUser(testUser(1, "alice-renamed"))

		if updated.User.Name != "alice-renamed" {
			t.Errorf("User.Name = %q, want alice-renamed", updated.User.Name)
		}
		if updated.WorkingDir != "/backups" {
			t.Errorf("WorkingDir = %q, want /backups", updated.WorkingDir)
		}
		if updated.EncryptKey != "passphrase" || updated.Salt != "salt" {
			t.Error("encryption settings not preserved")
		}
	})

	t.Run("original is unchanged", func(t *testing.T) {
		updated := original.WithWorkingDir("/elsewhere")

		if original.WorkingDir != "/backups" {
			t.Errorf("original mutated: WorkingDir = %q", original.WorkingDir)
		}
		if updated.WorkingDir != "/elsewhere" {
			t.Errorf("updated WorkingDir = %q, want /elsewhere", updated.WorkingDir)
		}
	})

	t.Run("WithEncryption clears with empty values", func(t *testing.T) {
		cleared := original.WithEncryption("", "")
		if cleared.EncryptKey != "" || cleared.Salt != "" {
			t.Error("encryption settings not cleared")
		}
	})
}

func TestAccountSession(t *testing.T) {
	client := testClient(t, testUser(1, "alice"), nil)

	t.Run("with auth", func(t *testing.T) {
		account := New(testUser(1, "alice"))
		session, err := account.Session(client)
		if err != nil {
			t.Fatalf("Session: %v", err)
		}
		if session == nil {
			t.Fatal("Session returned nil")
		}
	})

	t.Run("missing auth", func(t *testing.T) {
		user := testUser(1, "alice")
		user.Auth = api.Auth{}
		account := New(user)

		_, err := account.Session(client)
		if !errors.Is(err, ErrMissingAuth) {
			t.Errorf("error = %v, want ErrMissingAuth", err)
		}
	})
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/v1/auth/login" {
			writer.WriteHeader(http.StatusNotFound)
			return
		}
		writer.Header().Set("Content-Type", "application/json")
		json.NewEncoder(writer).Encode(map[string]any{
			"user": map[string]any{
				"id":    42,
				"name":  "dana",
				"quota": map[string]any{"total": 100, "used": 1},
			},
			"session_token": "sess-1",
		})
	}))
	defer server.Close()

	client, err := api.NewClient(api.ClientConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	account, err := Login(context.Background(), client, api.Credentials{Token: "cred-1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if account.ID() != 42 {
		t.Errorf("ID = %d, want 42", account.ID())
	}
	if account.WorkingDir != "/" {
		t.Errorf("WorkingDir = %q, want /", account.WorkingDir)
	}
	if !account.User.Auth.Valid() {
		t.Error("login did not attach auth material")
	}
}
