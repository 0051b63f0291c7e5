// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package account

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/skyvault-io/skyvault/api"
)

// newTestManager returns an empty registry with two registered users,
// alice (1) active.
func newTestManager(t *testing.T, options Options) *Manager {
	t.Helper()
	manager := NewManager("", options)
	manager.AddUser(testUser(1, "alice"))
	manager.AddUser(testUser(2, "bob"))
	if err := manager.SwitchUser(1); err != nil {
		t.Fatalf("SwitchUser: %v", err)
	}
	return manager
}

func TestAccounts(t *testing.T) {
	manager := newTestManager(t, Options{})

	accounts := manager.Accounts()
	if len(accounts) != 2 {
		t.Fatalf("len(Accounts()) = %d, want 2", len(accounts))
	}

	ids := map[api.UserID]bool{}
	for _, account := range accounts {
		ids[account.ID()] = true
	}
	if !ids[1] || !ids[2] {
		t.Errorf("unexpected account ids: %v", ids)
	}
}

func TestWho(t *testing.T) {
	manager := newTestManager(t, Options{})

	t.Run("active user", func(t *testing.T) {
		account, ok := manager.Who()
		if !ok || account.ID() != 1 {
			t.Errorf("Who() = (%v, %v), want alice", account.ID(), ok)
		}
	})

	t.Run("explicit id", func(t *testing.T) {
		account, ok := manager.Who(2)
		if !ok || account.ID() != 2 {
			t.Errorf("Who(2) = (%v, %v), want bob", account.ID(), ok)
		}
	})

	t.Run("unregistered id", func(t *testing.T) {
		if _, ok := manager.Who(99); ok {
			t.Error("Who(99) found an account")
		}
	})

	t.Run("no active user", func(t *testing.T) {
		empty := NewManager("", Options{})
		if _, ok := empty.Who(); ok {
			t.Error("Who() on empty registry found an account")
		}
	})
}

func TestSwitchUser(t *testing.T) {
	manager := newTestManager(t, Options{})

	if err := manager.SwitchUser(2); err != nil {
		t.Fatalf("SwitchUser(2): %v", err)
	}
	if account, _ := manager.Who(); account.ID() != 2 {
		t.Errorf("active = %d, want 2", account.ID())
	}

	err := manager.SwitchUser(99)
	if !errors.Is(err, ErrUnknownUser) {
		t.Errorf("SwitchUser(99) = %v, want ErrUnknownUser", err)
	}
	if account, _ := manager.Who(); account.ID() != 2 {
		t.Error("failed switch changed the active user")
	}
}

func TestAddUserResetsSessionState(t *testing.T) {
	manager := newTestManager(t, Options{})
	if err := manager.ChangeDir("/backups"); err != nil {
		t.Fatalf("ChangeDir: %v", err)
	}
	if err := manager.SetEncryption("key", "salt"); err != nil {
		t.Fatalf("SetEncryption: %v", err)
	}

	// Re-registering the same id is a fresh registration: prior local
	// session state is deliberately discarded.
	manager.AddUser(testUser(1, "alice"))

	account, _ := manager.Who(1)
	if account.WorkingDir != "/" {
		t.Errorf("WorkingDir = %q, want /", account.WorkingDir)
	}
	if account.EncryptKey != "" || account.Salt != "" {
		t.Error("encryption settings survived re-registration")
	}
}

func TestRemoveUser(t *testing.T) {
	t.Run("removing the active user clears the pointer", func(t *testing.T) {
		manager := newTestManager(t, Options{})
		manager.RemoveUser(1)

		if _, ok := manager.Who(); ok {
			t.Error("Who() found an account after removing the active user")
		}
		if _, ok := manager.Who(1); ok {
			t.Error("removed account still registered")
		}
	})

	t.Run("removing another user leaves the pointer", func(t *testing.T) {
		manager := newTestManager(t, Options{})
		manager.RemoveUser(2)

		account, ok := manager.Who()
		if !ok || account.ID() != 1 {
			t.Errorf("active after removal = (%v, %v), want alice", account.ID(), ok)
		}
	})

	t.Run("removing an unregistered id is a no-op", func(t *testing.T) {
		manager := newTestManager(t, Options{})
		manager.RemoveUser(99)
		if len(manager.Accounts()) != 2 {
			t.Error("removal of unregistered id changed the registry")
		}
	})
}

func TestSetEncryption(t *testing.T) {
	t.Run("changes only the active account", func(t *testing.T) {
		manager := newTestManager(t, Options{})
		before, _ := manager.Who(2)

		if err := manager.SetEncryption("key", "salt"); err != nil {
			t.Fatalf("SetEncryption: %v", err)
		}

		active, _ := manager.Who(1)
		if active.EncryptKey != "key" || active.Salt != "salt" {
			t.Errorf("active encryption = (%q, %q)", active.EncryptKey, active.Salt)
		}
		if active.WorkingDir != "/" || active.User.Name != "alice" {
			t.Error("SetEncryption touched unrelated fields")
		}

		after, _ := manager.Who(2)
		if !reflect.DeepEqual(before, after) {
			t.Errorf("other account changed:\nbefore: %+v\nafter:  %+v", before, after)
		}
	})

	t.Run("no active user", func(t *testing.T) {
		manager := NewManager("", Options{})
		if err := manager.SetEncryption("key", "salt"); !errors.Is(err, ErrNoActiveUser) {
			t.Errorf("error = %v, want ErrNoActiveUser", err)
		}
	})

	t.Run("stale active pointer", func(t *testing.T) {
		manager := newTestManager(t, Options{})
		manager.RemoveUser(1)
		// RemoveUser clears the pointer; recreate staleness directly.
		manager.active = 1
		if err := manager.SetEncryption("key", "salt"); !errors.Is(err, ErrNoActiveUser) {
			t.Errorf("error = %v, want ErrNoActiveUser", err)
		}
	})
}

func TestChangeDir(t *testing.T) {
	tests := []struct {
		name  string
		start string
		arg   string
		want  string
	}{
		{"relative", "/a", "c", "/a/c"},
		{"parent", "/a/b", "..", "/a"},
		{"absolute", "/a/b", "/x", "/x"},
		{"past the root", "/", "../..", "/"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			manager := newTestManager(t, Options{})
			if err := manager.ChangeDir(test.start); err != nil {
				t.Fatalf("ChangeDir(%q): %v", test.start, err)
			}
			if err := manager.ChangeDir(test.arg); err != nil {
				t.Fatalf("ChangeDir(%q): %v", test.arg, err)
			}

			dir, err := manager.WorkingDir()
			if err != nil {
				t.Fatalf("WorkingDir: %v", err)
			}
			if dir != test.want {
				t.Errorf("WorkingDir = %q, want %q", dir, test.want)
			}
		})
	}

	t.Run("no active user", func(t *testing.T) {
		manager := NewManager("", Options{})
		if err := manager.ChangeDir("/x"); !errors.Is(err, ErrNoActiveUser) {
			t.Errorf("error = %v, want ErrNoActiveUser", err)
		}
		if _, err := manager.WorkingDir(); !errors.Is(err, ErrNoActiveUser) {
			t.Errorf("WorkingDir error = %v, want ErrNoActiveUser", err)
		}
	})
}

func TestRefresh(t *testing.T) {
	t.Run("replaces identity, preserves session state", func(t *testing.T) {
		refreshed := testUser(1, "alice-renamed")
		calls := 0
		client := testClient(t, refreshed, &calls)

		manager := newTestManager(t, Options{Client: client})
		if err := manager.ChangeDir("/backups"); err != nil {
			t.Fatalf("ChangeDir: %v", err)
		}
		if err := manager.SetEncryption("key", "salt"); err != nil {
			t.Fatalf("SetEncryption: %v", err)
		}

		if err := manager.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh: %v", err)
		}
		if calls != 1 {
			t.Errorf("fetch count = %d, want 1", calls)
		}

		account, _ := manager.Who(1)
		if account.User.Name != "alice-renamed" {
			t.Errorf("identity not replaced: %q", account.User.Name)
		}
		if account.WorkingDir != "/backups" {
			t.Errorf("WorkingDir = %q, want /backups", account.WorkingDir)
		}
		if account.EncryptKey != "key" || account.Salt != "salt" {
			t.Error("encryption settings not preserved")
		}
		if !account.User.Auth.Valid() {
			t.Error("refreshed identity lost its auth material")
		}

		// The other account is untouched.
		other, _ := manager.Who(2)
		if other.User.Name != "bob" {
			t.Errorf("other account changed: %q", other.User.Name)
		}
	})

	t.Run("explicit id", func(t *testing.T) {
		calls := 0
		client := testClient(t, testUser(2, "bob-renamed"), &calls)
		manager := newTestManager(t, Options{Client: client})

		if err := manager.Refresh(context.Background(), 2); err != nil {
			t.Fatalf("Refresh(2): %v", err)
		}
		account, _ := manager.Who(2)
		if account.User.Name != "bob-renamed" {
			t.Errorf("identity not replaced: %q", account.User.Name)
		}
	})

	t.Run("unregistered id is a no-op", func(t *testing.T) {
		calls := 0
		client := testClient(t, testUser(1, "alice"), &calls)
		manager := newTestManager(t, Options{Client: client})

		if err := manager.Refresh(context.Background(), 99); err != nil {
			t.Fatalf("Refresh(99): %v", err)
		}
		if calls != 0 {
			t.Errorf("fetch count = %d, want 0", calls)
		}
	})

	t.Run("no active user is a no-op", func(t *testing.T) {
		manager := NewManager("", Options{})
		if err := manager.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh: %v", err)
		}
	})

	t.Run("missing auth propagates", func(t *testing.T) {
		client := testClient(t, testUser(1, "alice"), nil)
		manager := NewManager("", Options{Client: client})
		user := testUser(1, "alice")
		user.Auth = api.Auth{}
		manager.AddUser(user)

		if err := manager.Refresh(context.Background(), 1); !errors.Is(err, ErrMissingAuth) {
			t.Errorf("error = %v, want ErrMissingAuth", err)
		}
	})
}
