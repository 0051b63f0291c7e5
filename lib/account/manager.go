// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skyvault-io/skyvault/api"
	"github.com/skyvault-io/skyvault/lib/remotepath"
)

// Options configures a Manager.
type Options struct {
	// Client is the API client used to authenticate credentials and
	// re-fetch identities. Required for Refresh and for snapshot
	// migration; a Manager without one can still do purely local
	// operations.
	Client *api.Client

	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger

	// DefaultDataPath is the process-wide default snapshot location
	// (from lib/config). Migration rebinds the registry to it when
	// the stored data path is absent or no longer exists on disk. If
	// empty, the load path stands in.
	DefaultDataPath string
}

// Manager is the registry of accounts: a keyed collection plus the
// active-user pointer and the snapshot path. All methods are
// synchronous and the Manager is not safe for concurrent use — the
// CLI is single-threaded and exactly one Manager exists per process.
type Manager struct {
	accounts map[api.UserID]Account
	active   api.UserID // 0 = none
	dataPath string

	client          *api.Client
	logger          *slog.Logger
	defaultDataPath string
}

// NewManager creates an empty registry bound to dataPath.
func NewManager(dataPath string, options Options) *Manager {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		accounts:        make(map[api.UserID]Account),
		dataPath:        dataPath,
		client:          options.Client,
		logger:          logger,
		defaultDataPath: options.DefaultDataPath,
	}
}

// Accounts returns a snapshot of all registered accounts. Order is
// unspecified.
func (m *Manager) Accounts() []Account {
	accounts := make([]Account, 0, len(m.accounts))
	for _, account := range m.accounts {
		accounts = append(accounts, account)
	}
	return accounts
}

// Who returns the account for the given user id, or for the active
// user when no id is given. The second return is false when no active
// user is set or the id is unregistered. At most one id may be passed.
func (m *Manager) Who(id ...api.UserID) (Account, bool) {
	target := m.active
	if len(id) > 0 {
		target = id[0]
	}
	if target == 0 {
		return Account{}, false
	}
	account, ok := m.accounts[target]
	return account, ok
}

// ActiveID returns the active user id, or false when none is set.
func (m *Manager) ActiveID() (api.UserID, bool) {
	return m.active, m.active != 0
}

// DataPath returns the snapshot path the registry is bound to.
func (m *Manager) DataPath() string {
	return m.dataPath
}

// SwitchUser sets the active user. Returns ErrUnknownUser when id does
// not name a registered account.
func (m *Manager) SwitchUser(id api.UserID) error {
	if _, ok := m.accounts[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownUser, id)
	}
	m.active = id
	return nil
}

// AddUser inserts or overwrites the account for user's id with a fresh
// Account (working directory reset to "/", encryption cleared). This
// is the one operation that discards prior local session state for the
// id: it represents a fresh registration, not an update.
func (m *Manager) AddUser(user api.UserInfo) {
	m.accounts[user.ID] = New(user)
}

// RemoveUser deletes the account for id if present. When id is the
// active user, the active pointer is cleared.
func (m *Manager) RemoveUser(id api.UserID) {
	delete(m.accounts, id)
	if id == m.active {
		m.active = 0
	}
}

// SetEncryption replaces the active account's encryption settings.
// Returns ErrNoActiveUser when no active user is set or the active id
// is stale.
func (m *Manager) SetEncryption(key, salt string) error {
	account, ok := m.activeAccount()
	if !ok {
		return ErrNoActiveUser
	}
	m.accounts[account.ID()] = account.WithEncryption(key, salt)
	return nil
}

// ChangeDir resolves dir against the active account's working
// directory (supporting relative segments and "..") and replaces it.
// Returns ErrNoActiveUser under the same precondition as
// SetEncryption.
func (m *Manager) ChangeDir(dir string) error {
	account, ok := m.activeAccount()
	if !ok {
		return ErrNoActiveUser
	}
	m.accounts[account.ID()] = account.WithWorkingDir(remotepath.Join(account.WorkingDir, dir))
	return nil
}

// WorkingDir returns the active account's working directory. Returns
// ErrNoActiveUser under the same precondition as SetEncryption.
func (m *Manager) WorkingDir() (string, error) {
	account, ok := m.activeAccount()
	if !ok {
		return "", ErrNoActiveUser
	}
	return account.WorkingDir, nil
}

// Refresh re-fetches the identity record for the given user id (or the
// active user when no id is given) and replaces only the account's
// identity — working directory and encryption settings are preserved.
// An unset or unregistered target is a no-op. Network and auth
// failures propagate; the registry is left unchanged on error. At most
// one id may be passed.
func (m *Manager) Refresh(ctx context.Context, id ...api.UserID) error {
	target := m.active
	if len(id) > 0 {
		target = id[0]
	}
	account, ok := m.accounts[target]
	if !ok {
		return nil
	}

	if m.client == nil {
		return fmt.Errorf("account: refresh user %d: no API client configured", target)
	}
	session, err := account.Session(m.client)
	if err != nil {
		return err
	}
	user, err := session.UserInfo(ctx)
	if err != nil {
		return fmt.Errorf("account: refresh user %d: %w", target, err)
	}

	m.accounts[target] = account.WithUser(user)
	return nil
}

// activeAccount returns the active account when the active pointer is
// set and still names a registered account.
func (m *Manager) activeAccount() (Account, bool) {
	if m.active == 0 {
		return Account{}, false
	}
	account, ok := m.accounts[m.active]
	return account, ok
}
