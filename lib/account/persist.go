// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package account

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/skyvault-io/skyvault/api"
	"github.com/skyvault-io/skyvault/lib/codec"
)

// snapshotVersion is the current snapshot payload version. Version 1
// stored each user's products as a generic key/value map; version 2
// stores a flat product list. See migrate.go for the upgrade path.
const snapshotVersion = 2

// snapshotEnvelope is the outer structure of the snapshot file: an
// explicit version, a BLAKE3 checksum of the payload, and the payload
// itself as raw CBOR so decoding can be dispatched on the version.
type snapshotEnvelope struct {
	Version int              `cbor:"version"`
	Sum     []byte           `cbor:"sum"`
	Payload codec.RawMessage `cbor:"payload"`
}

// snapshotV2 is the current payload shape.
type snapshotV2 struct {
	Accounts map[api.UserID]accountRecord `cbor:"accounts"`
	Active   api.UserID                   `cbor:"active,omitempty"`
	DataPath string                       `cbor:"data_path,omitempty"`
}

// accountRecord is the persisted form of one Account.
type accountRecord struct {
	User       api.UserInfo `cbor:"user"`
	WorkingDir string       `cbor:"working_dir"`
	EncryptKey string       `cbor:"encrypt_key,omitempty"`
	Salt       string       `cbor:"salt,omitempty"`
}

// Load deserializes a registry from path and runs the migration pass.
// It never fails: any read, decode, checksum, or migration error
// yields a brand-new empty registry bound to path, so corrupted local
// state can never block startup. The failure is logged, not returned —
// the cost is silent loss of the unreadable state.
func Load(ctx context.Context, path string, options Options) *Manager {
	manager := NewManager(path, options)
	if err := manager.loadSnapshot(ctx, path); err != nil {
		manager.logger.Warn("account registry unreadable, starting empty",
			"path", path,
			"error", err,
		)
		return NewManager(path, options)
	}
	return manager
}

// Save serializes the registry to the given path, or to the stored
// data path when none is given. The parent directory is created if
// necessary. The write is a whole-file overwrite and is not atomic —
// a crash mid-write corrupts the snapshot, which the next Load treats
// as empty. Returns ErrNoDataPath when no path is available; I/O
// errors propagate. At most one path may be passed.
func (m *Manager) Save(path ...string) error {
	target := m.dataPath
	if len(path) > 0 && path[0] != "" {
		target = path[0]
	}
	if target == "" {
		return ErrNoDataPath
	}

	payload, err := codec.Marshal(m.snapshot())
	if err != nil {
		return fmt.Errorf("account: encode snapshot payload: %w", err)
	}
	sum := blake3.Sum256(payload)

	data, err := codec.Marshal(snapshotEnvelope{
		Version: snapshotVersion,
		Sum:     sum[:],
		Payload: payload,
	})
	if err != nil {
		return fmt.Errorf("account: encode snapshot envelope: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o700); err != nil {
		return fmt.Errorf("account: create snapshot directory: %w", err)
	}
	// 0600: the snapshot contains credential tokens.
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("account: write snapshot: %w", err)
	}
	return nil
}

// snapshot captures the registry state as the current payload shape.
func (m *Manager) snapshot() snapshotV2 {
	records := make(map[api.UserID]accountRecord, len(m.accounts))
	for id, account := range m.accounts {
		records[id] = accountRecord{
			User:       account.User,
			WorkingDir: account.WorkingDir,
			EncryptKey: account.EncryptKey,
			Salt:       account.Salt,
		}
	}
	return snapshotV2{
		Accounts: records,
		Active:   m.active,
		DataPath: m.dataPath,
	}
}

// recordAccount is the inverse of the snapshot mapping: it rebuilds an
// Account from its stored record.
func recordAccount(record accountRecord) Account {
	return Account{
		User:       record.User,
		WorkingDir: record.WorkingDir,
		EncryptKey: record.EncryptKey,
		Salt:       record.Salt,
	}
}

// loadSnapshot reads, verifies, and decodes the snapshot at path into
// the registry, then runs the migration pass. Any error leaves the
// caller to fall back to an empty registry.
func (m *Manager) loadSnapshot(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var envelope snapshotEnvelope
	if err := codec.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("account: decode snapshot envelope: %w", err)
	}

	sum := blake3.Sum256(envelope.Payload)
	if !bytes.Equal(sum[:], envelope.Sum) {
		return fmt.Errorf("account: snapshot checksum mismatch")
	}

	legacy, err := m.decodePayload(envelope.Version, envelope.Payload)
	if err != nil {
		return err
	}

	return m.migrate(ctx, path, legacy)
}
