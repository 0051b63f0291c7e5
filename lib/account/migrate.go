// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package account

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/skyvault-io/skyvault/api"
	"github.com/skyvault-io/skyvault/lib/codec"
)

// snapshotV1 is the payload shape written before the product list was
// flattened. It is kept decodable so old snapshots upgrade in place
// instead of being discarded.
type snapshotV1 struct {
	Accounts map[api.UserID]accountRecordV1 `cbor:"accounts"`
	Active   api.UserID                     `cbor:"active,omitempty"`
	DataPath string                         `cbor:"data_path,omitempty"`
}

type accountRecordV1 struct {
	User       userInfoV1 `cbor:"user"`
	WorkingDir string     `cbor:"working_dir"`
	EncryptKey string     `cbor:"encrypt_key,omitempty"`
	Salt       string     `cbor:"salt,omitempty"`
}

// userInfoV1 stored products as an open key/value mapping keyed by
// product name; the value layout varied by service deployment and was
// never interpreted locally, which is why version 2 replaced it with a
// flat list fetched fresh from the service.
type userInfoV1 struct {
	ID       api.UserID     `cbor:"id"`
	Name     string         `cbor:"name"`
	Auth     api.Auth       `cbor:"auth"`
	Quota    api.Quota      `cbor:"quota"`
	Products map[string]any `cbor:"products,omitempty"`
}

// decodePayload populates the registry from a snapshot payload,
// dispatching on the envelope version. The version check is explicit
// and exhaustive — an unknown version is an error, which the Load
// boundary converts into an empty registry. Returns the user ids whose
// stored identities are legacy-shaped and need a re-fetch.
func (m *Manager) decodePayload(version int, payload codec.RawMessage) ([]api.UserID, error) {
	switch version {
	case 1:
		return m.decodeV1(payload)
	case snapshotVersion:
		return nil, m.decodeV2(payload)
	default:
		return nil, fmt.Errorf("account: unsupported snapshot version %d", version)
	}
}

func (m *Manager) decodeV2(payload codec.RawMessage) error {
	var snapshot snapshotV2
	if err := codec.Unmarshal(payload, &snapshot); err != nil {
		return fmt.Errorf("account: decode v2 payload: %w", err)
	}

	for id, record := range snapshot.Accounts {
		m.accounts[id] = recordAccount(record)
	}
	m.restoreActive(snapshot.Active)
	m.dataPath = snapshot.DataPath
	return nil
}

// decodeV1 decodes the legacy payload. Each account whose identity
// carries the old product mapping is reported for upgrade; its product
// data is dropped here and replaced by the migration re-fetch.
func (m *Manager) decodeV1(payload codec.RawMessage) ([]api.UserID, error) {
	var snapshot snapshotV1
	if err := codec.Unmarshal(payload, &snapshot); err != nil {
		return nil, fmt.Errorf("account: decode v1 payload: %w", err)
	}

	var legacy []api.UserID
	for id, record := range snapshot.Accounts {
		m.accounts[id] = Account{
			User: api.UserInfo{
				ID:    record.User.ID,
				Name:  record.User.Name,
				Auth:  record.User.Auth,
				Quota: record.User.Quota,
			},
			WorkingDir: record.WorkingDir,
			EncryptKey: record.EncryptKey,
			Salt:       record.Salt,
		}
		if record.User.Products != nil {
			legacy = append(legacy, id)
		}
	}
	// Map iteration order is random; upgrade in a stable order so the
	// notices read the same on every run.
	sort.Slice(legacy, func(i, j int) bool { return legacy[i] < legacy[j] })

	m.restoreActive(snapshot.Active)
	m.dataPath = snapshot.DataPath
	return legacy, nil
}

// restoreActive restores the active pointer, dropping it when it no
// longer names a registered account. A stored snapshot is the only
// place the active/accounts invariant could have been broken (by hand
// edits or a buggy writer), so it is re-established here.
func (m *Manager) restoreActive(active api.UserID) {
	if _, ok := m.accounts[active]; ok {
		m.active = active
	}
}

// migrate runs the post-decode upgrade pass: re-fetch every
// legacy-shaped identity, rebind a missing or dead data path to the
// configured default, and persist the result. The final save is
// unconditional — it re-normalizes the on-disk format even when no
// account needed an upgrade. loadPath is the file the snapshot was
// read from, the fallback binding of last resort.
func (m *Manager) migrate(ctx context.Context, loadPath string, legacy []api.UserID) error {
	for _, id := range legacy {
		m.logger.Info("upgrading stored identity to the current format", "user_id", id)
		if err := m.Refresh(ctx, id); err != nil {
			return fmt.Errorf("account: migrate user %d: %w", id, err)
		}
	}

	if m.dataPath == "" || !fileExists(m.dataPath) {
		target := m.defaultDataPath
		if target == "" {
			target = loadPath
		}
		m.dataPath = target
	}

	return m.Save()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
