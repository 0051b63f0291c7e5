// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skyvault-io/skyvault/api"
	"github.com/skyvault-io/skyvault/lib/account"
	"github.com/skyvault-io/skyvault/lib/config"
)

// Registry bundles the loaded account registry with the configuration
// and API client every command needs. Commands open it once at the
// start of Run and call Save on the manager after mutating.
type Registry struct {
	Config  *config.Config
	Client  *api.Client
	Manager *account.Manager
	Logger  *slog.Logger
}

// OpenRegistry resolves configuration, builds the API client, and
// loads the account registry from the configured snapshot path. The
// load itself never fails; only configuration or client construction
// errors surface.
func OpenRegistry(ctx context.Context) (*Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := NewCommandLogger()

	client, err := api.NewClient(api.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	manager := account.Load(ctx, cfg.Paths.AccountData, account.Options{
		Client:          client,
		Logger:          logger,
		DefaultDataPath: cfg.Paths.AccountData,
	})

	return &Registry{
		Config:  cfg,
		Client:  client,
		Manager: manager,
		Logger:  logger,
	}, nil
}
