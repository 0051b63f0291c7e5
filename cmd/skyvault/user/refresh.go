// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/skyvault-io/skyvault/cmd/skyvault/cli"
)

type refreshParams struct {
	All bool `flag:"all,a" desc:"refresh every registered user"`
}

func refreshCommand() *cli.Command {
	var params refreshParams
	return &cli.Command{
		Name:    "refresh",
		Summary: "Re-fetch a user's identity from the service",
		Description: `Re-fetch identity details (name, quota, entitlements) from the
service using the stored credential and replace the local record.
Working directory and encryption key settings are preserved.

Without arguments the active user is refreshed. A user id refreshes
that user; --all refreshes every registered user.`,
		Usage: "skyvault user refresh [user-id]",
		Examples: []cli.Example{
			{
				Description: "Refresh the active user",
				Command:     "skyvault user refresh",
			},
			{
				Description: "Refresh all registered users",
				Command:     "skyvault user refresh --all",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("refresh", &params)
		},
		Run: func(args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("user refresh takes at most one user id")
			}
			if params.All && len(args) > 0 {
				return fmt.Errorf("--all cannot be combined with a user id")
			}

			ctx := context.Background()
			registry, err := cli.OpenRegistry(ctx)
			if err != nil {
				return err
			}

			switch {
			case params.All:
				for _, acct := range registry.Manager.Accounts() {
					if err := registry.Manager.Refresh(ctx, acct.ID()); err != nil {
						return fmt.Errorf("refresh user %d: %w", acct.ID(), err)
					}
				}
			case len(args) == 1:
				id, err := parseUserID(args[0])
				if err != nil {
					return err
				}
				if _, ok := registry.Manager.Who(id); !ok {
					return fmt.Errorf("user %d is not registered", id)
				}
				if err := registry.Manager.Refresh(ctx, id); err != nil {
					return err
				}
			default:
				if _, ok := registry.Manager.Who(); !ok {
					return fmt.Errorf("no active user; pass a user id or --all")
				}
				if err := registry.Manager.Refresh(ctx); err != nil {
					return err
				}
			}

			if err := registry.Manager.Save(); err != nil {
				return err
			}
			fmt.Println("refreshed")
			return nil
		},
	}
}
