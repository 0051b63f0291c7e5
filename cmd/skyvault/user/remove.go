// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"context"
	"fmt"

	"github.com/skyvault-io/skyvault/cmd/skyvault/cli"
)

func removeCommand() *cli.Command {
	return &cli.Command{
		Name:    "remove",
		Summary: "Remove a registered user",
		Description: `Remove a user from the local registry.

Only the local identity record is deleted; the service-side account is
unaffected. Removing the active user leaves no user active.`,
		Usage: "skyvault user remove <user-id>",
		Examples: []cli.Example{
			{Command: "skyvault user remove 74650"},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("user remove takes exactly one user id")
			}
			id, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			registry, err := cli.OpenRegistry(context.Background())
			if err != nil {
				return err
			}

			if _, ok := registry.Manager.Who(id); !ok {
				return fmt.Errorf("user %d is not registered", id)
			}
			registry.Manager.RemoveUser(id)
			if err := registry.Manager.Save(); err != nil {
				return err
			}

			fmt.Printf("removed user %d\n", id)
			return nil
		},
	}
}
