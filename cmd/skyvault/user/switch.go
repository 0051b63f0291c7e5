// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"context"
	"fmt"
	"strconv"

	"github.com/skyvault-io/skyvault/api"
	"github.com/skyvault-io/skyvault/cmd/skyvault/cli"
)

func switchCommand() *cli.Command {
	return &cli.Command{
		Name:    "switch",
		Summary: "Make a registered user the active user",
		Usage:   "skyvault user switch <user-id>",
		Examples: []cli.Example{
			{Command: "skyvault user switch 74650"},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("user switch takes exactly one user id")
			}
			id, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			registry, err := cli.OpenRegistry(context.Background())
			if err != nil {
				return err
			}

			if err := registry.Manager.SwitchUser(id); err != nil {
				return err
			}
			if err := registry.Manager.Save(); err != nil {
				return err
			}

			acct, _ := registry.Manager.Who(id)
			fmt.Printf("active user is now %d (%s)\n", id, acct.User.Name)
			return nil
		},
	}
}

// parseUserID parses a numeric user id from a command argument.
func parseUserID(arg string) (api.UserID, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q: must be a number", arg)
	}
	return api.UserID(id), nil
}
