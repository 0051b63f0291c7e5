// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"github.com/skyvault-io/skyvault/cmd/skyvault/cli"
)

// Command returns the "user" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "user",
		Summary: "Manage registered users",
		Description: `Manage the users registered with this machine.

Each user is identified by a credential token obtained from the
service. Registered identities are stored locally; exactly one user
may be active at a time, and session commands (cd, pwd, encrypt-key)
operate on the active user.`,
		Subcommands: []*cli.Command{
			addCommand(),
			listCommand(),
			removeCommand(),
			switchCommand(),
			refreshCommand(),
		},
	}
}
