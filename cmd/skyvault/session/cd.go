// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"fmt"

	"github.com/skyvault-io/skyvault/cmd/skyvault/cli"
)

// CdCommand returns the "cd" command.
func CdCommand() *cli.Command {
	return &cli.Command{
		Name:    "cd",
		Summary: "Change the active user's remote working directory",
		Description: `Change the active user's remote working directory.

The path is resolved against the current working directory; relative
segments (including "..") are cleaned and the result never escapes the
remote root. Without arguments the working directory resets to "/".`,
		Usage: "skyvault cd [path]",
		Examples: []cli.Example{
			{Command: "skyvault cd /photos/2026"},
			{Command: "skyvault cd ../videos"},
			{
				Description: "Reset to the remote root",
				Command:     "skyvault cd",
			},
		},
		Run: func(args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("cd takes at most one path")
			}
			target := "/"
			if len(args) == 1 {
				target = args[0]
			}

			registry, err := cli.OpenRegistry(context.Background())
			if err != nil {
				return err
			}

			if err := registry.Manager.ChangeDir(target); err != nil {
				return err
			}
			if err := registry.Manager.Save(); err != nil {
				return err
			}

			dir, err := registry.Manager.WorkingDir()
			if err != nil {
				return err
			}
			fmt.Println(dir)
			return nil
		},
	}
}
