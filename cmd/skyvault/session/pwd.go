// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"fmt"

	"github.com/skyvault-io/skyvault/cmd/skyvault/cli"
)

// PwdCommand returns the "pwd" command.
func PwdCommand() *cli.Command {
	return &cli.Command{
		Name:    "pwd",
		Summary: "Print the active user's remote working directory",
		Usage:   "skyvault pwd",
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("pwd takes no arguments")
			}

			registry, err := cli.OpenRegistry(context.Background())
			if err != nil {
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
