// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete skyvault CLI command tree.
package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/skyvault-io/skyvault/cmd/skyvault/cli"
	"github.com/skyvault-io/skyvault/cmd/skyvault/session"
	usercmd "github.com/skyvault-io/skyvault/cmd/skyvault/user"
)

// Root builds and returns the complete skyvault CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "skyvault",
		Description: `Skyvault: cloud storage from the command line.

Register one or more users by credential token, switch between them,
and operate on the active user's remote session (working directory,
file encryption key). Registered identities are stored locally.`,
		Subcommands: []*cli.Command{
			usercmd.Command(),
			session.WhoamiCommand(),
			session.CdCommand(),
			session.PwdCommand(),
			session.EncryptKeyCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("skyvault %s\n", buildVersion())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Register a user (prompts for the credential token)",
				Command:     "skyvault user add",
			},
			{
				Description: "See who is registered and who is active",
				Command:     "skyvault user list",
			},
			{
				Description: "Switch the active user",
				Command:     "skyvault user switch 74650",
			},
			{
				Description: "Move the remote session into a directory",
				Command:     "skyvault cd /photos/2026",
			},
			{
				Description: "Attach a file encryption passphrase to the active user",
				Command:     "skyvault encrypt-key set",
			},
		},
	}
}

// buildVersion reports the module version embedded by the Go toolchain,
// or "devel" for builds outside a module archive.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "devel"
	}
	return info.Main.Version
}
