// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/skyvault-io/skyvault/cmd/skyvault/cli"
	"github.com/skyvault-io/skyvault/lib/filecrypt"
)

// EncryptKeyCommand returns the "encrypt-key" command group.
func EncryptKeyCommand() *cli.Command {
	return &cli.Command{
		Name:    "encrypt-key",
		Summary: "Manage the active user's file encryption key",
		Description: `Manage the encryption passphrase and salt attached to the active
user. The passphrase is stored in the local registry and used to
derive the file encryption key; it is never sent to the service.`,
		Subcommands: []*cli.Command{
			encryptKeySetCommand(),
			encryptKeyShowCommand(),
			encryptKeyClearCommand(),
		},
	}
}

type encryptKeySetParams struct {
	KeyFile string `flag:"key-file,k" desc:"file containing the passphrase ('-' to prompt)"`
	Salt    string `flag:"salt" desc:"key derivation salt (optional)"`
}

func encryptKeySetCommand() *cli.Command {
	var params encryptKeySetParams
	return &cli.Command{
		Name:    "set",
		Summary: "Set the encryption passphrase for the active user",
		Usage:   "skyvault encrypt-key set [flags]",
		Examples: []cli.Example{
			{
				Description: "Prompt for a passphrase",
				Command:     "skyvault encrypt-key set",
			},
			{
				Description: "Read the passphrase from a file with an explicit salt",
				Command:     "skyvault encrypt-key set --key-file ~/.skyvault-key --salt mysalt",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("set", &params)
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("encrypt-key set takes no positional arguments")
			}

			registry, err := cli.OpenRegistry(context.Background())
			if err != nil {
				return err
			}

			passphrase, err := cli.ReadSecret("Encryption passphrase", params.KeyFile)
			if err != nil {
				return err
			}

			if err := registry.Manager.SetEncryption(passphrase, params.Salt); err != nil {
				return err
			}
			if err := registry.Manager.Save(); err != nil {
				return err
			}

			key, err := filecrypt.DeriveKey(passphrase, params.Salt)
			if err != nil {
				return err
			}
			fmt.Printf("encryption key set (fingerprint %s)\n", filecrypt.Fingerprint(key))
			return nil
		},
	}
}

func encryptKeyShowCommand() *cli.Command {
	return &cli.Command{
		Name:    "show",
		Summary: "Show the fingerprint of the active user's encryption key",
		Usage:   "skyvault encrypt-key show",
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("encrypt-key show takes no arguments")
			}

			registry, err := cli.OpenRegistry(context.Background())
			if err != nil {
				return err
			}

			acct, ok := registry.Manager.Who()
			if !ok {
				return fmt.Errorf("no active user")
			}
			if acct.EncryptKey == "" {
				fmt.Println("no encryption key set")
				return nil
			}

			key, err := filecrypt.DeriveKey(acct.EncryptKey, acct.Salt)
			if err != nil {
				return err
			}
			fmt.Printf("fingerprint: %s\n", filecrypt.Fingerprint(key))
			return nil
		},
	}
}

func encryptKeyClearCommand() *cli.Command {
	return &cli.Command{
		Name:    "clear",
		Summary: "Remove the active user's encryption key",
		Usage:   "skyvault encrypt-key clear",
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("encrypt-key clear takes no arguments")
			}

			registry, err := cli.OpenRegistry(context.Background())
			if err != nil {
				return err
			}

			if err := registry.Manager.SetEncryption("", ""); err != nil {
				return err
			}
			if err := registry.Manager.Save(); err != nil {
				return err
			}
			fmt.Println("encryption key cleared")
			return nil
		},
	}
}
