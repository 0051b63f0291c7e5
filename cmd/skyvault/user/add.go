// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/skyvault-io/skyvault/api"
	"github.com/skyvault-io/skyvault/cmd/skyvault/cli"
	"github.com/skyvault-io/skyvault/lib/account"
)

type addParams struct {
	TokenFile string `flag:"token-file,t" desc:"file containing the credential token ('-' to prompt)"`
	Cookies   string `flag:"cookies" desc:"optional session cookies, browser style ('name=value; name=value')"`
	NoSwitch  bool   `flag:"no-switch" desc:"register without making the new user active"`
}

func addCommand() *cli.Command {
	var params addParams
	return &cli.Command{
		Name:    "add",
		Summary: "Register a user by credential token",
		Description: `Register a user with this machine.

The credential token is validated against the service; on success the
resolved identity is stored in the local registry. The new user
becomes the active user unless --no-switch is given. Re-adding an
already registered user replaces its identity record and resets its
working directory and encryption key.`,
		Usage: "skyvault user add [flags]",
		Examples: []cli.Example{
			{
				Description: "Register interactively, prompting for the token",
				Command:     "skyvault user add",
			},
			{
				Description: "Register from a token file without switching",
				Command:     "skyvault user add --token-file ~/.skyvault-token --no-switch",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("add", &params)
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("user add takes no positional arguments")
			}

			ctx := context.Background()
			registry, err := cli.OpenRegistry(ctx)
			if err != nil {
				return err
			}

			token, err := cli.ReadSecret("Credential token", params.TokenFile)
			if err != nil {
				return err
			}
			cookies, err := parseCookies(params.Cookies)
			if err != nil {
				return err
			}

			acct, err := account.Login(ctx, registry.Client, api.Credentials{
				Token:   token,
				Cookies: cookies,
			})
			if err != nil {
				return fmt.Errorf("register user: %w", err)
			}

			registry.Manager.AddUser(acct.User)
			if !params.NoSwitch {
				if err := registry.Manager.SwitchUser(acct.ID()); err != nil {
					return err
				}
			}
			if err := registry.Manager.Save(); err != nil {
				return err
			}

			fmt.Printf("registered user %d (%s)\n", acct.ID(), acct.User.Name)
			return nil
		},
	}
}

// parseCookies parses a browser-style cookie string
// ("name=value; name=value") into a map. Empty input yields nil.
func parseCookies(raw string) (map[string]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	cookies := make(map[string]string)
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid cookie %q: expected name=value", pair)
		}
		cookies[name] = strings.TrimSpace(value)
	}
	return cookies, nil
}
