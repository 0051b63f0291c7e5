// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/skyvault-io/skyvault/cmd/skyvault/cli"
)

// WhoamiCommand returns the "whoami" command.
func WhoamiCommand() *cli.Command {
	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the active user",
		Description: `Show the active user's identity: id, name, storage quota, and
service entitlements as of the last refresh.`,
		Usage: "skyvault whoami",
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("whoami takes no arguments")
			}

			registry, err := cli.OpenRegistry(context.Background())
			if err != nil {
				return err
			}

			acct, ok := registry.Manager.Who()
			if !ok {
				return fmt.Errorf("no active user; run 'skyvault user add' or 'skyvault user switch'")
			}

			fmt.Printf("user %d (%s)\n", acct.ID(), acct.User.Name)
			if acct.User.Quota.Total > 0 {
				fmt.Printf("quota: %s used of %s\n",
					humanize.IBytes(uint64(acct.User.Quota.Used)),
					humanize.IBytes(uint64(acct.User.Quota.Total)))
			}
			for _, product := range acct.User.Products {
				if product.Expires > 0 {
					fmt.Printf("product: %s (expires %s)\n", product.Name,
						time.Unix(product.Expires, 0).UTC().Format("2006-01-02"))
				} else {
					fmt.Printf("product: %s\n", product.Name)
				}
			}
			return nil
		},
	}
}
