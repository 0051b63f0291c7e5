// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/skyvault-io/skyvault/api"
	"github.com/skyvault-io/skyvault/cmd/skyvault/cli"
	"github.com/skyvault-io/skyvault/lib/account"
)

const (
	columnWidthID    = 12
	columnWidthName  = 20
	columnWidthQuota = 22
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Summary: "List registered users",
		Description: `List the users registered with this machine.

The active user is marked with '*'. Quota shows used and total storage
as reported at registration or last refresh.`,
		Usage: "skyvault user list",
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("user list takes no positional arguments")
			}

			registry, err := cli.OpenRegistry(context.Background())
			if err != nil {
				return err
			}

			accounts := registry.Manager.Accounts()
			if len(accounts) == 0 {
				fmt.Println("no registered users")
				return nil
			}
			active, _ := registry.Manager.ActiveID()
			fmt.Print(renderUserList(accounts, active))
			return nil
		},
	}
}

// renderUserList formats the registry as an aligned table, one row per
// user sorted by id, with the active user marked and bolded.
func renderUserList(accounts []account.Account, active api.UserID) string {
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].ID() < accounts[j].ID()
	})

	headerStyle := lipgloss.NewStyle().Faint(true)
	idStyle := lipgloss.NewStyle().Width(columnWidthID)
	nameStyle := lipgloss.NewStyle().Width(columnWidthName)
	quotaStyle := lipgloss.NewStyle().Width(columnWidthQuota)
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))

	var b strings.Builder
	b.WriteString(headerStyle.Render(
		"  " +
			idStyle.Render("ID") +
			nameStyle.Render("NAME") +
			quotaStyle.Render("QUOTA") +
			"DIR"))
	b.WriteString("\n")

	for _, acct := range accounts {
		marker := "  "
		rowStyle := lipgloss.NewStyle()
		if acct.ID() == active {
			marker = "* "
			rowStyle = activeStyle
		}
		row := marker +
			idStyle.Render(fmt.Sprintf("%d", acct.ID())) +
			nameStyle.Render(acct.User.Name) +
			quotaStyle.Render(formatQuota(acct.User.Quota)) +
			acct.WorkingDir
		b.WriteString(rowStyle.Render(row))
		b.WriteString("\n")
	}
	return b.String()
}

// formatQuota renders "used / total" in binary units, or "-" when the
// service reported no quota.
func formatQuota(quota api.Quota) string {
	if quota.Total == 0 {
		return "-"
	}
	return fmt.Sprintf("%s / %s",
		humanize.IBytes(uint64(quota.Used)),
		humanize.IBytes(uint64(quota.Total)))
}
