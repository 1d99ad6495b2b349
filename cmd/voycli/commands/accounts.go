package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/voycli/voycli/internal/config"
)

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage saved accounts",
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsUseCommand())
	cmd.AddCommand(newAccountsRemoveCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved accounts",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			type accountRow struct {
				Name         string `json:"name"          yaml:"name"`
				CookieSource string `json:"cookie_source" yaml:"cookie_source"`
				Default      bool   `json:"default"       yaml:"default"`
			}

			rows := make([]accountRow, 0, len(cfg.Accounts))
			for _, name := range cfg.AccountNames() {
				rows = append(rows, accountRow{
					Name:         name,
					CookieSource: cfg.Accounts[name].CookieSource,
					Default:      name == cfg.DefaultAccount,
				})
			}

			return render(rows, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Cookie Source", "Default")

				for _, row := range rows {
					marker := ""
					if row.Default {
						marker = "*"
					}

					_ = table.Append(row.Name, row.CookieSource, marker)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newAccountsUseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "use NAME",
		Short: "Set the default account",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := config.SetDefaultAccount(args[0]); err != nil {
				return err
			}

			fmt.Printf("Default account is now %q\n", args[0])

			return nil
		},
	}
}

func newAccountsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a saved account",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := config.RemoveAccount(args[0]); err != nil {
				return err
			}

			fmt.Printf("Removed account %q\n", args[0])

			return nil
		},
	}
}
