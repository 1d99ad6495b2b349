package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewConnectionsCommand creates the connections command group.
func NewConnectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connections",
		Short: "Manage first-degree connections",
	}

	cmd.AddCommand(newConnectionsListCommand())
	cmd.AddCommand(newConnectionsRemoveCommand())

	return cmd
}

func newConnectionsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List connections",
	}

	page := pageFlags(cmd.Flags())

	cmd.RunE = func(c *cobra.Command, _ []string) error {
		voyclient, err := newClient()
		if err != nil {
			return err
		}

		connections, paging, err := voyclient.GetConnections(c.Context(), *page)
		if err != nil {
			return err
		}

		return render(connections, func() error {
			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "Headline", "Public ID", "Connected")

			for _, connection := range connections {
				_ = table.Append(
					connection.FirstName+" "+connection.LastName,
					truncate(connection.Headline, 50),
					connection.PublicIdentifier,
					formatEpochMillis(connection.ConnectedAt),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			pagingFooter(paging)

			return nil
		})
	}

	return cmd
}

func newConnectionsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove PUBLIC_IDENTIFIER",
		Short: "Remove a connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			voyclient, err := newClient()
			if err != nil {
				return err
			}

			if err := voyclient.RemoveConnection(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Removed connection with %s\n", args[0])

			return nil
		},
	}
}
