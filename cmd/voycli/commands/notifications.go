package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewNotificationsCommand creates the notifications command.
func NewNotificationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List recent notifications",
	}

	page := pageFlags(cmd.Flags())

	cmd.RunE = func(c *cobra.Command, _ []string) error {
		voyclient, err := newClient()
		if err != nil {
			return err
		}

		notifications, paging, err := voyclient.GetNotifications(c.Context(), *page)
		if err != nil {
			return err
		}

		return render(notifications, func() error {
			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Headline", "Published", "Read")

			for _, notification := range notifications {
				read := ""
				if notification.Read {
					read = "yes"
				}

				_ = table.Append(
					truncate(notification.Headline, 70),
					formatEpochMillis(notification.PublishedAt),
					read,
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
