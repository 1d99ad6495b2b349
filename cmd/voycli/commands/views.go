package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewViewsCommand creates the views command.
func NewViewsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "views",
		Short: "Show who viewed your profile",
	}

	page := pageFlags(cmd.Flags())

	cmd.RunE = func(c *cobra.Command, _ []string) error {
		voyclient, err := newClient()
		if err != nil {
			return err
		}

		views, paging, err := voyclient.GetProfileViews(c.Context(), *page)
		if err != nil {
			return err
		}

		return render(views, func() error {
			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Viewer", "Headline", "Viewed")

			for _, view := range views {
				_ = table.Append(
					view.ViewerName,
					truncate(view.ViewerHeadline, 50),
					formatEpochMillis(view.ViewedAt),
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
