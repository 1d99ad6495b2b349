package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search KEYWORDS...",
		Short: "Search people",
		Args:  cobra.MinimumNArgs(1),
	}

	page := pageFlags(cmd.Flags())

	cmd.RunE = func(c *cobra.Command, args []string) error {
		keywords := strings.TrimSpace(strings.Join(args, " "))
		if keywords == "" {
			return ErrKeywordsRequired
		}

		voyclient, err := newClient()
		if err != nil {
			return err
		}

		results, paging, err := voyclient.SearchPeople(c.Context(), keywords, *page)
		if err != nil {
			return err
		}

		return render(results, func() error {
			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "Subtitle", "Public ID", "Kind")

			for _, result := range results {
				_ = table.Append(
					result.Title,
					truncate(result.Subtitle, 50),
					result.PublicIdentifier,
					result.Kind,
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
