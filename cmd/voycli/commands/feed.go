package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewFeedCommand creates the feed command group.
func NewFeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Read the feed and publish posts",
	}

	cmd.AddCommand(newFeedListCommand())
	cmd.AddCommand(newFeedPostCommand())

	return cmd
}

func newFeedListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the chronological feed",
	}

	page := pageFlags(cmd.Flags())

	cmd.RunE = func(c *cobra.Command, _ []string) error {
		voyclient, err := newClient()
		if err != nil {
			return err
		}

		updates, paging, err := voyclient.GetFeed(c.Context(), *page)
		if err != nil {
			return err
		}

		return render(updates, func() error {
			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Author", "Text", "Likes", "Comments", "URN")

			for _, update := range updates {
				_ = table.Append(
					update.AuthorName,
					truncate(update.Text, 60),
					fmt.Sprintf("%d", update.LikeCount),
					fmt.Sprintf("%d", update.CommentCount),
					string(update.URN),
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

func newFeedPostCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "post TEXT...",
		Short: "Publish a text post",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			voyclient, err := newClient()
			if err != nil {
				return err
			}

			urn, err := voyclient.CreatePost(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if urn != "" {
				fmt.Printf("Posted: %s\n", urn)
			} else {
				fmt.Println("Posted")
			}

			return nil
		},
	}
}
