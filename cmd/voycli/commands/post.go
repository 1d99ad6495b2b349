package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/voycli/voycli/pkg/voyager"
)

// NewPostCommand creates the post command group.
func NewPostCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Inspect and interact with individual posts",
	}

	cmd.AddCommand(newPostGetCommand())
	cmd.AddCommand(newPostCommentCommand())
	cmd.AddCommand(newPostReactCommand())

	return cmd
}

func newPostGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get URN",
		Short: "Show a single post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			voyclient, err := newClient()
			if err != nil {
				return err
			}

			post, err := voyclient.GetPost(cmd.Context(), voyager.URN(args[0]))
			if err != nil {
				return err
			}

			return render(post, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Author", post.AuthorName)
				_ = table.Append("Headline", post.AuthorHeadline)
				_ = table.Append("Text", post.Text)
				_ = table.Append("Likes", fmt.Sprintf("%d", post.LikeCount))
				_ = table.Append("Comments", fmt.Sprintf("%d", post.CommentCount))
				_ = table.Append("URN", string(post.URN))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newPostCommentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "comment URN TEXT...",
		Short: "Comment on a post",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			voyclient, err := newClient()
			if err != nil {
				return err
			}

			text := strings.Join(args[1:], " ")
			if err := voyclient.Comment(cmd.Context(), voyager.URN(args[0]), text); err != nil {
				return err
			}

			fmt.Println("Comment added")

			return nil
		},
	}
}

func newPostReactCommand() *cobra.Command {
	var reaction string

	cmd := &cobra.Command{
		Use:   "react URN",
		Short: "React to a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			voyclient, err := newClient()
			if err != nil {
				return err
			}

			if err := voyclient.React(cmd.Context(), voyager.URN(args[0]), reaction); err != nil {
				return err
			}

			fmt.Printf("Reacted with %s\n", reaction)

			return nil
		},
	}

	cmd.Flags().StringVar(&reaction, "type", "like", "reaction type (like, celebrate, support, love, insightful, funny)")

	return cmd
}
