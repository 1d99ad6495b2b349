package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/voycli/voycli/pkg/voyager"
)

// NewMessagesCommand creates the messages command group.
func NewMessagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Read and send messages",
	}

	cmd.AddCommand(newMessagesListCommand())
	cmd.AddCommand(newMessagesShowCommand())
	cmd.AddCommand(newMessagesSendCommand())
	cmd.AddCommand(newMessagesReadCommand())

	return cmd
}

func newMessagesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List conversations",
	}

	page := pageFlags(cmd.Flags())

	cmd.RunE = func(c *cobra.Command, _ []string) error {
		voyclient, err := newClient()
		if err != nil {
			return err
		}

		conversations, paging, err := voyclient.GetConversations(c.Context(), *page)
		if err != nil {
			return err
		}

		return render(conversations, func() error {
			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Participants", "Unread", "Last Activity", "URN")

			for _, conversation := range conversations {
				names := make([]string, 0, len(conversation.Participants))
				for _, participant := range conversation.Participants {
					names = append(names, participant.Name)
				}

				_ = table.Append(
					strings.Join(names, ", "),
					fmt.Sprintf("%d", conversation.UnreadCount),
					formatEpochMillis(conversation.LastActivityAt),
					string(conversation.URN),
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

func newMessagesShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show CONVERSATION_ID",
		Short: "Show the messages of a conversation",
		Args:  cobra.ExactArgs(1),
	}

	page := pageFlags(cmd.Flags())

	cmd.RunE = func(c *cobra.Command, args []string) error {
		voyclient, err := newClient()
		if err != nil {
			return err
		}

		messages, paging, err := voyclient.GetMessages(c.Context(), args[0], *page)
		if err != nil {
			return err
		}

		return render(messages, func() error {
			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Sender", "Text", "Sent")

			for _, message := range messages {
				_ = table.Append(
					message.SenderName,
					truncate(message.Text, 70),
					formatEpochMillis(message.SentAt),
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

// newMessagesSendCommand addresses the recipient explicitly: --conversation
// targets an existing thread, a positional profile URN starts a new one.
func newMessagesSendCommand() *cobra.Command {
	var conversationID string

	cmd := &cobra.Command{
		Use:   "send [PROFILE_URN] TEXT...",
		Short: "Send a message to a conversation or a profile",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			voyclient, err := newClient()
			if err != nil {
				return err
			}

			if conversationID != "" {
				text := strings.Join(args, " ")
				if text == "" {
					return ErrMessageTextRequired
				}

				if err := voyclient.SendMessageToConversation(cmd.Context(), conversationID, text); err != nil {
					return err
				}

				fmt.Println("Message sent")

				return nil
			}

			if len(args) < 2 {
				return ErrRecipientRequired
			}

			text := strings.Join(args[1:], " ")
			if err := voyclient.SendMessageToProfile(cmd.Context(), voyager.URN(args[0]), text); err != nil {
				return err
			}

			fmt.Println("Message sent")

			return nil
		},
	}

	cmd.Flags().StringVar(&conversationID, "conversation", "", "existing conversation ID to send into")

	return cmd
}

func newMessagesReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read CONVERSATION_ID",
		Short: "Mark a conversation as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			voyclient, err := newClient()
			if err != nil {
				return err
			}

			if err := voyclient.MarkConversationRead(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Println("Conversation marked read")

			return nil
		},
	}
}
