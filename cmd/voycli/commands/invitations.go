package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/voycli/voycli/pkg/voyager"
)

// NewInvitationsCommand creates the invitations command group.
func NewInvitationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invitations",
		Short: "Manage connection invitations",
	}

	cmd.AddCommand(newInvitationsListCommand())
	cmd.AddCommand(newInvitationsRespondCommand("accept", "Accept a pending invitation"))
	cmd.AddCommand(newInvitationsRespondCommand("ignore", "Ignore a pending invitation"))
	cmd.AddCommand(newInvitationsSendCommand())

	return cmd
}

func newInvitationsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending received invitations",
	}

	page := pageFlags(cmd.Flags())

	cmd.RunE = func(c *cobra.Command, _ []string) error {
		voyclient, err := newClient()
		if err != nil {
			return err
		}

		invitations, paging, err := voyclient.GetInvitations(c.Context(), *page)
		if err != nil {
			return err
		}

		return render(invitations, func() error {
			table := tablewriter.NewWriter(os.Stdout)
			table.Header("From", "Headline", "Message", "URN", "Secret")

			for _, invitation := range invitations {
				_ = table.Append(
					invitation.FromName,
					truncate(invitation.FromHeadline, 40),
					truncate(invitation.Message, 40),
					string(invitation.URN),
					invitation.SharedSecret,
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

// newInvitationsRespondCommand builds the accept and ignore commands; both
// need the invitation URN and the shared secret from `invitations list`.
func newInvitationsRespondCommand(action, short string) *cobra.Command {
	var secret string

	cmd := &cobra.Command{
		Use:   action + " URN",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			voyclient, err := newClient()
			if err != nil {
				return err
			}

			invitation := voyager.Invitation{
				URN:          voyager.URN(args[0]),
				SharedSecret: secret,
			}

			if action == "accept" {
				err = voyclient.AcceptInvitation(cmd.Context(), invitation)
			} else {
				err = voyclient.IgnoreInvitation(cmd.Context(), invitation)
			}

			if err != nil {
				return err
			}

			fmt.Printf("Invitation %sed\n", strings.TrimSuffix(action, "e"))

			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "shared secret from the invitation listing")

	return cmd
}

func newInvitationsSendCommand() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "send PROFILE_URN",
		Short: "Send a connection invitation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			voyclient, err := newClient()
			if err != nil {
				return err
			}

			if err := voyclient.SendInvitation(cmd.Context(), voyager.URN(args[0]), message); err != nil {
				return err
			}

			fmt.Println("Invitation sent")

			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "note to include with the invitation")

	return cmd
}
