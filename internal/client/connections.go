package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/voycli/voycli/internal/normalize"
	"github.com/voycli/voycli/pkg/voyager"
)

// GetConnections lists the member's first-degree connections.
func (c *Client) GetConnections(ctx context.Context, page voyager.PageOptions) ([]voyager.Connection, *voyager.PagingInfo, error) {
	envelope, err := c.getEnvelope(ctx, endpointConnections, pageQuery(page))
	if err != nil {
		return nil, nil, fmt.Errorf("getting connections: %w", err)
	}

	return normalize.Connections(envelope), envelope.Paging, nil
}

// RemoveConnection severs the connection with the given profile.
func (c *Client) RemoveConnection(ctx context.Context, publicIdentifier string) error {
	path := fmt.Sprintf(endpointProfileActions, url.PathEscape(publicIdentifier))

	query := url.Values{}
	query.Set("action", "disconnect")

	if _, err := c.post(ctx, path, query, nil); err != nil {
		return fmt.Errorf("removing connection: %w", err)
	}

	return nil
}

// GetInvitations lists pending received invitations.
func (c *Client) GetInvitations(ctx context.Context, page voyager.PageOptions) ([]voyager.Invitation, *voyager.PagingInfo, error) {
	envelope, err := c.getEnvelope(ctx, endpointInvitationViews, pageQuery(page))
	if err != nil {
		return nil, nil, fmt.Errorf("getting invitations: %w", err)
	}

	return normalize.Invitations(envelope), envelope.Paging, nil
}

// AcceptInvitation accepts a pending invitation. The invitation must carry
// the shared secret returned by GetInvitations.
func (c *Client) AcceptInvitation(ctx context.Context, invitation voyager.Invitation) error {
	return c.respondInvitation(ctx, invitation, "accept")
}

// IgnoreInvitation declines a pending invitation.
func (c *Client) IgnoreInvitation(ctx context.Context, invitation voyager.Invitation) error {
	return c.respondInvitation(ctx, invitation, "ignore")
}

func (c *Client) respondInvitation(ctx context.Context, invitation voyager.Invitation, action string) error {
	path := fmt.Sprintf(endpointInvitation, url.PathEscape(invitation.URN.ID()))

	query := url.Values{}
	query.Set("action", action)

	body := map[string]any{
		"invitationId":           invitation.URN.ID(),
		"invitationSharedSecret": invitation.SharedSecret,
		"isGenericInvitation":    false,
	}

	if _, err := c.post(ctx, path, query, body); err != nil {
		return fmt.Errorf("responding to invitation: %w", err)
	}

	return nil
}

// SendInvitation sends a connection invitation to a profile, with an
// optional note.
func (c *Client) SendInvitation(ctx context.Context, profileURN voyager.URN, message string) error {
	body := map[string]any{
		"invitee": map[string]any{
			"com.linkedin.voyager.growth.invitation.InviteeProfile": map[string]any{
				"profileId": profileURN.ID(),
			},
		},
	}
	if message != "" {
		body["message"] = message
	}

	if _, err := c.post(ctx, endpointNormInvitations, nil, body); err != nil {
		return fmt.Errorf("sending invitation: %w", err)
	}

	return nil
}
