package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/voycli/voycli/internal/normalize"
	"github.com/voycli/voycli/pkg/voyager"
)

// GetProfile fetches the full profile view for a public identifier or
// profile ID.
func (c *Client) GetProfile(ctx context.Context, publicIdentifier string) (*voyager.Profile, error) {
	path := fmt.Sprintf(endpointProfileView, url.PathEscape(publicIdentifier))

	envelope, err := c.getEnvelope(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return normalize.Profile(envelope)
}

// GetOwnProfile fetches the authenticated member's own profile.
func (c *Client) GetOwnProfile(ctx context.Context) (*voyager.Profile, error) {
	envelope, err := c.getEnvelope(ctx, endpointOwnProfile, nil)
	if err != nil {
		return nil, fmt.Errorf("getting own profile: %w", err)
	}

	return normalize.Profile(envelope)
}

// GetProfileViews lists recent "who viewed your profile" entries.
func (c *Client) GetProfileViews(ctx context.Context, page voyager.PageOptions) ([]voyager.ProfileView, *voyager.PagingInfo, error) {
	envelope, err := c.getEnvelope(ctx, endpointProfileViews, pageQuery(page))
	if err != nil {
		return nil, nil, fmt.Errorf("getting profile views: %w", err)
	}

	return normalize.ProfileViews(envelope), envelope.Paging, nil
}
