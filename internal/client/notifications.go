package client

import (
	"context"
	"fmt"

	"github.com/voycli/voycli/internal/normalize"
	"github.com/voycli/voycli/pkg/voyager"
)

// GetNotifications lists recent notification cards.
func (c *Client) GetNotifications(ctx context.Context, page voyager.PageOptions) ([]voyager.Notification, *voyager.PagingInfo, error) {
	envelope, err := c.getEnvelope(ctx, endpointNotifications, pageQuery(page))
	if err != nil {
		return nil, nil, fmt.Errorf("getting notifications: %w", err)
	}

	return normalize.Notifications(envelope), envelope.Paging, nil
}
