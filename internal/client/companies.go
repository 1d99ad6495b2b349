package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/voycli/voycli/internal/normalize"
	"github.com/voycli/voycli/pkg/voyager"
)

// GetCompany fetches an organization page by its universal (vanity) name.
func (c *Client) GetCompany(ctx context.Context, universalName string) (*voyager.Company, error) {
	query := url.Values{}
	query.Set("q", "universalName")
	query.Set("universalName", universalName)

	envelope, err := c.getEnvelope(ctx, endpointCompanies, query)
	if err != nil {
		return nil, fmt.Errorf("getting company: %w", err)
	}

	return normalize.Company(envelope)
}
