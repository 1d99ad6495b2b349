package client

import (
	"context"
	"fmt"

	"github.com/voycli/voycli/internal/normalize"
	"github.com/voycli/voycli/pkg/voyager"
)

// SearchPeople searches member profiles by keywords.
func (c *Client) SearchPeople(ctx context.Context, keywords string, page voyager.PageOptions) ([]voyager.SearchResult, *voyager.PagingInfo, error) {
	query := pageQuery(page)
	query.Set("keywords", keywords)
	query.Set("origin", "GLOBAL_SEARCH_HEADER")
	query.Set("q", "all")
	query.Set("filters", "List(resultType->PEOPLE)")

	envelope, err := c.getEnvelope(ctx, endpointSearch, query)
	if err != nil {
		return nil, nil, fmt.Errorf("searching people: %w", err)
	}

	return normalize.SearchResults(envelope), envelope.Paging, nil
}
