package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/voycli/voycli/internal/normalize"
	"github.com/voycli/voycli/pkg/voyager"
)

// GetJob fetches a single job posting by its numeric ID or URN ID.
func (c *Client) GetJob(ctx context.Context, jobID string) (*voyager.Job, error) {
	path := fmt.Sprintf(endpointJobPosting, url.PathEscape(jobID))

	envelope, err := c.getEnvelope(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting job: %w", err)
	}

	return normalize.Job(envelope)
}

// SearchJobs searches job postings by keywords and optional location.
func (c *Client) SearchJobs(ctx context.Context, keywords, location string, page voyager.PageOptions) ([]voyager.Job, *voyager.PagingInfo, error) {
	query := pageQuery(page)
	query.Set("keywords", keywords)
	query.Set("origin", "JOB_SEARCH_RESULTS_PAGE")
	query.Set("q", "all")
	query.Set("filters", "List(resultType->JOBS)")

	if location != "" {
		query.Set("locationFallback", location)
	}

	envelope, err := c.getEnvelope(ctx, endpointSearch, query)
	if err != nil {
		return nil, nil, fmt.Errorf("searching jobs: %w", err)
	}

	return normalize.Jobs(envelope), envelope.Paging, nil
}
