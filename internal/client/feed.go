package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/voycli/voycli/internal/normalize"
	"github.com/voycli/voycli/pkg/voyager"
)

// ErrUnknownReaction is returned for a reaction type the upstream does not
// accept.
var ErrUnknownReaction = errors.New("unknown reaction type")

// Reaction types the upstream accepts, keyed by their lowercase CLI form.
var reactionTypes = map[string]string{
	"like":       "LIKE",
	"celebrate":  "PRAISE",
	"support":    "APPRECIATION",
	"love":       "EMPATHY",
	"insightful": "INTEREST",
	"funny":      "ENTERTAINMENT",
}

// GetFeed fetches a window of the chronological feed.
func (c *Client) GetFeed(ctx context.Context, page voyager.PageOptions) ([]voyager.FeedUpdate, *voyager.PagingInfo, error) {
	query := pageQuery(page)
	query.Set("q", "chronFeed")

	envelope, err := c.getEnvelope(ctx, endpointFeedUpdates, query)
	if err != nil {
		return nil, nil, fmt.Errorf("getting feed: %w", err)
	}

	return normalize.FeedUpdates(envelope), envelope.Paging, nil
}

// GetPost fetches a single post by its activity URN.
func (c *Client) GetPost(ctx context.Context, postURN voyager.URN) (*voyager.FeedUpdate, error) {
	path := fmt.Sprintf(endpointFeedUpdate, postURN.Escaped())

	envelope, err := c.getEnvelope(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting post: %w", err)
	}

	return normalize.Post(envelope)
}

// CreatePost publishes a text share visible to the member's network and
// returns the URN of the created share when the upstream reports one.
func (c *Client) CreatePost(ctx context.Context, text string) (voyager.URN, error) {
	body := map[string]any{
		"visibleToConnectionsOnly":  false,
		"externalAudienceProviders": []any{},
		"commentaryV2": map[string]any{
			"text":       text,
			"attributes": []any{},
		},
		"origin":                 "FEED",
		"allowedCommentersScope": "ALL",
		"postState":              "PUBLISHED",
		"media":                  []any{},
	}

	resp, err := c.post(ctx, endpointShares, nil, body)
	if err != nil {
		return "", fmt.Errorf("creating post: %w", err)
	}

	return createdURN(resp.Body), nil
}

// Comment adds a comment to a post.
func (c *Client) Comment(ctx context.Context, postURN voyager.URN, text string) error {
	body := map[string]any{
		"threadUrn": postURN.String(),
		"comment": map[string]any{
			"values": []any{
				map[string]any{
					"value": map[string]any{
						"com.linkedin.voyager.feed.shared.AnnotatedText": map[string]any{
							"values": []any{
								map[string]any{
									"value": map[string]any{
										"com.linkedin.voyager.feed.shared.AnnotatedString": map[string]any{
											"value": text,
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	if _, err := c.post(ctx, endpointComments, nil, body); err != nil {
		return fmt.Errorf("commenting on post: %w", err)
	}

	return nil
}

// React adds a reaction to a post. The reaction name is one of the
// lowercase CLI forms (like, celebrate, support, love, insightful, funny).
func (c *Client) React(ctx context.Context, postURN voyager.URN, reaction string) error {
	kind, ok := reactionTypes[strings.ToLower(reaction)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownReaction, reaction)
	}

	query := url.Values{}
	query.Set("threadUrn", postURN.String())

	body := map[string]any{"reactionType": kind}

	if _, err := c.post(ctx, endpointReactions, query, body); err != nil {
		return fmt.Errorf("reacting to post: %w", err)
	}

	return nil
}
