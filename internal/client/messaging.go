package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/voycli/voycli/internal/httpx"
	"github.com/voycli/voycli/internal/normalize"
	"github.com/voycli/voycli/internal/retry"
	"github.com/voycli/voycli/pkg/voyager"
)

// GetConversations lists the member's messaging threads, most recent first.
func (c *Client) GetConversations(ctx context.Context, page voyager.PageOptions) ([]voyager.Conversation, *voyager.PagingInfo, error) {
	envelope, err := c.getEnvelope(ctx, endpointConversations, pageQuery(page))
	if err != nil {
		return nil, nil, fmt.Errorf("getting conversations: %w", err)
	}

	return normalize.Conversations(envelope), envelope.Paging, nil
}

// GetMessages lists the events of one conversation.
func (c *Client) GetMessages(ctx context.Context, conversationID string, page voyager.PageOptions) ([]voyager.Message, *voyager.PagingInfo, error) {
	path := fmt.Sprintf(endpointConversationEvents, url.PathEscape(conversationID))

	envelope, err := c.getEnvelope(ctx, path, pageQuery(page))
	if err != nil {
		return nil, nil, fmt.Errorf("getting messages: %w", err)
	}

	return normalize.Messages(envelope), envelope.Paging, nil
}

// SendMessageToConversation posts a text message into an existing
// conversation.
func (c *Client) SendMessageToConversation(ctx context.Context, conversationID, text string) error {
	path := fmt.Sprintf(endpointConversationEvents, url.PathEscape(conversationID))

	query := url.Values{}
	query.Set("action", "create")

	if _, err := c.post(ctx, path, query, messageCreateBody(text)); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}

	return nil
}

// SendMessageToProfile starts (or reuses) a one-on-one conversation with a
// profile and sends a text message. The recipient is always addressed
// explicitly; there is no guessing between conversation and profile IDs.
func (c *Client) SendMessageToProfile(ctx context.Context, profileURN voyager.URN, text string) error {
	query := url.Values{}
	query.Set("action", "create")

	body := map[string]any{
		"conversationCreate": map[string]any{
			"eventCreate": messageCreateBody(text)["eventCreate"],
			"recipients":  []any{profileURN.ID()},
			"subtype":     "MEMBER_TO_MEMBER",
		},
	}

	if _, err := c.post(ctx, endpointConversations, query, body); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}

	return nil
}

// MarkConversationRead clears the unread state of a conversation.
func (c *Client) MarkConversationRead(ctx context.Context, conversationID string) error {
	path := fmt.Sprintf(endpointConversation, url.PathEscape(conversationID))

	body := map[string]any{
		"patch": map[string]any{
			"$set": map[string]any{"read": true},
		},
	}

	_, err := retry.Do(ctx, c.retry, func(ctx context.Context) (*httpx.Response, error) {
		return c.http.Do(ctx, &httpx.Request{
			Method: http.MethodPatch,
			Path:   path,
			Body:   body,
		})
	})
	if err != nil {
		return fmt.Errorf("marking conversation read: %w", err)
	}

	return nil
}

func messageCreateBody(text string) map[string]any {
	return map[string]any{
		"eventCreate": map[string]any{
			"value": map[string]any{
				"com.linkedin.voyager.messaging.create.MessageCreate": map[string]any{
					"attributedBody": map[string]any{
						"text":       text,
						"attributes": []any{},
					},
					"attachments": []any{},
				},
			},
		},
	}
}
