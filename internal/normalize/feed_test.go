package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voycli/voycli/internal/normalize"
	"github.com/voycli/voycli/pkg/voyager"
)

func TestFeedUpdates_EmptyIncluded(t *testing.T) {
	t.Parallel()

	updates := normalize.FeedUpdates(&voyager.RawEnvelope{Included: []voyager.Entity{}})
	assert.NotNil(t, updates)
	assert.Empty(t, updates)
}

func TestFeedUpdates_DropsItemsWithoutURN(t *testing.T) {
	t.Parallel()

	envelope := &voyager.RawEnvelope{
		Included: []voyager.Entity{
			{
				"$type":      "com.linkedin.voyager.feed.render.UpdateV2",
				"commentary": map[string]any{"text": "no identifier, must be dropped"},
			},
			{
				"$type":      "com.linkedin.voyager.feed.render.UpdateV2",
				"entityUrn":  "urn:li:activity:7001",
				"commentary": map[string]any{"text": "kept"},
			},
		},
	}

	updates := normalize.FeedUpdates(envelope)
	require.Len(t, updates, 1)
	assert.Equal(t, voyager.URN("urn:li:activity:7001"), updates[0].URN)
	assert.Equal(t, "kept", updates[0].Text)
}

func TestFeedUpdates_ActorAndSocialCounts(t *testing.T) {
	t.Parallel()

	envelope := &voyager.RawEnvelope{
		Included: []voyager.Entity{
			{
				"$type": "com.linkedin.voyager.feed.render.UpdateV2",
				"updateMetadata": map[string]any{
					"urn": "urn:li:activity:7002",
				},
				"commentary": map[string]any{"text": map[string]any{"text": "nested commentary"}},
				"actor": map[string]any{
					"name":        map[string]any{"text": "Jane Smith"},
					"description": map[string]any{"text": "Engineer at Globex"},
					"navigationContext": map[string]any{
						"actionTarget": "https://www.linkedin.com/in/janesmith",
					},
				},
				"socialDetail": map[string]any{
					"totalSocialActivityCounts": map[string]any{
						"numLikes":    float64(12),
						"numComments": float64(3),
					},
				},
			},
		},
	}

	updates := normalize.FeedUpdates(envelope)
	require.Len(t, updates, 1)

	update := updates[0]
	assert.Equal(t, voyager.URN("urn:li:activity:7002"), update.URN)
	assert.Equal(t, "nested commentary", update.Text)
	assert.Equal(t, "Jane Smith", update.AuthorName)
	assert.Equal(t, "Engineer at Globex", update.AuthorHeadline)
	assert.Equal(t, "https://www.linkedin.com/in/janesmith", update.AuthorLink)
	assert.Equal(t, 12, update.LikeCount)
	assert.Equal(t, 3, update.CommentCount)
	// Absent count defaults to zero.
	assert.Equal(t, 0, update.ShareCount)
}

func TestPost_NotFoundOnZeroMatches(t *testing.T) {
	t.Parallel()

	_, err := normalize.Post(&voyager.RawEnvelope{Included: []voyager.Entity{}})
	require.Error(t, err)
	assert.True(t, voyager.IsNotFound(err))
}

func TestPost_SingleMatch(t *testing.T) {
	t.Parallel()

	envelope := &voyager.RawEnvelope{
		Included: []voyager.Entity{
			{
				"$type":      "com.linkedin.voyager.feed.render.UpdateV2",
				"entityUrn":  "urn:li:activity:9",
				"commentary": map[string]any{"text": "the post"},
			},
		},
	}

	post, err := normalize.Post(envelope)
	require.NoError(t, err)
	assert.Equal(t, "the post", post.Text)
}
