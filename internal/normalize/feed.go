package normalize

import (
	"github.com/voycli/voycli/pkg/voyager"
)

func isUpdateEntity(entity voyager.Entity) bool {
	return TagContains(entity, "Update")
}

// FeedUpdates extracts every update-tagged entity from the envelope. Items
// without a resolvable URN are dropped rather than emitted as partial
// records. Engagement counts come from the nested social-detail object,
// defaulting to zero.
func FeedUpdates(envelope *voyager.RawEnvelope) []voyager.FeedUpdate {
	updates := []voyager.FeedUpdate{}

	for _, entity := range filterIncluded(envelope, isUpdateEntity) {
		update, ok := feedUpdate(entity)
		if !ok {
			continue
		}

		updates = append(updates, update)
	}

	return updates
}

// Post extracts a single update from an envelope fetched for one post.
func Post(envelope *voyager.RawEnvelope) (*voyager.FeedUpdate, error) {
	for _, entity := range filterIncluded(envelope, isUpdateEntity) {
		if update, ok := feedUpdate(entity); ok {
			return &update, nil
		}
	}

	if update, ok := feedUpdate(envelope.Data); ok {
		return &update, nil
	}

	return nil, &voyager.NotFoundError{Resource: "Post"}
}

func feedUpdate(entity voyager.Entity) (voyager.FeedUpdate, bool) {
	urn := updateURN(entity)
	if urn.IsEmpty() {
		return voyager.FeedUpdate{}, false
	}

	update := voyager.FeedUpdate{
		URN:      urn,
		Text:     Text(Map(entity["commentary"])["text"]),
		ImageURL: updateImage(entity),
	}

	if actor := Map(entity["actor"]); actor != nil {
		update.AuthorName = Text(actor["name"])
		update.AuthorHeadline = Text(actor["description"])
		update.AuthorLink = Text(Map(actor["navigationContext"])["actionTarget"])
	}

	counts := socialCounts(entity)
	update.LikeCount = Int(counts["numLikes"])
	update.CommentCount = Int(counts["numComments"])
	update.ShareCount = Int(counts["numShares"])

	return update, true
}

// updateURN prefers the canonical activity URN from the update metadata
// over the entity's own composite key.
func updateURN(entity voyager.Entity) voyager.URN {
	if metadata := Map(entity["updateMetadata"]); metadata != nil {
		if urn := Text(metadata["urn"]); urn != "" {
			return voyager.URN(urn)
		}
	}

	return URNOf(entity)
}

// socialCounts locates the engagement-count object, which upstream nests
// either under socialDetail or directly on the update.
func socialCounts(entity voyager.Entity) map[string]any {
	if detail := Map(entity["socialDetail"]); detail != nil {
		if counts := Map(detail["totalSocialActivityCounts"]); counts != nil {
			return counts
		}

		return detail
	}

	if counts := Map(entity["totalSocialActivityCounts"]); counts != nil {
		return counts
	}

	return map[string]any{}
}

func updateImage(entity voyager.Entity) string {
	content := Map(entity["content"])
	if content == nil {
		return ""
	}

	if image := Map(content["imageComponent"]); image != nil {
		for _, raw := range Slice(image["images"]) {
			if url := ImageURL(Map(Map(raw)["attributes"])); url != "" {
				return url
			}

			if url := ImageURL(Map(raw)); url != "" {
				return url
			}
		}
	}

	return ImageURL(content["image"])
}
