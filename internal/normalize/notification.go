package normalize

import (
	"github.com/voycli/voycli/pkg/voyager"
)

// Notifications extracts notification cards. The minimum validity bar is a
// resolvable URN and a non-empty headline.
func Notifications(envelope *voyager.RawEnvelope) []voyager.Notification {
	notifications := []voyager.Notification{}

	for _, entity := range filterIncluded(envelope, func(e voyager.Entity) bool {
		return TagContains(e, "Notification") || TagContains(e, "Card")
	}) {
		urn := URNOf(entity)
		if urn.IsEmpty() {
			continue
		}

		headline := Text(entity["headline"])
		if headline == "" {
			continue
		}

		notifications = append(notifications, voyager.Notification{
			URN:         urn,
			Headline:    headline,
			Subtitle:    firstText(entity, nil, "subHeadline", "contentText"),
			Link:        firstText(entity, nil, "cardAction", "actionTarget"),
			PublishedAt: Int64(entity["publishedAt"]),
			Read:        Bool(entity["read"]),
		})
	}

	return notifications
}
