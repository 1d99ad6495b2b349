package normalize

import (
	"strings"

	"github.com/voycli/voycli/pkg/voyager"
)

// SearchResults extracts hits from a search envelope. Hits arrive as
// EntityResult-tagged entities; the kind is derived from the hit's own URN
// type rather than the tag, which does not distinguish people from
// companies.
func SearchResults(envelope *voyager.RawEnvelope) []voyager.SearchResult {
	results := []voyager.SearchResult{}

	for _, entity := range filterIncluded(envelope, func(e voyager.Entity) bool {
		return TagContains(e, "EntityResult") || TagContains(e, "SearchHit")
	}) {
		target := targetURN(entity)
		if target.IsEmpty() {
			continue
		}

		title := firstText(entity, nil, "title")
		if title == "" {
			continue
		}

		results = append(results, voyager.SearchResult{
			URN:              target,
			Title:            title,
			Subtitle:         firstText(entity, nil, "primarySubtitle", "secondarySubtitle"),
			PublicIdentifier: publicIdentifierFromURL(Text(entity["navigationUrl"])),
			Kind:             searchKind(target),
		})
	}

	return results
}

// targetURN prefers the hit's trackingUrn (the URN of the found entity)
// over the search hit's own composite entityUrn.
func targetURN(entity voyager.Entity) voyager.URN {
	if urn := Text(entity["trackingUrn"]); urn != "" {
		return voyager.URN(urn)
	}

	return URNOf(entity)
}

func searchKind(urn voyager.URN) string {
	switch {
	case strings.Contains(urn.Type(), "member") || strings.Contains(urn.Type(), "profile"):
		return "person"
	case strings.Contains(urn.Type(), "company") || strings.Contains(urn.Type(), "organization"):
		return "company"
	case strings.Contains(urn.Type(), "job"):
		return "job"
	default:
		return "unknown"
	}
}

// publicIdentifierFromURL digs the vanity name out of a profile navigation
// URL like https://www.linkedin.com/in/janesmith.
func publicIdentifierFromURL(navigationURL string) string {
	marker := "/in/"

	idx := strings.Index(navigationURL, marker)
	if idx < 0 {
		return ""
	}

	identifier := navigationURL[idx+len(marker):]
	identifier = strings.TrimSuffix(identifier, "/")

	if slash := strings.Index(identifier, "?"); slash >= 0 {
		identifier = identifier[:slash]
	}

	return identifier
}
