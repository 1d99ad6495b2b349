// Package normalize reconstructs typed domain records from raw response
// envelopes. The upstream returns entities as an unordered bag disambiguated
// only by a loosely-matched type tag or by incidental field presence, so
// every parser here works by permissive matching: filter the bag with a
// predicate, map each candidate through defensive field extraction, and drop
// anything that fails the minimum validity bar (a resolvable URN).
package normalize

import (
	"fmt"
	"strings"

	"github.com/voycli/voycli/pkg/voyager"
)

// Text coerces a leaf value to a string. The upstream wraps localized or
// rich strings in {text: ...} objects, sometimes nested; Text unwraps them
// and falls back to "" for anything unusable.
func Text(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case map[string]any:
		if inner, ok := value["text"]; ok {
			return Text(inner)
		}

		return ""
	case float64:
		if value == float64(int64(value)) {
			return fmt.Sprintf("%d", int64(value))
		}

		return fmt.Sprintf("%v", value)
	case bool:
		return fmt.Sprintf("%t", value)
	default:
		return ""
	}
}

// Int coerces a leaf value to an int, treating anything non-numeric as zero.
func Int(v any) int {
	switch value := v.(type) {
	case float64:
		return int(value)
	case int:
		return value
	case int64:
		return int(value)
	default:
		return 0
	}
}

// Int64 coerces a leaf value to an int64, for epoch-millisecond timestamps.
func Int64(v any) int64 {
	switch value := v.(type) {
	case float64:
		return int64(value)
	case int:
		return int64(value)
	case int64:
		return value
	default:
		return 0
	}
}

// Bool coerces a leaf value to a bool, treating anything non-boolean as
// false.
func Bool(v any) bool {
	value, ok := v.(bool)

	return ok && value
}

// Map unwraps a nested object field, returning nil for anything else.
func Map(v any) map[string]any {
	value, _ := v.(map[string]any)

	return value
}

// Slice unwraps a nested array field, returning nil for anything else.
func Slice(v any) []any {
	value, _ := v.([]any)

	return value
}

// TypeTag returns the entity's free-text type hint, or "".
func TypeTag(entity voyager.Entity) string {
	if tag := Text(entity["$type"]); tag != "" {
		return tag
	}

	return Text(entity["type"])
}

// TagContains reports whether the entity's type tag contains the given
// substring. The tag vocabulary is undocumented and observed to shift, so
// substring matching is deliberate: any tag containing "Position" is a
// work-experience entry, and so on.
func TagContains(entity voyager.Entity, substr string) bool {
	return strings.Contains(TypeTag(entity), substr)
}

// URNOf resolves the entity's primary identifier, trying the historical
// field names in order. An empty result means the entity fails the minimum
// validity bar and list parsers drop it.
func URNOf(entity voyager.Entity) voyager.URN {
	for _, key := range []string{"entityUrn", "objectUrn", "dashEntityUrn", "urn"} {
		if urn := Text(entity[key]); urn != "" {
			return voyager.URN(urn)
		}
	}

	return ""
}

// DateRange extracts a start/end date pair, checking both historical field
// locations: timePeriod{startDate,endDate} and dateRange{start,end}. Dates
// render as "YYYY" or "YYYY-MM". An empty end means the range is open.
func DateRange(entity voyager.Entity) (start, end string) {
	if period := Map(entity["timePeriod"]); period != nil {
		return formatDate(Map(period["startDate"])), formatDate(Map(period["endDate"]))
	}

	if dateRange := Map(entity["dateRange"]); dateRange != nil {
		return formatDate(Map(dateRange["start"])), formatDate(Map(dateRange["end"]))
	}

	return "", ""
}

func formatDate(date map[string]any) string {
	if date == nil {
		return ""
	}

	year := Int(date["year"])
	if year == 0 {
		return ""
	}

	month := Int(date["month"])
	if month == 0 {
		return fmt.Sprintf("%d", year)
	}

	return fmt.Sprintf("%d-%02d", year, month)
}

// ImageURL extracts a usable image URL from the upstream's assorted image
// wrappers: a root URL plus the largest artifact, a one-level display image
// reference, or a named vector-image wrapper. Anything else yields "".
func ImageURL(v any) string {
	image := Map(v)
	if image == nil {
		return ""
	}

	if root := Text(image["rootUrl"]); root != "" {
		if segment := largestArtifactSegment(Slice(image["artifacts"])); segment != "" {
			return root + segment
		}
	}

	if ref, ok := image["displayImageReference"]; ok {
		if url := ImageURL(ref); url != "" {
			return url
		}
	}

	if vector, ok := image["vectorImage"]; ok {
		if url := ImageURL(vector); url != "" {
			return url
		}
	}

	return ""
}

func largestArtifactSegment(artifacts []any) string {
	var (
		bestWidth   = -1
		bestSegment string
	)

	for _, raw := range artifacts {
		artifact := Map(raw)
		if artifact == nil {
			continue
		}

		segment := Text(artifact["fileIdentifyingUrlPathSegment"])
		if segment == "" {
			continue
		}

		if width := Int(artifact["width"]); width > bestWidth {
			bestWidth = width
			bestSegment = segment
		}
	}

	return bestSegment
}

// filterIncluded returns the entities in the envelope's included bag that
// match the predicate.
func filterIncluded(envelope *voyager.RawEnvelope, match func(voyager.Entity) bool) []voyager.Entity {
	var matched []voyager.Entity

	for _, entity := range envelope.Included {
		if match(entity) {
			matched = append(matched, entity)
		}
	}

	return matched
}
