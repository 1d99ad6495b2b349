package normalize

import (
	"sort"

	"github.com/voycli/voycli/pkg/voyager"
)

// isProfileEntity matches the distinguished profile entity: a Profile type
// tag, or a publicIdentifier field when the tag is absent or unrecognized.
func isProfileEntity(entity voyager.Entity) bool {
	if TagContains(entity, "Profile") {
		return true
	}

	return Text(entity["publicIdentifier"]) != ""
}

// Profile assembles a profile from an envelope. The flat fields come from a
// distinguished profile entity in the included bag when one exists, falling
// back to the envelope's data object; a field present on the entity wins
// over the same field on data. Experience and education entries are
// gathered from the full bag regardless of nesting.
func Profile(envelope *voyager.RawEnvelope) (*voyager.Profile, error) {
	source := pickProfileSource(envelope)
	if source == nil {
		return nil, &voyager.NotFoundError{Resource: "Profile"}
	}

	fallback := envelope.Data

	profile := &voyager.Profile{
		URN:              pick(source, fallback, URNOf),
		PublicIdentifier: pickText(source, fallback, "publicIdentifier"),
		FirstName:        pickText(source, fallback, "firstName"),
		LastName:         pickText(source, fallback, "lastName"),
		Headline:         pickText(source, fallback, "headline"),
		Summary:          pickText(source, fallback, "summary"),
		Location:         firstText(source, fallback, "locationName", "geoLocationName"),
		Industry:         pickText(source, fallback, "industryName"),
		ConnectionCount:  pickInt(source, fallback, "connectionCount"),
		FollowerCount:    pickInt(source, fallback, "followerCount"),
		PictureURL:       profilePicture(source, fallback),
		Experience:       experiences(envelope),
		Education:        educations(envelope),
	}

	return profile, nil
}

func pickProfileSource(envelope *voyager.RawEnvelope) map[string]any {
	for _, entity := range envelope.Included {
		if isProfileEntity(entity) {
			return entity
		}
	}

	if len(envelope.Data) > 0 {
		return envelope.Data
	}

	return nil
}

func pick(primary, fallback map[string]any, extract func(voyager.Entity) voyager.URN) voyager.URN {
	if urn := extract(primary); urn != "" {
		return urn
	}

	return extract(fallback)
}

func pickText(primary, fallback map[string]any, key string) string {
	if value := Text(primary[key]); value != "" {
		return value
	}

	return Text(fallback[key])
}

func pickInt(primary, fallback map[string]any, key string) int {
	if value := Int(primary[key]); value != 0 {
		return value
	}

	return Int(fallback[key])
}

func firstText(primary, fallback map[string]any, keys ...string) string {
	for _, key := range keys {
		if value := pickText(primary, fallback, key); value != "" {
			return value
		}
	}

	return ""
}

func profilePicture(primary, fallback map[string]any) string {
	for _, source := range []map[string]any{primary, fallback} {
		for _, key := range []string{"profilePicture", "picture"} {
			if url := ImageURL(source[key]); url != "" {
				return url
			}
		}
	}

	return ""
}

// experiences gathers every Position-tagged entity in the bag, ordered with
// current entries first, then by start date descending. An entry is current
// exactly when it has no end date in either historical field location.
func experiences(envelope *voyager.RawEnvelope) []voyager.Experience {
	entries := []voyager.Experience{}

	for _, entity := range filterIncluded(envelope, func(e voyager.Entity) bool {
		return TagContains(e, "Position")
	}) {
		start, end := DateRange(entity)

		entries = append(entries, voyager.Experience{
			Title:       Text(entity["title"]),
			Company:     Text(entity["companyName"]),
			Location:    Text(entity["locationName"]),
			Description: Text(entity["description"]),
			StartDate:   start,
			EndDate:     end,
			IsCurrent:   end == "",
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsCurrent != entries[j].IsCurrent {
			return entries[i].IsCurrent
		}

		return entries[i].StartDate > entries[j].StartDate
	})

	return entries
}

func educations(envelope *voyager.RawEnvelope) []voyager.Education {
	entries := []voyager.Education{}

	for _, entity := range filterIncluded(envelope, func(e voyager.Entity) bool {
		return TagContains(e, "Education")
	}) {
		startYear, endYear := educationYears(entity)

		entries = append(entries, voyager.Education{
			School:    Text(entity["schoolName"]),
			Degree:    Text(entity["degreeName"]),
			Field:     Text(entity["fieldOfStudy"]),
			StartYear: startYear,
			EndYear:   endYear,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartYear > entries[j].StartYear
	})

	return entries
}

func educationYears(entity voyager.Entity) (start, end int) {
	if period := Map(entity["timePeriod"]); period != nil {
		return Int(Map(period["startDate"])["year"]), Int(Map(period["endDate"])["year"])
	}

	if dateRange := Map(entity["dateRange"]); dateRange != nil {
		return Int(Map(dateRange["start"])["year"]), Int(Map(dateRange["end"])["year"])
	}

	return 0, 0
}
