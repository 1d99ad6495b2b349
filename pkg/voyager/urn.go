package voyager

import (
	"net/url"
	"strings"
)

// URN is a colon-delimited opaque identifier, e.g. "urn:li:fsd_profile:ACo...".
// It is the primary key for every upstream entity. Composite IDs may be
// parenthesized, e.g. "urn:li:fs_updateV2:(urn:li:activity:123,MAIN_FEED,...)".
type URN string

// ID returns the last colon-delimited part, keeping a parenthesized
// composite ID intact.
func (u URN) ID() string {
	s := string(u)
	if idx := strings.Index(s, ":("); idx >= 0 {
		return s[idx+1:]
	}

	if idx := strings.LastIndex(s, ":"); idx >= 0 {
		return s[idx+1:]
	}

	return s
}

// Type returns the entity-type part ("fsd_profile" in "urn:li:fsd_profile:x"),
// or "" when the URN does not have one.
func (u URN) Type() string {
	parts := strings.SplitN(string(u), ":", 4)
	if len(parts) < 3 {
		return ""
	}

	return parts[2]
}

// IsEmpty reports whether the URN carries no identifier.
func (u URN) IsEmpty() bool {
	return u == ""
}

// Escaped returns the URN percent-encoded for use as a path or query
// component.
func (u URN) Escaped() string {
	return url.QueryEscape(string(u))
}

func (u URN) String() string {
	return string(u)
}
