// Package voyager defines the public domain types, error taxonomy, and
// pagination helpers for the Voyager API client.
//
// The upstream API has no stable contract: responses arrive as an envelope of
// {data, included, paging} where included is an unordered bag of heterogeneous
// entities disambiguated only by a loose type tag or by incidental field
// presence. This package holds the stable, fully-typed records the client
// normalizes those payloads into, plus the typed errors every layer of the
// client raises and classifies.
//
// Basic usage:
//
//	cookies, err := auth.Resolve(ctx, auth.Options{})
//	if err != nil {
//		// no credential source yielded a complete session pair
//	}
//	c, err := client.New(cookies, nil)
//	profile, err := c.GetProfile(ctx, "janesmith")
//
// All record fields are defaulted: a missing upstream field yields "", 0,
// false, or an empty slice, never a partially-populated record. Callers can
// format results without branching on absence.
package voyager
