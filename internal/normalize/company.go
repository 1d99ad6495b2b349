package normalize

import (
	"github.com/voycli/voycli/pkg/voyager"
)

func isCompanyEntity(entity voyager.Entity) bool {
	if TagContains(entity, "Company") || TagContains(entity, "Organization") {
		return true
	}

	return Text(entity["universalName"]) != ""
}

// Company extracts an organization page from its envelope.
func Company(envelope *voyager.RawEnvelope) (*voyager.Company, error) {
	for _, entity := range filterIncluded(envelope, isCompanyEntity) {
		if company, ok := companyRecord(entity); ok {
			return &company, nil
		}
	}

	if company, ok := companyRecord(envelope.Data); ok {
		return &company, nil
	}

	return nil, &voyager.NotFoundError{Resource: "Company"}
}

func companyRecord(entity voyager.Entity) (voyager.Company, bool) {
	urn := URNOf(entity)
	if urn.IsEmpty() {
		return voyager.Company{}, false
	}

	name := Text(entity["name"])
	if name == "" {
		return voyager.Company{}, false
	}

	return voyager.Company{
		URN:           urn,
		Name:          name,
		UniversalName: Text(entity["universalName"]),
		Description:   Text(entity["description"]),
		Industry:      companyIndustry(entity),
		Website:       firstText(entity, nil, "companyPageUrl", "websiteUrl"),
		EmployeeCount: Int(entity["staffCount"]),
		FollowerCount: companyFollowers(entity),
		LogoURL:       companyLogo(entity),
	}, true
}

func companyIndustry(entity voyager.Entity) string {
	if industry := Text(entity["industryName"]); industry != "" {
		return industry
	}

	// Industries may arrive as a list of display strings.
	for _, raw := range Slice(entity["industries"]) {
		if industry := Text(raw); industry != "" {
			return industry
		}
	}

	return ""
}

func companyFollowers(entity voyager.Entity) int {
	if count := Int(entity["followerCount"]); count != 0 {
		return count
	}

	return Int(Map(entity["followingInfo"])["followerCount"])
}

func companyLogo(entity voyager.Entity) string {
	if url := ImageURL(entity["logo"]); url != "" {
		return url
	}

	return ImageURL(Map(entity["logo"])["image"])
}
