package normalize

import (
	"github.com/voycli/voycli/pkg/voyager"
)

func isJobEntity(entity voyager.Entity) bool {
	if TagContains(entity, "JobPosting") {
		return true
	}

	// Jobs sometimes arrive untagged but always carry a title.
	return Text(entity["title"]) != "" && Text(entity["formattedLocation"]) != ""
}

func jobRecord(entity voyager.Entity) (voyager.Job, bool) {
	urn := URNOf(entity)
	if urn.IsEmpty() {
		return voyager.Job{}, false
	}

	title := Text(entity["title"])
	if title == "" {
		return voyager.Job{}, false
	}

	return voyager.Job{
		URN:         urn,
		Title:       title,
		Company:     jobCompany(entity),
		Location:    firstText(entity, nil, "formattedLocation", "locationName"),
		Description: Text(entity["description"]),
		ListedAt:    Int64(entity["listedAt"]),
		Remote:      Bool(entity["workRemoteAllowed"]),
	}, true
}

func jobCompany(entity voyager.Entity) string {
	if name := Text(entity["companyName"]); name != "" {
		return name
	}

	if details := Map(entity["companyDetails"]); details != nil {
		if name := Text(details["companyName"]); name != "" {
			return name
		}

		// One more historical nesting level.
		for _, nested := range details {
			if name := Text(Map(nested)["companyName"]); name != "" {
				return name
			}
		}
	}

	return ""
}

// Jobs extracts job postings from a search or recommendation envelope.
func Jobs(envelope *voyager.RawEnvelope) []voyager.Job {
	jobs := []voyager.Job{}

	for _, entity := range filterIncluded(envelope, isJobEntity) {
		if job, ok := jobRecord(entity); ok {
			jobs = append(jobs, job)
		}
	}

	return jobs
}

// Job extracts a single posting from an envelope fetched for one job.
func Job(envelope *voyager.RawEnvelope) (*voyager.Job, error) {
	for _, entity := range filterIncluded(envelope, isJobEntity) {
		if job, ok := jobRecord(entity); ok {
			return &job, nil
		}
	}

	if job, ok := jobRecord(envelope.Data); ok {
		return &job, nil
	}

	return nil, &voyager.NotFoundError{Resource: "Job"}
}
