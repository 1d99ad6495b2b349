package normalize

import (
	"github.com/voycli/voycli/pkg/voyager"
)

// ProfileViews extracts "who viewed your profile" cards. Anonymous viewers
// carry no stub and are dropped; semi-private cards keep whatever headline
// text the upstream left visible.
func ProfileViews(envelope *voyager.RawEnvelope) []voyager.ProfileView {
	stubs := participantStubs(envelope)
	views := []voyager.ProfileView{}

	for _, entity := range filterIncluded(envelope, func(e voyager.Entity) bool {
		return TagContains(e, "ProfileView") || TagContains(e, "ViewerCard")
	}) {
		view := voyager.ProfileView{
			ViewedAt: Int64(entity["viewedAt"]),
		}

		if viewer := Map(entity["viewer"]); viewer != nil {
			view.ViewerName = stubName(viewer)
			view.ViewerHeadline = firstText(viewer, nil, "headline", "occupation")
			view.ViewerURN = URNOf(viewer)
		} else if viewerURN := participantURN(entity["*viewer"]); !viewerURN.IsEmpty() {
			if stub, ok := stubs[viewerURN]; ok {
				view.ViewerName = stub.Name
				view.ViewerHeadline = stub.Headline
				view.ViewerURN = stub.URN
			}
		}

		if view.ViewerName == "" {
			continue
		}

		views = append(views, view)
	}

	return views
}
