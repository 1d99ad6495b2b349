package normalize

import (
	"github.com/voycli/voycli/pkg/voyager"
)

// Connections cross-references connection entities against the profile
// stubs in the same envelope, the same join the conversation parser does.
// A connection entity whose member reference resolves no stub is dropped.
func Connections(envelope *voyager.RawEnvelope) []voyager.Connection {
	stubs := make(map[voyager.URN]voyager.Entity)

	for _, entity := range filterIncluded(envelope, isProfileEntity) {
		if urn := URNOf(entity); !urn.IsEmpty() {
			stubs[urn] = entity
		}
	}

	connections := []voyager.Connection{}

	for _, entity := range filterIncluded(envelope, func(e voyager.Entity) bool {
		return TagContains(e, "Connection")
	}) {
		stub := resolveMember(entity, stubs)
		if stub == nil {
			continue
		}

		urn := URNOf(stub)
		if urn.IsEmpty() {
			continue
		}

		connections = append(connections, voyager.Connection{
			URN:              urn,
			PublicIdentifier: Text(stub["publicIdentifier"]),
			FirstName:        Text(stub["firstName"]),
			LastName:         Text(stub["lastName"]),
			Headline:         firstText(stub, nil, "headline", "occupation"),
			ConnectedAt:      Int64(entity["createdAt"]),
		})
	}

	return connections
}

// resolveMember finds the profile stub for a connection entity: an inline
// resolution result when the upstream embedded one, otherwise a lookup of
// the member reference URN against the stub map.
func resolveMember(entity voyager.Entity, stubs map[voyager.URN]voyager.Entity) voyager.Entity {
	if inline := Map(entity["connectedMemberResolutionResult"]); inline != nil {
		return inline
	}

	for _, key := range []string{"*connectedMember", "connectedMember", "*miniProfile"} {
		if urn := voyager.URN(Text(entity[key])); !urn.IsEmpty() {
			if stub, ok := stubs[urn]; ok {
				return stub
			}
		}
	}

	return nil
}

// Invitations extracts pending invitations. The sender may be embedded as a
// nested stub or referenced by URN against the included bag.
func Invitations(envelope *voyager.RawEnvelope) []voyager.Invitation {
	stubs := participantStubs(envelope)
	invitations := []voyager.Invitation{}

	for _, entity := range filterIncluded(envelope, func(e voyager.Entity) bool {
		return TagContains(e, "Invitation")
	}) {
		urn := URNOf(entity)
		if urn.IsEmpty() {
			continue
		}

		invitation := voyager.Invitation{
			URN:          urn,
			Message:      firstText(entity, nil, "message", "customMessage"),
			SharedSecret: Text(entity["sharedSecret"]),
			SentAt:       Int64(entity["sentTime"]),
		}

		if from := Map(entity["fromMember"]); from != nil {
			invitation.FromName = stubName(from)
			invitation.FromHeadline = firstText(from, nil, "headline", "occupation")
		} else if fromURN := participantURN(entity["*fromMember"]); !fromURN.IsEmpty() {
			if stub, ok := stubs[fromURN]; ok {
				invitation.FromName = stub.Name
				invitation.FromHeadline = stub.Headline
			}
		}

		invitations = append(invitations, invitation)
	}

	return invitations
}

func stubName(entity map[string]any) string {
	name := Text(entity["firstName"])
	if last := Text(entity["lastName"]); last != "" {
		if name != "" {
			name += " "
		}

		name += last
	}

	return name
}
