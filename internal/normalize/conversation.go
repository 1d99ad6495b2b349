package normalize

import (
	"github.com/voycli/voycli/pkg/voyager"
)

// participantStubs builds a URN-to-participant map from the profile-like
// stub entities scattered through the included bag. The map is the only
// join table available: the upstream gives no referential-integrity
// guarantee between a conversation's participant URNs and the stubs.
func participantStubs(envelope *voyager.RawEnvelope) map[voyager.URN]voyager.Participant {
	stubs := make(map[voyager.URN]voyager.Participant)

	for _, entity := range filterIncluded(envelope, isProfileEntity) {
		urn := URNOf(entity)
		if urn.IsEmpty() {
			continue
		}

		name := Text(entity["firstName"])
		if last := Text(entity["lastName"]); last != "" {
			if name != "" {
				name += " "
			}

			name += last
		}

		participant := voyager.Participant{
			URN:              urn,
			Name:             name,
			Headline:         firstText(entity, nil, "headline", "occupation"),
			PublicIdentifier: Text(entity["publicIdentifier"]),
		}

		stubs[urn] = participant

		// Stubs are sometimes referenced by their secondary key.
		if object := Text(entity["objectUrn"]); object != "" {
			stubs[voyager.URN(object)] = participant
		}
	}

	return stubs
}

// participantURN digs the URN out of one participant reference, which
// upstream renders either as a bare string or as a nested object keyed by
// one of two historical field names.
func participantURN(ref any) voyager.URN {
	if urn := Text(ref); urn != "" {
		return voyager.URN(urn)
	}

	if nested := Map(ref); nested != nil {
		for _, key := range []string{"entityUrn", "miniProfileUrn"} {
			if urn := Text(nested[key]); urn != "" {
				return voyager.URN(urn)
			}
		}
	}

	return ""
}

// Conversations assembles conversation records, resolving each declared
// participant URN against the profile stubs in the same envelope. A
// participant reference with no matching stub is omitted, never rendered as
// a partial entry; that is expected with this upstream, not an error.
func Conversations(envelope *voyager.RawEnvelope) []voyager.Conversation {
	stubs := participantStubs(envelope)
	conversations := []voyager.Conversation{}

	for _, entity := range filterIncluded(envelope, func(e voyager.Entity) bool {
		return TagContains(e, "Conversation")
	}) {
		urn := URNOf(entity)
		if urn.IsEmpty() {
			continue
		}

		conversation := voyager.Conversation{
			URN:            urn,
			Participants:   []voyager.Participant{},
			LastMessage:    Text(entity["lastMessage"]),
			LastActivityAt: Int64(entity["lastActivityAt"]),
			UnreadCount:    Int(entity["unreadCount"]),
			GroupChat:      Bool(entity["groupChat"]),
		}

		for _, ref := range participantRefs(entity) {
			refURN := participantURN(ref)
			if refURN.IsEmpty() {
				continue
			}

			if participant, ok := stubs[refURN]; ok {
				conversation.Participants = append(conversation.Participants, participant)
			}
		}

		conversations = append(conversations, conversation)
	}

	return conversations
}

// participantRefs reads the conversation's declared participant list from
// either historical field location.
func participantRefs(entity voyager.Entity) []any {
	if refs := Slice(entity["*participants"]); refs != nil {
		return refs
	}

	return Slice(entity["participants"])
}
