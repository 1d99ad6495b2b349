package normalize

import (
	"github.com/voycli/voycli/pkg/voyager"
)

// Messages extracts messaging events from a conversation envelope. The
// minimum validity bar is a resolvable URN and non-empty text; anything
// else (typing indicators, system events) is dropped.
func Messages(envelope *voyager.RawEnvelope) []voyager.Message {
	stubs := participantStubs(envelope)
	messages := []voyager.Message{}

	for _, entity := range filterIncluded(envelope, func(e voyager.Entity) bool {
		return TagContains(e, "Event") || TagContains(e, "Message")
	}) {
		urn := URNOf(entity)
		if urn.IsEmpty() {
			continue
		}

		text := messageText(entity)
		if text == "" {
			continue
		}

		message := voyager.Message{
			URN:    urn,
			Text:   text,
			SentAt: Int64(entity["createdAt"]),
		}

		if message.SentAt == 0 {
			message.SentAt = Int64(entity["deliveredAt"])
		}

		if sender := senderURN(entity); !sender.IsEmpty() {
			message.SenderURN = sender
			if stub, ok := stubs[sender]; ok {
				message.SenderName = stub.Name
			}
		}

		messages = append(messages, message)
	}

	return messages
}

// messageText checks the historical body locations: a plain body text
// wrapper, an attributed body, or the nested event content.
func messageText(entity voyager.Entity) string {
	if text := Text(entity["body"]); text != "" {
		return text
	}

	if text := Text(Map(entity["attributedBody"])["text"]); text != "" {
		return text
	}

	if content := Map(entity["eventContent"]); content != nil {
		if text := Text(Map(content["attributedBody"])["text"]); text != "" {
			return text
		}

		return Text(content["body"])
	}

	return ""
}

func senderURN(entity voyager.Entity) voyager.URN {
	if urn := participantURN(entity["from"]); !urn.IsEmpty() {
		return urn
	}

	return participantURN(entity["sender"])
}
