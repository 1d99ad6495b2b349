package client

// DefaultBaseURL is the upstream API root every endpoint path hangs off.
const DefaultBaseURL = "https://www.linkedin.com/voyager/api"

// Endpoint path templates. Placeholders take URL-escaped path components;
// URNs go through URN.Escaped before substitution.
const (
	endpointProfileView        = "/identity/profiles/%s/profileView"
	endpointOwnProfile         = "/me"
	endpointProfileActions     = "/identity/profiles/%s/profileActions"
	endpointProfileViews       = "/identity/wvmpCards"
	endpointFeedUpdates        = "/feed/updates"
	endpointFeedUpdate         = "/feed/updates/%s"
	endpointShares             = "/contentcreation/normShares"
	endpointComments           = "/feed/comments"
	endpointReactions          = "/feed/reactions"
	endpointConnections        = "/relationships/connections"
	endpointInvitationViews    = "/relationships/invitationViews"
	endpointInvitation         = "/relationships/invitations/%s"
	endpointNormInvitations    = "/growth/normInvitations"
	endpointConversations      = "/messaging/conversations"
	endpointConversation       = "/messaging/conversations/%s"
	endpointConversationEvents = "/messaging/conversations/%s/events"
	endpointNotifications      = "/identity/notifications"
	endpointCompanies          = "/organization/companies"
	endpointJobPosting         = "/jobs/jobPostings/%s"
	endpointSearch             = "/search/blended"
)
