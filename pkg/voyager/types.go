package voyager

// CookieSet is an authenticated session: the li_at token plus the JSESSIONID
// used for CSRF. It is resolved once at client construction and never
// mutated afterwards. The extended cookies are optional and forwarded
// verbatim when present.
type CookieSet struct {
	LiAt       string `json:"li_at"                yaml:"li_at"`
	JSessionID string `json:"jsessionid"           yaml:"jsessionid"`
	LiMc       string `json:"li_mc,omitempty"      yaml:"li_mc,omitempty"`
	BCookie    string `json:"bcookie,omitempty"    yaml:"bcookie,omitempty"`
	BSCookie   string `json:"bscookie,omitempty"   yaml:"bscookie,omitempty"`
}

// Complete reports whether both required cookies are non-empty. A partially
// supplied pair is treated as absent by every credential source.
func (c CookieSet) Complete() bool {
	return c.LiAt != "" && c.JSessionID != ""
}

// Profile is a fully-typed member profile.
type Profile struct {
	URN              URN          `json:"urn"               yaml:"urn"`
	PublicIdentifier string       `json:"public_identifier" yaml:"public_identifier"`
	FirstName        string       `json:"first_name"        yaml:"first_name"`
	LastName         string       `json:"last_name"         yaml:"last_name"`
	Headline         string       `json:"headline"          yaml:"headline"`
	Summary          string       `json:"summary"           yaml:"summary"`
	Location         string       `json:"location"          yaml:"location"`
	Industry         string       `json:"industry"          yaml:"industry"`
	ConnectionCount  int          `json:"connection_count"  yaml:"connection_count"`
	FollowerCount    int          `json:"follower_count"    yaml:"follower_count"`
	PictureURL       string       `json:"picture_url"       yaml:"picture_url"`
	Experience       []Experience `json:"experience"        yaml:"experience"`
	Education        []Education  `json:"education"         yaml:"education"`
}

// Experience is one work-experience entry on a profile. An entry is current
// exactly when it has no end date.
type Experience struct {
	Title       string `json:"title"       yaml:"title"`
	Company     string `json:"company"     yaml:"company"`
	Location    string `json:"location"    yaml:"location"`
	Description string `json:"description" yaml:"description"`
	StartDate   string `json:"start_date"  yaml:"start_date"`
	EndDate     string `json:"end_date"    yaml:"end_date"`
	IsCurrent   bool   `json:"is_current"  yaml:"is_current"`
}

// Education is one education entry on a profile.
type Education struct {
	School    string `json:"school"     yaml:"school"`
	Degree    string `json:"degree"     yaml:"degree"`
	Field     string `json:"field"      yaml:"field"`
	StartYear int    `json:"start_year" yaml:"start_year"`
	EndYear   int    `json:"end_year"   yaml:"end_year"`
}

// FeedUpdate is one post in the feed.
type FeedUpdate struct {
	URN            URN    `json:"urn"             yaml:"urn"`
	AuthorName     string `json:"author_name"     yaml:"author_name"`
	AuthorHeadline string `json:"author_headline" yaml:"author_headline"`
	AuthorLink     string `json:"author_link"     yaml:"author_link"`
	Text           string `json:"text"            yaml:"text"`
	LikeCount      int    `json:"like_count"      yaml:"like_count"`
	CommentCount   int    `json:"comment_count"   yaml:"comment_count"`
	ShareCount     int    `json:"share_count"     yaml:"share_count"`
	ImageURL       string `json:"image_url"       yaml:"image_url"`
}

// Connection is one first-degree connection.
type Connection struct {
	URN              URN    `json:"urn"               yaml:"urn"`
	PublicIdentifier string `json:"public_identifier" yaml:"public_identifier"`
	FirstName        string `json:"first_name"        yaml:"first_name"`
	LastName         string `json:"last_name"         yaml:"last_name"`
	Headline         string `json:"headline"          yaml:"headline"`
	ConnectedAt      int64  `json:"connected_at"      yaml:"connected_at"`
}

// Invitation is a pending connection invitation.
type Invitation struct {
	URN          URN    `json:"urn"           yaml:"urn"`
	FromName     string `json:"from_name"     yaml:"from_name"`
	FromHeadline string `json:"from_headline" yaml:"from_headline"`
	Message      string `json:"message"       yaml:"message"`
	SharedSecret string `json:"shared_secret" yaml:"shared_secret"`
	SentAt       int64  `json:"sent_at"       yaml:"sent_at"`
}

// Participant is a lightweight profile stub resolved from a conversation's
// participant URNs.
type Participant struct {
	URN              URN    `json:"urn"               yaml:"urn"`
	Name             string `json:"name"              yaml:"name"`
	Headline         string `json:"headline"          yaml:"headline"`
	PublicIdentifier string `json:"public_identifier" yaml:"public_identifier"`
}

// Conversation is one messaging thread. Participants contains only the
// references that resolved against the profile stubs in the same envelope;
// unresolved URNs are omitted, never rendered as empty entries.
type Conversation struct {
	URN            URN           `json:"urn"              yaml:"urn"`
	Participants   []Participant `json:"participants"     yaml:"participants"`
	LastMessage    string        `json:"last_message"     yaml:"last_message"`
	LastActivityAt int64         `json:"last_activity_at" yaml:"last_activity_at"`
	UnreadCount    int           `json:"unread_count"     yaml:"unread_count"`
	GroupChat      bool          `json:"group_chat"       yaml:"group_chat"`
}

// Message is one messaging event in a conversation.
type Message struct {
	URN        URN    `json:"urn"         yaml:"urn"`
	SenderName string `json:"sender_name" yaml:"sender_name"`
	SenderURN  URN    `json:"sender_urn"  yaml:"sender_urn"`
	Text       string `json:"text"        yaml:"text"`
	SentAt     int64  `json:"sent_at"     yaml:"sent_at"`
}

// Notification is one notification card.
type Notification struct {
	URN         URN    `json:"urn"          yaml:"urn"`
	Headline    string `json:"headline"     yaml:"headline"`
	Subtitle    string `json:"subtitle"     yaml:"subtitle"`
	Link        string `json:"link"         yaml:"link"`
	PublishedAt int64  `json:"published_at" yaml:"published_at"`
	Read        bool   `json:"read"         yaml:"read"`
}

// Company is an organization page.
type Company struct {
	URN           URN    `json:"urn"            yaml:"urn"`
	Name          string `json:"name"           yaml:"name"`
	UniversalName string `json:"universal_name" yaml:"universal_name"`
	Description   string `json:"description"    yaml:"description"`
	Industry      string `json:"industry"       yaml:"industry"`
	Website       string `json:"website"        yaml:"website"`
	EmployeeCount int    `json:"employee_count" yaml:"employee_count"`
	FollowerCount int    `json:"follower_count" yaml:"follower_count"`
	LogoURL       string `json:"logo_url"       yaml:"logo_url"`
}

// Job is one job posting.
type Job struct {
	URN         URN    `json:"urn"         yaml:"urn"`
	Title       string `json:"title"       yaml:"title"`
	Company     string `json:"company"     yaml:"company"`
	Location    string `json:"location"    yaml:"location"`
	Description string `json:"description" yaml:"description"`
	ListedAt    int64  `json:"listed_at"   yaml:"listed_at"`
	Remote      bool   `json:"remote"      yaml:"remote"`
}

// ProfileView is one "who viewed your profile" entry.
type ProfileView struct {
	ViewerName     string `json:"viewer_name"     yaml:"viewer_name"`
	ViewerHeadline string `json:"viewer_headline" yaml:"viewer_headline"`
	ViewerURN      URN    `json:"viewer_urn"      yaml:"viewer_urn"`
	ViewedAt       int64  `json:"viewed_at"       yaml:"viewed_at"`
}

// SearchResult is one hit from a people/company/job search.
type SearchResult struct {
	URN              URN    `json:"urn"               yaml:"urn"`
	Title            string `json:"title"             yaml:"title"`
	Subtitle         string `json:"subtitle"          yaml:"subtitle"`
	PublicIdentifier string `json:"public_identifier" yaml:"public_identifier"`
	Kind             string `json:"kind"              yaml:"kind"`
}
