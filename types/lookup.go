package types

// LookupKey is a normalized name used to find a person's team.
//
// Keys are produced by normalize.Key. Both name orders of a person map to the
// same team; two different people may collide on one key, in which case the
// later entry wins.
type LookupKey string

// String returns the key text.
func (k LookupKey) String() string {
	return string(k)
}

// LookupEntry is the index value for one LookupKey.
type LookupEntry struct {
	// TeamNumber is the 1-based number of the owning team.
	TeamNumber int `json:"team_number"`

	// Team references the owning team; its Members slice is shared, not copied.
	Team Team `json:"team"`
}

// Members returns the owning team's members in display order.
func (e LookupEntry) Members() []Person {
	return e.Team.Members
}

// LookupStatus classifies the outcome of a participant query.
type LookupStatus int

const (
	// LookupNotPublished means no partition has been published yet (or it was cleared).
	LookupNotPublished LookupStatus = iota

	// LookupFound means the query matched a key exactly.
	LookupFound

	// LookupSuggested means no exact match exists but similar names were found.
	LookupSuggested

	// LookupNoMatch means neither an exact nor a similar name exists.
	LookupNoMatch
)

// String returns the string representation of the status.
func (s LookupStatus) String() string {
	switch s {
	case LookupNotPublished:
		return "NotPublished"
	case LookupFound:
		return "Found"
	case LookupSuggested:
		return "Suggested"
	case LookupNoMatch:
		return "NoMatch"
	default:
		return "Unknown"
	}
}

// Suggestion is a near match offered when a query has no exact hit.
type Suggestion struct {
	Key         LookupKey `json:"key"`
	DisplayName string    `json:"display_name"`
}

// LookupResult is the answer to one participant query.
type LookupResult struct {
	Status LookupStatus `json:"status"`

	// Key is the normalized query (or the selected suggestion key).
	Key LookupKey `json:"key"`

	// TeamNumber and Members are set only when Status is LookupFound.
	TeamNumber int      `json:"team_number,omitempty"`
	Members    []Person `json:"members,omitempty"`

	// Suggestions is set only when Status is LookupSuggested, best match first.
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}
