package domain

// Source tags for the platform adapter that produced a posting.
const (
	SourceLever      = "Lever"
	SourceGreenhouse = "Greenhouse"
)

// JobPosting is the normalized record every adapter emits. Fields are
// always present; unavailable values degrade to "" rather than being
// omitted. URL is the natural key for shortlist dedup.
type JobPosting struct {
	Company    string `json:"company"`
	Title      string `json:"title"`
	Location   string `json:"location"`
	Remote     bool   `json:"remote"`
	Source     string `json:"source"`
	URL        string `json:"url"`
	DatePosted string `json:"date_posted"`
}
