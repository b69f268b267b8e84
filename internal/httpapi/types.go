package httpapi

import "jobfinder-engine/internal/domain"

type SearchRequest struct {
	Boards   string `json:"boards"`
	Role     string `json:"role"`
	Location string `json:"location"`
	Extra    string `json:"extra"`
}

// TargetReport tells the UI what each board contributed, and why a
// board came back empty when it did.
type TargetReport struct {
	Platform string `json:"platform"`
	Company  string `json:"company"`
	Count    int    `json:"count"`
	Strategy string `json:"strategy,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

type SearchResponse struct {
	Count   int                 `json:"count"`
	Jobs    []domain.JobPosting `json:"jobs"`
	Targets []TargetReport      `json:"targets"`
	Message string              `json:"message,omitempty"`
}

type ExportRequest struct {
	Jobs []domain.JobPosting `json:"jobs"`
}

type ShortlistResponse struct {
	Count int                 `json:"count"`
	Jobs  []domain.JobPosting `json:"jobs"`
}

type SaveResponse struct {
	Added bool `json:"added"`
}
