package types

import (
	"context"
	"strings"

	"jobfinder-engine/internal/domain"
)

// Strategy names recorded on a Result.
const (
	StrategyAPI  = "api"
	StrategyHTML = "html"
)

// Result is one adapter's answer for one employer board. Adapters never
// return errors: an empty Postings slice plus a Reason is the failure
// signal, so callers (and tests) can see why a board came back empty
// without a side channel.
type Result struct {
	Platform string              `json:"platform"`
	Company  string              `json:"company"`
	Postings []domain.JobPosting `json:"-"`
	Strategy string              `json:"strategy,omitempty"`
	Reason   string              `json:"reason,omitempty"`
}

// Fetcher is the per-platform adapter contract.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, company string) Result
}

// Strategy is one way of getting postings off a board. Run reports the
// postings it found and a reason when it found none.
type Strategy struct {
	Name string
	Run  func(ctx context.Context, company string) ([]domain.JobPosting, string)
}

// RunStrategies walks strategies in order and stops at the first one that
// yields postings. When all come up empty the Result carries the joined
// reasons.
func RunStrategies(ctx context.Context, platform, company string, strategies []Strategy) Result {
	res := Result{Platform: platform, Company: company}

	var reasons []string
	for _, st := range strategies {
		postings, reason := st.Run(ctx, company)
		if len(postings) > 0 {
			res.Postings = postings
			res.Strategy = st.Name
			return res
		}
		if reason == "" {
			reason = "no postings"
		}
		reasons = append(reasons, st.Name+": "+reason)
	}
	res.Reason = strings.Join(reasons, "; ")
	return res
}
