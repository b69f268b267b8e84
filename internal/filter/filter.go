package filter

import (
	"strings"

	"jobfinder-engine/internal/domain"
)

// Keywords are the three search axes. A value that trims to "" imposes
// no constraint on its axis.
type Keywords struct {
	Role     string
	Location string
	Extra    string
}

// Apply returns the postings matching every non-empty keyword, in input
// order. The role keyword searches the title; the location keyword
// searches location plus title, because some boards only say "Remote"
// in the title; the extra keyword searches title, company, location and
// source. Pure: the input slice is never mutated.
func Apply(postings []domain.JobPosting, kw Keywords) []domain.JobPosting {
	role := norm(kw.Role)
	loc := norm(kw.Location)
	extra := norm(kw.Extra)

	out := make([]domain.JobPosting, 0, len(postings))
	for _, p := range postings {
		if role != "" && !strings.Contains(strings.ToLower(p.Title), role) {
			continue
		}
		if loc != "" && !strings.Contains(strings.ToLower(p.Location+" "+p.Title), loc) {
			continue
		}
		if extra != "" {
			blob := strings.ToLower(strings.Join([]string{p.Title, p.Company, p.Location, p.Source}, " "))
			if !strings.Contains(blob, extra) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
