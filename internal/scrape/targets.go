package scrape

import (
	"strings"

	"jobfinder-engine/internal/domain"
)

var platformTags = map[string]bool{
	"lever":      true,
	"greenhouse": true,
}

// ParseTargets reads free-text board lines of the form
// "<identifier> (<platform>)". The tag is case-insensitive. Lines with
// no annotation default to Lever, and a parenthesized suffix that is
// not a recognized tag is treated as part of the identifier, not as an
// annotation.
func ParseTargets(text string) []domain.Target {
	var out []domain.Target
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		platform := "lever"
		company := line

		if strings.HasSuffix(line, ")") {
			if i := strings.LastIndex(line, "("); i >= 0 {
				tag := strings.ToLower(strings.TrimSpace(line[i+1 : len(line)-1]))
				if platformTags[tag] {
					platform = tag
					company = strings.TrimSpace(line[:i])
				}
			}
		}

		if company == "" {
			continue
		}
		out = append(out, domain.Target{Platform: platform, Company: company})
	}
	return out
}
