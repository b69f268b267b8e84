package greenhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"jobfinder-engine/internal/domain"
	"jobfinder-engine/internal/scrape/types"
	"jobfinder-engine/internal/scrape/util"
)

const defaultOrigin = "https://boards-api.greenhouse.io"

type Scraper struct {
	hc   *http.Client
	ua   string
	base string // API origin, overridable in tests
}

func New(hc *http.Client, userAgent string) *Scraper {
	return &Scraper{hc: hc, ua: userAgent, base: defaultOrigin}
}

func (s *Scraper) Name() string { return "greenhouse" }

// Fetch reads the public boards API. There is no HTML fallback here:
// the boards API is the documented surface and stays up when the
// hosted pages get reskinned.
func (s *Scraper) Fetch(ctx context.Context, company string) types.Result {
	return types.RunStrategies(ctx, s.Name(), company, []types.Strategy{
		{Name: types.StrategyAPI, Run: s.fetchAPI},
	})
}

type ghJob struct {
	Title       string `json:"title"`
	AbsoluteURL string `json:"absolute_url"`
	UpdatedAt   string `json:"updated_at"`
	Location    struct {
		Name string `json:"name"`
	} `json:"location"`
}

func (s *Scraper) fetchAPI(ctx context.Context, company string) ([]domain.JobPosting, string) {
	apiURL := fmt.Sprintf("%s/v1/boards/%s/jobs", s.base, company)

	// company comes straight from user input and can hold bytes net/url rejects
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Sprintf("request: %v", err)
	}
	req.Header.Set("User-Agent", s.ua)

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Sprintf("get: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Sprintf("status %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		return nil, fmt.Sprintf("content-type %q", ct)
	}

	var body struct {
		Jobs []json.RawMessage `json:"jobs"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Sprintf("decode: %v", err)
	}

	out := make([]domain.JobPosting, 0, len(body.Jobs))
	for _, entry := range body.Jobs {
		var j ghJob
		// a malformed entry keeps zero fields instead of sinking the batch
		_ = json.Unmarshal(entry, &j)

		loc := util.CleanText(j.Location.Name)
		out = append(out, domain.JobPosting{
			Company:    company,
			Title:      util.CleanText(j.Title),
			Location:   loc,
			Remote:     util.LooksRemote(loc),
			Source:     domain.SourceGreenhouse,
			URL:        strings.TrimSpace(j.AbsoluteURL),
			DatePosted: isoDatePrefix(j.UpdatedAt),
		})
	}
	return out, ""
}

// isoDatePrefix trims a full RFC3339 timestamp down to its date part.
func isoDatePrefix(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
