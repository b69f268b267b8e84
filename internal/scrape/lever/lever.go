package lever

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"jobfinder-engine/internal/domain"
	"jobfinder-engine/internal/scrape/types"
	"jobfinder-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

const defaultOrigin = "https://jobs.lever.co"

type Scraper struct {
	hc   *http.Client
	ua   string
	base string // board origin, overridable in tests
}

func New(hc *http.Client, userAgent string) *Scraper {
	return &Scraper{hc: hc, ua: userAgent, base: defaultOrigin}
}

func (s *Scraper) Name() string { return "lever" }

// Fetch probes the board twice: the JSON endpoint first, then the
// public HTML page when the endpoint gives nothing usable.
func (s *Scraper) Fetch(ctx context.Context, company string) types.Result {
	return types.RunStrategies(ctx, s.Name(), company, []types.Strategy{
		{Name: types.StrategyAPI, Run: s.fetchAPI},
		{Name: types.StrategyHTML, Run: s.fetchHTML},
	})
}

type leverPosting struct {
	Text       string     `json:"text"` // title
	HostedURL  string     `json:"hostedUrl"`
	CreatedAt  epochMilli `json:"createdAt"`
	Additional struct {
		Location string `json:"location"`
	} `json:"additional"`
}

// epochMilli holds createdAt as the raw JSON token. Boards send it as a
// number or as a quoted string, and a value that fails to parse must be
// carried through unmodified.
type epochMilli string

func (e *epochMilli) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*e = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*e = epochMilli(s)
	return nil
}

// Date renders the epoch-millisecond value as a UTC YYYY-MM-DD string.
// Unparseable or out-of-range values come back raw rather than being
// dropped.
func (e epochMilli) Date() string {
	raw := string(e)
	if raw == "" {
		return ""
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return raw
		}
		n = int64(f)
	}
	return time.UnixMilli(n).UTC().Format("2006-01-02")
}

func (s *Scraper) fetchAPI(ctx context.Context, company string) ([]domain.JobPosting, string) {
	apiURL := fmt.Sprintf("%s/%s?mode=json", s.base, company)

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

	var entries []json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&entries); err != nil {
		return nil, fmt.Sprintf("decode: %v", err)
	}

	out := make([]domain.JobPosting, 0, len(entries))
	for _, entry := range entries {
		var p leverPosting
		// a malformed entry keeps zero fields instead of sinking the batch
		_ = json.Unmarshal(entry, &p)

		loc := util.CleanText(p.Additional.Location)
		out = append(out, domain.JobPosting{
			Company:    company,
			Title:      util.CleanText(p.Text),
			Location:   loc,
			Remote:     util.LooksRemote(loc),
			Source:     domain.SourceLever,
			URL:        strings.TrimSpace(p.HostedURL),
			DatePosted: p.CreatedAt.Date(),
		})
	}
	return out, ""
}

func (s *Scraper) fetchHTML(ctx context.Context, company string) ([]domain.JobPosting, string) {
	pageURL := fmt.Sprintf("%s/%s", s.base, company)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
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

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Sprintf("parse: %v", err)
	}

	var out []domain.JobPosting
	doc.Find("div.posting").Each(func(_ int, posting *goquery.Selection) {
		title := util.CleanText(posting.Find("h5.posting-title").First().Text())
		loc := util.CleanText(posting.Find("span.sort-by-location").First().Text())
		href, _ := posting.Find("a.posting-title").First().Attr("href")

		// the listing page exposes no posting date
		out = append(out, domain.JobPosting{
			Company:  company,
			Title:    title,
			Location: loc,
			Remote:   util.LooksRemote(loc),
			Source:   domain.SourceLever,
			URL:      util.AbsoluteURL(s.base, href),
		})
	})
	return out, ""
}
