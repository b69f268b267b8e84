package scrape

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"jobfinder-engine/internal/domain"
	"jobfinder-engine/internal/scrape/greenhouse"
	"jobfinder-engine/internal/scrape/lever"
	"jobfinder-engine/internal/scrape/types"

	"golang.org/x/sync/errgroup"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "JobFinder/1.0 (+local)"
	maxInFlight      = 8
)

type Config struct {
	Timeout   time.Duration
	UserAgent string
}

// Aggregator fans search targets out to per-platform adapters and
// collects their results in input order.
type Aggregator struct {
	timeout  time.Duration
	fetchers map[string]types.Fetcher
}

func NewAggregator(cfg Config) *Aggregator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	hc := &http.Client{Timeout: cfg.Timeout}
	return &Aggregator{
		timeout: cfg.Timeout,
		fetchers: map[string]types.Fetcher{
			"lever":      lever.New(hc, cfg.UserAgent),
			"greenhouse": greenhouse.New(hc, cfg.UserAgent),
		},
	}
}

// Results runs every target concurrently and returns one Result per
// target, in target order. A failing target contributes an empty
// Result; it never cancels its siblings.
func (a *Aggregator) Results(ctx context.Context, targets []domain.Target) []types.Result {
	out := make([]types.Result, len(targets))

	var g errgroup.Group
	g.SetLimit(maxInFlight)

	for i, tgt := range targets {
		i, tgt := i, tgt

		g.Go(func() error {
			f, ok := a.fetchers[strings.ToLower(tgt.Platform)]
			if !ok {
				log.Printf("[scrape] company=%q platform=%q skipped: unknown platform", tgt.Company, tgt.Platform)
				out[i] = types.Result{Platform: tgt.Platform, Company: tgt.Company, Reason: "unknown platform"}
				return nil
			}

			// room for both strategies plus slack
			fctx, cancel := context.WithTimeout(ctx, 3*a.timeout)
			defer cancel()

			res := f.Fetch(fctx, tgt.Company)
			if res.Reason != "" {
				log.Printf("[ats:%s] company=%q empty: %s", f.Name(), tgt.Company, res.Reason)
			} else {
				log.Printf("[ats:%s] company=%q jobs=%d strategy=%s", f.Name(), tgt.Company, len(res.Postings), res.Strategy)
			}
			out[i] = res
			return nil
		})
	}

	_ = g.Wait()
	return out
}

// FetchAll flattens Results into one posting list, target order intact.
func (a *Aggregator) FetchAll(ctx context.Context, targets []domain.Target) []domain.JobPosting {
	var all []domain.JobPosting
	for _, res := range a.Results(ctx, targets) {
		all = append(all, res.Postings...)
	}
	return all
}
