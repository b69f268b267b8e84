package scrape

import (
	"context"
	"testing"
	"time"

	"jobfinder-engine/internal/domain"
	"jobfinder-engine/internal/scrape/types"
)

type stubFetcher struct {
	name  string
	fetch func(ctx context.Context, company string) types.Result
}

func (s stubFetcher) Name() string { return s.name }
func (s stubFetcher) Fetch(ctx context.Context, company string) types.Result {
	return s.fetch(ctx, company)
}

func posting(company, title string) domain.JobPosting {
	return domain.JobPosting{Company: company, Title: title, Source: domain.SourceLever, URL: "https://x/" + company + "/" + title}
}

func TestResultsPreserveTargetOrder(t *testing.T) {
	// slower first target must not trade places with the faster second
	slow := stubFetcher{name: "lever", fetch: func(ctx context.Context, company string) types.Result {
		if company == "alpha" {
			time.Sleep(30 * time.Millisecond)
		}
		return types.Result{Platform: "lever", Company: company, Postings: []domain.JobPosting{posting(company, "role")}}
	}}

	a := &Aggregator{timeout: time.Second, fetchers: map[string]types.Fetcher{"lever": slow}}
	results := a.Results(context.Background(), []domain.Target{
		{Platform: "lever", Company: "alpha"},
		{Platform: "lever", Company: "beta"},
		{Platform: "lever", Company: "gamma"},
	})

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, want := range []string{"alpha", "beta", "gamma"} {
		if results[i].Company != want {
			t.Errorf("results[%d].Company = %q, want %q", i, results[i].Company, want)
		}
	}
}

func TestResultsIsolateFailures(t *testing.T) {
	flaky := stubFetcher{name: "lever", fetch: func(ctx context.Context, company string) types.Result {
		if company == "down" {
			return types.Result{Platform: "lever", Company: company, Reason: "api: status 500; html: status 500"}
		}
		return types.Result{Platform: "lever", Company: company, Postings: []domain.JobPosting{posting(company, "role")}}
	}}

	a := &Aggregator{timeout: time.Second, fetchers: map[string]types.Fetcher{"lever": flaky}}
	results := a.Results(context.Background(), []domain.Target{
		{Platform: "lever", Company: "up"},
		{Platform: "lever", Company: "down"},
		{Platform: "lever", Company: "also-up"},
	})

	if len(results[0].Postings) != 1 || len(results[2].Postings) != 1 {
		t.Fatalf("healthy targets lost postings: %d, %d", len(results[0].Postings), len(results[2].Postings))
	}
	if len(results[1].Postings) != 0 || results[1].Reason == "" {
		t.Errorf("failed target should be empty with a reason, got %+v", results[1])
	}
}

func TestResultsUnknownPlatform(t *testing.T) {
	ok := stubFetcher{name: "lever", fetch: func(ctx context.Context, company string) types.Result {
		return types.Result{Platform: "lever", Company: company, Postings: []domain.JobPosting{posting(company, "role")}}
	}}

	a := &Aggregator{timeout: time.Second, fetchers: map[string]types.Fetcher{"lever": ok}}
	results := a.Results(context.Background(), []domain.Target{
		{Platform: "workable", Company: "acme"},
		{Platform: "LEVER", Company: "initech"},
	})

	if results[0].Reason != "unknown platform" {
		t.Errorf("results[0].Reason = %q, want %q", results[0].Reason, "unknown platform")
	}
	if len(results[1].Postings) != 1 {
		t.Errorf("platform tag lookup should be case-insensitive, got %+v", results[1])
	}
}

func TestFetchAllFlattensInOrder(t *testing.T) {
	two := stubFetcher{name: "lever", fetch: func(ctx context.Context, company string) types.Result {
		ps := []domain.JobPosting{posting(company, "first")}
		if company == "alpha" {
			ps = append(ps, posting(company, "second"))
		}
		return types.Result{Platform: "lever", Company: company, Postings: ps}
	}}

	a := &Aggregator{timeout: time.Second, fetchers: map[string]types.Fetcher{"lever": two}}
	all := a.FetchAll(context.Background(), []domain.Target{
		{Platform: "lever", Company: "alpha"},
		{Platform: "lever", Company: "beta"},
	})

	want := []string{"alpha/first", "alpha/second", "beta/first"}
	if len(all) != len(want) {
		t.Fatalf("got %d postings, want %d", len(all), len(want))
	}
	for i, w := range want {
		got := all[i].Company + "/" + all[i].Title
		if got != w {
			t.Errorf("all[%d] = %q, want %q", i, got, w)
		}
	}
}
