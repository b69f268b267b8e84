package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"jobfinder-engine/internal/config"
	"jobfinder-engine/internal/domain"
	"jobfinder-engine/internal/scrape/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cfgVal(boards string) *atomic.Value {
	var v atomic.Value
	cfg, _ := config.NormalizeAndValidate(config.Config{})
	cfg.Search.DefaultBoards = boards
	v.Store(cfg)
	return &v
}

func stubSearch(byCompany map[string][]domain.JobPosting) func(context.Context, []domain.Target) []types.Result {
	return func(ctx context.Context, targets []domain.Target) []types.Result {
		out := make([]types.Result, len(targets))
		for i, tgt := range targets {
			res := types.Result{Platform: tgt.Platform, Company: tgt.Company}
			if ps, ok := byCompany[tgt.Company]; ok {
				res.Postings = ps
				res.Strategy = types.StrategyAPI
			} else {
				res.Reason = "api: status 404"
			}
			out[i] = res
		}
		return out
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func TestSearchFiltersAndSorts(t *testing.T) {
	h := SearchHandler{
		CfgVal: cfgVal(""),
		Search: stubSearch(map[string][]domain.JobPosting{
			"acme": {
				{Company: "acme", Title: "Senior QA Engineer", Location: "Remote - US", Remote: true, Source: domain.SourceLever, URL: "https://x/1", DatePosted: "2023-11-14"},
				{Company: "acme", Title: "Junior Developer", Location: "Onsite", Source: domain.SourceLever, URL: "https://x/2", DatePosted: "2024-01-01"},
			},
			"globex": {
				{Company: "globex", Title: "Senior Platform Engineer", Location: "Remote", Remote: true, Source: domain.SourceGreenhouse, URL: "https://x/3", DatePosted: "2024-03-05"},
			},
		}),
	}

	w := postJSON(t, h.Run, "/search", `{"boards":"acme (lever)\nglobex (greenhouse)","role":"senior","location":"remote","extra":""}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Jobs, 2)
	// newest first
	assert.Equal(t, "https://x/3", resp.Jobs[0].URL)
	assert.Equal(t, "https://x/1", resp.Jobs[1].URL)
	assert.Empty(t, resp.Message)

	require.Len(t, resp.Targets, 2)
	assert.Equal(t, "acme", resp.Targets[0].Company)
	assert.Equal(t, 2, resp.Targets[0].Count)
	assert.Equal(t, "globex", resp.Targets[1].Company)
	assert.Equal(t, 1, resp.Targets[1].Count)
}

func TestSearchNoMatchesMessage(t *testing.T) {
	h := SearchHandler{
		CfgVal: cfgVal(""),
		Search: stubSearch(map[string][]domain.JobPosting{
			"acme": {{Company: "acme", Title: "Junior Developer", Location: "Onsite", Source: domain.SourceLever, URL: "https://x/2"}},
		}),
	}

	w := postJSON(t, h.Run, "/search", `{"boards":"acme (lever)","role":"architect"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.Equal(t, "No matches. Try loosening filters (ex: remove 'Senior', or clear location).", resp.Message)
	assert.NotNil(t, resp.Jobs)
}

func TestSearchFallsBackToDefaultBoards(t *testing.T) {
	var got []domain.Target
	h := SearchHandler{
		CfgVal: cfgVal("acme (lever)\nglobex (greenhouse)"),
		Search: func(ctx context.Context, targets []domain.Target) []types.Result {
			got = targets
			return make([]types.Result, len(targets))
		},
	}

	w := postJSON(t, h.Run, "/search", `{"boards":"   "}`)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, got, 2)
	assert.Equal(t, domain.Target{Platform: "lever", Company: "acme"}, got[0])
	assert.Equal(t, domain.Target{Platform: "greenhouse", Company: "globex"}, got[1])
}

func TestSearchFailedBoardReported(t *testing.T) {
	h := SearchHandler{
		CfgVal: cfgVal(""),
		Search: stubSearch(map[string][]domain.JobPosting{}),
	}

	w := postJSON(t, h.Run, "/search", `{"boards":"ghost (lever)"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Targets, 1)
	assert.Equal(t, "api: status 404", resp.Targets[0].Reason)
	assert.Equal(t, 0, resp.Targets[0].Count)
	assert.Equal(t, noMatchesMessage, resp.Message)
}

func TestSearchRejectsBadJSON(t *testing.T) {
	h := SearchHandler{CfgVal: cfgVal(""), Search: stubSearch(nil)}

	w := postJSON(t, h.Run, "/search", `{"boards":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var e APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	assert.Equal(t, "bad_request", e.Error.Code)
}

func TestExportWritesCSVAttachment(t *testing.T) {
	h := SearchHandler{CfgVal: cfgVal(""), Search: stubSearch(nil)}

	body := `{"jobs":[{"company":"acme","title":"Senior QA Engineer","location":"Remote - US","remote":true,"source":"Lever","url":"https://x/1","date_posted":"2023-11-14"}]}`
	w := postJSON(t, h.Export, "/export", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="job_search_results.csv"`)

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "title,company,location,remote,date_posted,source,url", lines[0])
	assert.Equal(t, "Senior QA Engineer,acme,Remote - US,true,2023-11-14,Lever,https://x/1", lines[1])
}

func TestSortByDateDesc(t *testing.T) {
	jobs := []domain.JobPosting{
		{URL: "u1", DatePosted: ""},
		{URL: "u2", DatePosted: "2023-11-14"},
		{URL: "u3", DatePosted: "soon"},
		{URL: "u4", DatePosted: "2024-03-05"},
		{URL: "u5", DatePosted: "2023-11-14"},
	}

	sortByDateDesc(jobs)

	var order []string
	for _, j := range jobs {
		order = append(order, j.URL)
	}
	// dated newest-first, undated/unparseable keep their relative order at the end
	assert.Equal(t, []string{"u4", "u2", "u5", "u1", "u3"}, order)
}
