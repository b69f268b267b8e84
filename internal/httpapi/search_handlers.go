package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"jobfinder-engine/internal/config"
	"jobfinder-engine/internal/domain"
	"jobfinder-engine/internal/filter"
	"jobfinder-engine/internal/scrape"
	"jobfinder-engine/internal/scrape/types"
)

const noMatchesMessage = "No matches. Try loosening filters (ex: remove 'Senior', or clear location)."

type SearchHandler struct {
	CfgVal *atomic.Value // config.Config
	Search func(ctx context.Context, targets []domain.Target) []types.Result
}

func (h SearchHandler) Run(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req SearchRequest
	if err := dec.Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}

	boards := req.Boards
	if strings.TrimSpace(boards) == "" {
		cfg := h.CfgVal.Load().(config.Config)
		boards = cfg.Search.DefaultBoards
	}

	targets := scrape.ParseTargets(boards)
	if len(targets) == 0 {
		WriteJSON(w, http.StatusOK, SearchResponse{
			Jobs:    []domain.JobPosting{},
			Targets: []TargetReport{},
			Message: noMatchesMessage,
		})
		return
	}

	results := h.Search(r.Context(), targets)

	var jobs []domain.JobPosting
	reports := make([]TargetReport, 0, len(results))
	for _, res := range results {
		jobs = append(jobs, res.Postings...)
		reports = append(reports, TargetReport{
			Platform: res.Platform,
			Company:  res.Company,
			Count:    len(res.Postings),
			Strategy: res.Strategy,
			Reason:   res.Reason,
		})
	}

	jobs = filter.Apply(jobs, filter.Keywords{
		Role:     req.Role,
		Location: req.Location,
		Extra:    req.Extra,
	})
	sortByDateDesc(jobs)

	resp := SearchResponse{Count: len(jobs), Jobs: jobs, Targets: reports}
	if len(jobs) == 0 {
		resp.Message = noMatchesMessage
	}
	WriteJSON(w, http.StatusOK, resp)
}

func (h SearchHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}
	writeCSVAttachment(w, "job_search_results.csv", req.Jobs)
}

// sortByDateDesc is presentation order only: newest first, postings
// without a parseable date sink to the bottom keeping their relative
// order.
func sortByDateDesc(jobs []domain.JobPosting) {
	parse := func(p domain.JobPosting) (time.Time, bool) {
		t, err := time.Parse("2006-01-02", p.DatePosted)
		return t, err == nil
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		ti, iok := parse(jobs[i])
		tj, jok := parse(jobs[j])
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return ti.After(tj)
	})
}
