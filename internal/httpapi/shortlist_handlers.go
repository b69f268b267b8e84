package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobfinder-engine/internal/domain"
	"jobfinder-engine/internal/events"
	"jobfinder-engine/internal/shortlist"
)

type ShortlistHandler struct {
	Store *shortlist.Store
	Hub   *events.Hub
}

func (h ShortlistHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Store.List(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	if jobs == nil {
		jobs = []domain.JobPosting{}
	}
	WriteJSON(w, http.StatusOK, ShortlistResponse{Count: len(jobs), Jobs: jobs})
}

func (h ShortlistHandler) Save(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var p domain.JobPosting
	if err := dec.Decode(&p); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}

	added, err := h.Store.Save(r.Context(), p)
	if err != nil {
		if errors.Is(err, shortlist.ErrMissingURL) {
			WriteError(w, r, http.StatusBadRequest, "bad_posting", err.Error())
			return
		}
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	if added && h.Hub != nil {
		h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeJobSaved, p))
	}
	WriteJSON(w, http.StatusOK, SaveResponse{Added: added})
}

func (h ShortlistHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Store.List(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	writeCSVAttachment(w, "saved_jobs.csv", jobs)
}
