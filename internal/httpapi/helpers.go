package httpapi

import (
	"fmt"
	"log"
	"net/http"

	"jobfinder-engine/internal/domain"
	"jobfinder-engine/internal/export"
)

func methodMux(m map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method]; ok {
			h(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func writeCSVAttachment(w http.ResponseWriter, filename string, jobs []domain.JobPosting) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := export.WriteCSV(w, jobs); err != nil {
		// headers are gone; nothing left to do but log
		log.Printf("[http] csv write failed file=%s err=%v", filename, err)
	}
}
