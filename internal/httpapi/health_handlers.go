package httpapi

import "net/http"

type HealthHandler struct {
	Version string
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"version": h.Version,
	})
}
