package handler

import "net/http"

// GetContent handles GET /api/content. The catalog is static for the
// lifetime of the process, so the response is cacheable by the client.
func (h *Handlers) GetContent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	writeJSON(w, http.StatusOK, h.catalog)
}
