package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crimson-sun/mheda/internal/api/shared"
	"github.com/crimson-sun/mheda/internal/assets"
)

// AssetsHandler serves the decorative animations to the UI.
type AssetsHandler struct {
	fetcher *assets.Fetcher
}

// NewAssetsHandler creates an AssetsHandler.
func NewAssetsHandler(fetcher *assets.Fetcher) *AssetsHandler {
	return &AssetsHandler{fetcher: fetcher}
}

// GetAsset handles GET /api/assets/{name} requests. A known animation that
// could not be fetched answers 204: the UI falls back to a static image.
func (h *AssetsHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !h.fetcher.Known(name) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Unknown asset")
		return
	}

	data, ok := h.fetcher.Get(r.Context(), name)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
