package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	apimw "github.com/crimson-sun/mheda/internal/api/middleware"
	"github.com/crimson-sun/mheda/internal/assets"
	"github.com/crimson-sun/mheda/internal/history"
)

// NewRouter builds the HTTP routing table. assetFetcher may be nil when the
// decorative asset endpoints are disabled.
func NewRouter(engine Analyzer, log *history.Log, assetFetcher *assets.Fetcher) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(apimw.Trace)

	journalHandler := NewJournalHandler(engine, log)
	labelsHandler := NewLabelsHandler()

	r.Route("/api", func(r chi.Router) {
		r.Post("/entries", journalHandler.CreateEntry)
		r.Get("/entries", journalHandler.ListEntries)
		r.Get("/entries/stats", journalHandler.GetStats)

		r.Get("/labels", labelsHandler.ListLabels)
		r.Get("/tips/{emotion}", labelsHandler.GetTip)

		if assetFetcher != nil {
			assetsHandler := NewAssetsHandler(assetFetcher)
			r.Get("/assets/{name}", assetsHandler.GetAsset)
		}
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
