package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crimson-sun/mheda/internal/api/shared"
	"github.com/crimson-sun/mheda/internal/engine/labels"
	"github.com/crimson-sun/mheda/internal/history"
	"github.com/crimson-sun/mheda/internal/model"
	"github.com/crimson-sun/mheda/internal/tips"
)

// Analyzer is the inference boundary the handlers call into.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (model.Analysis, error)
}

// CreateEntryRequest represents the request body for submitting a journal entry.
type CreateEntryRequest struct {
	Text string `json:"text" validate:"required"`
}

// EntryResponse represents one analyzed journal entry on the wire.
type EntryResponse struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	Text            string    `json:"text"`
	Emotion         string    `json:"emotion"`
	Color           string    `json:"color"`
	Tip             string    `json:"tip"`
	CrisisResources string    `json:"crisis_resources,omitempty"`
}

// StatsResponse aggregates the session history for charting.
type StatsResponse struct {
	Total    int             `json:"total"`
	Counts   map[string]int  `json:"counts"`
	Timeline []history.Point `json:"timeline"`
}

// JournalHandler handles journal submission and history requests.
type JournalHandler struct {
	engine  Analyzer
	history *history.Log
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(engine Analyzer, log *history.Log) *JournalHandler {
	return &JournalHandler{engine: engine, history: log}
}

// CreateEntry handles POST /api/entries requests: classify the text, record
// it in the session history, and return the result card data.
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	// The engine happily classifies empty normalized text, but truly empty
	// input is guarded here: there is nothing to analyze.
	if strings.TrimSpace(req.Text) == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Write something to analyze")
		return
	}

	analysis, err := h.engine.Analyze(r.Context(), req.Text)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Analysis failed", err)
		return
	}

	entry := model.JournalEntry{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		Text:      req.Text,
		Emotion:   analysis.Emotion,
	}
	h.history.Append(entry)

	shared.RespondWithJSON(w, r, http.StatusCreated, entryToResponse(entry))
}

// ListEntries handles GET /api/entries requests, newest first.
func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries := h.history.Entries()
	out := make([]EntryResponse, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entryToResponse(entries[i]))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// GetStats handles GET /api/entries/stats requests: the per-emotion counts
// and the chronological timeline backing the history charts.
func (h *JournalHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, StatsResponse{
		Total:    h.history.Len(),
		Counts:   h.history.Counts(),
		Timeline: h.history.Timeline(),
	})
}

func entryToResponse(e model.JournalEntry) EntryResponse {
	resp := EntryResponse{
		ID:        e.ID.String(),
		Timestamp: e.Timestamp,
		Text:      e.Text,
		Emotion:   e.Emotion,
		Color:     labels.Color(e.Emotion),
		Tip:       tips.For(e.Emotion),
	}
	if tips.NeedsCrisisResources(e.Emotion) {
		resp.CrisisResources = tips.CrisisURL
	}
	return resp
}
