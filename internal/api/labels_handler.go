package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crimson-sun/mheda/internal/api/shared"
	"github.com/crimson-sun/mheda/internal/engine/labels"
	"github.com/crimson-sun/mheda/internal/tips"
)

// LabelResponse describes one emotion the classifier can emit.
type LabelResponse struct {
	Index   int    `json:"index"`
	Emotion string `json:"emotion"`
	Color   string `json:"color"`
}

// TipResponse carries the advisory text for one emotion.
type TipResponse struct {
	Emotion         string `json:"emotion"`
	Tip             string `json:"tip"`
	CrisisResources string `json:"crisis_resources,omitempty"`
}

// LabelsHandler serves the static label table and per-emotion tips.
type LabelsHandler struct{}

// NewLabelsHandler creates a LabelsHandler.
func NewLabelsHandler() *LabelsHandler {
	return &LabelsHandler{}
}

// ListLabels handles GET /api/labels requests.
func (h *LabelsHandler) ListLabels(w http.ResponseWriter, r *http.Request) {
	all := labels.All()
	out := make([]LabelResponse, len(all))
	for i, name := range all {
		out[i] = LabelResponse{Index: i, Emotion: name, Color: labels.Color(name)}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// GetTip handles GET /api/tips/{emotion} requests. Unknown emotions are 404:
// the table is fixed at build time.
func (h *LabelsHandler) GetTip(w http.ResponseWriter, r *http.Request) {
	emotion := chi.URLParam(r, "emotion")
	if !labels.Contains(emotion) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Unknown emotion")
		return
	}

	resp := TipResponse{Emotion: emotion, Tip: tips.For(emotion)}
	if tips.NeedsCrisisResources(emotion) {
		resp.CrisisResources = tips.CrisisURL
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
