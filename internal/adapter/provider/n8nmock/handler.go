// Package n8nmock serves a stand-in for the n8n generation webhook: same
// tagged request contract, templated responses, simulated processing latency.
// Used by cmd/mock-webhook in development and mounted directly in tests.
package n8nmock

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/mkravets/contentangle-backend/internal/domain"
)

// Simulated processing latency per identifier. Part of the observable
// contract: callers must show a pending state, not assume a fast reply.
var latencies = map[string]time.Duration{
	"autofill":        1500 * time.Millisecond,
	"generateAngles":  3 * time.Second,
	"generateIdeas":   2500 * time.Millisecond,
	"generateContent": 4 * time.Second,
}

// Handler implements the mock webhook.
type Handler struct {
	log             *slog.Logger
	simulateLatency bool
}

// NewHandler creates a mock webhook handler. With simulateLatency false the
// handler replies immediately (for tests).
func NewHandler(logger *slog.Logger, simulateLatency bool) *Handler {
	return &Handler{
		log:             logger.With("adapter", "n8nmock"),
		simulateLatency: simulateLatency,
	}
}

type request struct {
	Identifier string          `json:"identifier"`
	Data       json.RawMessage `json:"data"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "only POST is supported")
		return
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	h.log.Info("mock generation request", slog.String("identifier", req.Identifier))
	h.sleep(r, req.Identifier)

	switch req.Identifier {
	case "autofill":
		h.autofill(w, req.Data)
	case "generateAngles":
		h.generateAngles(w, req.Data)
	case "generateIdeas":
		h.generateIdeas(w, req.Data)
	case "generateContent":
		h.generateContent(w, req.Data)
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown identifier: %s", req.Identifier))
	}
}

func (h *Handler) sleep(r *http.Request, identifier string) {
	if !h.simulateLatency {
		return
	}
	d, ok := latencies[identifier]
	if !ok {
		return
	}
	select {
	case <-time.After(d):
	case <-r.Context().Done():
	}
}

func (h *Handler) autofill(w http.ResponseWriter, raw json.RawMessage) {
	var data struct {
		BrandID        string `json:"brandId"`
		Name           string `json:"name"`
		Website        string `json:"website"`
		AdditionalInfo string `json:"additionalInfo"`
	}
	if err := json.Unmarshal(raw, &data); err != nil || data.Name == "" || data.Website == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: website, name")
		return
	}

	res := autofillFor(data.Website)
	if data.AdditionalInfo != "" {
		res.TargetAudience += " with specific focus on " + strings.ToLower(data.AdditionalInfo)
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) generateAngles(w http.ResponseWriter, raw json.RawMessage) {
	var data struct {
		BrandID   string   `json:"brandId"`
		Name      string   `json:"name"`
		Website   string   `json:"website"`
		BrandTone string   `json:"brandTone"`
		Platforms []string `json:"platforms"`
	}
	if err := json.Unmarshal(raw, &data); err != nil || data.BrandID == "" || data.Name == "" || data.Website == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: brandId, name, website")
		return
	}
	for _, p := range data.Platforms {
		if !domain.Platform(p).IsValid() {
			writeError(w, http.StatusBadRequest, "Invalid platform. Must be twitter, linkedin, or newsletter")
			return
		}
	}

	angles := pickAngles(6)
	for i := range angles {
		angles[i].Description = strings.ReplaceAll(angles[i].Description, "the brand", data.Name)
		if data.BrandTone != "" {
			tone := strings.ToLower(strings.SplitN(data.BrandTone, ",", 2)[0])
			angles[i].Tonality += " with " + tone + " approach"
		}
	}

	// Bare-array termination, matching the real workflow's output node.
	writeJSON(w, http.StatusOK, angles)
}

func (h *Handler) generateIdeas(w http.ResponseWriter, raw json.RawMessage) {
	var data struct {
		AngleID       string         `json:"angleId"`
		Platform      string         `json:"platform"`
		SelectedAngle *angleTemplate `json:"selectedAngle"`
		BrandData     struct {
			Name            string `json:"name"`
			ImageGuidelines string `json:"imageGuidelines"`
		} `json:"brandData"`
	}
	if err := json.Unmarshal(raw, &data); err != nil || data.AngleID == "" || data.Platform == "" || data.SelectedAngle == nil {
		writeError(w, http.StatusBadRequest, "Missing required fields: angleId, platform, selectedAngle")
		return
	}
	if !domain.Platform(data.Platform).IsValid() {
		writeError(w, http.StatusBadRequest, "Invalid platform. Must be twitter, linkedin, or newsletter")
		return
	}

	ideas := pickIdeas(domain.Platform(data.Platform), 10)
	for i := range ideas {
		if data.BrandData.Name != "" {
			ideas[i].Topic = strings.ReplaceAll(ideas[i].Topic, "Brand", data.BrandData.Name)
		}
		ideas[i].Description += fmt.Sprintf(" Aligned with %s strategy, maintaining %s tone.",
			data.SelectedAngle.Header, data.SelectedAngle.Tonality)
		if data.BrandData.ImageGuidelines != "" {
			ideas[i].ImagePrompt += ", following brand guidelines: " + data.BrandData.ImageGuidelines
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"ideas": ideas})
}

func (h *Handler) generateContent(w http.ResponseWriter, raw json.RawMessage) {
	var data struct {
		IdeaID      string        `json:"ideaId"`
		Platform    string        `json:"platform"`
		ContentIdea *ideaTemplate `json:"contentIdea"`
		BrandData   struct {
			Name string `json:"name"`
		} `json:"brandData"`
		SelectedAngle *angleTemplate `json:"selectedAngle"`
	}
	if err := json.Unmarshal(raw, &data); err != nil || data.IdeaID == "" || data.Platform == "" || data.ContentIdea == nil {
		writeError(w, http.StatusBadRequest, "Missing required fields: ideaId, platform, contentIdea")
		return
	}
	if !domain.Platform(data.Platform).IsValid() {
		writeError(w, http.StatusBadRequest, "Invalid platform. Must be twitter, linkedin, or newsletter")
		return
	}

	content := pickContent(domain.Platform(data.Platform))
	if data.BrandData.Name != "" {
		content = strings.ReplaceAll(content, "[Brand Name]", data.BrandData.Name)
	}
	if data.SelectedAngle != nil && data.SelectedAngle.Tonality != "" {
		content += "\n\n[Tone: " + data.SelectedAngle.Tonality + "]"
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"content":  content,
		"imageUrl": imageURLFor(data.ContentIdea.ImagePrompt),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// shuffledPrefix returns n random distinct indexes into a pool of size total,
// cycling when n exceeds the pool.
func shuffledPrefix(total, n int) []int {
	idx := rand.Perm(total)
	out := make([]int, 0, n)
	for len(out) < n {
		out = append(out, idx[len(out)%total])
	}
	return out
}
