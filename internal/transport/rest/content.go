package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/internal/service/content"
)

// contentService defines the minimal interface needed by ContentHandler.
type contentService interface {
	GenerateAngles(ctx context.Context, in content.GenerateAnglesInput) ([]domain.ContentAngle, error)
	ListAngles(ctx context.Context, in content.ListAnglesInput) ([]domain.ContentAngle, error)
	DeleteAngle(ctx context.Context, angleID uuid.UUID) error
	GenerateIdeas(ctx context.Context, angleID uuid.UUID) ([]domain.ContentIdea, error)
	ListIdeas(ctx context.Context, angleID uuid.UUID) ([]domain.IdeaContent, error)
	GenerateContent(ctx context.Context, ideaID uuid.UUID) (domain.GeneratedContent, error)
	GetContent(ctx context.Context, ideaID uuid.UUID) ([]domain.GeneratedContent, error)
	SaveDraft(ctx context.Context, in content.SaveDraftInput) (domain.GeneratedContent, error)
	QueueDraft(ctx context.Context, in content.SaveDraftInput) error
}

// ContentHandler serves angle, idea and generated-content REST endpoints.
type ContentHandler struct {
	svc contentService
	log *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(svc contentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, log: logger.With("handler", "content")}
}

type generateAnglesRequest struct {
	Platforms []string `json:"platforms"`
}

type ideaContentResponse struct {
	ideaResponse
	Generated  []generatedContentResponse `json:"generated"`
	HasContent bool                       `json:"hasContent"`
}

type ideaListResponse struct {
	Ideas []ideaContentResponse `json:"ideas"`
	Stats ideaListStats         `json:"stats"`
}

type ideaListStats struct {
	Total     int `json:"total"`
	Generated int `json:"generated"`
	Pending   int `json:"pending"`
}

type draftRequest struct {
	Content string `json:"content"`
}

// GenerateAngles handles POST /api/v1/brands/{id}/angles/generate.
func (h *ContentHandler) GenerateAngles(w http.ResponseWriter, r *http.Request) {
	brandID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req generateAnglesRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	platforms := make([]domain.Platform, 0, len(req.Platforms))
	for _, p := range req.Platforms {
		platforms = append(platforms, domain.Platform(p))
	}

	created, err := h.svc.GenerateAngles(r.Context(), content.GenerateAnglesInput{
		BrandID:   brandID,
		Platforms: platforms,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]angleResponse, 0, len(created))
	for _, a := range created {
		out = append(out, toAngleResponse(a))
	}
	writeJSON(w, http.StatusCreated, out)
}

// ListAngles handles GET /api/v1/brands/{id}/angles. An optional ?platform=
// query narrows the list to one platform.
func (h *ContentHandler) ListAngles(w http.ResponseWriter, r *http.Request) {
	brandID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	in := content.ListAnglesInput{BrandID: brandID}
	if raw := r.URL.Query().Get("platform"); raw != "" {
		p := domain.Platform(raw)
		in.Platform = &p
	}

	angles, err := h.svc.ListAngles(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]angleResponse, 0, len(angles))
	for _, a := range angles {
		out = append(out, toAngleResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

// DeleteAngle handles DELETE /api/v1/angles/{id}. The body must confirm the
// entity kind; deletion cascades over the angle's ideas and content.
func (h *ContentHandler) DeleteAngle(w http.ResponseWriter, r *http.Request) {
	angleID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := requireConfirmation(r, domain.EntityTypeContentAngle); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteAngle(r.Context(), angleID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GenerateIdeas handles POST /api/v1/angles/{id}/ideas/generate.
func (h *ContentHandler) GenerateIdeas(w http.ResponseWriter, r *http.Request) {
	angleID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.GenerateIdeas(r.Context(), angleID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]ideaResponse, 0, len(created))
	for _, i := range created {
		out = append(out, toIdeaResponse(i))
	}
	writeJSON(w, http.StatusCreated, out)
}

// ListIdeas handles GET /api/v1/angles/{id}/ideas.
func (h *ContentHandler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	angleID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ideas, err := h.svc.ListIdeas(r.Context(), angleID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := ideaListResponse{Ideas: make([]ideaContentResponse, 0, len(ideas))}
	for _, i := range ideas {
		generated := make([]generatedContentResponse, 0, len(i.Generated))
		for _, gc := range i.Generated {
			generated = append(generated, toGeneratedContentResponse(gc))
		}
		out.Ideas = append(out.Ideas, ideaContentResponse{
			ideaResponse: toIdeaResponse(i.ContentIdea),
			Generated:    generated,
			HasContent:   i.HasContent(),
		})
		out.Stats.Total++
		if i.HasContent() {
			out.Stats.Generated++
		} else {
			out.Stats.Pending++
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// GenerateContent handles POST /api/v1/ideas/{id}/content/generate.
func (h *ContentHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	ideaID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	gc, err := h.svc.GenerateContent(r.Context(), ideaID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGeneratedContentResponse(gc))
}

// GetContent handles GET /api/v1/ideas/{id}/content.
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	ideaID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rows, err := h.svc.GetContent(r.Context(), ideaID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]generatedContentResponse, 0, len(rows))
	for _, gc := range rows {
		out = append(out, toGeneratedContentResponse(gc))
	}
	writeJSON(w, http.StatusOK, out)
}

// SaveDraft handles PUT /api/v1/ideas/{id}/content.
func (h *ContentHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	ideaID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.svc.SaveDraft(r.Context(), content.SaveDraftInput{
		IdeaID:  ideaID,
		Content: req.Content,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGeneratedContentResponse(saved))
}

// AutosaveDraft handles POST /api/v1/ideas/{id}/content/autosave. The write
// is debounced server-side; 202 acknowledges the draft was queued.
func (h *ContentHandler) AutosaveDraft(w http.ResponseWriter, r *http.Request) {
	ideaID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.QueueDraft(r.Context(), content.SaveDraftInput{
		IdeaID:  ideaID,
		Content: req.Content,
	}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}
