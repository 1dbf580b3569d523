package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/internal/hierarchy"
	"github.com/mkravets/contentangle-backend/internal/service/brand"
)

// brandService defines the minimal interface needed by BrandHandler.
type brandService interface {
	CreateBrand(ctx context.Context, input brand.CreateBrandInput) (domain.Brand, error)
	GetBrand(ctx context.Context, brandID uuid.UUID) (domain.Brand, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	ListBrandTrees(ctx context.Context) ([]hierarchy.BrandTree, error)
	UpdateBrand(ctx context.Context, input brand.UpdateBrandInput) (domain.Brand, error)
	DeleteBrand(ctx context.Context, brandID uuid.UUID) error
	Autofill(ctx context.Context, brandID uuid.UUID) (domain.Brand, error)
}

// BrandHandler serves brand REST endpoints.
type BrandHandler struct {
	svc brandService
	log *slog.Logger
}

// NewBrandHandler creates a BrandHandler.
func NewBrandHandler(svc brandService, logger *slog.Logger) *BrandHandler {
	return &BrandHandler{svc: svc, log: logger.With("handler", "brands")}
}

type brandRequest struct {
	Name            string  `json:"name"`
	Website         string  `json:"website"`
	AdditionalInfo  *string `json:"additionalInfo"`
	TargetAudience  *string `json:"targetAudience"`
	BrandTone       *string `json:"brandTone"`
	KeyOffer        *string `json:"keyOffer"`
	ImageGuidelines *string `json:"imageGuidelines"`
}

type updateBrandRequest struct {
	Name            *string `json:"name"`
	Website         *string `json:"website"`
	AdditionalInfo  *string `json:"additionalInfo"`
	TargetAudience  *string `json:"targetAudience"`
	BrandTone       *string `json:"brandTone"`
	KeyOffer        *string `json:"keyOffer"`
	ImageGuidelines *string `json:"imageGuidelines"`
}

type brandResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Website         string    `json:"website"`
	AdditionalInfo  *string   `json:"additionalInfo,omitempty"`
	TargetAudience  *string   `json:"targetAudience,omitempty"`
	BrandTone       *string   `json:"brandTone,omitempty"`
	KeyOffer        *string   `json:"keyOffer,omitempty"`
	ImageGuidelines *string   `json:"imageGuidelines,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Create handles POST /api/v1/brands.
func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req brandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateBrand(r.Context(), brand.CreateBrandInput{
		Name:            req.Name,
		Website:         req.Website,
		AdditionalInfo:  req.AdditionalInfo,
		TargetAudience:  req.TargetAudience,
		BrandTone:       req.BrandTone,
		KeyOffer:        req.KeyOffer,
		ImageGuidelines: req.ImageGuidelines,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBrandResponse(created))
}

// Get handles GET /api/v1/brands/{id}.
func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	brandID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	b, err := h.svc.GetBrand(r.Context(), brandID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBrandResponse(b))
}

// List handles GET /api/v1/brands. The default response is every brand's
// full aggregated subtree with per-level counts; ?view=flat returns the bare
// brand rows without touching the tree cache.
func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("view") == "flat" {
		brands, err := h.svc.ListBrands(r.Context())
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		out := make([]brandResponse, 0, len(brands))
		for _, b := range brands {
			out = append(out, toBrandResponse(b))
		}
		writeJSON(w, http.StatusOK, out)
		return
	}

	trees, err := h.svc.ListBrandTrees(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]brandTreeResponse, 0, len(trees))
	for _, tr := range trees {
		out = append(out, toBrandTreeResponse(tr))
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PATCH /api/v1/brands/{id}.
func (h *BrandHandler) Update(w http.ResponseWriter, r *http.Request) {
	brandID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateBrand(r.Context(), brand.UpdateBrandInput{
		BrandID:         brandID,
		Name:            req.Name,
		Website:         req.Website,
		AdditionalInfo:  req.AdditionalInfo,
		TargetAudience:  req.TargetAudience,
		BrandTone:       req.BrandTone,
		KeyOffer:        req.KeyOffer,
		ImageGuidelines: req.ImageGuidelines,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBrandResponse(updated))
}

// Delete handles DELETE /api/v1/brands/{id}. The body must confirm the
// entity kind being deleted; the cascade removes the brand's whole subtree.
func (h *BrandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	brandID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := requireConfirmation(r, domain.EntityTypeBrand); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteBrand(r.Context(), brandID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Autofill handles POST /api/v1/brands/{id}/autofill.
func (h *BrandHandler) Autofill(w http.ResponseWriter, r *http.Request) {
	brandID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	b, err := h.svc.Autofill(r.Context(), brandID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBrandResponse(b))
}

func toBrandResponse(b domain.Brand) brandResponse {
	return brandResponse{
		ID:              b.ID.String(),
		Name:            b.Name,
		Website:         b.Website,
		AdditionalInfo:  b.AdditionalInfo,
		TargetAudience:  b.TargetAudience,
		BrandTone:       b.BrandTone,
		KeyOffer:        b.KeyOffer,
		ImageGuidelines: b.ImageGuidelines,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
