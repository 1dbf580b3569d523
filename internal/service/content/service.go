// Package content implements the generation pipeline below a brand: angles,
// ideas, the final content pieces and draft editing.
package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/bus"
	"github.com/mkravets/contentangle-backend/internal/cache"
	"github.com/mkravets/contentangle-backend/internal/config"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/internal/provider"
)

type brandRepo interface {
	GetByID(ctx context.Context, userID, brandID uuid.UUID) (domain.Brand, error)
	Touch(ctx context.Context, userID, brandID uuid.UUID) error
}

type angleRepo interface {
	CreateBatch(ctx context.Context, angles []domain.ContentAngle) ([]domain.ContentAngle, error)
	GetByID(ctx context.Context, angleID uuid.UUID) (domain.ContentAngle, error)
	ListByBrand(ctx context.Context, brandID uuid.UUID, platform *domain.Platform) ([]domain.ContentAngle, error)
	Delete(ctx context.Context, angleID uuid.UUID) error
}

type ideaRepo interface {
	CreateBatch(ctx context.Context, ideas []domain.ContentIdea) ([]domain.ContentIdea, error)
	GetByID(ctx context.Context, ideaID uuid.UUID) (domain.ContentIdea, error)
	ListByAngle(ctx context.Context, angleID uuid.UUID) ([]domain.ContentIdea, error)
	DeleteByAngle(ctx context.Context, angleID uuid.UUID) error
}

type contentRepo interface {
	Upsert(ctx context.Context, gc domain.GeneratedContent) (domain.GeneratedContent, error)
	GetByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]domain.GeneratedContent, error)
	GetByIdeaIDs(ctx context.Context, ideaIDs []uuid.UUID) ([]domain.GeneratedContent, error)
	UpdateContent(ctx context.Context, ideaID uuid.UUID, content string) (domain.GeneratedContent, error)
	DeleteByAngle(ctx context.Context, angleID uuid.UUID) error
}

type generator interface {
	GenerateAngles(ctx context.Context, req provider.AnglesRequest) ([]provider.AngleResult, error)
	GenerateIdeas(ctx context.Context, req provider.IdeasRequest) ([]provider.IdeaResult, error)
	GenerateContent(ctx context.Context, req provider.ContentRequest) (*provider.ContentResult, error)
}

type publisher interface {
	Publish(event bus.Event, payload any)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides content generation operations.
type Service struct {
	brands    brandRepo
	angles    angleRepo
	ideas     ideaRepo
	content   contentRepo
	generator generator
	events    publisher
	tx        txManager
	cache     *cache.Store
	ttl       config.CacheConfig
	autosave  *debouncer
	log       *slog.Logger
}

// NewService creates a new Content service. Call Close to flush pending
// autosaves on shutdown.
func NewService(
	log *slog.Logger,
	brands brandRepo,
	angles angleRepo,
	ideas ideaRepo,
	content contentRepo,
	generator generator,
	events publisher,
	tx txManager,
	store *cache.Store,
	ttl config.CacheConfig,
) *Service {
	s := &Service{
		brands:    brands,
		angles:    angles,
		ideas:     ideas,
		content:   content,
		generator: generator,
		events:    events,
		tx:        tx,
		cache:     store,
		ttl:       ttl,
		log:       log.With("service", "content"),
	}
	s.autosave = newDebouncer(autosaveQuietWindow, s.flushDraft)
	return s
}

// Close flushes pending autosaved drafts.
func (s *Service) Close() {
	s.autosave.Close()
}

const autosaveQuietWindow = 2 * time.Second

// resolveAngle loads an angle and verifies the authenticated user owns its
// brand. Foreign angles surface as domain.ErrNotFound.
func (s *Service) resolveAngle(ctx context.Context, userID, angleID uuid.UUID) (domain.ContentAngle, domain.Brand, error) {
	a, err := s.angles.GetByID(ctx, angleID)
	if err != nil {
		return domain.ContentAngle{}, domain.Brand{}, err
	}
	b, err := s.brands.GetByID(ctx, userID, a.BrandID)
	if err != nil {
		return domain.ContentAngle{}, domain.Brand{}, err
	}
	return a, b, nil
}

// resolveIdea loads an idea's full lineage with the same ownership rule.
func (s *Service) resolveIdea(ctx context.Context, userID, ideaID uuid.UUID) (domain.ContentIdea, domain.ContentAngle, domain.Brand, error) {
	i, err := s.ideas.GetByID(ctx, ideaID)
	if err != nil {
		return domain.ContentIdea{}, domain.ContentAngle{}, domain.Brand{}, err
	}
	a, b, err := s.resolveAngle(ctx, userID, i.AngleID)
	if err != nil {
		return domain.ContentIdea{}, domain.ContentAngle{}, domain.Brand{}, err
	}
	return i, a, b, nil
}

func brandData(b domain.Brand) provider.BrandData {
	return provider.BrandData{
		Name:            b.Name,
		Website:         b.Website,
		TargetAudience:  deref(b.TargetAudience),
		BrandTone:       deref(b.BrandTone),
		KeyOffer:        deref(b.KeyOffer),
		ImageGuidelines: b.ImageGuidelines,
	}
}

func angleData(a domain.ContentAngle) provider.AngleData {
	return provider.AngleData{
		Header:      a.Header,
		Description: a.Description,
		Tonality:    a.Tonality,
		Objective:   a.Objective,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
