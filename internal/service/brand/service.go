// Package brand implements brand management: CRUD, the aggregated brand tree
// and strategy autofill.
package brand

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/cache"
	"github.com/mkravets/contentangle-backend/internal/config"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/internal/provider"
)

type brandRepo interface {
	Create(ctx context.Context, brand domain.Brand) (domain.Brand, error)
	GetByID(ctx context.Context, userID, brandID uuid.UUID) (domain.Brand, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Brand, error)
	Update(ctx context.Context, userID, brandID uuid.UUID, patch domain.BrandPatch) (domain.Brand, error)
	Delete(ctx context.Context, userID, brandID uuid.UUID) error
}

type angleRepo interface {
	DeleteByBrand(ctx context.Context, brandID uuid.UUID) error
}

type ideaRepo interface {
	DeleteByBrand(ctx context.Context, brandID uuid.UUID) error
}

type contentRepo interface {
	DeleteByBrand(ctx context.Context, brandID uuid.UUID) error
}

type treeLoader interface {
	LoadUserTree(ctx context.Context, userID uuid.UUID) ([]domain.BrandContent, error)
}

type generator interface {
	Autofill(ctx context.Context, req provider.AutofillRequest) (*provider.AutofillResult, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides brand operations.
type Service struct {
	brands    brandRepo
	angles    angleRepo
	ideas     ideaRepo
	content   contentRepo
	trees     treeLoader
	generator generator
	tx        txManager
	cache     *cache.Store
	ttl       config.CacheConfig
	log       *slog.Logger
}

// NewService creates a new Brand service.
func NewService(
	log *slog.Logger,
	brands brandRepo,
	angles angleRepo,
	ideas ideaRepo,
	content contentRepo,
	trees treeLoader,
	generator generator,
	tx txManager,
	store *cache.Store,
	ttl config.CacheConfig,
) *Service {
	return &Service{
		brands:    brands,
		angles:    angles,
		ideas:     ideas,
		content:   content,
		trees:     trees,
		generator: generator,
		tx:        tx,
		cache:     store,
		ttl:       ttl,
		log:       log.With("service", "brand"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
