package brand

import (
	"context"
	"fmt"

	"github.com/mkravets/contentangle-backend/internal/cache"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/internal/hierarchy"
	"github.com/mkravets/contentangle-backend/pkg/ctxutil"
)

// ListBrands returns the user's brands without their subtrees.
func (s *Service) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	brands, err := s.brands.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return brands, nil
}

// ListBrandTrees returns the user's brands with their full aggregated
// subtrees and counts. The assembled view is cached per user; concurrent
// callers share one load.
func (s *Service) ListBrandTrees(ctx context.Context) ([]hierarchy.BrandTree, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	key := cache.BrandsContentKey(userID)
	trees, err := cache.Fetch(ctx, s.cache, key, s.ttl.BrandTreeTTL, func(ctx context.Context) ([]hierarchy.BrandTree, error) {
		loaded, err := s.trees.LoadUserTree(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load brand trees: %w", err)
		}
		return hierarchy.Assemble(loaded), nil
	})
	if err != nil {
		return nil, err
	}
	return trees, nil
}
