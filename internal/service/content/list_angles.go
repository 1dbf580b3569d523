package content

import (
	"context"

	"github.com/mkravets/contentangle-backend/internal/cache"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/pkg/ctxutil"
)

// ListAngles returns a brand's angles, optionally filtered by platform. The
// filtered and unfiltered lists are cached under separate keys.
func (s *Service) ListAngles(ctx context.Context, in ListAnglesInput) ([]domain.ContentAngle, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.brands.GetByID(ctx, userID, in.BrandID); err != nil {
		return nil, err
	}

	key := cache.ContentAnglesKey(in.BrandID, in.Platform)
	return cache.Fetch(ctx, s.cache, key, s.ttl.AnglesTTL, func(ctx context.Context) ([]domain.ContentAngle, error) {
		return s.angles.ListByBrand(ctx, in.BrandID, in.Platform)
	})
}
