package brand

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mkravets/contentangle-backend/internal/cache"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/pkg/ctxutil"
)

// UpdateBrand applies a partial update to one of the user's brands.
func (s *Service) UpdateBrand(ctx context.Context, input UpdateBrandInput) (domain.Brand, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Brand{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Brand{}, err
	}

	updated, err := s.brands.Update(ctx, userID, input.BrandID, input.patch())
	if err != nil {
		return domain.Brand{}, fmt.Errorf("update brand: %w", err)
	}

	s.cache.InvalidateBrandContent(cache.InvalidateScope{
		UserID:  userID,
		BrandID: input.BrandID,
	})

	s.log.InfoContext(ctx, "brand updated",
		slog.String("user_id", userID.String()),
		slog.String("brand_id", updated.ID.String()),
	)

	return updated, nil
}
