package brand

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mkravets/contentangle-backend/internal/cache"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/pkg/ctxutil"
)

// CreateBrand creates a new brand for the authenticated user.
func (s *Service) CreateBrand(ctx context.Context, input CreateBrandInput) (domain.Brand, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Brand{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Brand{}, err
	}

	created, err := s.brands.Create(ctx, domain.Brand{
		UserID:          userID,
		Name:            strings.TrimSpace(input.Name),
		Website:         strings.TrimSpace(input.Website),
		AdditionalInfo:  trimOrNil(input.AdditionalInfo),
		TargetAudience:  trimOrNil(input.TargetAudience),
		BrandTone:       trimOrNil(input.BrandTone),
		KeyOffer:        trimOrNil(input.KeyOffer),
		ImageGuidelines: trimOrNil(input.ImageGuidelines),
	})
	if err != nil {
		return domain.Brand{}, fmt.Errorf("create brand: %w", err)
	}

	s.cache.Invalidate(cache.BrandsContentKey(userID))

	s.log.InfoContext(ctx, "brand created",
		slog.String("user_id", userID.String()),
		slog.String("brand_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}
