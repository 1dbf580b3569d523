package brand

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/cache"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/internal/provider"
	"github.com/mkravets/contentangle-backend/pkg/ctxutil"
)

// Autofill asks the generation service to derive the brand's strategy fields
// from its website and persists the returned values. Existing strategy
// fields are overwritten; name and website are untouched.
func (s *Service) Autofill(ctx context.Context, brandID uuid.UUID) (domain.Brand, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Brand{}, domain.ErrUnauthorized
	}
	if brandID == uuid.Nil {
		return domain.Brand{}, domain.NewValidationError("brand_id", "required")
	}

	b, err := s.brands.GetByID(ctx, userID, brandID)
	if err != nil {
		return domain.Brand{}, err
	}

	result, err := s.generator.Autofill(ctx, provider.AutofillRequest{
		BrandID:        b.ID.String(),
		Name:           b.Name,
		Website:        b.Website,
		AdditionalInfo: deref(b.AdditionalInfo),
	})
	if err != nil {
		return domain.Brand{}, fmt.Errorf("autofill brand: %w", err)
	}

	updated, err := s.brands.Update(ctx, userID, brandID, domain.BrandPatch{
		TargetAudience: &result.TargetAudience,
		BrandTone:      &result.BrandTone,
		KeyOffer:       &result.KeyOffer,
	})
	if err != nil {
		return domain.Brand{}, fmt.Errorf("save autofill result: %w", err)
	}

	s.cache.InvalidateBrandContent(cache.InvalidateScope{
		UserID:  userID,
		BrandID: brandID,
	})

	s.log.InfoContext(ctx, "brand autofilled",
		slog.String("user_id", userID.String()),
		slog.String("brand_id", brandID.String()),
	)

	return updated, nil
}
