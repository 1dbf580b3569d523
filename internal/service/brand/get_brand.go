package brand

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/pkg/ctxutil"
)

// GetBrand returns one of the authenticated user's brands.
func (s *Service) GetBrand(ctx context.Context, brandID uuid.UUID) (domain.Brand, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Brand{}, domain.ErrUnauthorized
	}
	if brandID == uuid.Nil {
		return domain.Brand{}, domain.NewValidationError("brand_id", "required")
	}

	return s.brands.GetByID(ctx, userID, brandID)
}
