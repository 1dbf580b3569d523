package brand

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/cache"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/pkg/ctxutil"
)

// DeleteBrand removes a brand and its whole subtree. The foreign keys carry
// no ON DELETE CASCADE, so children are deleted explicitly, leaves first,
// inside one transaction.
func (s *Service) DeleteBrand(ctx context.Context, brandID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if brandID == uuid.Nil {
		return domain.NewValidationError("brand_id", "required")
	}

	// Ownership check before any destructive statement.
	if _, err := s.brands.GetByID(ctx, userID, brandID); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.content.DeleteByBrand(txCtx, brandID); err != nil {
			return fmt.Errorf("delete generated content: %w", err)
		}
		if err := s.ideas.DeleteByBrand(txCtx, brandID); err != nil {
			return fmt.Errorf("delete ideas: %w", err)
		}
		if err := s.angles.DeleteByBrand(txCtx, brandID); err != nil {
			return fmt.Errorf("delete angles: %w", err)
		}
		if err := s.brands.Delete(txCtx, userID, brandID); err != nil {
			return fmt.Errorf("delete brand: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.InvalidateBrandContent(cache.InvalidateScope{
		UserID:  userID,
		BrandID: brandID,
	})

	s.log.InfoContext(ctx, "brand deleted",
		slog.String("user_id", userID.String()),
		slog.String("brand_id", brandID.String()),
	)

	return nil
}
