package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/cache"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/pkg/ctxutil"
)

// DeleteAngle removes an angle together with its ideas and their generated
// content. Children go first, inside one transaction, since the foreign keys
// carry no ON DELETE CASCADE.
func (s *Service) DeleteAngle(ctx context.Context, angleID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if angleID == uuid.Nil {
		return domain.NewValidationError("angle_id", "required")
	}

	angle, _, err := s.resolveAngle(ctx, userID, angleID)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.content.DeleteByAngle(txCtx, angleID); err != nil {
			return fmt.Errorf("delete generated content: %w", err)
		}
		if err := s.ideas.DeleteByAngle(txCtx, angleID); err != nil {
			return fmt.Errorf("delete ideas: %w", err)
		}
		if err := s.angles.Delete(txCtx, angleID); err != nil {
			return fmt.Errorf("delete angle: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.InvalidateAngleContent(cache.InvalidateScope{
		UserID:  userID,
		BrandID: angle.BrandID,
		AngleID: angleID,
	})

	s.log.InfoContext(ctx, "angle deleted",
		slog.String("user_id", userID.String()),
		slog.String("brand_id", angle.BrandID.String()),
		slog.String("angle_id", angleID.String()),
	)

	return nil
}
