package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/bus"
	"github.com/mkravets/contentangle-backend/internal/cache"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/internal/provider"
	"github.com/mkravets/contentangle-backend/pkg/ctxutil"
)

// GenerateIdeas requests content ideas for an angle and persists them in one
// batch. Every created idea carries the angle's platform.
func (s *Service) GenerateIdeas(ctx context.Context, angleID uuid.UUID) ([]domain.ContentIdea, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if angleID == uuid.Nil {
		return nil, domain.NewValidationError("angle_id", "required")
	}

	angle, b, err := s.resolveAngle(ctx, userID, angleID)
	if err != nil {
		return nil, err
	}

	results, err := s.generator.GenerateIdeas(ctx, provider.IdeasRequest{
		AngleID:  angle.ID.String(),
		Platform: angle.Platform,
		Angle:    angleData(angle),
		Brand:    brandData(b),
	})
	if err != nil {
		return nil, fmt.Errorf("generate ideas: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("generate ideas: %w", provider.ErrEmptyResult)
	}

	batch := make([]domain.ContentIdea, 0, len(results))
	for _, r := range results {
		batch = append(batch, domain.ContentIdea{
			AngleID:     angle.ID,
			Platform:    angle.Platform,
			Topic:       r.Topic,
			Description: r.Description,
			ImagePrompt: r.ImagePrompt,
		})
	}

	created, err := s.ideas.CreateBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("save ideas: %w", err)
	}

	if err := s.brands.Touch(ctx, userID, b.ID); err != nil {
		return nil, fmt.Errorf("touch brand: %w", err)
	}

	s.cache.InvalidateAngleContent(cache.InvalidateScope{
		UserID:  userID,
		BrandID: b.ID,
		AngleID: angle.ID,
	})

	s.events.Publish(bus.EventShowToast, bus.Toast{
		Message: fmt.Sprintf("Generated %d ideas", len(created)),
		Type:    domain.ToastSuccess,
	})

	s.log.InfoContext(ctx, "ideas generated",
		slog.String("user_id", userID.String()),
		slog.String("angle_id", angle.ID.String()),
		slog.Int("count", len(created)),
	)

	return created, nil
}
