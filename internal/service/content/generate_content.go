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

// GenerateContent requests the final content piece for an idea and upserts it.
// Regeneration overwrites the existing row for the idea. On success the
// affected cache entries are staled and a contentGenerated event is published;
// on failure neither happens, so cached views keep serving the previous state.
func (s *Service) GenerateContent(ctx context.Context, ideaID uuid.UUID) (domain.GeneratedContent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.GeneratedContent{}, domain.ErrUnauthorized
	}
	if ideaID == uuid.Nil {
		return domain.GeneratedContent{}, domain.NewValidationError("idea_id", "required")
	}

	idea, angle, b, err := s.resolveIdea(ctx, userID, ideaID)
	if err != nil {
		return domain.GeneratedContent{}, err
	}

	result, err := s.generator.GenerateContent(ctx, provider.ContentRequest{
		IdeaID:   idea.ID.String(),
		Platform: idea.Platform,
		Idea: provider.IdeaData{
			Topic:       idea.Topic,
			Description: idea.Description,
			ImagePrompt: idea.ImagePrompt,
		},
		Brand: brandData(b),
		Angle: angleData(angle),
	})
	if err != nil {
		s.events.Publish(bus.EventShowToast, bus.Toast{
			Message: "Content generation failed",
			Type:    domain.ToastError,
		})
		return domain.GeneratedContent{}, fmt.Errorf("generate content: %w", err)
	}

	gc := domain.GeneratedContent{
		IdeaID:   idea.ID,
		BrandID:  b.ID,
		Platform: idea.Platform,
		Content:  result.Content,
	}
	if result.ImageURL != "" {
		gc.ImageURL = &result.ImageURL
	}

	saved, err := s.content.Upsert(ctx, gc)
	if err != nil {
		return domain.GeneratedContent{}, fmt.Errorf("save generated content: %w", err)
	}

	if err := s.brands.Touch(ctx, userID, b.ID); err != nil {
		return domain.GeneratedContent{}, fmt.Errorf("touch brand: %w", err)
	}

	s.cache.InvalidateIdeaContent(cache.InvalidateScope{
		UserID:  userID,
		BrandID: b.ID,
		AngleID: angle.ID,
		IdeaID:  idea.ID,
	})

	s.events.Publish(bus.EventContentGenerated, bus.ContentGenerated{
		IdeaID:  idea.ID,
		AngleID: angle.ID,
		BrandID: b.ID,
		Content: saved.Content,
	})
	s.events.Publish(bus.EventShowToast, bus.Toast{
		Message: "Content generated",
		Type:    domain.ToastSuccess,
	})

	s.log.InfoContext(ctx, "content generated",
		slog.String("user_id", userID.String()),
		slog.String("idea_id", idea.ID.String()),
		slog.String("platform", idea.Platform.String()),
	)

	return saved, nil
}
