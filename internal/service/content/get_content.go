package content

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/cache"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/pkg/ctxutil"
)

// GetContent returns the generated content rows for an idea. An idea without
// content yields an empty slice, not an error.
func (s *Service) GetContent(ctx context.Context, ideaID uuid.UUID) ([]domain.GeneratedContent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if ideaID == uuid.Nil {
		return nil, domain.NewValidationError("idea_id", "required")
	}

	if _, _, _, err := s.resolveIdea(ctx, userID, ideaID); err != nil {
		return nil, err
	}

	key := cache.GeneratedContentKey(ideaID)
	return cache.Fetch(ctx, s.cache, key, s.ttl.ContentTTL, func(ctx context.Context) ([]domain.GeneratedContent, error) {
		return s.content.GetByIdeaID(ctx, ideaID)
	})
}
