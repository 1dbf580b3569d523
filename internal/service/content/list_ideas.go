package content

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/cache"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/pkg/ctxutil"
)

// ListIdeas returns an angle's ideas joined with their generated content.
func (s *Service) ListIdeas(ctx context.Context, angleID uuid.UUID) ([]domain.IdeaContent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if angleID == uuid.Nil {
		return nil, domain.NewValidationError("angle_id", "required")
	}

	if _, _, err := s.resolveAngle(ctx, userID, angleID); err != nil {
		return nil, err
	}

	key := cache.ContentIdeasKey(angleID)
	return cache.Fetch(ctx, s.cache, key, s.ttl.IdeasTTL, func(ctx context.Context) ([]domain.IdeaContent, error) {
		return s.loadIdeas(ctx, angleID)
	})
}

func (s *Service) loadIdeas(ctx context.Context, angleID uuid.UUID) ([]domain.IdeaContent, error) {
	ideas, err := s.ideas.ListByAngle(ctx, angleID)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	if len(ideas) == 0 {
		return []domain.IdeaContent{}, nil
	}

	ids := make([]uuid.UUID, 0, len(ideas))
	for _, i := range ideas {
		ids = append(ids, i.ID)
	}
	generated, err := s.content.GetByIdeaIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load generated content: %w", err)
	}

	byIdea := make(map[uuid.UUID][]domain.GeneratedContent, len(generated))
	for _, gc := range generated {
		byIdea[gc.IdeaID] = append(byIdea[gc.IdeaID], gc)
	}

	out := make([]domain.IdeaContent, 0, len(ideas))
	for _, i := range ideas {
		gcs := byIdea[i.ID]
		if gcs == nil {
			gcs = []domain.GeneratedContent{}
		}
		out = append(out, domain.IdeaContent{ContentIdea: i, Generated: gcs})
	}
	return out, nil
}
