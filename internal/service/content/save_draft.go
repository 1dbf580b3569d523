package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mkravets/contentangle-backend/internal/cache"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/pkg/ctxutil"
)

// SaveDraft persists a manual edit of an idea's generated content, keeping
// the stored image untouched.
func (s *Service) SaveDraft(ctx context.Context, in SaveDraftInput) (domain.GeneratedContent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.GeneratedContent{}, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return domain.GeneratedContent{}, err
	}

	idea, angle, b, err := s.resolveIdea(ctx, userID, in.IdeaID)
	if err != nil {
		return domain.GeneratedContent{}, err
	}

	saved, err := s.content.UpdateContent(ctx, in.IdeaID, in.Content)
	if err != nil {
		return domain.GeneratedContent{}, fmt.Errorf("save draft: %w", err)
	}

	s.cache.InvalidateIdeaContent(cache.InvalidateScope{
		UserID:  userID,
		BrandID: b.ID,
		AngleID: angle.ID,
		IdeaID:  idea.ID,
	})

	s.log.InfoContext(ctx, "draft saved",
		slog.String("user_id", userID.String()),
		slog.String("idea_id", idea.ID.String()),
	)

	return saved, nil
}

// QueueDraft schedules a draft save after a short quiet window. Rapid
// successive calls for the same idea collapse into one write carrying the
// latest content. Drafts still pending at shutdown are flushed by Close.
func (s *Service) QueueDraft(ctx context.Context, in SaveDraftInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return err
	}

	s.autosave.queue(in.IdeaID, draft{userID: userID, content: in.Content})
	return nil
}

// flushDraft is the debouncer's write callback. It runs outside any request,
// so the user identity captured at queue time is re-attached to a fresh
// context.
func (s *Service) flushDraft(d draft) {
	ctx := ctxutil.WithUserID(context.Background(), d.userID)

	_, err := s.SaveDraft(ctx, SaveDraftInput{IdeaID: d.ideaID, Content: d.content})
	if err != nil {
		s.log.ErrorContext(ctx, "autosave flush failed",
			slog.String("idea_id", d.ideaID.String()),
			slog.Any("error", err),
		)
	}
}
