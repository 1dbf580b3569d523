package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mkravets/contentangle-backend/internal/bus"
	"github.com/mkravets/contentangle-backend/internal/cache"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/internal/provider"
	"github.com/mkravets/contentangle-backend/pkg/ctxutil"
)

// GenerateAngles requests new content angles from the generation service, one
// call per platform, and persists the results. A platform whose call fails is
// skipped with an error toast; the operation only fails outright when no
// platform produced anything.
func (s *Service) GenerateAngles(ctx context.Context, in GenerateAnglesInput) ([]domain.ContentAngle, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	b, err := s.brands.GetByID(ctx, userID, in.BrandID)
	if err != nil {
		return nil, err
	}

	var (
		batch  []domain.ContentAngle
		failed []domain.Platform
	)
	for _, platform := range in.platforms() {
		results, err := s.generator.GenerateAngles(ctx, anglesRequest(b, platform))
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.log.WarnContext(ctx, "angle generation failed for platform",
				slog.String("brand_id", b.ID.String()),
				slog.String("platform", platform.String()),
				slog.Any("error", err),
			)
			failed = append(failed, platform)
			continue
		}
		for _, r := range results {
			batch = append(batch, domain.ContentAngle{
				BrandID:     b.ID,
				Platform:    platform,
				Header:      r.Header,
				Description: r.Description,
				Tonality:    r.Tonality,
				Objective:   r.Objective,
			})
		}
	}

	if len(batch) == 0 {
		return nil, fmt.Errorf("generate angles: %w", provider.ErrUnavailable)
	}

	// One batch insert, so a failure persists nothing from this round.
	created, err := s.angles.CreateBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("save angles: %w", err)
	}

	for _, platform := range failed {
		s.events.Publish(bus.EventShowToast, bus.Toast{
			Message: "Angle generation failed for " + platform.String(),
			Type:    domain.ToastError,
		})
	}
	s.events.Publish(bus.EventShowToast, bus.Toast{
		Message: fmt.Sprintf("Generated %d angles", len(created)),
		Type:    domain.ToastSuccess,
	})

	if err := s.brands.Touch(ctx, userID, b.ID); err != nil {
		return nil, fmt.Errorf("touch brand: %w", err)
	}

	s.cache.InvalidateBrandContent(cache.InvalidateScope{
		UserID:  userID,
		BrandID: b.ID,
	})

	s.log.InfoContext(ctx, "angles generated",
		slog.String("user_id", userID.String()),
		slog.String("brand_id", b.ID.String()),
		slog.Int("count", len(created)),
		slog.Int("failed_platforms", len(failed)),
	)

	return created, nil
}

func anglesRequest(b domain.Brand, platform domain.Platform) provider.AnglesRequest {
	return provider.AnglesRequest{
		BrandID:         b.ID.String(),
		Name:            b.Name,
		Website:         b.Website,
		AdditionalInfo:  deref(b.AdditionalInfo),
		TargetAudience:  deref(b.TargetAudience),
		BrandTone:       deref(b.BrandTone),
		KeyOffer:        deref(b.KeyOffer),
		ImageGuidelines: deref(b.ImageGuidelines),
		Platform:        platform,
	}
}
