package content

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/domain"
)

// GenerateAnglesInput selects the platforms to generate angles for. An empty
// Platforms slice means all supported platforms.
type GenerateAnglesInput struct {
	BrandID   uuid.UUID
	Platforms []domain.Platform
}

func (in GenerateAnglesInput) Validate() error {
	var errs []domain.FieldError
	if in.BrandID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "brand_id", Message: "required"})
	}
	for _, p := range in.Platforms {
		if !p.IsValid() {
			errs = append(errs, domain.FieldError{Field: "platforms", Message: "unsupported platform: " + p.String()})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// platforms returns the requested platforms, defaulting to all of them.
func (in GenerateAnglesInput) platforms() []domain.Platform {
	if len(in.Platforms) == 0 {
		return domain.Platforms
	}
	return in.Platforms
}

// ListAnglesInput filters a brand's angles by platform when Platform is set.
type ListAnglesInput struct {
	BrandID  uuid.UUID
	Platform *domain.Platform
}

func (in ListAnglesInput) Validate() error {
	var errs []domain.FieldError
	if in.BrandID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "brand_id", Message: "required"})
	}
	if in.Platform != nil && !in.Platform.IsValid() {
		errs = append(errs, domain.FieldError{Field: "platform", Message: "unsupported platform: " + in.Platform.String()})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SaveDraftInput carries a manual edit of an idea's generated content.
type SaveDraftInput struct {
	IdeaID  uuid.UUID
	Content string
}

func (in SaveDraftInput) Validate() error {
	var errs []domain.FieldError
	if in.IdeaID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "idea_id", Message: "required"})
	}
	if strings.TrimSpace(in.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
