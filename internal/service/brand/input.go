package brand

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/domain"
)

// CreateBrandInput holds the parameters for creating a brand.
type CreateBrandInput struct {
	Name            string
	Website         string
	AdditionalInfo  *string
	TargetAudience  *string
	BrandTone       *string
	KeyOffer        *string
	ImageGuidelines *string
}

// Validate checks all fields and collects all errors.
func (i CreateBrandInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	website := strings.TrimSpace(i.Website)
	if website == "" {
		errs = append(errs, domain.FieldError{Field: "website", Message: "required"})
	} else if !validWebsite(website) {
		errs = append(errs, domain.FieldError{Field: "website", Message: "must be a valid http(s) URL"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateBrandInput holds optional field updates for a brand.
// Nil = don't change; pointer to empty string clears an optional field.
type UpdateBrandInput struct {
	BrandID         uuid.UUID
	Name            *string
	Website         *string
	AdditionalInfo  *string
	TargetAudience  *string
	BrandTone       *string
	KeyOffer        *string
	ImageGuidelines *string
}

// Validate checks all fields and collects all errors.
func (i UpdateBrandInput) Validate() error {
	var errs []domain.FieldError

	if i.BrandID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "brand_id", Message: "required"})
	}
	if i.patch().IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Website != nil {
		website := strings.TrimSpace(*i.Website)
		if website == "" {
			errs = append(errs, domain.FieldError{Field: "website", Message: "required"})
		} else if !validWebsite(website) {
			errs = append(errs, domain.FieldError{Field: "website", Message: "must be a valid http(s) URL"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateBrandInput) patch() domain.BrandPatch {
	return domain.BrandPatch{
		Name:            i.Name,
		Website:         i.Website,
		AdditionalInfo:  i.AdditionalInfo,
		TargetAudience:  i.TargetAudience,
		BrandTone:       i.BrandTone,
		KeyOffer:        i.KeyOffer,
		ImageGuidelines: i.ImageGuidelines,
	}
}

func validWebsite(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
