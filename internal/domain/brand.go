package domain

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a user-owned business identity all generated content hangs off.
// The strategy fields (TargetAudience, BrandTone, KeyOffer, ImageGuidelines)
// are optional free text, typically filled in via autofill generation.
type Brand struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Website         string
	AdditionalInfo  *string
	TargetAudience  *string
	BrandTone       *string
	KeyOffer        *string
	ImageGuidelines *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BrandPatch carries optional field updates for a brand. Nil fields are left
// untouched; a non-nil pointer to an empty string clears the column.
type BrandPatch struct {
	Name            *string
	Website         *string
	AdditionalInfo  *string
	TargetAudience  *string
	BrandTone       *string
	KeyOffer        *string
	ImageGuidelines *string
}

// IsEmpty reports whether the patch carries no changes.
func (p BrandPatch) IsEmpty() bool {
	return p.Name == nil && p.Website == nil && p.AdditionalInfo == nil &&
		p.TargetAudience == nil && p.BrandTone == nil && p.KeyOffer == nil &&
		p.ImageGuidelines == nil
}
