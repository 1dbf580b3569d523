package cache

import (
	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/domain"
)

// Key constructors mirror the read paths: one key per cached view. The
// platform-filtered angle list is cached separately from the unfiltered one.

func BrandsContentKey(userID uuid.UUID) string {
	return "brands-content-" + userID.String()
}

func ContentAnglesKey(brandID uuid.UUID, platform *domain.Platform) string {
	key := "content-angles-" + brandID.String()
	if platform != nil {
		key += "-" + platform.String()
	}
	return key
}

func ContentIdeasKey(angleID uuid.UUID) string {
	return "content-ideas-" + angleID.String()
}

func GeneratedContentKey(ideaID uuid.UUID) string {
	return "generated-content-" + ideaID.String()
}

// InvalidateScope names the lineage of a mutated row. Invalidation always
// walks upward: a write at some depth stales every cached view that contains
// it, up to the owning user's brand tree.
type InvalidateScope struct {
	UserID  uuid.UUID
	BrandID uuid.UUID
	AngleID uuid.UUID
	IdeaID  uuid.UUID
}

// angleListKeys returns the unfiltered angle list key plus every
// platform-filtered variant for the brand.
func angleListKeys(brandID uuid.UUID) []string {
	keys := []string{ContentAnglesKey(brandID, nil)}
	for _, p := range domain.Platforms {
		keys = append(keys, ContentAnglesKey(brandID, &p))
	}
	return keys
}

// InvalidateIdeaContent stales the views affected by writing generated
// content under an idea: the idea's content, the angle's idea list (its
// has-content flags changed) and the user's brand tree (its counts changed).
func (s *Store) InvalidateIdeaContent(scope InvalidateScope) {
	s.Invalidate(
		GeneratedContentKey(scope.IdeaID),
		ContentIdeasKey(scope.AngleID),
		BrandsContentKey(scope.UserID),
	)
}

// InvalidateAngleContent stales the views affected by adding or removing an
// angle or its ideas.
func (s *Store) InvalidateAngleContent(scope InvalidateScope) {
	keys := append(angleListKeys(scope.BrandID),
		ContentIdeasKey(scope.AngleID),
		BrandsContentKey(scope.UserID),
	)
	s.Invalidate(keys...)
}

// InvalidateBrandContent stales the views affected by creating, updating or
// deleting a brand.
func (s *Store) InvalidateBrandContent(scope InvalidateScope) {
	keys := append(angleListKeys(scope.BrandID), BrandsContentKey(scope.UserID))
	s.Invalidate(keys...)
}
