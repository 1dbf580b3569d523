package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContentAngle is a strategic content theme scoped to one brand and one platform.
type ContentAngle struct {
	ID          uuid.UUID
	BrandID     uuid.UUID
	Platform    Platform
	Header      string
	Description string
	Tonality    string
	Objective   string
	CreatedAt   time.Time
}

// ContentIdea is a concrete content topic derived from an angle. Its platform
// always equals the parent angle's platform; mismatched rows are rejected at
// write time and additionally filtered out during aggregation.
type ContentIdea struct {
	ID          uuid.UUID
	AngleID     uuid.UUID
	Platform    Platform
	Topic       string
	Description string
	ImagePrompt string
	CreatedAt   time.Time
}

// GeneratedContent is the realized text/image output for one idea. At most one
// row exists per idea; regeneration updates in place via upsert.
type GeneratedContent struct {
	ID        uuid.UUID
	IdeaID    uuid.UUID
	BrandID   uuid.UUID
	Platform  Platform
	Content   string
	ImageURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IdeaContent pairs an idea with its generated content rows.
type IdeaContent struct {
	ContentIdea
	Generated []GeneratedContent
}

// HasContent reports whether the idea has at least one generated content row.
func (i IdeaContent) HasContent() bool { return len(i.Generated) > 0 }

// AngleContent pairs an angle with its ideas and their generated content.
type AngleContent struct {
	ContentAngle
	Ideas []IdeaContent
}

// BrandContent is the fully hydrated brand subtree: the brand, its angles,
// their ideas and any generated content. Input shape of the hierarchy assembler.
type BrandContent struct {
	Brand
	Angles []AngleContent
}
