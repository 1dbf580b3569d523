// Package hierarchy assembles the Brand → Platform → Angle → Idea →
// GeneratedContent tree and computes the derived counts every level of the UI
// displays. Assembly is pure; loading is batched per level.
package hierarchy

import "github.com/mkravets/contentangle-backend/internal/domain"

// Stats are the derived counts carried at every level of the tree.
// GeneratedCount + PendingCount == IdeaCount always holds.
type Stats struct {
	IdeaCount      int
	GeneratedCount int
	PendingCount   int
}

func (s Stats) add(other Stats) Stats {
	return Stats{
		IdeaCount:      s.IdeaCount + other.IdeaCount,
		GeneratedCount: s.GeneratedCount + other.GeneratedCount,
		PendingCount:   s.PendingCount + other.PendingCount,
	}
}

// IdeaNode is one idea with its generated content, newest first.
type IdeaNode struct {
	domain.ContentIdea
	Generated  []domain.GeneratedContent
	HasContent bool
}

// AngleNode is one angle with its ideas and aggregate counts.
type AngleNode struct {
	domain.ContentAngle
	Ideas []IdeaNode
	Stats Stats
}

// PlatformGroup holds one platform's angles and their combined counts.
type PlatformGroup struct {
	Platform domain.Platform
	Angles   []AngleNode
	Stats    Stats
}

// BrandTree is the assembled view of one brand: angles grouped by platform in
// canonical platform order, with counts rolled up to the brand level.
type BrandTree struct {
	domain.Brand
	Platforms []PlatformGroup
	Stats     Stats
}
