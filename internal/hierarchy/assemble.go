package hierarchy

import (
	"sort"

	"github.com/mkravets/contentangle-backend/internal/domain"
)

// Assemble builds the display tree from hydrated brand rows. It is a pure
// function of its input: no I/O, no shared state, deterministic output for
// the same multiset of rows regardless of their arrival order, and idempotent
// under re-runs. Input slices are not mutated.
//
// Ideas whose platform tag disagrees with their parent angle's platform are
// excluded from the tree and all counts; such rows are rejected at write time,
// the filter here guards data predating that rule.
func Assemble(brands []domain.BrandContent) []BrandTree {
	trees := make([]BrandTree, 0, len(brands))
	for _, b := range brands {
		trees = append(trees, assembleBrand(b))
	}

	// Newest activity first, id as the tiebreak for a stable order.
	sort.SliceStable(trees, func(i, j int) bool {
		if !trees[i].UpdatedAt.Equal(trees[j].UpdatedAt) {
			return trees[i].UpdatedAt.After(trees[j].UpdatedAt)
		}
		return trees[i].ID.String() < trees[j].ID.String()
	})

	return trees
}

func assembleBrand(b domain.BrandContent) BrandTree {
	tree := BrandTree{
		Brand:     b.Brand,
		Platforms: []PlatformGroup{},
	}

	byPlatform := make(map[domain.Platform][]AngleNode, len(domain.Platforms))
	for _, angle := range b.Angles {
		node := assembleAngle(angle)
		byPlatform[angle.Platform] = append(byPlatform[angle.Platform], node)
	}

	// Canonical enum order; platforms with no angles yield no group, so a
	// brand with zero angles has an empty platform set rather than being
	// absent from the result.
	for _, platform := range domain.Platforms {
		angles, ok := byPlatform[platform]
		if !ok {
			continue
		}

		sortAngles(angles)

		group := PlatformGroup{Platform: platform, Angles: angles}
		for _, a := range angles {
			group.Stats = group.Stats.add(a.Stats)
		}

		tree.Platforms = append(tree.Platforms, group)
		tree.Stats = tree.Stats.add(group.Stats)
	}

	return tree
}

func assembleAngle(a domain.AngleContent) AngleNode {
	node := AngleNode{
		ContentAngle: a.ContentAngle,
		Ideas:        []IdeaNode{},
	}

	for _, idea := range a.Ideas {
		if idea.Platform != a.Platform {
			continue
		}

		generated := make([]domain.GeneratedContent, len(idea.Generated))
		copy(generated, idea.Generated)
		sort.SliceStable(generated, func(i, j int) bool {
			if !generated[i].CreatedAt.Equal(generated[j].CreatedAt) {
				return generated[i].CreatedAt.After(generated[j].CreatedAt)
			}
			return generated[i].ID.String() < generated[j].ID.String()
		})

		node.Ideas = append(node.Ideas, IdeaNode{
			ContentIdea: idea.ContentIdea,
			Generated:   generated,
			HasContent:  len(generated) > 0,
		})
	}

	sort.SliceStable(node.Ideas, func(i, j int) bool {
		if !node.Ideas[i].CreatedAt.Equal(node.Ideas[j].CreatedAt) {
			return node.Ideas[i].CreatedAt.After(node.Ideas[j].CreatedAt)
		}
		return node.Ideas[i].ID.String() < node.Ideas[j].ID.String()
	})

	node.Stats.IdeaCount = len(node.Ideas)
	for _, idea := range node.Ideas {
		if idea.HasContent {
			node.Stats.GeneratedCount++
		}
	}
	node.Stats.PendingCount = node.Stats.IdeaCount - node.Stats.GeneratedCount

	return node
}

func sortAngles(angles []AngleNode) {
	sort.SliceStable(angles, func(i, j int) bool {
		if !angles[i].CreatedAt.Equal(angles[j].CreatedAt) {
			return angles[i].CreatedAt.After(angles[j].CreatedAt)
		}
		return angles[i].ID.String() < angles[j].ID.String()
	})
}
