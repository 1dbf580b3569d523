package hierarchy

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/mkravets/contentangle-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// Repositories providing the batch child selects, one SQL round trip per
// tree level. Consumer-defined; satisfied by the postgres adapters.

type brandRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Brand, error)
}

type angleRepo interface {
	GetByBrandIDs(ctx context.Context, brandIDs []uuid.UUID) ([]domain.ContentAngle, error)
}

type ideaRepo interface {
	GetByAngleIDs(ctx context.Context, angleIDs []uuid.UUID) ([]domain.ContentIdea, error)
}

type contentRepo interface {
	GetByIdeaIDs(ctx context.Context, ideaIDs []uuid.UUID) ([]domain.GeneratedContent, error)
}

// Loader hydrates full BrandContent subtrees. Each LoadUserTree call builds
// fresh per-call dataloaders, so batching and memoization never outlive a
// single request.
type Loader struct {
	brands  brandRepo
	angles  angleRepo
	ideas   ideaRepo
	content contentRepo
}

// NewLoader creates a tree Loader over the given repositories.
func NewLoader(brands brandRepo, angles angleRepo, ideas ideaRepo, content contentRepo) *Loader {
	return &Loader{brands: brands, angles: angles, ideas: ideas, content: content}
}

// LoadUserTree loads every brand the user owns with its full subtree:
// one query per level regardless of fan-out.
func (l *Loader) LoadUserTree(ctx context.Context, userID uuid.UUID) ([]domain.BrandContent, error) {
	brands, err := l.brands.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load brands: %w", err)
	}

	hydrated, err := l.hydrate(ctx, brands)
	if err != nil {
		return nil, err
	}
	return hydrated, nil
}

// LoadBrand loads one hydrated brand subtree.
func (l *Loader) LoadBrand(ctx context.Context, brand domain.Brand) (*domain.BrandContent, error) {
	hydrated, err := l.hydrate(ctx, []domain.Brand{brand})
	if err != nil {
		return nil, err
	}
	return &hydrated[0], nil
}

// hydrate descends one level at a time: all thunks for a level are created
// before any is resolved, so the whole batch dispatches as a single query.
func (l *Loader) hydrate(ctx context.Context, brands []domain.Brand) ([]domain.BrandContent, error) {
	angleLoader := newLoader(newAnglesBatchFn(l.angles))
	ideaLoader := newLoader(newIdeasBatchFn(l.ideas))
	contentLoader := newLoader(newContentBatchFn(l.content))

	out := make([]domain.BrandContent, len(brands))

	angleThunks := make([]dataloader.Thunk[[]domain.ContentAngle], len(brands))
	for i, b := range brands {
		angleThunks[i] = angleLoader.Load(ctx, b.ID)
	}
	for i, b := range brands {
		angles, err := angleThunks[i]()
		if err != nil {
			return nil, fmt.Errorf("load angles for brand %s: %w", b.ID, err)
		}
		out[i] = domain.BrandContent{Brand: b, Angles: make([]domain.AngleContent, len(angles))}
		for j, a := range angles {
			out[i].Angles[j] = domain.AngleContent{ContentAngle: a}
		}
	}

	ideaThunks := make(map[uuid.UUID]dataloader.Thunk[[]domain.ContentIdea])
	for i := range out {
		for j := range out[i].Angles {
			angleID := out[i].Angles[j].ID
			ideaThunks[angleID] = ideaLoader.Load(ctx, angleID)
		}
	}
	for i := range out {
		for j := range out[i].Angles {
			a := &out[i].Angles[j]
			ideas, err := ideaThunks[a.ID]()
			if err != nil {
				return nil, fmt.Errorf("load ideas for angle %s: %w", a.ID, err)
			}
			a.Ideas = make([]domain.IdeaContent, len(ideas))
			for k, idea := range ideas {
				a.Ideas[k] = domain.IdeaContent{ContentIdea: idea}
			}
		}
	}

	contentThunks := make(map[uuid.UUID]dataloader.Thunk[[]domain.GeneratedContent])
	for i := range out {
		for j := range out[i].Angles {
			for k := range out[i].Angles[j].Ideas {
				ideaID := out[i].Angles[j].Ideas[k].ID
				contentThunks[ideaID] = contentLoader.Load(ctx, ideaID)
			}
		}
	}
	for i := range out {
		for j := range out[i].Angles {
			for k := range out[i].Angles[j].Ideas {
				idea := &out[i].Angles[j].Ideas[k]
				generated, err := contentThunks[idea.ID]()
				if err != nil {
					return nil, fmt.Errorf("load content for idea %s: %w", idea.ID, err)
				}
				idea.Generated = generated
			}
		}
	}

	return out, nil
}

func newAnglesBatchFn(repo angleRepo) dataloader.BatchFunc[uuid.UUID, []domain.ContentAngle] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.ContentAngle] {
		angles, err := repo.GetByBrandIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.ContentAngle](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.ContentAngle, len(keys))
		for _, a := range angles {
			grouped[a.BrandID] = append(grouped[a.BrandID], a)
		}

		return mapResults(keys, grouped, emptySlice[domain.ContentAngle])
	}
}

func newIdeasBatchFn(repo ideaRepo) dataloader.BatchFunc[uuid.UUID, []domain.ContentIdea] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.ContentIdea] {
		ideas, err := repo.GetByAngleIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.ContentIdea](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.ContentIdea, len(keys))
		for _, i := range ideas {
			grouped[i.AngleID] = append(grouped[i.AngleID], i)
		}

		return mapResults(keys, grouped, emptySlice[domain.ContentIdea])
	}
}

func newContentBatchFn(repo contentRepo) dataloader.BatchFunc[uuid.UUID, []domain.GeneratedContent] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.GeneratedContent] {
		rows, err := repo.GetByIdeaIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.GeneratedContent](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.GeneratedContent, len(keys))
		for _, gc := range rows {
			grouped[gc.IdeaID] = append(grouped[gc.IdeaID], gc)
		}

		return mapResults(keys, grouped, emptySlice[domain.GeneratedContent])
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
