// Package idea implements the ContentIdea repository using PostgreSQL.
package idea

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mkravets/contentangle-backend/internal/adapter/postgres"
	"github.com/mkravets/contentangle-backend/internal/domain"
)

// Repo provides content idea persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new idea repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const ideaColumns = `id, angle_id, platform, topic, description, image_prompt, created_at`

const createSQL = `
INSERT INTO content_ideas (id, angle_id, platform, topic, description, image_prompt, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + ideaColumns

const getByIDSQL = `
SELECT ` + ideaColumns + `
FROM content_ideas
WHERE id = $1`

const listByAngleSQL = `
SELECT ` + ideaColumns + `
FROM content_ideas
WHERE angle_id = $1
ORDER BY created_at DESC, id`

const getByAngleIDsSQL = `
SELECT ` + ideaColumns + `
FROM content_ideas
WHERE angle_id = ANY($1::uuid[])
ORDER BY angle_id, created_at DESC, id`

const deleteByAngleSQL = `
DELETE FROM content_ideas
WHERE angle_id = $1`

const deleteByBrandSQL = `
DELETE FROM content_ideas
WHERE angle_id IN (SELECT id FROM content_angles WHERE brand_id = $1)`

// CreateBatch inserts a batch of ideas for one angle in a single round trip
// and returns the persisted rows. All ideas get the same creation timestamp
// so a generation batch sorts as one unit.
func (r *Repo) CreateBatch(ctx context.Context, ideas []domain.ContentIdea) ([]domain.ContentIdea, error) {
	if len(ideas) == 0 {
		return []domain.ContentIdea{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	batch := &pgx.Batch{}
	for i := range ideas {
		ideas[i].ID = uuid.New()
		ideas[i].CreatedAt = now
		batch.Queue(createSQL,
			ideas[i].ID, ideas[i].AngleID, string(ideas[i].Platform),
			ideas[i].Topic, ideas[i].Description, ideas[i].ImagePrompt, ideas[i].CreatedAt,
		)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	created := make([]domain.ContentIdea, 0, len(ideas))
	for range ideas {
		idea, err := scanIdea(results.QueryRow())
		if err != nil {
			return nil, postgres.MapError(err, "content_idea", uuid.Nil)
		}
		created = append(created, idea)
	}

	return created, nil
}

// GetByID returns an idea by primary key.
func (r *Repo) GetByID(ctx context.Context, ideaID uuid.UUID) (domain.ContentIdea, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	idea, err := scanIdea(querier.QueryRow(ctx, getByIDSQL, ideaID))
	if err != nil {
		return domain.ContentIdea{}, postgres.MapError(err, "content_idea", ideaID)
	}
	return idea, nil
}

// ListByAngle returns an angle's ideas, newest first.
// Returns an empty slice (not nil) when the angle has no ideas.
func (r *Repo) ListByAngle(ctx context.Context, angleID uuid.UUID) ([]domain.ContentIdea, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByAngleSQL, angleID)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}
	defer rows.Close()

	return scanIdeas(rows)
}

// GetByAngleIDs returns ideas for multiple angles (batch for the tree loader).
func (r *Repo) GetByAngleIDs(ctx context.Context, angleIDs []uuid.UUID) ([]domain.ContentIdea, error) {
	if len(angleIDs) == 0 {
		return []domain.ContentIdea{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByAngleIDsSQL, angleIDs)
	if err != nil {
		return nil, fmt.Errorf("get ideas by angle_ids: %w", err)
	}
	defer rows.Close()

	return scanIdeas(rows)
}

// DeleteByAngle removes every idea under an angle. Used by the angle and
// brand cascades; generated content must already be gone.
func (r *Repo) DeleteByAngle(ctx context.Context, angleID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByAngleSQL, angleID); err != nil {
		return postgres.MapError(err, "content_idea", angleID)
	}
	return nil
}

// DeleteByBrand removes every idea under a brand's angles. Used by the brand
// cascade; generated content must already be gone.
func (r *Repo) DeleteByBrand(ctx context.Context, brandID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByBrandSQL, brandID); err != nil {
		return postgres.MapError(err, "content_idea", brandID)
	}
	return nil
}

func scanIdea(row pgx.Row) (domain.ContentIdea, error) {
	var i domain.ContentIdea
	var platform string
	err := row.Scan(&i.ID, &i.AngleID, &platform, &i.Topic, &i.Description, &i.ImagePrompt, &i.CreatedAt)
	if err != nil {
		return domain.ContentIdea{}, err
	}
	i.Platform = domain.Platform(platform)
	return i, nil
}

func scanIdeas(rows pgx.Rows) ([]domain.ContentIdea, error) {
	ideas := []domain.ContentIdea{}
	for rows.Next() {
		i, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("scan idea: %w", err)
		}
		ideas = append(ideas, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ideas: %w", err)
	}
	return ideas, nil
}
