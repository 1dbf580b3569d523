// Package gencontent implements the GeneratedContent repository using PostgreSQL.
package gencontent

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

// Repo provides generated content persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new generated content repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const contentColumns = `id, idea_id, brand_id, platform, content, image_url, created_at, updated_at`

// The unique index on idea_id makes regeneration an in-place overwrite.
const upsertSQL = `
INSERT INTO generated_content (id, idea_id, brand_id, platform, content, image_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
ON CONFLICT (idea_id) DO UPDATE
SET content = EXCLUDED.content,
    image_url = EXCLUDED.image_url,
    updated_at = EXCLUDED.updated_at
RETURNING ` + contentColumns

const getByIdeaIDSQL = `
SELECT ` + contentColumns + `
FROM generated_content
WHERE idea_id = $1
ORDER BY created_at DESC, id`

const getByIdeaIDsSQL = `
SELECT ` + contentColumns + `
FROM generated_content
WHERE idea_id = ANY($1::uuid[])
ORDER BY idea_id, created_at DESC, id`

const updateContentSQL = `
UPDATE generated_content
SET content = $2, updated_at = $3
WHERE idea_id = $1
RETURNING ` + contentColumns

const deleteByAngleSQL = `
DELETE FROM generated_content
WHERE idea_id IN (SELECT id FROM content_ideas WHERE angle_id = $1)`

const deleteByBrandSQL = `
DELETE FROM generated_content
WHERE brand_id = $1`

// Upsert inserts content for an idea or overwrites the existing row.
func (r *Repo) Upsert(ctx context.Context, gc domain.GeneratedContent) (domain.GeneratedContent, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	gc.ID = uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, upsertSQL,
		gc.ID, gc.IdeaID, gc.BrandID, string(gc.Platform), gc.Content, gc.ImageURL, now,
	)

	saved, err := scanContent(row)
	if err != nil {
		return domain.GeneratedContent{}, postgres.MapError(err, "generated_content", gc.IdeaID)
	}
	return saved, nil
}

// GetByIdeaID returns the generated content rows for one idea.
// Returns an empty slice (not nil) when nothing has been generated yet.
func (r *Repo) GetByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]domain.GeneratedContent, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIdeaIDSQL, ideaID)
	if err != nil {
		return nil, fmt.Errorf("get content by idea_id: %w", err)
	}
	defer rows.Close()

	return scanContents(rows)
}

// GetByIdeaIDs returns content for multiple ideas (batch for the tree loader).
func (r *Repo) GetByIdeaIDs(ctx context.Context, ideaIDs []uuid.UUID) ([]domain.GeneratedContent, error) {
	if len(ideaIDs) == 0 {
		return []domain.GeneratedContent{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIdeaIDsSQL, ideaIDs)
	if err != nil {
		return nil, fmt.Errorf("get content by idea_ids: %w", err)
	}
	defer rows.Close()

	return scanContents(rows)
}

// UpdateContent replaces the text of an idea's content, keeping the image.
// Returns domain.ErrNotFound when the idea has no generated content yet.
func (r *Repo) UpdateContent(ctx context.Context, ideaID uuid.UUID, content string) (domain.GeneratedContent, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	gc, err := scanContent(querier.QueryRow(ctx, updateContentSQL, ideaID, content, now))
	if err != nil {
		return domain.GeneratedContent{}, postgres.MapError(err, "generated_content", ideaID)
	}
	return gc, nil
}

// DeleteByAngle removes content for every idea under an angle. First step of
// the angle cascade.
func (r *Repo) DeleteByAngle(ctx context.Context, angleID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByAngleSQL, angleID); err != nil {
		return postgres.MapError(err, "generated_content", angleID)
	}
	return nil
}

// DeleteByBrand removes every content row belonging to a brand. First step of
// the brand cascade.
func (r *Repo) DeleteByBrand(ctx context.Context, brandID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByBrandSQL, brandID); err != nil {
		return postgres.MapError(err, "generated_content", brandID)
	}
	return nil
}

func scanContent(row pgx.Row) (domain.GeneratedContent, error) {
	var gc domain.GeneratedContent
	var platform string
	err := row.Scan(&gc.ID, &gc.IdeaID, &gc.BrandID, &platform, &gc.Content, &gc.ImageURL, &gc.CreatedAt, &gc.UpdatedAt)
	if err != nil {
		return domain.GeneratedContent{}, err
	}
	gc.Platform = domain.Platform(platform)
	return gc, nil
}

func scanContents(rows pgx.Rows) ([]domain.GeneratedContent, error) {
	contents := []domain.GeneratedContent{}
	for rows.Next() {
		gc, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan generated content: %w", err)
		}
		contents = append(contents, gc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generated content: %w", err)
	}
	return contents, nil
}
