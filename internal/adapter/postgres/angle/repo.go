// Package angle implements the ContentAngle repository using PostgreSQL.
package angle

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mkravets/contentangle-backend/internal/adapter/postgres"
	"github.com/mkravets/contentangle-backend/internal/domain"
)

// Repo provides content angle persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new angle repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const angleColumns = `id, brand_id, platform, header, description, tonality, objective, created_at`

const createSQL = `
INSERT INTO content_angles (id, brand_id, platform, header, description, tonality, objective, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + angleColumns

const getByIDSQL = `
SELECT ` + angleColumns + `
FROM content_angles
WHERE id = $1`

const getByBrandIDsSQL = `
SELECT ` + angleColumns + `
FROM content_angles
WHERE brand_id = ANY($1::uuid[])
ORDER BY brand_id, created_at DESC, id`

const deleteSQL = `
DELETE FROM content_angles
WHERE id = $1`

const deleteByBrandSQL = `
DELETE FROM content_angles
WHERE brand_id = $1`

// CreateBatch inserts a batch of angles in a single round trip and returns
// the persisted rows. One pipeline, so a failing row aborts the whole batch
// and no partial round is persisted. All angles get the same creation
// timestamp so a generation round sorts as one unit.
func (r *Repo) CreateBatch(ctx context.Context, angles []domain.ContentAngle) ([]domain.ContentAngle, error) {
	if len(angles) == 0 {
		return []domain.ContentAngle{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	batch := &pgx.Batch{}
	for i := range angles {
		angles[i].ID = uuid.New()
		angles[i].CreatedAt = now
		batch.Queue(createSQL,
			angles[i].ID, angles[i].BrandID, string(angles[i].Platform), angles[i].Header,
			angles[i].Description, angles[i].Tonality, angles[i].Objective, angles[i].CreatedAt,
		)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	created := make([]domain.ContentAngle, 0, len(angles))
	for range angles {
		a, err := scanAngle(results.QueryRow())
		if err != nil {
			return nil, postgres.MapError(err, "content_angle", uuid.Nil)
		}
		created = append(created, a)
	}

	return created, nil
}

// GetByID returns an angle by primary key.
func (r *Repo) GetByID(ctx context.Context, angleID uuid.UUID) (domain.ContentAngle, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	angle, err := scanAngle(querier.QueryRow(ctx, getByIDSQL, angleID))
	if err != nil {
		return domain.ContentAngle{}, postgres.MapError(err, "content_angle", angleID)
	}
	return angle, nil
}

// ListByBrand returns a brand's angles, optionally filtered to one platform,
// newest first. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) ListByBrand(ctx context.Context, brandID uuid.UUID, platform *domain.Platform) ([]domain.ContentAngle, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select("id", "brand_id", "platform", "header", "description", "tonality", "objective", "created_at").
		From("content_angles").
		Where(sq.Eq{"brand_id": brandID}).
		OrderBy("created_at DESC", "id").
		PlaceholderFormat(sq.Dollar)

	if platform != nil {
		builder = builder.Where(sq.Eq{"platform": string(*platform)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build angle list query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list angles: %w", err)
	}
	defer rows.Close()

	return scanAngles(rows)
}

// GetByBrandIDs returns angles for multiple brands (batch for the tree loader).
func (r *Repo) GetByBrandIDs(ctx context.Context, brandIDs []uuid.UUID) ([]domain.ContentAngle, error) {
	if len(brandIDs) == 0 {
		return []domain.ContentAngle{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByBrandIDsSQL, brandIDs)
	if err != nil {
		return nil, fmt.Errorf("get angles by brand_ids: %w", err)
	}
	defer rows.Close()

	return scanAngles(rows)
}

// Delete removes an angle by ID. Child ideas and content must already be
// deleted; the FK has no cascade.
func (r *Repo) Delete(ctx context.Context, angleID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, angleID)
	if err != nil {
		return postgres.MapError(err, "content_angle", angleID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("content_angle %s: %w", angleID, domain.ErrNotFound)
	}
	return nil
}

// DeleteByBrand removes every angle under a brand. Used by the brand cascade.
func (r *Repo) DeleteByBrand(ctx context.Context, brandID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByBrandSQL, brandID); err != nil {
		return postgres.MapError(err, "content_angle", brandID)
	}
	return nil
}

func scanAngle(row pgx.Row) (domain.ContentAngle, error) {
	var a domain.ContentAngle
	var platform string
	err := row.Scan(&a.ID, &a.BrandID, &platform, &a.Header, &a.Description, &a.Tonality, &a.Objective, &a.CreatedAt)
	if err != nil {
		return domain.ContentAngle{}, err
	}
	a.Platform = domain.Platform(platform)
	return a, nil
}

func scanAngles(rows pgx.Rows) ([]domain.ContentAngle, error) {
	angles := []domain.ContentAngle{}
	for rows.Next() {
		a, err := scanAngle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan angle: %w", err)
		}
		angles = append(angles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate angles: %w", err)
	}
	return angles, nil
}
