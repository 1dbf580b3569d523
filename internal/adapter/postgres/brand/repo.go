// Package brand implements the Brand repository using PostgreSQL.
package brand

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

// Repo provides brand persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new brand repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const brandColumns = `id, user_id, name, website, additional_info, target_audience,
       brand_tone, key_offer, image_guidelines, created_at, updated_at`

const createSQL = `
INSERT INTO brands (id, user_id, name, website, additional_info, target_audience,
                    brand_tone, key_offer, image_guidelines, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + brandColumns

const getByIDSQL = `
SELECT ` + brandColumns + `
FROM brands
WHERE id = $1 AND user_id = $2`

const listSQL = `
SELECT ` + brandColumns + `
FROM brands
WHERE user_id = $1
ORDER BY updated_at DESC, id`

const deleteSQL = `
DELETE FROM brands
WHERE id = $1 AND user_id = $2`

const touchSQL = `
UPDATE brands SET updated_at = $3
WHERE id = $1 AND user_id = $2`

// Create inserts a new brand and returns the persisted row.
func (r *Repo) Create(ctx context.Context, brand domain.Brand) (domain.Brand, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	brand.ID = uuid.New()
	brand.CreatedAt = now
	brand.UpdatedAt = now

	row := querier.QueryRow(ctx, createSQL,
		brand.ID, brand.UserID, brand.Name, brand.Website, brand.AdditionalInfo,
		brand.TargetAudience, brand.BrandTone, brand.KeyOffer, brand.ImageGuidelines,
		brand.CreatedAt, brand.UpdatedAt,
	)

	created, err := scanBrand(row)
	if err != nil {
		return domain.Brand{}, postgres.MapError(err, "brand", brand.ID)
	}
	return created, nil
}

// GetByID returns a brand by primary key filtered by user_id.
// Returns domain.ErrNotFound if the brand does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, brandID uuid.UUID) (domain.Brand, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	brand, err := scanBrand(querier.QueryRow(ctx, getByIDSQL, brandID, userID))
	if err != nil {
		return domain.Brand{}, postgres.MapError(err, "brand", brandID)
	}
	return brand, nil
}

// List returns all brands for a user, most recently updated first.
// Returns an empty slice (not nil) when the user has no brands.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Brand, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	brands := []domain.Brand{}
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("list brands: %w", err)
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}

	return brands, nil
}

// Update applies a patch to a brand and returns the updated row. The patch is
// built dynamically so untouched columns keep their values.
// Returns domain.ErrNotFound if the brand does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, brandID uuid.UUID, patch domain.BrandPatch) (domain.Brand, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Update("brands").
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"id": brandID, "user_id": userID}).
		Suffix("RETURNING " + brandColumns).
		PlaceholderFormat(sq.Dollar)

	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Website != nil {
		builder = builder.Set("website", *patch.Website)
	}
	if patch.AdditionalInfo != nil {
		builder = builder.Set("additional_info", nullable(*patch.AdditionalInfo))
	}
	if patch.TargetAudience != nil {
		builder = builder.Set("target_audience", nullable(*patch.TargetAudience))
	}
	if patch.BrandTone != nil {
		builder = builder.Set("brand_tone", nullable(*patch.BrandTone))
	}
	if patch.KeyOffer != nil {
		builder = builder.Set("key_offer", nullable(*patch.KeyOffer))
	}
	if patch.ImageGuidelines != nil {
		builder = builder.Set("image_guidelines", nullable(*patch.ImageGuidelines))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return domain.Brand{}, fmt.Errorf("build update query: %w", err)
	}

	brand, err := scanBrand(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Brand{}, postgres.MapError(err, "brand", brandID)
	}
	return brand, nil
}

// Touch bumps the brand's updated_at so list ordering reflects activity in
// its subtree.
func (r *Repo) Touch(ctx context.Context, userID, brandID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, touchSQL, brandID, userID, time.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		return postgres.MapError(err, "brand", brandID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("brand %s: %w", brandID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a brand by ID. Child rows must already be gone; the delete
// runs inside the cascade transaction after angles, ideas and content.
// Returns domain.ErrNotFound if the brand does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, brandID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, brandID, userID)
	if err != nil {
		return postgres.MapError(err, "brand", brandID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("brand %s: %w", brandID, domain.ErrNotFound)
	}
	return nil
}

// scanBrand scans one brand row from either pgx.Row or pgx.Rows.
func scanBrand(row pgx.Row) (domain.Brand, error) {
	var b domain.Brand
	err := row.Scan(
		&b.ID, &b.UserID, &b.Name, &b.Website, &b.AdditionalInfo, &b.TargetAudience,
		&b.BrandTone, &b.KeyOffer, &b.ImageGuidelines, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return domain.Brand{}, err
	}
	return b, nil
}

// nullable maps an empty string to NULL so cleared fields read back as nil.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
