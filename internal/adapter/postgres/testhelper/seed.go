package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkravets/contentangle-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedBrand inserts a brand for the given user and returns it.
func SeedBrand(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Brand {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	info := "Seed brand " + suffix
	brand := domain.Brand{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           "Brand " + suffix,
		Website:        "https://brand-" + suffix + ".example.com",
		AdditionalInfo: &info,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO brands (id, user_id, name, website, additional_info, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		brand.ID, brand.UserID, brand.Name, brand.Website, brand.AdditionalInfo, brand.CreatedAt, brand.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBrand insert: %v", err)
	}

	return brand
}

// SeedAngle inserts a content angle under the given brand.
func SeedAngle(t *testing.T, pool *pgxpool.Pool, brandID uuid.UUID, platform domain.Platform) domain.ContentAngle {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	angle := domain.ContentAngle{
		ID:          uuid.New(),
		BrandID:     brandID,
		Platform:    platform,
		Header:      "Angle " + suffix,
		Description: "Seed angle " + suffix,
		Tonality:    "confident",
		Objective:   "engagement",
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO content_angles (id, brand_id, platform, header, description, tonality, objective, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		angle.ID, angle.BrandID, string(angle.Platform), angle.Header, angle.Description,
		angle.Tonality, angle.Objective, angle.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAngle insert: %v", err)
	}

	return angle
}

// SeedIdea inserts a content idea under the given angle. The idea carries the
// angle's platform, matching what the generation flow persists.
func SeedIdea(t *testing.T, pool *pgxpool.Pool, angle domain.ContentAngle) domain.ContentIdea {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	idea := domain.ContentIdea{
		ID:          uuid.New(),
		AngleID:     angle.ID,
		Platform:    angle.Platform,
		Topic:       "Topic " + suffix,
		Description: "Seed idea " + suffix,
		ImagePrompt: "A photo of " + suffix,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO content_ideas (id, angle_id, platform, topic, description, image_prompt, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		idea.ID, idea.AngleID, string(idea.Platform), idea.Topic, idea.Description, idea.ImagePrompt, idea.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIdea insert: %v", err)
	}

	return idea
}

// SeedGeneratedContent inserts generated content for the given idea.
func SeedGeneratedContent(t *testing.T, pool *pgxpool.Pool, brandID uuid.UUID, idea domain.ContentIdea) domain.GeneratedContent {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	imageURL := "https://images.example.com/" + suffix
	gc := domain.GeneratedContent{
		ID:        uuid.New(),
		IdeaID:    idea.ID,
		BrandID:   brandID,
		Platform:  idea.Platform,
		Content:   "Seed content " + suffix,
		ImageURL:  &imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO generated_content (id, idea_id, brand_id, platform, content, image_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		gc.ID, gc.IdeaID, gc.BrandID, string(gc.Platform), gc.Content, gc.ImageURL, gc.CreatedAt, gc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGeneratedContent insert: %v", err)
	}

	return gc
}
