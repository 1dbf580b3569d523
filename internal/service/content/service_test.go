package content

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/bus"
	"github.com/mkravets/contentangle-backend/internal/cache"
	"github.com/mkravets/contentangle-backend/internal/config"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/internal/provider"
	"github.com/mkravets/contentangle-backend/pkg/ctxutil"
)

func testTTL() config.CacheConfig {
	return config.CacheConfig{
		BrandTreeTTL: 5 * time.Minute,
		AnglesTTL:    3 * time.Minute,
		IdeasTTL:     2 * time.Minute,
		ContentTTL:   time.Minute,
	}
}

func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

type testDeps struct {
	brands  *brandRepoMock
	angles  *angleRepoMock
	ideas   *ideaRepoMock
	content *contentRepoMock
	gen     *generatorMock
	events  *publisherMock
	tx      *txManagerMock
	store   *cache.Store
}

func newTestService(t *testing.T, deps testDeps) (*Service, *publisherMock) {
	t.Helper()
	if deps.brands == nil {
		deps.brands = &brandRepoMock{}
	}
	if deps.angles == nil {
		deps.angles = &angleRepoMock{}
	}
	if deps.ideas == nil {
		deps.ideas = &ideaRepoMock{}
	}
	if deps.content == nil {
		deps.content = &contentRepoMock{}
	}
	if deps.gen == nil {
		deps.gen = &generatorMock{}
	}
	if deps.events == nil {
		deps.events = &publisherMock{}
	}
	if deps.tx == nil {
		deps.tx = defaultTxMock()
	}
	if deps.store == nil {
		deps.store = cache.NewStore()
	}
	svc := NewService(
		slog.New(slog.DiscardHandler),
		deps.brands, deps.angles, deps.ideas, deps.content,
		deps.gen, deps.events, deps.tx, deps.store, testTTL(),
	)
	t.Cleanup(svc.Close)
	return svc, deps.events
}

// lineage wires the standard mock chain: one brand owned by userID, one angle
// under it, one idea under the angle.
type lineage struct {
	userID uuid.UUID
	brand  domain.Brand
	angle  domain.ContentAngle
	idea   domain.ContentIdea
}

func newLineage(platform domain.Platform) lineage {
	userID := uuid.New()
	brand := domain.Brand{ID: uuid.New(), UserID: userID, Name: "Acme", Website: "https://acme.example.com"}
	angle := domain.ContentAngle{
		ID:        uuid.New(),
		BrandID:   brand.ID,
		Platform:  platform,
		Header:    "Build in public",
		Tonality:  "casual",
		Objective: "engagement",
	}
	idea := domain.ContentIdea{
		ID:       uuid.New(),
		AngleID:  angle.ID,
		Platform: platform,
		Topic:    "Shipping week recap",
	}
	return lineage{userID: userID, brand: brand, angle: angle, idea: idea}
}

func (l lineage) mocks() (*brandRepoMock, *angleRepoMock, *ideaRepoMock) {
	brands := &brandRepoMock{
		GetByIDFunc: func(_ context.Context, userID, brandID uuid.UUID) (domain.Brand, error) {
			if userID != l.userID || brandID != l.brand.ID {
				return domain.Brand{}, domain.ErrNotFound
			}
			return l.brand, nil
		},
	}
	angles := &angleRepoMock{
		GetByIDFunc: func(_ context.Context, angleID uuid.UUID) (domain.ContentAngle, error) {
			if angleID != l.angle.ID {
				return domain.ContentAngle{}, domain.ErrNotFound
			}
			return l.angle, nil
		},
	}
	ideas := &ideaRepoMock{
		GetByIDFunc: func(_ context.Context, ideaID uuid.UUID) (domain.ContentIdea, error) {
			if ideaID != l.idea.ID {
				return domain.ContentIdea{}, domain.ErrNotFound
			}
			return l.idea, nil
		},
	}
	return brands, angles, ideas
}

func (l lineage) ctx() context.Context {
	return ctxutil.WithUserID(context.Background(), l.userID)
}

func TestGenerateAngles_AllPlatforms(t *testing.T) {
	t.Parallel()

	lin := newLineage(domain.PlatformTwitter)
	brands, _, _ := lin.mocks()

	var requested []domain.Platform
	gen := &generatorMock{
		GenerateAnglesFunc: func(_ context.Context, req provider.AnglesRequest) ([]provider.AngleResult, error) {
			requested = append(requested, req.Platform)
			if req.Name != lin.brand.Name {
				t.Errorf("request name: got %q, want %q", req.Name, lin.brand.Name)
			}
			return []provider.AngleResult{{Header: "A"}, {Header: "B"}}, nil
		},
	}
	angles := &angleRepoMock{
		CreateBatchFunc: func(_ context.Context, batch []domain.ContentAngle) ([]domain.ContentAngle, error) {
			out := make([]domain.ContentAngle, len(batch))
			for i, a := range batch {
				a.ID = uuid.New()
				out[i] = a
			}
			return out, nil
		},
	}

	svc, events := newTestService(t, testDeps{brands: brands, angles: angles, gen: gen})

	created, err := svc.GenerateAngles(lin.ctx(), GenerateAnglesInput{BrandID: lin.brand.ID})
	if err != nil {
		t.Fatalf("GenerateAngles: %v", err)
	}

	if len(requested) != len(domain.Platforms) {
		t.Fatalf("provider calls: got %d, want %d", len(requested), len(domain.Platforms))
	}
	if len(created) != 2*len(domain.Platforms) {
		t.Fatalf("created angles: got %d, want %d", len(created), 2*len(domain.Platforms))
	}
	if angles.BatchCalls() != 1 {
		t.Errorf("batch inserts: got %d, want 1 for the whole round", angles.BatchCalls())
	}
	for _, a := range created {
		if a.BrandID != lin.brand.ID {
			t.Errorf("angle brand: got %v, want %v", a.BrandID, lin.brand.ID)
		}
		if !a.Platform.IsValid() {
			t.Errorf("angle platform not stamped: %q", a.Platform)
		}
	}
	toasts := events.PublishedOf(bus.EventShowToast)
	if len(toasts) != 1 {
		t.Fatalf("toasts: got %d, want 1", len(toasts))
	}
	if toast := toasts[0].payload.(bus.Toast); toast.Type != domain.ToastSuccess {
		t.Errorf("toast type: got %q, want success", toast.Type)
	}
}

func TestGenerateAngles_PartialFailureToastsAndContinues(t *testing.T) {
	t.Parallel()

	lin := newLineage(domain.PlatformTwitter)
	brands, _, _ := lin.mocks()

	gen := &generatorMock{
		GenerateAnglesFunc: func(_ context.Context, req provider.AnglesRequest) ([]provider.AngleResult, error) {
			if req.Platform == domain.PlatformLinkedIn {
				return nil, provider.ErrUnavailable
			}
			return []provider.AngleResult{{Header: string(req.Platform)}}, nil
		},
	}
	angles := &angleRepoMock{
		CreateBatchFunc: func(_ context.Context, batch []domain.ContentAngle) ([]domain.ContentAngle, error) {
			out := make([]domain.ContentAngle, len(batch))
			for i, a := range batch {
				a.ID = uuid.New()
				out[i] = a
			}
			return out, nil
		},
	}

	svc, events := newTestService(t, testDeps{brands: brands, angles: angles, gen: gen})

	created, err := svc.GenerateAngles(lin.ctx(), GenerateAnglesInput{BrandID: lin.brand.ID})
	if err != nil {
		t.Fatalf("GenerateAngles: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created angles: got %d, want 2", len(created))
	}
	for _, a := range created {
		if a.Platform == domain.PlatformLinkedIn {
			t.Errorf("angle created for failed platform")
		}
	}

	// One error toast for the failed platform plus the success toast.
	toasts := events.PublishedOf(bus.EventShowToast)
	if len(toasts) != 2 {
		t.Fatalf("toasts: got %d, want 2", len(toasts))
	}
	first, ok := toasts[0].payload.(bus.Toast)
	if !ok {
		t.Fatalf("toast payload type: %T", toasts[0].payload)
	}
	if first.Type != domain.ToastError {
		t.Errorf("first toast type: got %q, want %q", first.Type, domain.ToastError)
	}
	if !strings.Contains(first.Message, "linkedin") {
		t.Errorf("error toast must name the failed platform, got %q", first.Message)
	}
	if last := toasts[1].payload.(bus.Toast); last.Type != domain.ToastSuccess {
		t.Errorf("last toast type: got %q, want success", last.Type)
	}
}

func TestGenerateAngles_AllPlatformsFail(t *testing.T) {
	t.Parallel()

	lin := newLineage(domain.PlatformTwitter)
	brands, _, _ := lin.mocks()

	gen := &generatorMock{
		GenerateAnglesFunc: func(_ context.Context, _ provider.AnglesRequest) ([]provider.AngleResult, error) {
			return nil, provider.ErrUnavailable
		},
	}
	angles := &angleRepoMock{}

	svc, _ := newTestService(t, testDeps{brands: brands, angles: angles, gen: gen})

	_, err := svc.GenerateAngles(lin.ctx(), GenerateAnglesInput{BrandID: lin.brand.ID})
	if !errors.Is(err, provider.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if angles.BatchCalls() != 0 {
		t.Errorf("expected no angle writes, got %d", angles.BatchCalls())
	}
}

func TestGenerateAngles_InsertFailurePersistsNothing(t *testing.T) {
	t.Parallel()

	lin := newLineage(domain.PlatformTwitter)
	brands, _, _ := lin.mocks()

	gen := &generatorMock{
		GenerateAnglesFunc: func(_ context.Context, req provider.AnglesRequest) ([]provider.AngleResult, error) {
			return []provider.AngleResult{{Header: string(req.Platform)}}, nil
		},
	}
	angles := &angleRepoMock{
		CreateBatchFunc: func(_ context.Context, _ []domain.ContentAngle) ([]domain.ContentAngle, error) {
			return nil, errors.New("insert failed")
		},
	}

	svc, events := newTestService(t, testDeps{brands: brands, angles: angles, gen: gen})

	_, err := svc.GenerateAngles(lin.ctx(), GenerateAnglesInput{BrandID: lin.brand.ID})
	if err == nil {
		t.Fatal("expected an error when the batch insert fails")
	}
	// The whole round is one insert; a failing round publishes no toasts.
	if toasts := events.PublishedOf(bus.EventShowToast); len(toasts) != 0 {
		t.Errorf("toasts after failed round: got %d, want 0", len(toasts))
	}
}

func TestGenerateAngles_InvalidInput(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, testDeps{})
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.GenerateAngles(ctx, GenerateAnglesInput{
		BrandID:   uuid.New(),
		Platforms: []domain.Platform{"myspace"},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = svc.GenerateAngles(context.Background(), GenerateAnglesInput{BrandID: uuid.New()})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestListAngles_CachedPerFilter(t *testing.T) {
	t.Parallel()

	lin := newLineage(domain.PlatformTwitter)
	brands, _, _ := lin.mocks()

	angles := &angleRepoMock{
		ListByBrandFunc: func(_ context.Context, _ uuid.UUID, platform *domain.Platform) ([]domain.ContentAngle, error) {
			if platform == nil {
				return []domain.ContentAngle{lin.angle, {ID: uuid.New(), BrandID: lin.brand.ID, Platform: domain.PlatformLinkedIn}}, nil
			}
			return []domain.ContentAngle{lin.angle}, nil
		},
	}

	svc, _ := newTestService(t, testDeps{brands: brands, angles: angles})
	ctx := lin.ctx()

	for range 3 {
		got, err := svc.ListAngles(ctx, ListAnglesInput{BrandID: lin.brand.ID})
		if err != nil {
			t.Fatalf("ListAngles: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("unfiltered angles: got %d, want 2", len(got))
		}
	}
	if angles.ListCalls() != 1 {
		t.Fatalf("repo loads after repeated unfiltered reads: got %d, want 1", angles.ListCalls())
	}

	platform := domain.PlatformTwitter
	got, err := svc.ListAngles(ctx, ListAnglesInput{BrandID: lin.brand.ID, Platform: &platform})
	if err != nil {
		t.Fatalf("ListAngles filtered: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("filtered angles: got %d, want 1", len(got))
	}
	// The filtered view misses the unfiltered cache entry and loads separately.
	if angles.ListCalls() != 2 {
		t.Fatalf("repo loads after filtered read: got %d, want 2", angles.ListCalls())
	}
}

func TestDeleteAngle_CascadeOrder(t *testing.T) {
	t.Parallel()

	lin := newLineage(domain.PlatformTwitter)
	brands, angles, ideas := lin.mocks()

	var order []string
	content := &contentRepoMock{
		DeleteByAngleFunc: func(_ context.Context, _ uuid.UUID) error {
			order = append(order, "content")
			return nil
		},
	}
	ideas.DeleteByAngleFunc = func(_ context.Context, _ uuid.UUID) error {
		order = append(order, "ideas")
		return nil
	}
	angles.DeleteFunc = func(_ context.Context, _ uuid.UUID) error {
		order = append(order, "angle")
		return nil
	}

	svc, _ := newTestService(t, testDeps{brands: brands, angles: angles, ideas: ideas, content: content})

	if err := svc.DeleteAngle(lin.ctx(), lin.angle.ID); err != nil {
		t.Fatalf("DeleteAngle: %v", err)
	}

	want := []string{"content", "ideas", "angle"}
	if len(order) != len(want) {
		t.Fatalf("cascade steps: got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("cascade order: got %v, want %v", order, want)
		}
	}
}

func TestDeleteAngle_ForeignAngleNotFound(t *testing.T) {
	t.Parallel()

	lin := newLineage(domain.PlatformTwitter)
	brands, angles, ideas := lin.mocks()

	cascadeRan := false
	content := &contentRepoMock{
		DeleteByAngleFunc: func(_ context.Context, _ uuid.UUID) error {
			cascadeRan = true
			return nil
		},
	}

	svc, _ := newTestService(t, testDeps{brands: brands, angles: angles, ideas: ideas, content: content})

	// Another user's context must not see the angle.
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	err := svc.DeleteAngle(ctx, lin.angle.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if cascadeRan {
		t.Error("cascade must not start for a foreign angle")
	}
}

func TestGenerateIdeas_StampsAnglePlatform(t *testing.T) {
	t.Parallel()

	lin := newLineage(domain.PlatformLinkedIn)
	brands, angles, ideas := lin.mocks()

	gen := &generatorMock{
		GenerateIdeasFunc: func(_ context.Context, req provider.IdeasRequest) ([]provider.IdeaResult, error) {
			if req.Platform != domain.PlatformLinkedIn {
				t.Errorf("request platform: got %q, want linkedin", req.Platform)
			}
			if req.Angle.Header != lin.angle.Header {
				t.Errorf("request angle header: got %q, want %q", req.Angle.Header, lin.angle.Header)
			}
			return []provider.IdeaResult{{Topic: "One"}, {Topic: "Two"}, {Topic: "Three"}}, nil
		},
	}
	ideas.CreateBatchFunc = func(_ context.Context, batch []domain.ContentIdea) ([]domain.ContentIdea, error) {
		out := make([]domain.ContentIdea, 0, len(batch))
		for _, i := range batch {
			if i.Platform != domain.PlatformLinkedIn {
				t.Errorf("idea platform: got %q, want linkedin", i.Platform)
			}
			if i.AngleID != lin.angle.ID {
				t.Errorf("idea angle: got %v, want %v", i.AngleID, lin.angle.ID)
			}
			i.ID = uuid.New()
			out = append(out, i)
		}
		return out, nil
	}

	svc, _ := newTestService(t, testDeps{brands: brands, angles: angles, ideas: ideas, gen: gen})

	created, err := svc.GenerateIdeas(lin.ctx(), lin.angle.ID)
	if err != nil {
		t.Fatalf("GenerateIdeas: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("created ideas: got %d, want 3", len(created))
	}
}

func TestGenerateIdeas_ProviderError(t *testing.T) {
	t.Parallel()

	lin := newLineage(domain.PlatformTwitter)
	brands, angles, ideas := lin.mocks()

	gen := &generatorMock{
		GenerateIdeasFunc: func(_ context.Context, _ provider.IdeasRequest) ([]provider.IdeaResult, error) {
			return nil, provider.ErrUnavailable
		},
	}
	ideas.CreateBatchFunc = func(_ context.Context, _ []domain.ContentIdea) ([]domain.ContentIdea, error) {
		t.Fatal("CreateBatch must not run when generation fails")
		return nil, nil
	}

	svc, _ := newTestService(t, testDeps{brands: brands, angles: angles, ideas: ideas, gen: gen})

	_, err := svc.GenerateIdeas(lin.ctx(), lin.angle.ID)
	if !errors.Is(err, provider.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestGenerateIdeas_EmptyResult(t *testing.T) {
	t.Parallel()

	lin := newLineage(domain.PlatformTwitter)
	brands, angles, ideas := lin.mocks()

	gen := &generatorMock{
		GenerateIdeasFunc: func(_ context.Context, _ provider.IdeasRequest) ([]provider.IdeaResult, error) {
			return []provider.IdeaResult{}, nil
		},
	}
	ideas.CreateBatchFunc = func(_ context.Context, _ []domain.ContentIdea) ([]domain.ContentIdea, error) {
		t.Fatal("CreateBatch must not run for an empty result")
		return nil, nil
	}

	svc, _ := newTestService(t, testDeps{brands: brands, angles: angles, ideas: ideas, gen: gen})

	_, err := svc.GenerateIdeas(lin.ctx(), lin.angle.ID)
	if !errors.Is(err, provider.ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
	// An empty result decoded fine; it must not be labeled a decode failure.
	if errors.Is(err, provider.ErrDecode) {
		t.Errorf("empty result misreported as a decode failure: %v", err)
	}
}

func TestListIdeas_JoinsGeneratedContent(t *testing.T) {
	t.Parallel()

	lin := newLineage(domain.PlatformTwitter)
	brands, angles, ideas := lin.mocks()

	ideaWithContent := lin.idea
	ideaWithout := domain.ContentIdea{ID: uuid.New(), AngleID: lin.angle.ID, Platform: lin.angle.Platform, Topic: "Bare"}

	ideas.ListByAngleFunc = func(_ context.Context, _ uuid.UUID) ([]domain.ContentIdea, error) {
		return []domain.ContentIdea{ideaWithContent, ideaWithout}, nil
	}
	content := &contentRepoMock{
		GetByIdeaIDsFunc: func(_ context.Context, ids []uuid.UUID) ([]domain.GeneratedContent, error) {
			if len(ids) != 2 {
				t.Errorf("batch ids: got %d, want 2", len(ids))
			}
			return []domain.GeneratedContent{{ID: uuid.New(), IdeaID: ideaWithContent.ID, Content: "post"}}, nil
		},
	}

	svc, _ := newTestService(t, testDeps{brands: brands, angles: angles, ideas: ideas, content: content})

	got, err := svc.ListIdeas(lin.ctx(), lin.angle.ID)
	if err != nil {
		t.Fatalf("ListIdeas: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ideas: got %d, want 2", len(got))
	}
	if !got[0].HasContent() {
		t.Error("first idea should have content")
	}
	if got[1].HasContent() {
		t.Error("second idea should have no content")
	}
	if got[1].Generated == nil {
		t.Error("Generated must be non-nil even when empty")
	}
}

func TestGenerateContent_UpsertInvalidateAndPublish(t *testing.T) {
	t.Parallel()

	lin := newLineage(domain.PlatformTwitter)
	brands, angles, ideas := lin.mocks()

	gen := &generatorMock{
		GenerateContentFunc: func(_ context.Context, req provider.ContentRequest) (*provider.ContentResult, error) {
			if req.Idea.Topic != lin.idea.Topic {
				t.Errorf("request topic: got %q, want %q", req.Idea.Topic, lin.idea.Topic)
			}
			return &provider.ContentResult{Content: "fresh post", ImageURL: "https://cdn.example.com/img.png"}, nil
		},
	}
	content := &contentRepoMock{
		UpsertFunc: func(_ context.Context, gc domain.GeneratedContent) (domain.GeneratedContent, error) {
			if gc.IdeaID != lin.idea.ID {
				t.Errorf("upsert idea: got %v, want %v", gc.IdeaID, lin.idea.ID)
			}
			if gc.ImageURL == nil || *gc.ImageURL != "https://cdn.example.com/img.png" {
				t.Errorf("upsert image: got %v", gc.ImageURL)
			}
			gc.ID = uuid.New()
			return gc, nil
		},
		GetByIdeaIDFunc: func(_ context.Context, _ uuid.UUID) ([]domain.GeneratedContent, error) {
			return []domain.GeneratedContent{{ID: uuid.New(), IdeaID: lin.idea.ID, Content: "stale post"}}, nil
		},
	}

	store := cache.NewStore()
	svc, events := newTestService(t, testDeps{
		brands: brands, angles: angles, ideas: ideas, content: content, gen: gen, store: store,
	})
	ctx := lin.ctx()

	// Warm the content cache so invalidation is observable.
	if _, err := svc.GetContent(ctx, lin.idea.ID); err != nil {
		t.Fatalf("GetContent warmup: %v", err)
	}

	saved, err := svc.GenerateContent(ctx, lin.idea.ID)
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if saved.Content != "fresh post" {
		t.Errorf("saved content: got %q", saved.Content)
	}

	published := events.PublishedOf(bus.EventContentGenerated)
	if len(published) != 1 {
		t.Fatalf("contentGenerated events: got %d, want 1", len(published))
	}
	payload, ok := published[0].payload.(bus.ContentGenerated)
	if !ok {
		t.Fatalf("payload type: %T", published[0].payload)
	}
	if payload.IdeaID != lin.idea.ID || payload.AngleID != lin.angle.ID || payload.BrandID != lin.brand.ID {
		t.Errorf("payload lineage mismatch: %+v", payload)
	}
	if payload.Content != "fresh post" {
		t.Errorf("payload content: got %q", payload.Content)
	}

	// The cached entry was staled, so the next read hits the repo again.
	before := content.UpsertCalls()
	if _, err := svc.GetContent(ctx, lin.idea.ID); err != nil {
		t.Fatalf("GetContent after generate: %v", err)
	}
	if content.UpsertCalls() != before {
		t.Errorf("read path must not upsert")
	}
}

func TestGenerateContent_FailureLeavesCacheAndPublishesNoEvent(t *testing.T) {
	t.Parallel()

	lin := newLineage(domain.PlatformTwitter)
	brands, angles, ideas := lin.mocks()

	loads := 0
	gen := &generatorMock{
		GenerateContentFunc: func(_ context.Context, _ provider.ContentRequest) (*provider.ContentResult, error) {
			return nil, provider.ErrUnavailable
		},
	}
	content := &contentRepoMock{
		GetByIdeaIDFunc: func(_ context.Context, _ uuid.UUID) ([]domain.GeneratedContent, error) {
			loads++
			return []domain.GeneratedContent{{ID: uuid.New(), IdeaID: lin.idea.ID, Content: "previous post"}}, nil
		},
	}

	svc, events := newTestService(t, testDeps{
		brands: brands, angles: angles, ideas: ideas, content: content, gen: gen,
	})
	ctx := lin.ctx()

	if _, err := svc.GetContent(ctx, lin.idea.ID); err != nil {
		t.Fatalf("GetContent warmup: %v", err)
	}

	_, err := svc.GenerateContent(ctx, lin.idea.ID)
	if !errors.Is(err, provider.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if content.UpsertCalls() != 0 {
		t.Errorf("failed generation must not write, got %d upserts", content.UpsertCalls())
	}
	if got := events.PublishedOf(bus.EventContentGenerated); len(got) != 0 {
		t.Errorf("failed generation must not publish contentGenerated")
	}
	if toasts := events.PublishedOf(bus.EventShowToast); len(toasts) != 1 {
		t.Errorf("toasts: got %d, want 1", len(toasts))
	}

	// Cache untouched: the previous result still serves without a reload.
	got, err := svc.GetContent(ctx, lin.idea.ID)
	if err != nil {
		t.Fatalf("GetContent after failure: %v", err)
	}
	if len(got) != 1 || got[0].Content != "previous post" {
		t.Fatalf("expected cached previous content, got %+v", got)
	}
	if loads != 1 {
		t.Errorf("repo loads: got %d, want 1", loads)
	}
}

func TestSaveDraft_UpdatesAndInvalidates(t *testing.T) {
	t.Parallel()

	lin := newLineage(domain.PlatformTwitter)
	brands, angles, ideas := lin.mocks()

	stored := "original"
	content := &contentRepoMock{
		UpdateContentFunc: func(_ context.Context, ideaID uuid.UUID, text string) (domain.GeneratedContent, error) {
			if ideaID != lin.idea.ID {
				t.Errorf("update idea: got %v, want %v", ideaID, lin.idea.ID)
			}
			stored = text
			return domain.GeneratedContent{ID: uuid.New(), IdeaID: ideaID, Content: text}, nil
		},
		GetByIdeaIDFunc: func(_ context.Context, _ uuid.UUID) ([]domain.GeneratedContent, error) {
			return []domain.GeneratedContent{{IdeaID: lin.idea.ID, Content: stored}}, nil
		},
	}

	svc, _ := newTestService(t, testDeps{brands: brands, angles: angles, ideas: ideas, content: content})
	ctx := lin.ctx()

	if _, err := svc.GetContent(ctx, lin.idea.ID); err != nil {
		t.Fatalf("GetContent warmup: %v", err)
	}

	saved, err := svc.SaveDraft(ctx, SaveDraftInput{IdeaID: lin.idea.ID, Content: "edited by hand"})
	if err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if saved.Content != "edited by hand" {
		t.Errorf("saved content: got %q", saved.Content)
	}

	got, err := svc.GetContent(ctx, lin.idea.ID)
	if err != nil {
		t.Fatalf("GetContent after save: %v", err)
	}
	if got[0].Content != "edited by hand" {
		t.Errorf("cache not staled: got %q", got[0].Content)
	}
}

func TestSaveDraft_MissingContentRow(t *testing.T) {
	t.Parallel()

	lin := newLineage(domain.PlatformTwitter)
	brands, angles, ideas := lin.mocks()

	content := &contentRepoMock{
		UpdateContentFunc: func(_ context.Context, _ uuid.UUID, _ string) (domain.GeneratedContent, error) {
			return domain.GeneratedContent{}, domain.ErrNotFound
		},
	}

	svc, _ := newTestService(t, testDeps{brands: brands, angles: angles, ideas: ideas, content: content})

	_, err := svc.SaveDraft(lin.ctx(), SaveDraftInput{IdeaID: lin.idea.ID, Content: "edit"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQueueDraft_CloseFlushesLatest(t *testing.T) {
	t.Parallel()

	lin := newLineage(domain.PlatformTwitter)
	brands, angles, ideas := lin.mocks()

	var written []string
	content := &contentRepoMock{
		UpdateContentFunc: func(_ context.Context, _ uuid.UUID, text string) (domain.GeneratedContent, error) {
			written = append(written, text)
			return domain.GeneratedContent{IdeaID: lin.idea.ID, Content: text}, nil
		},
	}

	svc, _ := newTestService(t, testDeps{brands: brands, angles: angles, ideas: ideas, content: content})
	ctx := lin.ctx()

	for _, text := range []string{"draft v1", "draft v2", "draft v3"} {
		if err := svc.QueueDraft(ctx, SaveDraftInput{IdeaID: lin.idea.ID, Content: text}); err != nil {
			t.Fatalf("QueueDraft: %v", err)
		}
	}

	// Close flushes pending drafts before any timer fires.
	svc.Close()

	if len(written) != 1 {
		t.Fatalf("writes: got %d, want 1 coalesced write", len(written))
	}
	if written[0] != "draft v3" {
		t.Errorf("flushed content: got %q, want latest draft", written[0])
	}
}

func TestQueueDraft_Unauthorized(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, testDeps{})

	err := svc.QueueDraft(context.Background(), SaveDraftInput{IdeaID: uuid.New(), Content: "x"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
