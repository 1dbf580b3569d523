package content

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/bus"
	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/internal/provider"
)

var (
	_ brandRepo   = &brandRepoMock{}
	_ angleRepo   = &angleRepoMock{}
	_ ideaRepo    = &ideaRepoMock{}
	_ contentRepo = &contentRepoMock{}
	_ generator   = &generatorMock{}
	_ publisher   = &publisherMock{}
	_ txManager   = &txManagerMock{}
)

type brandRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, brandID uuid.UUID) (domain.Brand, error)
	TouchFunc   func(ctx context.Context, userID, brandID uuid.UUID) error
}

func (m *brandRepoMock) GetByID(ctx context.Context, userID, brandID uuid.UUID) (domain.Brand, error) {
	if m.GetByIDFunc == nil {
		panic("brandRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, userID, brandID)
}

func (m *brandRepoMock) Touch(ctx context.Context, userID, brandID uuid.UUID) error {
	if m.TouchFunc == nil {
		return nil
	}
	return m.TouchFunc(ctx, userID, brandID)
}

type angleRepoMock struct {
	CreateBatchFunc func(ctx context.Context, angles []domain.ContentAngle) ([]domain.ContentAngle, error)
	GetByIDFunc     func(ctx context.Context, angleID uuid.UUID) (domain.ContentAngle, error)
	ListByBrandFunc func(ctx context.Context, brandID uuid.UUID, platform *domain.Platform) ([]domain.ContentAngle, error)
	DeleteFunc      func(ctx context.Context, angleID uuid.UUID) error

	mu         sync.Mutex
	batchCalls int
	listCalls  int
}

func (m *angleRepoMock) CreateBatch(ctx context.Context, angles []domain.ContentAngle) ([]domain.ContentAngle, error) {
	if m.CreateBatchFunc == nil {
		panic("angleRepoMock.CreateBatchFunc is nil")
	}
	m.mu.Lock()
	m.batchCalls++
	m.mu.Unlock()
	return m.CreateBatchFunc(ctx, angles)
}

func (m *angleRepoMock) GetByID(ctx context.Context, angleID uuid.UUID) (domain.ContentAngle, error) {
	if m.GetByIDFunc == nil {
		panic("angleRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, angleID)
}

func (m *angleRepoMock) ListByBrand(ctx context.Context, brandID uuid.UUID, platform *domain.Platform) ([]domain.ContentAngle, error) {
	if m.ListByBrandFunc == nil {
		panic("angleRepoMock.ListByBrandFunc is nil")
	}
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()
	return m.ListByBrandFunc(ctx, brandID, platform)
}

func (m *angleRepoMock) Delete(ctx context.Context, angleID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("angleRepoMock.DeleteFunc is nil")
	}
	return m.DeleteFunc(ctx, angleID)
}

func (m *angleRepoMock) ListCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}

func (m *angleRepoMock) BatchCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.batchCalls
}

type ideaRepoMock struct {
	CreateBatchFunc   func(ctx context.Context, ideas []domain.ContentIdea) ([]domain.ContentIdea, error)
	GetByIDFunc       func(ctx context.Context, ideaID uuid.UUID) (domain.ContentIdea, error)
	ListByAngleFunc   func(ctx context.Context, angleID uuid.UUID) ([]domain.ContentIdea, error)
	DeleteByAngleFunc func(ctx context.Context, angleID uuid.UUID) error
}

func (m *ideaRepoMock) CreateBatch(ctx context.Context, ideas []domain.ContentIdea) ([]domain.ContentIdea, error) {
	if m.CreateBatchFunc == nil {
		panic("ideaRepoMock.CreateBatchFunc is nil")
	}
	return m.CreateBatchFunc(ctx, ideas)
}

func (m *ideaRepoMock) GetByID(ctx context.Context, ideaID uuid.UUID) (domain.ContentIdea, error) {
	if m.GetByIDFunc == nil {
		panic("ideaRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, ideaID)
}

func (m *ideaRepoMock) ListByAngle(ctx context.Context, angleID uuid.UUID) ([]domain.ContentIdea, error) {
	if m.ListByAngleFunc == nil {
		panic("ideaRepoMock.ListByAngleFunc is nil")
	}
	return m.ListByAngleFunc(ctx, angleID)
}

func (m *ideaRepoMock) DeleteByAngle(ctx context.Context, angleID uuid.UUID) error {
	if m.DeleteByAngleFunc == nil {
		panic("ideaRepoMock.DeleteByAngleFunc is nil")
	}
	return m.DeleteByAngleFunc(ctx, angleID)
}

type contentRepoMock struct {
	UpsertFunc        func(ctx context.Context, gc domain.GeneratedContent) (domain.GeneratedContent, error)
	GetByIdeaIDFunc   func(ctx context.Context, ideaID uuid.UUID) ([]domain.GeneratedContent, error)
	GetByIdeaIDsFunc  func(ctx context.Context, ideaIDs []uuid.UUID) ([]domain.GeneratedContent, error)
	UpdateContentFunc func(ctx context.Context, ideaID uuid.UUID, content string) (domain.GeneratedContent, error)
	DeleteByAngleFunc func(ctx context.Context, angleID uuid.UUID) error

	mu          sync.Mutex
	upsertCalls int
	updateCalls int
}

func (m *contentRepoMock) Upsert(ctx context.Context, gc domain.GeneratedContent) (domain.GeneratedContent, error) {
	if m.UpsertFunc == nil {
		panic("contentRepoMock.UpsertFunc is nil")
	}
	m.mu.Lock()
	m.upsertCalls++
	m.mu.Unlock()
	return m.UpsertFunc(ctx, gc)
}

func (m *contentRepoMock) GetByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]domain.GeneratedContent, error) {
	if m.GetByIdeaIDFunc == nil {
		panic("contentRepoMock.GetByIdeaIDFunc is nil")
	}
	return m.GetByIdeaIDFunc(ctx, ideaID)
}

func (m *contentRepoMock) GetByIdeaIDs(ctx context.Context, ideaIDs []uuid.UUID) ([]domain.GeneratedContent, error) {
	if m.GetByIdeaIDsFunc == nil {
		panic("contentRepoMock.GetByIdeaIDsFunc is nil")
	}
	return m.GetByIdeaIDsFunc(ctx, ideaIDs)
}

func (m *contentRepoMock) UpdateContent(ctx context.Context, ideaID uuid.UUID, content string) (domain.GeneratedContent, error) {
	if m.UpdateContentFunc == nil {
		panic("contentRepoMock.UpdateContentFunc is nil")
	}
	m.mu.Lock()
	m.updateCalls++
	m.mu.Unlock()
	return m.UpdateContentFunc(ctx, ideaID, content)
}

func (m *contentRepoMock) DeleteByAngle(ctx context.Context, angleID uuid.UUID) error {
	if m.DeleteByAngleFunc == nil {
		panic("contentRepoMock.DeleteByAngleFunc is nil")
	}
	return m.DeleteByAngleFunc(ctx, angleID)
}

func (m *contentRepoMock) UpsertCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.upsertCalls
}

func (m *contentRepoMock) UpdateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateCalls
}

type generatorMock struct {
	GenerateAnglesFunc  func(ctx context.Context, req provider.AnglesRequest) ([]provider.AngleResult, error)
	GenerateIdeasFunc   func(ctx context.Context, req provider.IdeasRequest) ([]provider.IdeaResult, error)
	GenerateContentFunc func(ctx context.Context, req provider.ContentRequest) (*provider.ContentResult, error)
}

func (m *generatorMock) GenerateAngles(ctx context.Context, req provider.AnglesRequest) ([]provider.AngleResult, error) {
	if m.GenerateAnglesFunc == nil {
		panic("generatorMock.GenerateAnglesFunc is nil")
	}
	return m.GenerateAnglesFunc(ctx, req)
}

func (m *generatorMock) GenerateIdeas(ctx context.Context, req provider.IdeasRequest) ([]provider.IdeaResult, error) {
	if m.GenerateIdeasFunc == nil {
		panic("generatorMock.GenerateIdeasFunc is nil")
	}
	return m.GenerateIdeasFunc(ctx, req)
}

func (m *generatorMock) GenerateContent(ctx context.Context, req provider.ContentRequest) (*provider.ContentResult, error) {
	if m.GenerateContentFunc == nil {
		panic("generatorMock.GenerateContentFunc is nil")
	}
	return m.GenerateContentFunc(ctx, req)
}

// publisherMock records published events for assertion.
type publisherMock struct {
	mu     sync.Mutex
	events []publishedEvent
}

type publishedEvent struct {
	event   bus.Event
	payload any
}

func (m *publisherMock) Publish(event bus.Event, payload any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, publishedEvent{event: event, payload: payload})
}

func (m *publisherMock) Published() []publishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]publishedEvent, len(m.events))
	copy(out, m.events)
	return out
}

func (m *publisherMock) PublishedOf(event bus.Event) []publishedEvent {
	var out []publishedEvent
	for _, e := range m.Published() {
		if e.event == event {
			out = append(out, e)
		}
	}
	return out
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc is nil")
	}
	return m.RunInTxFunc(ctx, fn)
}
