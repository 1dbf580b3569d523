package brand

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mkravets/contentangle-backend/internal/domain"
	"github.com/mkravets/contentangle-backend/internal/provider"
)

var (
	_ brandRepo   = &brandRepoMock{}
	_ angleRepo   = &angleRepoMock{}
	_ ideaRepo    = &ideaRepoMock{}
	_ contentRepo = &contentRepoMock{}
	_ treeLoader  = &treeLoaderMock{}
	_ generator   = &generatorMock{}
	_ txManager   = &txManagerMock{}
)

type brandRepoMock struct {
	CreateFunc  func(ctx context.Context, brand domain.Brand) (domain.Brand, error)
	GetByIDFunc func(ctx context.Context, userID, brandID uuid.UUID) (domain.Brand, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.Brand, error)
	UpdateFunc  func(ctx context.Context, userID, brandID uuid.UUID, patch domain.BrandPatch) (domain.Brand, error)
	DeleteFunc  func(ctx context.Context, userID, brandID uuid.UUID) error

	mu          sync.Mutex
	createCalls int
	deleteCalls int
}

func (m *brandRepoMock) Create(ctx context.Context, brand domain.Brand) (domain.Brand, error) {
	if m.CreateFunc == nil {
		panic("brandRepoMock.CreateFunc is nil")
	}
	m.mu.Lock()
	m.createCalls++
	m.mu.Unlock()
	return m.CreateFunc(ctx, brand)
}

func (m *brandRepoMock) GetByID(ctx context.Context, userID, brandID uuid.UUID) (domain.Brand, error) {
	if m.GetByIDFunc == nil {
		panic("brandRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, userID, brandID)
}

func (m *brandRepoMock) List(ctx context.Context, userID uuid.UUID) ([]domain.Brand, error) {
	if m.ListFunc == nil {
		panic("brandRepoMock.ListFunc is nil")
	}
	return m.ListFunc(ctx, userID)
}

func (m *brandRepoMock) Update(ctx context.Context, userID, brandID uuid.UUID, patch domain.BrandPatch) (domain.Brand, error) {
	if m.UpdateFunc == nil {
		panic("brandRepoMock.UpdateFunc is nil")
	}
	return m.UpdateFunc(ctx, userID, brandID, patch)
}

func (m *brandRepoMock) Delete(ctx context.Context, userID, brandID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("brandRepoMock.DeleteFunc is nil")
	}
	m.mu.Lock()
	m.deleteCalls++
	m.mu.Unlock()
	return m.DeleteFunc(ctx, userID, brandID)
}

func (m *brandRepoMock) DeleteCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteCalls
}

type angleRepoMock struct {
	DeleteByBrandFunc func(ctx context.Context, brandID uuid.UUID) error
}

func (m *angleRepoMock) DeleteByBrand(ctx context.Context, brandID uuid.UUID) error {
	if m.DeleteByBrandFunc == nil {
		panic("angleRepoMock.DeleteByBrandFunc is nil")
	}
	return m.DeleteByBrandFunc(ctx, brandID)
}

type ideaRepoMock struct {
	DeleteByBrandFunc func(ctx context.Context, brandID uuid.UUID) error
}

func (m *ideaRepoMock) DeleteByBrand(ctx context.Context, brandID uuid.UUID) error {
	if m.DeleteByBrandFunc == nil {
		panic("ideaRepoMock.DeleteByBrandFunc is nil")
	}
	return m.DeleteByBrandFunc(ctx, brandID)
}

type contentRepoMock struct {
	DeleteByBrandFunc func(ctx context.Context, brandID uuid.UUID) error
}

func (m *contentRepoMock) DeleteByBrand(ctx context.Context, brandID uuid.UUID) error {
	if m.DeleteByBrandFunc == nil {
		panic("contentRepoMock.DeleteByBrandFunc is nil")
	}
	return m.DeleteByBrandFunc(ctx, brandID)
}

type treeLoaderMock struct {
	LoadUserTreeFunc func(ctx context.Context, userID uuid.UUID) ([]domain.BrandContent, error)

	mu        sync.Mutex
	loadCalls int
}

func (m *treeLoaderMock) LoadUserTree(ctx context.Context, userID uuid.UUID) ([]domain.BrandContent, error) {
	if m.LoadUserTreeFunc == nil {
		panic("treeLoaderMock.LoadUserTreeFunc is nil")
	}
	m.mu.Lock()
	m.loadCalls++
	m.mu.Unlock()
	return m.LoadUserTreeFunc(ctx, userID)
}

func (m *treeLoaderMock) LoadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadCalls
}

type generatorMock struct {
	AutofillFunc func(ctx context.Context, req provider.AutofillRequest) (*provider.AutofillResult, error)
}

func (m *generatorMock) Autofill(ctx context.Context, req provider.AutofillRequest) (*provider.AutofillResult, error) {
	if m.AutofillFunc == nil {
		panic("generatorMock.AutofillFunc is nil")
	}
	return m.AutofillFunc(ctx, req)
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
