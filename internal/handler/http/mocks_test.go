package http

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/brandscope/api/internal/domain"
	"github.com/brandscope/api/internal/service"
	apperrors "github.com/brandscope/api/pkg/errors"
)

type mockBrandService struct {
	mock.Mock
}

func (m *mockBrandService) GetBrand(ctx context.Context, ownerID string) (*domain.Brand, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *mockBrandService) CreateBrand(ctx context.Context, ownerID string, input service.CreateBrandInput) (*domain.Brand, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

type mockCompetitorService struct {
	mock.Mock
}

func (m *mockCompetitorService) AddCompetitor(ctx context.Context, ownerID string, input service.AddCompetitorInput) (*domain.Competitor, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Competitor), args.Error(1)
}

func (m *mockCompetitorService) ListCompetitors(ctx context.Context, ownerID string) ([]*domain.Competitor, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Competitor), args.Error(1)
}

func (m *mockCompetitorService) DeleteCompetitor(ctx context.Context, ownerID, competitorID string) error {
	args := m.Called(ctx, ownerID, competitorID)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memBrandRepo and memCompetitorRepo are in-memory repository implementations
// for exercising the full handler-service stack.
type memBrandRepo struct {
	mu     sync.Mutex
	brands map[string]*domain.Brand
}

func newMemBrandRepo() *memBrandRepo {
	return &memBrandRepo{brands: make(map[string]*domain.Brand)}
}

func (r *memBrandRepo) Create(_ context.Context, brand *domain.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.brands {
		if b.OwnerID == brand.OwnerID {
			return apperrors.AlreadyExists("brand", "owner_id", brand.OwnerID)
		}
	}
	r.brands[brand.ID] = brand
	return nil
}

func (r *memBrandRepo) GetByOwner(_ context.Context, ownerID string) (*domain.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.brands {
		if b.OwnerID == ownerID {
			return b, nil
		}
	}
	return nil, apperrors.NotFound("brand", ownerID)
}

func (r *memBrandRepo) ExistsByOwner(_ context.Context, ownerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.brands {
		if b.OwnerID == ownerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memBrandRepo) Owns(_ context.Context, brandID, ownerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.brands[brandID]
	return ok && b.OwnerID == ownerID, nil
}

type memCompetitorRepo struct {
	mu          sync.Mutex
	competitors map[string]*domain.Competitor
}

func newMemCompetitorRepo() *memCompetitorRepo {
	return &memCompetitorRepo{competitors: make(map[string]*domain.Competitor)}
}

func (r *memCompetitorRepo) Create(_ context.Context, competitor *domain.Competitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.competitors {
		if c.BrandID == competitor.BrandID && c.Handle == competitor.Handle {
			return apperrors.AlreadyExists("competitor", "handle", competitor.Handle)
		}
	}
	r.competitors[competitor.ID] = competitor
	return nil
}

func (r *memCompetitorRepo) GetByID(_ context.Context, id string) (*domain.Competitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.competitors[id]
	if !ok {
		return nil, apperrors.NotFound("competitor", id)
	}
	return c, nil
}

func (r *memCompetitorRepo) ListByBrand(_ context.Context, brandID string) ([]*domain.Competitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Competitor, 0)
	for _, c := range r.competitors {
		if c.BrandID == brandID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AddedAt.After(out[j].AddedAt) })
	return out, nil
}

func (r *memCompetitorRepo) ExistsByBrandAndHandle(_ context.Context, brandID, handle string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.competitors {
		if c.BrandID == brandID && c.Handle == handle {
			return true, nil
		}
	}
	return false, nil
}

func (r *memCompetitorRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.competitors[id]; !ok {
		return apperrors.NotFound("competitor", id)
	}
	delete(r.competitors, id)
	return nil
}
