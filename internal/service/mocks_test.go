package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/brandscope/api/internal/domain"
)

type mockBrandRepo struct {
	mock.Mock
}

func (m *mockBrandRepo) Create(ctx context.Context, brand *domain.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *mockBrandRepo) GetByOwner(ctx context.Context, ownerID string) (*domain.Brand, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *mockBrandRepo) ExistsByOwner(ctx context.Context, ownerID string) (bool, error) {
	args := m.Called(ctx, ownerID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBrandRepo) Owns(ctx context.Context, brandID, ownerID string) (bool, error) {
	args := m.Called(ctx, brandID, ownerID)
	return args.Bool(0), args.Error(1)
}

type mockCompetitorRepo struct {
	mock.Mock
}

func (m *mockCompetitorRepo) Create(ctx context.Context, competitor *domain.Competitor) error {
	args := m.Called(ctx, competitor)
	return args.Error(0)
}

func (m *mockCompetitorRepo) GetByID(ctx context.Context, id string) (*domain.Competitor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Competitor), args.Error(1)
}

func (m *mockCompetitorRepo) ListByBrand(ctx context.Context, brandID string) ([]*domain.Competitor, error) {
	args := m.Called(ctx, brandID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Competitor), args.Error(1)
}

func (m *mockCompetitorRepo) ExistsByBrandAndHandle(ctx context.Context, brandID, handle string) (bool, error) {
	args := m.Called(ctx, brandID, handle)
	return args.Bool(0), args.Error(1)
}

func (m *mockCompetitorRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) BrandCreated(ctx context.Context, brand *domain.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *mockPublisher) CompetitorAdded(ctx context.Context, competitor *domain.Competitor) error {
	args := m.Called(ctx, competitor)
	return args.Error(0)
}

func (m *mockPublisher) CompetitorRemoved(ctx context.Context, competitor *domain.Competitor) error {
	args := m.Called(ctx, competitor)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
