package repository

import (
	"context"

	"github.com/brandscope/api/internal/domain"
)

// BrandRepository defines data access for brands. It is the authority on
// brand ownership.
type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByOwner(ctx context.Context, ownerID string) (*domain.Brand, error)
	ExistsByOwner(ctx context.Context, ownerID string) (bool, error)
	// Owns reports whether the given brand exists and belongs to ownerID.
	Owns(ctx context.Context, brandID, ownerID string) (bool, error)
}

// CompetitorRepository defines data access for competitors tracked against
// a brand.
type CompetitorRepository interface {
	Create(ctx context.Context, competitor *domain.Competitor) error
	GetByID(ctx context.Context, id string) (*domain.Competitor, error)
	ListByBrand(ctx context.Context, brandID string) ([]*domain.Competitor, error)
	ExistsByBrandAndHandle(ctx context.Context, brandID, handle string) (bool, error)
	Delete(ctx context.Context, id string) error
}
