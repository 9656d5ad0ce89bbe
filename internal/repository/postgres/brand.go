package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/brandscope/api/internal/domain"
	apperrors "github.com/brandscope/api/pkg/errors"
)

// BrandRepository implements repository.BrandRepository backed by PostgreSQL.
type BrandRepository struct {
	db DB
}

// NewBrandRepository creates a new brand repository.
func NewBrandRepository(db DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// Create inserts a new brand. The UNIQUE constraint on owner_id enforces the
// one-brand-per-identity rule at the storage layer.
func (r *BrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	query := `
		INSERT INTO brands (id, owner_id, brand_name, instagram_handle, industry, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		brand.ID,
		brand.OwnerID,
		brand.BrandName,
		brand.InstagramHandle,
		brand.Industry,
		brand.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("brand", "owner_id", brand.OwnerID)
		}
		return apperrors.Wrap(err, "create brand")
	}

	return nil
}

// GetByOwner fetches the brand owned by ownerID. Returns ErrNotFound when the
// identity has no brand.
func (r *BrandRepository) GetByOwner(ctx context.Context, ownerID string) (*domain.Brand, error) {
	query := `
		SELECT id, owner_id, brand_name, instagram_handle, industry, created_at
		FROM brands
		WHERE owner_id = $1
	`

	brand := &domain.Brand{}
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&brand.ID,
		&brand.OwnerID,
		&brand.BrandName,
		&brand.InstagramHandle,
		&brand.Industry,
		&brand.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("brand", ownerID)
		}
		return nil, apperrors.Wrap(err, "get brand by owner")
	}

	return brand, nil
}

// ExistsByOwner reports whether the identity already has a brand.
func (r *BrandRepository) ExistsByOwner(ctx context.Context, ownerID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM brands WHERE owner_id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "check brand existence")
	}

	return exists, nil
}

// Owns reports whether brandID exists and belongs to ownerID. A missing brand
// and a brand owned by someone else both report false.
func (r *BrandRepository) Owns(ctx context.Context, brandID, ownerID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM brands WHERE id = $1 AND owner_id = $2)`

	var owns bool
	if err := r.db.QueryRow(ctx, query, brandID, ownerID).Scan(&owns); err != nil {
		return false, apperrors.Wrap(err, fmt.Sprintf("check ownership of brand %s", brandID))
	}

	return owns, nil
}
