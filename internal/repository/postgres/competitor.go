package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/brandscope/api/internal/domain"
	apperrors "github.com/brandscope/api/pkg/errors"
)

// CompetitorRepository implements repository.CompetitorRepository backed by
// PostgreSQL.
type CompetitorRepository struct {
	db DB
}

// NewCompetitorRepository creates a new competitor repository.
func NewCompetitorRepository(db DB) *CompetitorRepository {
	return &CompetitorRepository{db: db}
}

// Create inserts a new competitor. The UNIQUE constraint on (brand_id, handle)
// enforces per-brand handle uniqueness at the storage layer.
func (r *CompetitorRepository) Create(ctx context.Context, competitor *domain.Competitor) error {
	query := `
		INSERT INTO competitors (id, brand_id, handle, platform, added_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		competitor.ID,
		competitor.BrandID,
		competitor.Handle,
		competitor.Platform,
		competitor.AddedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("competitor", "handle", competitor.Handle)
		}
		return apperrors.Wrap(err, "create competitor")
	}

	return nil
}

// GetByID fetches a competitor by its ID.
func (r *CompetitorRepository) GetByID(ctx context.Context, id string) (*domain.Competitor, error) {
	query := `
		SELECT id, brand_id, handle, platform, added_at
		FROM competitors
		WHERE id = $1
	`

	competitor := &domain.Competitor{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&competitor.ID,
		&competitor.BrandID,
		&competitor.Handle,
		&competitor.Platform,
		&competitor.AddedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("competitor", id)
		}
		return nil, apperrors.Wrap(err, "get competitor")
	}

	return competitor, nil
}

// ListByBrand returns all competitors for a brand, most recently added first.
func (r *CompetitorRepository) ListByBrand(ctx context.Context, brandID string) ([]*domain.Competitor, error) {
	query := `
		SELECT id, brand_id, handle, platform, added_at
		FROM competitors
		WHERE brand_id = $1
		ORDER BY added_at DESC
	`

	rows, err := r.db.Query(ctx, query, brandID)
	if err != nil {
		return nil, apperrors.Wrap(err, "list competitors")
	}
	defer rows.Close()

	competitors := make([]*domain.Competitor, 0)
	for rows.Next() {
		competitor := &domain.Competitor{}
		if err := rows.Scan(
			&competitor.ID,
			&competitor.BrandID,
			&competitor.Handle,
			&competitor.Platform,
			&competitor.AddedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "scan competitor")
		}
		competitors = append(competitors, competitor)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "iterate competitors")
	}

	return competitors, nil
}

// ExistsByBrandAndHandle reports whether the brand already tracks the handle.
func (r *CompetitorRepository) ExistsByBrandAndHandle(ctx context.Context, brandID, handle string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM competitors WHERE brand_id = $1 AND handle = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, brandID, handle).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "check competitor existence")
	}

	return exists, nil
}

// Delete removes a competitor by ID. Returns ErrNotFound when no row matched.
func (r *CompetitorRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM competitors WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "delete competitor")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("competitor", id)
	}

	return nil
}
