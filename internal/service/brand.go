package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brandscope/api/internal/domain"
	"github.com/brandscope/api/internal/event"
	"github.com/brandscope/api/internal/repository"
	apperrors "github.com/brandscope/api/pkg/errors"
	"github.com/brandscope/api/pkg/handle"
)

// CreateBrandInput carries the fields for registering a brand.
type CreateBrandInput struct {
	BrandName       string
	InstagramHandle string
	Industry        string
}

// BrandService implements brand registration and lookup.
type BrandService struct {
	brands    repository.BrandRepository
	publisher event.Publisher
	logger    *slog.Logger
}

// NewBrandService creates a new brand service.
func NewBrandService(brands repository.BrandRepository, publisher event.Publisher, logger *slog.Logger) *BrandService {
	return &BrandService{
		brands:    brands,
		publisher: publisher,
		logger:    logger,
	}
}

// GetBrand returns the identity's brand, or nil when none exists. Absence is
// not an error.
func (s *BrandService) GetBrand(ctx context.Context, ownerID string) (*domain.Brand, error) {
	brand, err := s.brands.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return brand, nil
}

// CreateBrand registers a brand for the identity. An identity can hold at
// most one brand.
func (s *BrandService) CreateBrand(ctx context.Context, ownerID string, input CreateBrandInput) (*domain.Brand, error) {
	name, err := domain.ValidateBrandName(input.BrandName)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateIndustry(input.Industry); err != nil {
		return nil, err
	}

	exists, err := s.brands.ExistsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.AlreadyExists("brand", "owner_id", ownerID)
	}

	var instagramHandle *string
	if trimmed := strings.TrimSpace(input.InstagramHandle); trimmed != "" {
		normalized := handle.Normalize(trimmed)
		instagramHandle = &normalized
	}

	brand := &domain.Brand{
		ID:              uuid.NewString(),
		OwnerID:         ownerID,
		BrandName:       name,
		InstagramHandle: instagramHandle,
		Industry:        input.Industry,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.brands.Create(ctx, brand); err != nil {
		return nil, err
	}

	if err := s.publisher.BrandCreated(ctx, brand); err != nil {
		s.logger.WarnContext(ctx, "failed to publish brand.created event",
			slog.String("brand_id", brand.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "brand created",
		slog.String("brand_id", brand.ID),
		slog.String("industry", brand.Industry),
	)

	return brand, nil
}
