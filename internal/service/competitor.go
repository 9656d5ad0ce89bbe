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

// AddCompetitorInput carries the fields for tracking a competitor.
type AddCompetitorInput struct {
	BrandID  string
	Handle   string
	Platform string
}

// CompetitorService implements competitor tracking against a brand. Every
// operation is authorized against brand ownership before touching competitor
// rows.
type CompetitorService struct {
	competitors repository.CompetitorRepository
	brands      repository.BrandRepository
	publisher   event.Publisher
	logger      *slog.Logger
}

// NewCompetitorService creates a new competitor service.
func NewCompetitorService(
	competitors repository.CompetitorRepository,
	brands repository.BrandRepository,
	publisher event.Publisher,
	logger *slog.Logger,
) *CompetitorService {
	return &CompetitorService{
		competitors: competitors,
		brands:      brands,
		publisher:   publisher,
		logger:      logger,
	}
}

// AddCompetitor tracks a new competitor handle against the identity's brand.
func (s *CompetitorService) AddCompetitor(ctx context.Context, ownerID string, input AddCompetitorInput) (*domain.Competitor, error) {
	if strings.TrimSpace(input.BrandID) == "" {
		return nil, apperrors.InvalidInput("brand id is required")
	}
	if strings.TrimSpace(input.Handle) == "" {
		return nil, apperrors.InvalidInput("handle is required")
	}

	owns, err := s.brands.Owns(ctx, input.BrandID, ownerID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, apperrors.Forbidden("brand not found or not owned by you")
	}

	normalized := handle.Normalize(input.Handle)
	if !handle.IsValid(normalized) {
		return nil, apperrors.InvalidInput("handle must be 1-30 letters, digits, underscores or periods")
	}

	exists, err := s.competitors.ExistsByBrandAndHandle(ctx, input.BrandID, normalized)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.AlreadyExists("competitor", "handle", normalized)
	}

	platform := strings.TrimSpace(input.Platform)
	if platform == "" {
		platform = domain.DefaultPlatform
	}

	competitor := &domain.Competitor{
		ID:       uuid.NewString(),
		BrandID:  input.BrandID,
		Handle:   normalized,
		Platform: platform,
		AddedAt:  time.Now().UTC(),
	}

	if err := s.competitors.Create(ctx, competitor); err != nil {
		return nil, err
	}

	if err := s.publisher.CompetitorAdded(ctx, competitor); err != nil {
		s.logger.WarnContext(ctx, "failed to publish competitor.added event",
			slog.String("competitor_id", competitor.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "competitor added",
		slog.String("competitor_id", competitor.ID),
		slog.String("brand_id", competitor.BrandID),
		slog.String("handle", competitor.Handle),
	)

	return competitor, nil
}

// ListCompetitors returns the identity's tracked competitors, most recently
// added first. An identity without a brand gets an empty list.
func (s *CompetitorService) ListCompetitors(ctx context.Context, ownerID string) ([]*domain.Competitor, error) {
	brand, err := s.brands.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []*domain.Competitor{}, nil
		}
		return nil, err
	}

	return s.competitors.ListByBrand(ctx, brand.ID)
}

// DeleteCompetitor removes a tracked competitor after verifying the identity
// owns the brand it belongs to.
func (s *CompetitorService) DeleteCompetitor(ctx context.Context, ownerID, competitorID string) error {
	competitor, err := s.competitors.GetByID(ctx, competitorID)
	if err != nil {
		return err
	}

	owns, err := s.brands.Owns(ctx, competitor.BrandID, ownerID)
	if err != nil {
		return err
	}
	if !owns {
		return apperrors.Forbidden("competitor does not belong to your brand")
	}

	if err := s.competitors.Delete(ctx, competitorID); err != nil {
		return err
	}

	if err := s.publisher.CompetitorRemoved(ctx, competitor); err != nil {
		s.logger.WarnContext(ctx, "failed to publish competitor.removed event",
			slog.String("competitor_id", competitor.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "competitor removed",
		slog.String("competitor_id", competitor.ID),
		slog.String("brand_id", competitor.BrandID),
	)

	return nil
}
