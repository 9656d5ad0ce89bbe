package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/brandscope/api/internal/domain"
	"github.com/brandscope/api/internal/service"
	apperrors "github.com/brandscope/api/pkg/errors"
	"github.com/brandscope/api/pkg/middleware"
	"github.com/brandscope/api/pkg/validator"
)

// competitorService is the service surface the competitor handler depends on.
type competitorService interface {
	AddCompetitor(ctx context.Context, ownerID string, input service.AddCompetitorInput) (*domain.Competitor, error)
	ListCompetitors(ctx context.Context, ownerID string) ([]*domain.Competitor, error)
	DeleteCompetitor(ctx context.Context, ownerID, competitorID string) error
}

// CompetitorHandler serves the competitor resource endpoints.
type CompetitorHandler struct {
	service competitorService
	logger  *slog.Logger
}

// NewCompetitorHandler creates a new competitor handler.
func NewCompetitorHandler(service competitorService, logger *slog.Logger) *CompetitorHandler {
	return &CompetitorHandler{service: service, logger: logger}
}

type addCompetitorRequest struct {
	BrandID  string `json:"brand_id" validate:"required,uuid"`
	Handle   string `json:"handle" validate:"required"`
	Platform string `json:"platform"`
}

// List returns the caller's tracked competitors, most recently added first.
func (h *CompetitorHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.IdentityIDFromContext(r.Context())

	competitors, err := h.service.ListCompetitors(r.Context(), ownerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list competitors", slog.String("error", err.Error()))
		writeAppError(w, err)
		return
	}

	writeData(w, http.StatusOK, map[string]any{"competitors": competitors})
}

// Add tracks a new competitor against the caller's brand.
func (h *CompetitorHandler) Add(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.IdentityIDFromContext(r.Context())

	var req addCompetitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAppError(w, apperrors.InvalidInput("invalid request body"))
		return
	}

	if err := validator.Validate(req); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		writeAppError(w, apperrors.InvalidInput(err.Error()))
		return
	}

	competitor, err := h.service.AddCompetitor(r.Context(), ownerID, service.AddCompetitorInput{
		BrandID:  req.BrandID,
		Handle:   req.Handle,
		Platform: req.Platform,
	})
	if err != nil {
		if apperrors.HTTPStatus(err) == http.StatusInternalServerError {
			h.logger.ErrorContext(r.Context(), "failed to add competitor", slog.String("error", err.Error()))
		}
		writeAppError(w, err)
		return
	}

	writeData(w, http.StatusCreated, map[string]any{"competitor": competitor})
}

// Delete removes a tracked competitor owned by the caller.
func (h *CompetitorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.IdentityIDFromContext(r.Context())

	// A malformed id can never name an existing competitor, so it reports
	// the same way as a missing one.
	competitorID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(competitorID); err != nil {
		writeAppError(w, apperrors.NotFound("competitor", competitorID))
		return
	}

	if err := h.service.DeleteCompetitor(r.Context(), ownerID, competitorID); err != nil {
		if apperrors.HTTPStatus(err) == http.StatusInternalServerError {
			h.logger.ErrorContext(r.Context(), "failed to delete competitor", slog.String("error", err.Error()))
		}
		writeAppError(w, err)
		return
	}

	writeData(w, http.StatusOK, map[string]any{"id": competitorID, "status": "deleted"})
}
