package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/brandscope/api/internal/domain"
	"github.com/brandscope/api/internal/service"
	apperrors "github.com/brandscope/api/pkg/errors"
	"github.com/brandscope/api/pkg/middleware"
	"github.com/brandscope/api/pkg/validator"
)

// brandService is the service surface the brand handler depends on.
type brandService interface {
	GetBrand(ctx context.Context, ownerID string) (*domain.Brand, error)
	CreateBrand(ctx context.Context, ownerID string, input service.CreateBrandInput) (*domain.Brand, error)
}

// BrandHandler serves the brand resource endpoints.
type BrandHandler struct {
	service brandService
	logger  *slog.Logger
}

// NewBrandHandler creates a new brand handler.
func NewBrandHandler(service brandService, logger *slog.Logger) *BrandHandler {
	return &BrandHandler{service: service, logger: logger}
}

type createBrandRequest struct {
	BrandName       string `json:"brand_name" validate:"required,min=2,max=100"`
	InstagramHandle string `json:"instagram_handle"`
	Industry        string `json:"industry" validate:"required,oneof=food restaurant cafe cpg"`
}

// Get returns the caller's brand, or a null brand when none is registered.
func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.IdentityIDFromContext(r.Context())

	brand, err := h.service.GetBrand(r.Context(), ownerID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to get brand", slog.String("error", err.Error()))
		writeAppError(w, err)
		return
	}

	writeData(w, http.StatusOK, map[string]any{"brand": brand})
}

// Create registers a brand for the caller.
func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.IdentityIDFromContext(r.Context())

	var req createBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAppError(w, apperrors.InvalidInput("invalid request body"))
		return
	}

	// Trim before validating so the length tags see the name the service
	// will store.
	req.BrandName = strings.TrimSpace(req.BrandName)

	if err := validator.Validate(req); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		writeAppError(w, apperrors.InvalidInput(err.Error()))
		return
	}

	brand, err := h.service.CreateBrand(r.Context(), ownerID, service.CreateBrandInput{
		BrandName:       req.BrandName,
		InstagramHandle: req.InstagramHandle,
		Industry:        req.Industry,
	})
	if err != nil {
		if apperrors.HTTPStatus(err) == http.StatusInternalServerError {
			h.logger.ErrorContext(r.Context(), "failed to create brand", slog.String("error", err.Error()))
		}
		writeAppError(w, err)
		return
	}

	writeData(w, http.StatusCreated, map[string]any{"brand": brand})
}
