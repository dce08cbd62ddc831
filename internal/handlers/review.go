package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"facility-finder/internal/models"
	"facility-finder/internal/services"
	"facility-finder/internal/utils"
	"facility-finder/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewStore is the persistence used by the review and suggestion endpoints.
type ReviewStore interface {
	CreateReview(ctx context.Context, facilityID uuid.UUID, req models.CreateReviewRequest) (*models.Review, error)
	CreateSuggestion(ctx context.Context, req models.CreateSuggestionRequest) (*models.Suggestion, error)
	ListReviews(ctx context.Context, status string, limit, offset int) ([]models.Review, error)
	ListSuggestions(ctx context.Context, status string, limit, offset int) ([]models.Suggestion, error)
	UpdateReviewStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateSuggestionStatus(ctx context.Context, id uuid.UUID, status string) error
}

type ReviewHandler struct {
	service  ReviewStore
	cache    CacheInvalidator
	validate *validator.Validate
	logr     *zap.Logger
}

// NewReviewHandler builds the review handler. cache may be nil; when set it is
// refreshed after moderation changes a facility's rating.
func NewReviewHandler(svc ReviewStore, cache CacheInvalidator, logr *zap.Logger) *ReviewHandler {
	return &ReviewHandler{service: svc, cache: cache, validate: validation.New(), logr: logr}
}

type statusRequest struct {
	Status string `json:"status"`
}

// CreateReview handles POST /api/locations/{id}/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Location not found")
		return
	}

	var req models.CreateReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logr.Warn("failed to decode review", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Author = strings.TrimSpace(req.Author)
	req.Comment = strings.TrimSpace(req.Comment)
	if errs := validation.ValidateStruct(h.validate, req); len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	review, err := h.service.CreateReview(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrFacilityNotFound) {
			writeError(w, http.StatusNotFound, "Location not found")
			return
		}
		h.logr.Error("failed to create review", zap.Error(err), zap.String("facility_id", id.String()))
		writeError(w, http.StatusInternalServerError, "Failed to submit review")
		return
	}
	writeData(w, http.StatusCreated, review)
}

// CreateSuggestion handles POST /api/suggestions
func (h *ReviewHandler) CreateSuggestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSuggestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logr.Warn("failed to decode suggestion", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.FacilityName = strings.TrimSpace(req.FacilityName)
	req.PostalCode = strings.TrimSpace(req.PostalCode)
	if errs := validation.ValidateStruct(h.validate, req); len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	suggestion, err := h.service.CreateSuggestion(r.Context(), req)
	if err != nil {
		h.logr.Error("failed to create suggestion", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to submit suggestion")
		return
	}
	writeData(w, http.StatusCreated, suggestion)
}

func pageWindow(r *http.Request) (limit, offset int, ok bool) {
	q := r.URL.Query()
	limit, err := utils.QueryInt(q, "limit", 50)
	if err != nil || limit < 1 || limit > 200 {
		return 0, 0, false
	}
	offset, err = utils.QueryInt(q, "offset", 0)
	if err != nil || offset < 0 {
		return 0, 0, false
	}
	return limit, offset, true
}

// ListReviews handles GET /api/admin/reviews?status=&limit=&offset=
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	status := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("status")))
	if status != "" && !validReviewStatus(status) {
		writeError(w, http.StatusBadRequest, "status has an unsupported value")
		return
	}
	limit, offset, ok := pageWindow(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "limit and offset must be non-negative numbers")
		return
	}

	reviews, err := h.service.ListReviews(r.Context(), status, limit, offset)
	if err != nil {
		h.logr.Error("failed to list reviews", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeList(w, reviews)
}

// ListSuggestions handles GET /api/admin/suggestions?status=&limit=&offset=
func (h *ReviewHandler) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	status := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("status")))
	if status != "" && !validSuggestionStatus(status) {
		writeError(w, http.StatusBadRequest, "status has an unsupported value")
		return
	}
	limit, offset, ok := pageWindow(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "limit and offset must be non-negative numbers")
		return
	}

	suggestions, err := h.service.ListSuggestions(r.Context(), status, limit, offset)
	if err != nil {
		h.logr.Error("failed to list suggestions", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeList(w, suggestions)
}

// UpdateReviewStatus handles PATCH /api/admin/reviews/{id}
func (h *ReviewHandler) UpdateReviewStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Review not found")
		return
	}
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	status := strings.ToUpper(strings.TrimSpace(req.Status))
	if !validReviewStatus(status) {
		writeError(w, http.StatusBadRequest, "status has an unsupported value")
		return
	}

	if err := h.service.UpdateReviewStatus(r.Context(), id, status); err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			writeError(w, http.StatusNotFound, "Review not found")
			return
		}
		h.logr.Error("failed to moderate review", zap.Error(err), zap.String("id", id.String()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !refreshCache(w, r, h.cache, h.logr) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": status})
}

// UpdateSuggestionStatus handles PATCH /api/admin/suggestions/{id}
func (h *ReviewHandler) UpdateSuggestionStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Suggestion not found")
		return
	}
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	status := strings.ToUpper(strings.TrimSpace(req.Status))
	if !validSuggestionStatus(status) {
		writeError(w, http.StatusBadRequest, "status has an unsupported value")
		return
	}

	if err := h.service.UpdateSuggestionStatus(r.Context(), id, status); err != nil {
		if errors.Is(err, services.ErrSuggestionNotFound) {
			writeError(w, http.StatusNotFound, "Suggestion not found")
			return
		}
		h.logr.Error("failed to update suggestion", zap.Error(err), zap.String("id", id.String()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": status})
}

func validReviewStatus(s string) bool {
	switch s {
	case services.ReviewPending, services.ReviewApproved, services.ReviewRejected:
		return true
	}
	return false
}

func validSuggestionStatus(s string) bool {
	switch s {
	case services.SuggestionOpen, services.SuggestionAccepted, services.SuggestionClosed:
		return true
	}
	return false
}
