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

// FacilityStore is the admin write side for facilities.
type FacilityStore interface {
	List(ctx context.Context, params models.FacilityListParams) (*models.FacilityListResult, error)
	Create(ctx context.Context, req models.FacilityRequest) (*models.Facility, error)
	Update(ctx context.Context, id uuid.UUID, req models.FacilityRequest) (*models.Facility, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type FacilityAdminHandler struct {
	service  FacilityStore
	cache    CacheInvalidator
	validate *validator.Validate
	logr     *zap.Logger
}

// NewFacilityAdminHandler builds the admin handler. cache may be nil.
func NewFacilityAdminHandler(svc FacilityStore, cache CacheInvalidator, logr *zap.Logger) *FacilityAdminHandler {
	return &FacilityAdminHandler{service: svc, cache: cache, validate: validation.New(), logr: logr}
}

// List handles GET /api/admin/locations?page=&limit=&search=&sortBy=&sortOrder=
func (h *FacilityAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := utils.QueryInt(q, "page", 1)
	if err != nil || page < 1 {
		writeError(w, http.StatusBadRequest, "page must be a positive number")
		return
	}
	limit, err := utils.QueryInt(q, "limit", 50)
	if err != nil || limit < 1 || limit > 200 {
		writeError(w, http.StatusBadRequest, "limit must be between 1 and 200")
		return
	}

	res, err := h.service.List(r.Context(), models.FacilityListParams{
		Page:      page,
		Limit:     limit,
		Search:    strings.TrimSpace(q.Get("search")),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	})
	if err != nil {
		h.logr.Error("failed to list facilities", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    res.Data,
		"total":   res.Total,
		"page":    res.Page,
		"limit":   res.Limit,
	})
}

func (h *FacilityAdminHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (models.FacilityRequest, bool) {
	var req models.FacilityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logr.Warn("failed to decode facility", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	req.Name = strings.TrimSpace(req.Name)
	req.PostalCode = strings.TrimSpace(req.PostalCode)
	if errs := validation.ValidateStruct(h.validate, req); len(errs) > 0 {
		writeValidationError(w, errs)
		return req, false
	}
	return req, true
}

// Create handles POST /api/admin/locations
func (h *FacilityAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	f, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logr.Error("failed to create facility", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !refreshCache(w, r, h.cache, h.logr) {
		return
	}
	writeData(w, http.StatusCreated, f)
}

// Update handles PUT /api/admin/locations/{id}
func (h *FacilityAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Location not found")
		return
	}
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}
	f, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrFacilityNotFound) {
			writeError(w, http.StatusNotFound, "Location not found")
			return
		}
		h.logr.Error("failed to update facility", zap.Error(err), zap.String("id", id.String()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !refreshCache(w, r, h.cache, h.logr) {
		return
	}
	writeData(w, http.StatusOK, f)
}

// Delete handles DELETE /api/admin/locations/{id}; the facility is deactivated, not removed.
func (h *FacilityAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Location not found")
		return
	}
	if err := h.service.Deactivate(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrFacilityNotFound) {
			writeError(w, http.StatusNotFound, "Location not found")
			return
		}
		h.logr.Error("failed to deactivate facility", zap.Error(err), zap.String("id", id.String()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !refreshCache(w, r, h.cache, h.logr) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
