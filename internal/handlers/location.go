package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"facility-finder/internal/models"
	"facility-finder/internal/search"
	"facility-finder/internal/services"
	"facility-finder/internal/utils"
	"facility-finder/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocationFinder is the read side used by the public location endpoints.
type LocationFinder interface {
	Search(ctx context.Context, q search.Query) (*search.Result, error)
	All(ctx context.Context) ([]models.Facility, error)
	ByID(ctx context.Context, id uuid.UUID) (*models.Facility, error)
	Regions(ctx context.Context) ([]models.RegionSummary, error)
}

// SearchDefaults fill in omitted search parameters.
type SearchDefaults struct {
	RadiusMiles float64
	PageSize    int
}

type LocationHandler struct {
	service  LocationFinder
	defaults SearchDefaults
	logr     *zap.Logger
}

func NewLocationHandler(svc LocationFinder, defaults SearchDefaults, logr *zap.Logger) *LocationHandler {
	if defaults.RadiusMiles <= 0 {
		defaults.RadiusMiles = search.DefaultRadiusMiles
	}
	if defaults.PageSize <= 0 {
		defaults.PageSize = search.DefaultPageSize
	}
	return &LocationHandler{service: svc, defaults: defaults, logr: logr}
}

type searchResponse struct {
	Success bool `json:"success"`
	*search.Result
}

// SearchLocations handles GET /api/locations?zipCode=&radius=&facilityType=&debrisTypes=&sortBy=&q=&page=&pageSize=
func (h *LocationHandler) SearchLocations(w http.ResponseWriter, r *http.Request) {
	res, ok := h.runSearch(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Success: true, Result: res})
}

// GetGeoJSON handles GET /api/locations/geojson with the same parameters as
// SearchLocations, returning the page as a FeatureCollection.
func (h *LocationHandler) GetGeoJSON(w http.ResponseWriter, r *http.Request) {
	res, ok := h.runSearch(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	writeJSON(w, http.StatusOK, models.NewFeatureCollection(res.Facilities))
}

func (h *LocationHandler) runSearch(w http.ResponseWriter, r *http.Request) (*search.Result, bool) {
	q, fields := h.parseQuery(r.URL.Query())
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return nil, false
	}

	res, err := h.service.Search(r.Context(), q)
	if err != nil {
		var verr *search.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr.Fields)
			return nil, false
		}
		if errors.Is(err, search.ErrInvalidQuery) {
			writeError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		h.logr.Error("location search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return nil, false
	}
	return res, true
}

// parseQuery maps URL parameters onto a search.Query. Parameters that are
// present but not numbers are reported rather than defaulted.
func (h *LocationHandler) parseQuery(values url.Values) (search.Query, []*validation.ErrorResponse) {
	q := search.NewQuery()
	q.RadiusMiles = h.defaults.RadiusMiles
	q.PageSize = h.defaults.PageSize

	q.PostalCode = strings.TrimSpace(values.Get("zipCode"))
	if ft := strings.TrimSpace(values.Get("facilityType")); ft != "" {
		q.FacilityType = ft
	}
	q.DebrisTypeNames = utils.ParseQueryList(values, "debrisTypes")
	q.FreeText = strings.TrimSpace(values.Get("q"))
	q.SortBy = search.SortKey(strings.TrimSpace(values.Get("sortBy")))

	var fields []*validation.ErrorResponse
	var err error
	if q.RadiusMiles, err = utils.QueryFloat(values, "radius", q.RadiusMiles); err != nil {
		fields = append(fields, &validation.ErrorResponse{FailedField: "radius", Tag: "number", Value: values.Get("radius")})
	}
	if q.Page, err = utils.QueryInt(values, "page", q.Page); err != nil {
		fields = append(fields, &validation.ErrorResponse{FailedField: "page", Tag: "number", Value: values.Get("page")})
	}
	if q.PageSize, err = utils.QueryInt(values, "pageSize", q.PageSize); err != nil {
		fields = append(fields, &validation.ErrorResponse{FailedField: "pageSize", Tag: "number", Value: values.Get("pageSize")})
	}
	return q, fields
}

// GetAll handles GET /api/locations/all
func (h *LocationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.service.All(r.Context())
	if err != nil {
		h.logr.Error("failed to list locations", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeList(w, facilities)
}

// GetRegions handles GET /api/locations/regions
func (h *LocationHandler) GetRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.service.Regions(r.Context())
	if err != nil {
		h.logr.Error("failed to list regions", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeList(w, regions)
}

// GetByID handles GET /api/locations/{id}
func (h *LocationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Location not found")
		return
	}

	f, err := h.service.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrFacilityNotFound) {
			writeError(w, http.StatusNotFound, "Location not found")
			return
		}
		h.logr.Error("failed to get location", zap.Error(err), zap.String("id", id.String()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeData(w, http.StatusOK, f)
}
