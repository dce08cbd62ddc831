package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"facility-finder/internal/models"
	"facility-finder/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFacilities struct {
	created     []models.FacilityRequest
	deactivated []uuid.UUID
	lastList    models.FacilityListParams
}

func (f *fakeFacilities) List(_ context.Context, params models.FacilityListParams) (*models.FacilityListResult, error) {
	f.lastList = params
	return &models.FacilityListResult{Data: []models.Facility{}, Page: params.Page, Limit: params.Limit}, nil
}

func (f *fakeFacilities) Create(_ context.Context, req models.FacilityRequest) (*models.Facility, error) {
	f.created = append(f.created, req)
	fac := &models.Facility{ID: uuid.New(), IsActive: true}
	req.Apply(fac)
	return fac, nil
}

func (f *fakeFacilities) Update(_ context.Context, _ uuid.UUID, _ models.FacilityRequest) (*models.Facility, error) {
	return nil, services.ErrFacilityNotFound
}

func (f *fakeFacilities) Deactivate(_ context.Context, id uuid.UUID) error {
	f.deactivated = append(f.deactivated, id)
	return nil
}

type countingInvalidator struct {
	calls int
	err   error
}

func (c *countingInvalidator) Invalidate(context.Context) error {
	c.calls++
	return c.err
}

func adminRouter(store *fakeFacilities, cache *countingInvalidator) http.Handler {
	h := NewFacilityAdminHandler(store, cache, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/admin/locations", h.List)
	r.Post("/api/admin/locations", h.Create)
	r.Put("/api/admin/locations/{id}", h.Update)
	r.Delete("/api/admin/locations/{id}", h.Delete)
	return r
}

const validFacility = `{
	"name": "Lakeshore Transfer",
	"address": "4500 W 150th St",
	"city": "Cleveland",
	"state": "OH",
	"zipCode": "44111",
	"latitude": 41.45,
	"longitude": -81.78,
	"facilityType": "transfer_station",
	"debrisTypes": [{"name": "Concrete", "category": "C&D"}]
}`

func TestAdminCreateInvalidatesCache(t *testing.T) {
	store := &fakeFacilities{}
	cache := &countingInvalidator{}
	router := adminRouter(store, cache)

	rec := send(router, http.MethodPost, "/api/admin/locations", validFacility)
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.created, 1)
	assert.Equal(t, 1, cache.calls)
}

func TestAdminCreateValidation(t *testing.T) {
	store := &fakeFacilities{}
	cache := &countingInvalidator{}
	router := adminRouter(store, cache)

	rec := send(router, http.MethodPost, "/api/admin/locations", `{"name":"X","facilityType":"incinerator","zipCode":"1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "facilityType has an unsupported value")
	assert.Empty(t, store.created)
	assert.Zero(t, cache.calls)
}

func TestAdminUpdateAndDelete(t *testing.T) {
	store := &fakeFacilities{}
	cache := &countingInvalidator{}
	router := adminRouter(store, cache)

	rec := send(router, http.MethodPut, "/api/admin/locations/"+uuid.NewString(), validFacility)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	id := uuid.New()
	rec = send(router, http.MethodDelete, "/api/admin/locations/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []uuid.UUID{id}, store.deactivated)
	assert.Equal(t, 1, cache.calls)
}

func TestAdminList(t *testing.T) {
	store := &fakeFacilities{}
	router := adminRouter(store, &countingInvalidator{})

	rec := send(router, http.MethodGet, "/api/admin/locations?page=2&limit=10&search=lake&sortBy=city&sortOrder=desc", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.FacilityListParams{Page: 2, Limit: 10, Search: "lake", SortBy: "city", SortOrder: "desc"}, store.lastList)

	assert.Equal(t, http.StatusBadRequest, send(router, http.MethodGet, "/api/admin/locations?limit=500", "").Code)
}

func TestAdminCreateRequiresCoordinates(t *testing.T) {
	store := &fakeFacilities{}
	cache := &countingInvalidator{}
	router := adminRouter(store, cache)

	body := strings.Replace(validFacility, `"latitude": 41.45,`, "", 1)
	rec := send(router, http.MethodPost, "/api/admin/locations", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "latitude is required")
	assert.Empty(t, store.created)

	body = strings.Replace(validFacility, `"latitude": 41.45`, `"latitude": 0`, 1)
	rec = send(router, http.MethodPost, "/api/admin/locations", body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.created, 1)
	require.NotNil(t, store.created[0].Latitude)
	assert.Zero(t, *store.created[0].Latitude)
	assert.Equal(t, -81.78, *store.created[0].Longitude)
}

func TestAdminWriteFailsWhenCacheStale(t *testing.T) {
	store := &fakeFacilities{}
	cache := &countingInvalidator{err: errors.New("redis: connection refused")}
	router := adminRouter(store, cache)

	id := uuid.New()
	rec := send(router, http.MethodDelete, "/api/admin/locations/"+id.String(), "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "search cache could not be refreshed")
	assert.Equal(t, []uuid.UUID{id}, store.deactivated)
	assert.Equal(t, invalidateAttempts, cache.calls)

	cache.calls = 0
	rec = send(router, http.MethodPost, "/api/admin/locations", validFacility)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, invalidateAttempts, cache.calls)
}
