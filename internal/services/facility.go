package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"facility-finder/internal/models"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrFacilityNotFound is returned when no facility has the requested ID.
var ErrFacilityNotFound = errors.New("facility not found")

// CandidateFilter is the coarse filter pushed down to the store before the
// in-memory search runs.
type CandidateFilter struct {
	FacilityType string
}

// Key identifies the filter in caches.
func (f CandidateFilter) Key() string {
	if f.FacilityType == "" || f.FacilityType == models.FacilityTypeAll {
		return models.FacilityTypeAll
	}
	return f.FacilityType
}

func (f CandidateFilter) cacheable() bool {
	key := f.Key()
	if key == models.FacilityTypeAll {
		return true
	}
	for _, t := range models.FacilityTypes {
		if key == t {
			return true
		}
	}
	return false
}

// CandidateSource supplies active facilities to the search.
type CandidateSource interface {
	ListActive(ctx context.Context, filter CandidateFilter) ([]models.Facility, error)
	GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Facility, error)
}

// FacilityService is the Postgres-backed facility store.
type FacilityService struct {
	db *bun.DB
}

func NewFacilityService(db *bun.DB) *FacilityService {
	return &FacilityService{db: db}
}

// ListActive returns active facilities ordered by name.
func (s *FacilityService) ListActive(ctx context.Context, filter CandidateFilter) ([]models.Facility, error) {
	var facilities []models.Facility

	q := s.db.NewSelect().
		Model(&facilities).
		Where("is_active = TRUE")

	if key := filter.Key(); key != models.FacilityTypeAll {
		q = q.Where("facility_type = ?", key)
	}

	if err := q.OrderExpr("name ASC, id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list active facilities: %w", err)
	}
	return facilities, nil
}

// GetActiveByID returns an active facility.
func (s *FacilityService) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Facility, error) {
	f := new(models.Facility)
	err := s.db.NewSelect().
		Model(f).
		Where("id = ?", id).
		Where("is_active = TRUE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFacilityNotFound
		}
		return nil, err
	}
	return f, nil
}

// GetByID returns a facility whether or not it is active.
func (s *FacilityService) GetByID(ctx context.Context, id uuid.UUID) (*models.Facility, error) {
	f := new(models.Facility)
	if err := s.db.NewSelect().Model(f).Where("id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFacilityNotFound
		}
		return nil, err
	}
	return f, nil
}

// facilitySortColumns whitelists admin sort keys.
var facilitySortColumns = map[string]string{
	"name":         "name",
	"city":         "city",
	"state":        "region",
	"zipCode":      "postal_code",
	"rating":       "rating",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
	"facilityType": "facility_type",
}

// List returns one page of all facilities, active or not, for the admin area.
func (s *FacilityService) List(ctx context.Context, params models.FacilityListParams) (*models.FacilityListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = 50
	}

	var facilities []models.Facility
	q := s.db.NewSelect().Model(&facilities)

	if search := strings.TrimSpace(params.Search); search != "" {
		like := "%" + search + "%"
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("name ILIKE ?", like).
				WhereOr("city ILIKE ?", like).
				WhereOr("postal_code ILIKE ?", like)
		})
	}

	column, ok := facilitySortColumns[params.SortBy]
	if !ok {
		column = "name"
	}
	order := "ASC"
	if strings.EqualFold(params.SortOrder, "desc") {
		order = "DESC"
	}
	q = q.OrderExpr(column + " " + order).OrderExpr("id ASC")

	total, err := q.Limit(params.Limit).Offset((params.Page - 1) * params.Limit).ScanAndCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}

	return &models.FacilityListResult{
		Data:  facilities,
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
	}, nil
}

// Create inserts a new facility from an admin request.
func (s *FacilityService) Create(ctx context.Context, req models.FacilityRequest) (*models.Facility, error) {
	now := time.Now().UTC()
	f := &models.Facility{
		ID:        uuid.New(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	req.Apply(f)

	if _, err := s.db.NewInsert().Model(f).Exec(ctx); err != nil {
		return nil, fmt.Errorf("insert facility: %w", err)
	}
	return f, nil
}

// Update overwrites the editable fields of a facility.
func (s *FacilityService) Update(ctx context.Context, id uuid.UUID, req models.FacilityRequest) (*models.Facility, error) {
	f, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(f)
	f.UpdatedAt = time.Now().UTC()

	_, err = s.db.NewUpdate().
		Model(f).
		ExcludeColumn("id", "created_at", "rating", "review_count").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("update facility: %w", err)
	}
	return f, nil
}

// Deactivate hides a facility from search without deleting its history.
func (s *FacilityService) Deactivate(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.NewUpdate().
		Model((*models.Facility)(nil)).
		Set("is_active = FALSE").
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deactivate facility: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrFacilityNotFound
	}
	return nil
}
