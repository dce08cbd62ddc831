package search

import (
	"errors"

	"facility-finder/internal/geo"
	"facility-finder/internal/models"
	"facility-finder/internal/validation"
)

// SortKey selects the result ordering.
type SortKey string

const (
	SortDistance SortKey = "distance"
	SortRating   SortKey = "rating"
	SortName     SortKey = "name"
	SortCity     SortKey = "city"
	SortRegion   SortKey = "region"
)

// Defaults applied by NewQuery.
const (
	DefaultRadiusMiles = 25.0
	DefaultPageSize    = 20
)

// MaxRadiusMiles spans the contiguous United States. Query.RadiusMiles enforces it.
const MaxRadiusMiles = 3000.0

// ErrInvalidQuery marks a query rejected before any distance computation.
var ErrInvalidQuery = errors.New("invalid search query")

// Query is a facility search request.
type Query struct {
	PostalCode      string   `json:"zipCode" validate:"omitempty,zip5"`
	RadiusMiles     float64  `json:"radius" validate:"finite,gt=0,lte=3000"`
	FacilityType    string   `json:"facilityType" validate:"omitempty,oneof=all landfill transfer_station construction_landfill"`
	DebrisTypeNames []string `json:"debrisTypes"`
	FreeText        string   `json:"q"`
	SortBy          SortKey  `json:"sortBy" validate:"omitempty,oneof=distance rating name city region"`
	Page            int      `json:"page" validate:"gte=1"`
	PageSize        int      `json:"pageSize" validate:"gte=1"`
}

// NewQuery returns a query with the default radius, first page and default
// page size.
func NewQuery() Query {
	return Query{
		RadiusMiles:  DefaultRadiusMiles,
		FacilityType: models.FacilityTypeAll,
		Page:         1,
		PageSize:     DefaultPageSize,
	}
}

// Result is one page of ranked facilities.
type Result struct {
	Facilities []models.Facility `json:"data"`
	TotalCount int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	// ResolvedArea is nil when no postal code was given or it was not found.
	ResolvedArea *geo.PostalArea `json:"searchLocation"`
	Message      string          `json:"message"`
}

// ValidationError lists the fields that made a query invalid.
type ValidationError struct {
	Fields []*validation.ErrorResponse
}

func (e *ValidationError) Error() string {
	return validation.Message(e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidQuery
}
