package models

import (
	"time"

	"facility-finder/internal/geo"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Facility types accepted by the finder.
const (
	FacilityTypeLandfill             = "landfill"
	FacilityTypeTransferStation      = "transfer_station"
	FacilityTypeConstructionLandfill = "construction_landfill"

	// FacilityTypeAll disables type filtering in a search.
	FacilityTypeAll = "all"
)

// FacilityTypes lists every concrete facility type.
var FacilityTypes = []string{
	FacilityTypeLandfill,
	FacilityTypeTransferStation,
	FacilityTypeConstructionLandfill,
}

// Facility is a waste-disposal site.
type Facility struct {
	bun.BaseModel `bun:"table:facilities,alias:f"`

	ID           uuid.UUID    `bun:",pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name         string       `bun:"name,notnull" json:"name"`
	Address      string       `bun:"address,notnull" json:"address"`
	City         string       `bun:"city,notnull" json:"city"`
	Region       string       `bun:"region,notnull" json:"state"`
	PostalCode   string       `bun:"postal_code,notnull" json:"zipCode"`
	Latitude     float64      `bun:"latitude,notnull" json:"latitude"`
	Longitude    float64      `bun:"longitude,notnull" json:"longitude"`
	FacilityType string       `bun:"facility_type,notnull" json:"facilityType"`
	DebrisTypes  []DebrisType `bun:"debris_types,type:jsonb" json:"debrisTypes"`
	Phone        *string      `bun:"phone" json:"phone,omitempty"`
	Website      *string      `bun:"website" json:"website,omitempty"`
	Hours        *string      `bun:"hours" json:"hours,omitempty"`
	Rating       float64      `bun:"rating,notnull,default:0" json:"rating"`
	ReviewCount  int          `bun:"review_count,notnull,default:0" json:"reviewCount"`
	IsActive     bool         `bun:"is_active,notnull,default:true" json:"isActive"`
	CreatedAt    time.Time    `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt    time.Time    `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`

	// DistanceMiles is set by a search with a resolved postal code.
	DistanceMiles *float64 `bun:"-" json:"distance,omitempty"`
}

// Coordinate returns the facility position.
func (f Facility) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: f.Latitude, Longitude: f.Longitude}
}

// DebrisType is one accepted material with its pricing.
type DebrisType struct {
	Name     string   `json:"name" validate:"required,max=100"`
	Category string   `json:"category,omitempty"`
	Pricing  *Pricing `json:"pricing,omitempty"`
}

// Pricing describes what a facility charges for a debris type.
type Pricing struct {
	Price         *float64 `json:"price,omitempty"`
	Unit          string   `json:"unit,omitempty"` // ton, load, item, yard
	MinimumCharge *float64 `json:"minimumCharge,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

// FacilityRequest is the admin create/update payload.
type FacilityRequest struct {
	Name         string       `json:"name" validate:"required,max=200"`
	Address      string       `json:"address" validate:"required,max=300"`
	City         string       `json:"city" validate:"required,max=100"`
	Region       string       `json:"state" validate:"required,max=100"`
	PostalCode   string       `json:"zipCode" validate:"required,zip5"`
	Latitude     *float64     `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude    *float64     `json:"longitude" validate:"required,gte=-180,lte=180"`
	FacilityType string       `json:"facilityType" validate:"required,oneof=landfill transfer_station construction_landfill"`
	DebrisTypes  []DebrisType `json:"debrisTypes" validate:"dive"`
	Phone        *string      `json:"phone,omitempty" validate:"omitempty,max=40"`
	Website      *string      `json:"website,omitempty" validate:"omitempty,url"`
	Hours        *string      `json:"hours,omitempty" validate:"omitempty,max=200"`
	IsActive     *bool        `json:"isActive,omitempty"`
}

// Apply copies the request onto f. The request must already be validated.
func (r FacilityRequest) Apply(f *Facility) {
	f.Name = r.Name
	f.Address = r.Address
	f.City = r.City
	f.Region = r.Region
	f.PostalCode = r.PostalCode
	if r.Latitude != nil {
		f.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		f.Longitude = *r.Longitude
	}
	f.FacilityType = r.FacilityType
	f.DebrisTypes = r.DebrisTypes
	f.Phone = r.Phone
	f.Website = r.Website
	f.Hours = r.Hours
	if r.IsActive != nil {
		f.IsActive = *r.IsActive
	}
}

// FacilityListParams drives the paginated admin listing.
type FacilityListParams struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// FacilityListResult is one page of the admin listing.
type FacilityListResult struct {
	Data  []Facility `json:"data"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}
