package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Review is a user rating of a facility.
type Review struct {
	bun.BaseModel `bun:"table:reviews,alias:rv"`

	ID         uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()" json:"id"`
	FacilityID uuid.UUID `bun:"facility_id,type:uuid,notnull" json:"facilityId"`
	Author     string    `bun:"author,notnull" json:"author"`
	Email      *string   `bun:"email" json:"email,omitempty"`
	Rating     int       `bun:"rating,notnull" json:"rating"`
	Comment    string    `bun:"comment,notnull" json:"comment"`
	Status     string    `bun:"status,notnull,default:'PENDING'" json:"status"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}

// CreateReviewRequest is the public review payload.
type CreateReviewRequest struct {
	Author  string  `json:"author" validate:"required,max=100"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment string  `json:"comment" validate:"required,max=2000"`
}

// Suggestion is a user-submitted facility that is not yet listed, or a
// correction to one that is.
type Suggestion struct {
	bun.BaseModel `bun:"table:suggestions,alias:sg"`

	ID           uuid.UUID  `bun:",pk,type:uuid,default:gen_random_uuid()" json:"id"`
	FacilityID   *uuid.UUID `bun:"facility_id,type:uuid" json:"facilityId,omitempty"`
	FacilityName string     `bun:"facility_name,notnull" json:"facilityName"`
	Address      string     `bun:"address" json:"address"`
	PostalCode   string     `bun:"postal_code" json:"zipCode"`
	Email        *string    `bun:"email" json:"email,omitempty"`
	Notes        string     `bun:"notes" json:"notes"`
	Status       string     `bun:"status,notnull,default:'OPEN'" json:"status"`
	CreatedAt    time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
}

// CreateSuggestionRequest is the public suggestion payload.
type CreateSuggestionRequest struct {
	FacilityID   *uuid.UUID `json:"facilityId,omitempty"`
	FacilityName string     `json:"facilityName" validate:"required,max=200"`
	Address      string     `json:"address" validate:"max=300"`
	PostalCode   string     `json:"zipCode" validate:"omitempty,zip5"`
	Email        *string    `json:"email,omitempty" validate:"omitempty,email"`
	Notes        string     `json:"notes" validate:"max=2000"`
}
