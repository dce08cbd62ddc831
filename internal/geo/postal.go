package geo

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
)

// ErrInvalidPostalCode is returned when a code does not have the 5-digit US shape.
var ErrInvalidPostalCode = errors.New("invalid postal code")

var postalCodePattern = regexp.MustCompile(`^[0-9]{5}$`)

// PostalArea is one row of the postal reference table.
type PostalArea struct {
	Code       string     `json:"zipCode"`
	Coordinate Coordinate `json:"coordinate"`
	City       string     `json:"city"`
	Region     string     `json:"state"`
}

// Resolver maps a postal code to its reference area.
//
// A malformed code yields ErrInvalidPostalCode. A well-formed code missing from
// the reference data yields ok=false with a nil error.
type Resolver interface {
	Resolve(code string) (area PostalArea, ok bool, err error)
}

// ValidPostalCode reports whether code has the fixed 5 ASCII digit shape.
func ValidPostalCode(code string) bool {
	return postalCodePattern.MatchString(code)
}

// PostalTable is an immutable in-memory Resolver.
type PostalTable struct {
	areas map[string]PostalArea
}

// NewPostalTable builds a table from records. Later duplicates win.
func NewPostalTable(records []PostalArea) (*PostalTable, error) {
	areas := make(map[string]PostalArea, len(records))
	for _, rec := range records {
		if !ValidPostalCode(rec.Code) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPostalCode, rec.Code)
		}
		if err := rec.Coordinate.Validate(); err != nil {
			return nil, fmt.Errorf("postal code %s: %w", rec.Code, err)
		}
		areas[rec.Code] = rec
	}
	return &PostalTable{areas: areas}, nil
}

// Resolve performs an exact-match lookup.
func (t *PostalTable) Resolve(code string) (PostalArea, bool, error) {
	if !ValidPostalCode(code) {
		return PostalArea{}, false, fmt.Errorf("%w: %q", ErrInvalidPostalCode, code)
	}
	area, ok := t.areas[code]
	return area, ok, nil
}

// Len returns the number of codes in the table.
func (t *PostalTable) Len() int {
	return len(t.areas)
}

// Codes returns every code in the table in ascending order.
func (t *PostalTable) Codes() []string {
	codes := make([]string, 0, len(t.areas))
	for code := range t.areas {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
