package search

import (
	"testing"

	"facility-finder/internal/models"

	"github.com/stretchr/testify/assert"
)

func withDebris(names ...string) func(*models.Facility) {
	return func(f *models.Facility) {
		for _, n := range names {
			f.DebrisTypes = append(f.DebrisTypes, models.DebrisType{Name: n, Category: "general"})
		}
	}
}

func TestMatchesDebrisSubstring(t *testing.T) {
	f := facility("Westside", cleveland, withDebris("General Household Waste", "Tires"))

	tests := []struct {
		name   string
		wanted []string
		want   bool
	}{
		{"case-insensitive substring", []string{"household"}, true},
		{"any of many", []string{"concrete", "TIRE"}, true},
		{"no hit", []string{"asbestos"}, false},
		{"empty list", nil, true},
		{"blank entries ignored", []string{" ", ""}, true},
		{"exact name", []string{"Tires"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuery()
			q.DebrisTypeNames = tt.wanted
			assert.Equal(t, tt.want, Matches(f, q))
		})
	}
}

func TestMatchesDebrisWithoutDebrisTypes(t *testing.T) {
	f := facility("Bare", cleveland)
	q := NewQuery()
	q.DebrisTypeNames = []string{"wood"}
	assert.False(t, Matches(f, q))
}

func TestMatchesFacilityType(t *testing.T) {
	f := facility("Transfer", cleveland, ofType(models.FacilityTypeTransferStation))

	for typ, want := range map[string]bool{
		"":                      true,
		models.FacilityTypeAll:  true,
		"transfer_station":      true,
		"landfill":              false,
		"Transfer_Station":      false,
		"construction_landfill": false,
	} {
		q := NewQuery()
		q.FacilityType = typ
		assert.Equal(t, want, Matches(f, q), "type %q", typ)
	}
}

func TestMatchesFreeText(t *testing.T) {
	f := facility("Lakeshore Transfer", cleveland, func(f *models.Facility) {
		f.Address = "4500 Industrial Pkwy"
		f.City = "Lakewood"
		f.PostalCode = "44107"
	})

	for text, want := range map[string]bool{
		"":            true,
		"lakeshore":   true,
		"INDUSTRIAL":  true,
		"lakewood":    true,
		"4410":        true,
		"  transfer ": true,
		"columbus":    false,
	} {
		q := NewQuery()
		q.FreeText = text
		assert.Equal(t, want, Matches(f, q), "text %q", text)
	}
}

func TestMatchesInactiveAlwaysFails(t *testing.T) {
	f := facility("Closed", cleveland, inactive, withDebris("Household"))
	assert.False(t, Matches(f, NewQuery()))
}
