package search

import (
	"strings"

	"facility-finder/internal/models"
)

// Matches reports whether f passes the type, debris and free-text predicates
// of q. Inactive facilities never match.
func Matches(f models.Facility, q Query) bool {
	if !f.IsActive {
		return false
	}
	return matchesType(f, q.FacilityType) &&
		matchesDebris(f, q.DebrisTypeNames) &&
		matchesText(f, q.FreeText)
}

func matchesType(f models.Facility, facilityType string) bool {
	if facilityType == "" || facilityType == models.FacilityTypeAll {
		return true
	}
	return f.FacilityType == facilityType
}

// matchesDebris is true when any debris name of f contains any wanted name,
// case-insensitively.
func matchesDebris(f models.Facility, wanted []string) bool {
	needles := make([]string, 0, len(wanted))
	for _, w := range wanted {
		if w = strings.TrimSpace(w); w != "" {
			needles = append(needles, strings.ToLower(w))
		}
	}
	if len(needles) == 0 {
		return true
	}

	for _, dt := range f.DebrisTypes {
		name := strings.ToLower(dt.Name)
		for _, n := range needles {
			if strings.Contains(name, n) {
				return true
			}
		}
	}
	return false
}

func matchesText(f models.Facility, text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return true
	}
	for _, field := range []string{f.Name, f.Address, f.City, f.PostalCode} {
		if strings.Contains(strings.ToLower(field), text) {
			return true
		}
	}
	return false
}
