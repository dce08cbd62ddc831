package models

// RegionSummary counts the active facilities in one state/province.
type RegionSummary struct {
	Region        string `bun:"region" json:"state"`
	FacilityCount int    `bun:"facility_count" json:"count"`
}

// FacilityFeature is a facility in GeoJSON form, for map layers.
type FacilityFeature struct {
	Type       string                 `json:"type"` // "Feature"
	ID         string                 `json:"id"`
	Geometry   PointGeometry          `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// PointGeometry is a GeoJSON Point. Coordinates are [longitude, latitude].
type PointGeometry struct {
	Type        string     `json:"type"` // "Point"
	Coordinates [2]float64 `json:"coordinates"`
}

// FeatureCollection wraps facility features.
type FeatureCollection struct {
	Type     string            `json:"type"` // "FeatureCollection"
	Features []FacilityFeature `json:"features"`
	Count    int               `json:"count"`
}

// NewFeatureCollection converts facilities to GeoJSON features.
func NewFeatureCollection(facilities []Facility) FeatureCollection {
	features := make([]FacilityFeature, 0, len(facilities))
	for _, f := range facilities {
		props := map[string]interface{}{
			"name":         f.Name,
			"city":         f.City,
			"state":        f.Region,
			"zipCode":      f.PostalCode,
			"facilityType": f.FacilityType,
			"rating":       f.Rating,
		}
		if f.DistanceMiles != nil {
			props["distance"] = *f.DistanceMiles
		}
		features = append(features, FacilityFeature{
			Type: "Feature",
			ID:   f.ID.String(),
			Geometry: PointGeometry{
				Type:        "Point",
				Coordinates: [2]float64{f.Longitude, f.Latitude},
			},
			Properties: props,
		})
	}
	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
		Count:    len(features),
	}
}
