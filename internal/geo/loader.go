package geo

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// geonamesFields is the column count of a GeoNames postal code dump row.
const geonamesFields = 12

// LoadStats reports what LoadGeoNames kept and skipped.
type LoadStats struct {
	Loaded  int
	Skipped int
}

// LoadGeoNames parses a GeoNames tab-separated postal file (for example US.txt
// from download.geonames.org/export/zip). Rows that cannot be parsed are
// skipped and counted rather than failing the load.
func LoadGeoNames(r io.Reader) ([]PostalArea, LoadStats, error) {
	var (
		areas []PostalArea
		stats LoadStats
	)

	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = geonamesFields
	reader.LazyQuotes = true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				stats.Skipped++
				continue
			}
			return nil, stats, fmt.Errorf("read postal file: %w", err)
		}

		code := strings.TrimSpace(record[1])
		if !ValidPostalCode(code) {
			stats.Skipped++
			continue
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[9]), 64)
		if err != nil {
			stats.Skipped++
			continue
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(record[10]), 64)
		if err != nil {
			stats.Skipped++
			continue
		}

		coord := Coordinate{Latitude: lat, Longitude: lon}
		if coord.Validate() != nil {
			stats.Skipped++
			continue
		}

		areas = append(areas, PostalArea{
			Code:       code,
			Coordinate: coord,
			City:       strings.TrimSpace(record[2]),
			Region:     strings.TrimSpace(record[4]),
		})
		stats.Loaded++
	}

	return areas, stats, nil
}

// LoadGeoNamesFile opens path and builds a PostalTable from it.
func LoadGeoNamesFile(path string) (*PostalTable, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open postal file: %w", err)
	}
	defer f.Close()

	areas, stats, err := LoadGeoNames(f)
	if err != nil {
		return nil, stats, err
	}
	table, err := NewPostalTable(areas)
	if err != nil {
		return nil, stats, err
	}
	return table, stats, nil
}
