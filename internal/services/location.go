package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"facility-finder/internal/models"
	"facility-finder/internal/search"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SearchRecorder receives search outcomes for metrics.
type SearchRecorder interface {
	ObserveSearch(results int, unknownPostal bool)
	ObserveInvalidQuery()
}

type noopRecorder struct{}

func (noopRecorder) ObserveSearch(int, bool) {}
func (noopRecorder) ObserveInvalidQuery()    {}

// LocationService answers the public facility queries.
type LocationService struct {
	source   CandidateSource
	searcher *search.Searcher
	metrics  SearchRecorder
	logr     *zap.Logger
}

func NewLocationService(source CandidateSource, searcher *search.Searcher, metrics SearchRecorder, logr *zap.Logger) *LocationService {
	if metrics == nil {
		metrics = noopRecorder{}
	}
	return &LocationService{source: source, searcher: searcher, metrics: metrics, logr: logr}
}

// Search validates q, fetches candidates and runs the ranked search. An
// unknown postal code is answered without touching the candidate source.
func (s *LocationService) Search(ctx context.Context, q search.Query) (*search.Result, error) {
	plan, err := s.searcher.Plan(q)
	if err != nil {
		if errors.Is(err, search.ErrInvalidQuery) {
			s.metrics.ObserveInvalidQuery()
		}
		return nil, err
	}

	var candidates []models.Facility
	if !plan.UnknownPostal() {
		candidates, err = s.source.ListActive(ctx, CandidateFilter{FacilityType: q.FacilityType})
		if err != nil {
			return nil, fmt.Errorf("load candidates: %w", err)
		}
	}

	res := s.searcher.Run(plan, candidates)
	s.metrics.ObserveSearch(res.TotalCount, plan.UnknownPostal())

	s.logr.Debug("location search",
		zap.String("zip_code", q.PostalCode),
		zap.Float64("radius", q.RadiusMiles),
		zap.String("facility_type", q.FacilityType),
		zap.Int("candidates", len(candidates)),
		zap.Int("total", res.TotalCount),
		zap.Bool("unknown_zip", plan.UnknownPostal()))

	return res, nil
}

// All returns every active facility, unfiltered.
func (s *LocationService) All(ctx context.Context) ([]models.Facility, error) {
	facilities, err := s.source.ListActive(ctx, CandidateFilter{})
	if err != nil {
		return nil, fmt.Errorf("load facilities: %w", err)
	}
	active := make([]models.Facility, 0, len(facilities))
	for _, f := range facilities {
		if f.IsActive {
			active = append(active, f)
		}
	}
	return active, nil
}

// ByID returns one active facility.
func (s *LocationService) ByID(ctx context.Context, id uuid.UUID) (*models.Facility, error) {
	f, err := s.source.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !f.IsActive {
		return nil, ErrFacilityNotFound
	}
	return f, nil
}

// Regions counts active facilities per state, ordered by state.
func (s *LocationService) Regions(ctx context.Context) ([]models.RegionSummary, error) {
	facilities, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, f := range facilities {
		counts[f.Region]++
	}

	regions := make([]models.RegionSummary, 0, len(counts))
	for region, n := range counts {
		regions = append(regions, models.RegionSummary{Region: region, FacilityCount: n})
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].Region < regions[j].Region })

	return regions, nil
}
