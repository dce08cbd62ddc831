package search

import (
	"errors"
	"fmt"
	"sort"

	"facility-finder/internal/geo"
	"facility-finder/internal/models"
	"facility-finder/internal/validation"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Searcher resolves, filters, ranks and paginates facility candidates.
// It holds no mutable state and is safe for concurrent use.
type Searcher struct {
	resolver    geo.Resolver
	validate    *validator.Validate
	maxPageSize int
	lang        language.Tag
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithMaxPageSize rejects queries asking for more than n results per page.
func WithMaxPageSize(n int) Option {
	return func(s *Searcher) { s.maxPageSize = n }
}

// WithLanguage sets the collation used for name, city and region ordering.
func WithLanguage(tag language.Tag) Option {
	return func(s *Searcher) { s.lang = tag }
}

// NewSearcher returns a Searcher backed by resolver.
func NewSearcher(resolver geo.Resolver, opts ...Option) *Searcher {
	s := &Searcher{
		resolver: resolver,
		validate: validation.New(),
		lang:     language.AmericanEnglish,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate checks q without running it.
func (s *Searcher) Validate(q Query) error {
	if errs := validation.ValidateStruct(s.validate, q); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	if s.maxPageSize > 0 && q.PageSize > s.maxPageSize {
		return &ValidationError{Fields: []*validation.ErrorResponse{{
			FailedField: "pageSize",
			Tag:         "max",
			Value:       fmt.Sprint(q.PageSize),
		}}}
	}
	return nil
}

// Plan is a validated query with its postal code resolved.
type Plan struct {
	query   Query
	area    *geo.PostalArea
	unknown bool
}

// UnknownPostal reports whether the query named a well-formed postal code
// that is not in the table. Such a plan matches nothing.
func (p *Plan) UnknownPostal() bool {
	return p.unknown
}

// Plan validates q and resolves its postal code, calling the resolver at
// most once. Errors wrap ErrInvalidQuery for malformed input.
func (s *Searcher) Plan(q Query) (*Plan, error) {
	if err := s.Validate(q); err != nil {
		return nil, err
	}

	p := &Plan{query: q}
	if q.PostalCode == "" {
		return p, nil
	}

	resolved, ok, err := s.resolver.Resolve(q.PostalCode)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidPostalCode) {
			return nil, &ValidationError{Fields: []*validation.ErrorResponse{{
				FailedField: "zipCode",
				Tag:         "zip5",
				Value:       q.PostalCode,
			}}}
		}
		return nil, fmt.Errorf("resolve postal code: %w", err)
	}
	if !ok {
		p.unknown = true
		return p, nil
	}
	p.area = &resolved
	return p, nil
}

// Search runs q over candidates.
//
// A malformed postal code or other invalid parameter returns an error wrapping
// ErrInvalidQuery. A well-formed but unknown postal code returns an empty
// result with a nil ResolvedArea. Zero matches is never an error.
func (s *Searcher) Search(q Query, candidates []models.Facility) (*Result, error) {
	p, err := s.Plan(q)
	if err != nil {
		return nil, err
	}
	return s.Run(p, candidates), nil
}

// Run applies a plan to candidates. Candidates are ignored when the plan's
// postal code is unknown.
func (s *Searcher) Run(p *Plan, candidates []models.Facility) *Result {
	q, area := p.query, p.area
	result := &Result{
		Facilities: []models.Facility{},
		Page:       q.Page,
		PageSize:   q.PageSize,
	}
	if p.unknown {
		result.Message = fmt.Sprintf("ZIP code %s was not found in our service area", q.PostalCode)
		return result
	}
	result.ResolvedArea = area

	eligible := make([]models.Facility, 0, len(candidates))
	for _, c := range candidates {
		if !c.IsActive {
			continue
		}
		if area != nil {
			d := geo.DistanceMiles(area.Coordinate, c.Coordinate())
			if d > q.RadiusMiles {
				continue
			}
			c.DistanceMiles = &d
		} else {
			c.DistanceMiles = nil
		}
		if !Matches(c, q) {
			continue
		}
		eligible = append(eligible, c)
	}

	s.rank(eligible, q.SortBy, area != nil)

	result.TotalCount = len(eligible)
	result.Facilities = paginate(eligible, q.Page, q.PageSize)
	result.Message = summary(result.TotalCount, q, area)

	return result
}

// rank sorts in place. Every ordering is stable so equal keys keep their
// candidate order.
func (s *Searcher) rank(list []models.Facility, key SortKey, haveDistance bool) {
	if key == "" {
		key = SortDistance
		if !haveDistance {
			key = SortName
		}
	}

	switch key {
	case SortDistance:
		if !haveDistance {
			return
		}
		sort.SliceStable(list, func(i, j int) bool {
			return *list[i].DistanceMiles < *list[j].DistanceMiles
		})
	case SortRating:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Rating > list[j].Rating
		})
	case SortName, SortCity, SortRegion:
		// Collators keep internal buffers; one per call.
		col := collate.New(s.lang)
		field := textField(key)
		sort.SliceStable(list, func(i, j int) bool {
			return col.CompareString(field(list[i]), field(list[j])) < 0
		})
	}
}

func textField(key SortKey) func(models.Facility) string {
	switch key {
	case SortCity:
		return func(f models.Facility) string { return f.City }
	case SortRegion:
		return func(f models.Facility) string { return f.Region }
	default:
		return func(f models.Facility) string { return f.Name }
	}
}

func paginate(list []models.Facility, page, pageSize int) []models.Facility {
	if page-1 > len(list)/pageSize {
		return []models.Facility{}
	}
	start := (page - 1) * pageSize
	if start >= len(list) {
		return []models.Facility{}
	}
	end := start + pageSize
	if end > len(list) || end < start {
		end = len(list)
	}
	return list[start:end]
}

func summary(total int, q Query, area *geo.PostalArea) string {
	switch {
	case total == 0 && area != nil:
		return fmt.Sprintf("No facilities found within %g miles of %s", q.RadiusMiles, q.PostalCode)
	case total == 0:
		return "No facilities found matching your criteria"
	case area != nil:
		return fmt.Sprintf("Found %d facilities within %g miles of %s, %s", total, q.RadiusMiles, area.City, area.Region)
	default:
		return fmt.Sprintf("Found %d facilities", total)
	}
}
