package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"facility-finder/internal/models"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Review moderation states.
const (
	ReviewPending  = "PENDING"
	ReviewApproved = "APPROVED"
	ReviewRejected = "REJECTED"
)

// Suggestion states.
const (
	SuggestionOpen     = "OPEN"
	SuggestionAccepted = "ACCEPTED"
	SuggestionClosed   = "CLOSED"
)

var (
	// ErrReviewNotFound is returned when moderating an unknown review.
	ErrReviewNotFound     = errors.New("review not found")
	ErrSuggestionNotFound = errors.New("suggestion not found")
)

// ReviewService stores reviews and suggestions submitted by visitors.
// Search never reads from it; approved reviews feed facility ratings.
type ReviewService struct {
	db *bun.DB
}

func NewReviewService(db *bun.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CreateReview stores a pending review for an active facility.
func (s *ReviewService) CreateReview(ctx context.Context, facilityID uuid.UUID, req models.CreateReviewRequest) (*models.Review, error) {
	exists, err := s.db.NewSelect().
		Model((*models.Facility)(nil)).
		Where("id = ?", facilityID).
		Where("is_active = TRUE").
		Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("check facility: %w", err)
	}
	if !exists {
		return nil, ErrFacilityNotFound
	}

	review := &models.Review{
		ID:         uuid.New(),
		FacilityID: facilityID,
		Author:     req.Author,
		Email:      req.Email,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Status:     ReviewPending,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := s.db.NewInsert().Model(review).Exec(ctx); err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return review, nil
}

// CreateSuggestion stores a visitor suggestion.
func (s *ReviewService) CreateSuggestion(ctx context.Context, req models.CreateSuggestionRequest) (*models.Suggestion, error) {
	suggestion := &models.Suggestion{
		ID:           uuid.New(),
		FacilityID:   req.FacilityID,
		FacilityName: req.FacilityName,
		Address:      req.Address,
		PostalCode:   req.PostalCode,
		Email:        req.Email,
		Notes:        req.Notes,
		Status:       SuggestionOpen,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.db.NewInsert().Model(suggestion).Exec(ctx); err != nil {
		return nil, fmt.Errorf("insert suggestion: %w", err)
	}
	return suggestion, nil
}

// ListReviews returns reviews newest first, optionally filtered by status.
func (s *ReviewService) ListReviews(ctx context.Context, status string, limit, offset int) ([]models.Review, error) {
	var reviews []models.Review
	q := s.db.NewSelect().Model(&reviews)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Scan(ctx)
	return reviews, err
}

// ListSuggestions returns suggestions newest first, optionally filtered by status.
func (s *ReviewService) ListSuggestions(ctx context.Context, status string, limit, offset int) ([]models.Suggestion, error) {
	var suggestions []models.Suggestion
	q := s.db.NewSelect().Model(&suggestions)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Scan(ctx)
	return suggestions, err
}

// UpdateReviewStatus moderates a review and refreshes the facility's rating
// and review count from its approved reviews.
func (s *ReviewService) UpdateReviewStatus(ctx context.Context, id uuid.UUID, status string) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var facilityID uuid.UUID
		err := tx.NewUpdate().
			Model((*models.Review)(nil)).
			Set("status = ?", status).
			Where("id = ?", id).
			Returning("facility_id").
			Scan(ctx, &facilityID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrReviewNotFound
		}
		if err != nil {
			return fmt.Errorf("update review status: %w", err)
		}

		_, err = tx.NewUpdate().
			Model((*models.Facility)(nil)).
			Set("rating = COALESCE((SELECT ROUND(AVG(rating)::numeric, 1) FROM reviews WHERE facility_id = ? AND status = ?), 0)", facilityID, ReviewApproved).
			Set("review_count = (SELECT COUNT(*) FROM reviews WHERE facility_id = ? AND status = ?)", facilityID, ReviewApproved).
			Set("updated_at = ?", time.Now().UTC()).
			Where("id = ?", facilityID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("refresh facility rating: %w", err)
		}
		return nil
	})
}

// UpdateSuggestionStatus moves a suggestion through its workflow.
func (s *ReviewService) UpdateSuggestionStatus(ctx context.Context, id uuid.UUID, status string) error {
	res, err := s.db.NewUpdate().
		Model((*models.Suggestion)(nil)).
		Set("status = ?", status).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update suggestion status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSuggestionNotFound
	}
	return nil
}
