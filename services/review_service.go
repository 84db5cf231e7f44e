// services/review_service.go
package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	reviewRepo   *repository.ReviewRepository
	customerRepo *repository.CustomerRepository
	designRepo   *repository.DesignRepository
}

func NewReviewService(reviewRepo *repository.ReviewRepository, customerRepo *repository.CustomerRepository, designRepo *repository.DesignRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, customerRepo: customerRepo, designRepo: designRepo}
}

type ReviewInput struct {
	CustomerID uint   `json:"customer_id"`
	DesignID   uint   `json:"design_id"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

// ModerationRow is one review on the admin screen, joined with reviewer
// and design context plus the design's current average.
type ModerationRow struct {
	ReviewID        uint      `json:"review_id"`
	CustomerID      uint      `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	DesignID        uint      `json:"design_id"`
	Theme           string    `json:"theme"`
	Rating          int       `json:"rating"`
	ReviewText      string    `json:"review_text"`
	ReviewDate      time.Time `json:"review_date"`
	IsHidden        bool      `json:"is_hidden"`
	DesignAvgRating float64   `json:"design_avg_rating"`
}

// Create validates and stores a review. Both referenced rows must exist at
// write time; the rating must be in 1..5, never clamped.
func (s *ReviewService) Create(in ReviewInput) (*entity.Review, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	review := &entity.Review{
		CustomerID: in.CustomerID,
		DesignID:   in.DesignID,
		Rating:     in.Rating,
		ReviewText: in.ReviewText,
		ReviewDate: time.Now(),
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Update(id uint, in ReviewInput) (*entity.Review, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	review, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	review.CustomerID = in.CustomerID
	review.DesignID = in.DesignID
	review.Rating = in.Rating
	review.ReviewText = in.ReviewText
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Get(id uint) (*entity.Review, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return review, nil
}

// ListForDesign returns a design's reviews newest first. visibleOnly is the
// public storefront filter; moderation and aggregation see everything.
func (s *ReviewService) ListForDesign(designID uint, visibleOnly bool) ([]entity.Review, error) {
	return s.reviewRepo.FindByDesign(designID, visibleOnly)
}

func (s *ReviewService) ListForCustomer(customerID uint) ([]entity.Review, error) {
	return s.reviewRepo.FindByCustomer(customerID)
}

// ListModeration builds the admin review table rows.
func (s *ReviewService) ListModeration() ([]ModerationRow, error) {
	reviews, err := s.reviewRepo.FindAll()
	if err != nil {
		return nil, err
	}
	byDesign, err := s.reviewRepo.FindAllByDesigns()
	if err != nil {
		return nil, err
	}

	rows := make([]ModerationRow, 0, len(reviews))
	for _, r := range reviews {
		summary := AggregateRatings(byDesign[r.DesignID])
		rows = append(rows, ModerationRow{
			ReviewID:        r.ID,
			CustomerID:      r.CustomerID,
			CustomerName:    r.Customer.FullName,
			DesignID:        r.DesignID,
			Theme:           r.Design.Theme,
			Rating:          r.Rating,
			ReviewText:      r.ReviewText,
			ReviewDate:      r.ReviewDate,
			IsHidden:        r.IsHidden,
			DesignAvgRating: summary.Average,
		})
	}
	return rows, nil
}

// SetHidden toggles the moderation flag. Hidden reviews still count toward
// aggregates; they only disappear from the public list.
func (s *ReviewService) SetHidden(id uint, hidden bool) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.reviewRepo.SetHidden(id, hidden)
}

// Delete removes a review. Reviews have no dependents, so no guard applies.
func (s *ReviewService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.reviewRepo.Delete(id)
}

func (s *ReviewService) validate(in ReviewInput) error {
	if in.Rating < 1 || in.Rating > 5 {
		return &ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}
	if _, err := s.customerRepo.FindByID(in.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ValidationError{Field: "customer_id", Reason: "customer does not exist"}
		}
		return err
	}
	if _, err := s.designRepo.FindByID(in.DesignID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ValidationError{Field: "design_id", Reason: "design does not exist"}
		}
		return err
	}
	return nil
}
