// repository/review_repository.go
package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var review entity.Review
	if err := r.DB.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// FindAll returns every review newest first, with reviewer and design
// preloaded for the moderation screen.
func (r *ReviewRepository) FindAll() ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Preload("Customer").Preload("Design").
		Order("review_date DESC").
		Find(&reviews).Error
	return reviews, err
}

// FindByDesign returns a design's reviews newest first. Hidden reviews are
// included unless visibleOnly is set; aggregation always wants all of them,
// only the public list view filters.
func (r *ReviewRepository) FindByDesign(designID uint, visibleOnly bool) ([]entity.Review, error) {
	q := r.DB.Where("design_id = ?", designID)
	if visibleOnly {
		q = q.Where("is_hidden = ?", false)
	}
	var reviews []entity.Review
	err := q.Preload("Customer").Order("review_date DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindByCustomer(customerID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("customer_id = ?", customerID).
		Order("review_date DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) FindAllByDesigns() (map[uint][]entity.Review, error) {
	var reviews []entity.Review
	if err := r.DB.Find(&reviews).Error; err != nil {
		return nil, err
	}
	byDesign := make(map[uint][]entity.Review)
	for _, rv := range reviews {
		byDesign[rv.DesignID] = append(byDesign[rv.DesignID], rv)
	}
	return byDesign, nil
}

func (r *ReviewRepository) FindAllByCustomers() (map[uint][]entity.Review, error) {
	var reviews []entity.Review
	if err := r.DB.Find(&reviews).Error; err != nil {
		return nil, err
	}
	byCustomer := make(map[uint][]entity.Review)
	for _, rv := range reviews {
		byCustomer[rv.CustomerID] = append(byCustomer[rv.CustomerID], rv)
	}
	return byCustomer, nil
}

func (r *ReviewRepository) Update(review *entity.Review) error {
	return r.DB.Save(review).Error
}

func (r *ReviewRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Review{}, id).Error
}

func (r *ReviewRepository) SetHidden(id uint, hidden bool) error {
	return r.DB.Model(&entity.Review{}).
		Where("id = ?", id).
		Update("is_hidden", hidden).Error
}

func (r *ReviewRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).Count(&count).Error
	return count, err
}

// AverageRating is the mean rating over every review, 0 when there are none.
func (r *ReviewRepository) AverageRating() (float64, error) {
	var avg *float64
	err := r.DB.Model(&entity.Review{}).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

// RatingCounts groups reviews by rating value 1..5.
func (r *ReviewRepository) RatingCounts() (map[int]int64, error) {
	type row struct {
		Rating int
		Count  int64
	}
	var rows []row
	err := r.DB.Model(&entity.Review{}).
		Select("rating, COUNT(*) AS count").
		Group("rating").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Rating] = rw.Count
	}
	return counts, nil
}
