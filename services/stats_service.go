// services/stats_service.go
package services

import (
	"backend/entity"
	"backend/repository"
)

// Dashboard city chart keeps only the busiest cities.
const topCityCount = 6

type StatsService struct {
	cakeRepo     *repository.CakeRepository
	designRepo   *repository.DesignRepository
	customerRepo *repository.CustomerRepository
	reviewRepo   *repository.ReviewRepository
}

func NewStatsService(cakeRepo *repository.CakeRepository, designRepo *repository.DesignRepository, customerRepo *repository.CustomerRepository, reviewRepo *repository.ReviewRepository) *StatsService {
	return &StatsService{
		cakeRepo:     cakeRepo,
		designRepo:   designRepo,
		customerRepo: customerRepo,
		reviewRepo:   reviewRepo,
	}
}

type ComplexityBucket struct {
	Level entity.ComplexityLevel `json:"complexity_level"`
	Count int64                  `json:"count"`
}

type CityBucket struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

type DashboardStats struct {
	TotalCakes     int64   `json:"total_cakes"`
	TotalDesigns   int64   `json:"total_designs"`
	TotalCustomers int64   `json:"total_customers"`
	TotalReviews   int64   `json:"total_reviews"`
	AverageRating  float64 `json:"average_rating"`
	AvailableCakes int64   `json:"available_cakes"`

	ComplexityDistribution []ComplexityBucket `json:"complexity_distribution"`
	RatingDistribution     []int64            `json:"rating_distribution"`
	CityDistribution       []CityBucket       `json:"city_distribution"`
}

// Dashboard assembles the admin statistics payload: entity totals, the
// overall average rating (1 decimal place, 0 with no reviews) and the three
// chart distributions.
func (s *StatsService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalCakes, err = s.cakeRepo.CountAll(); err != nil {
		return nil, err
	}
	if stats.AvailableCakes, err = s.cakeRepo.CountAvailable(); err != nil {
		return nil, err
	}
	if stats.TotalDesigns, err = s.designRepo.CountAll(); err != nil {
		return nil, err
	}
	if stats.TotalCustomers, err = s.customerRepo.CountAll(); err != nil {
		return nil, err
	}
	if stats.TotalReviews, err = s.reviewRepo.CountAll(); err != nil {
		return nil, err
	}

	avg, err := s.reviewRepo.AverageRating()
	if err != nil {
		return nil, err
	}
	stats.AverageRating = roundTo(avg, 1)

	if stats.ComplexityDistribution, err = s.complexityDistribution(); err != nil {
		return nil, err
	}
	if stats.RatingDistribution, err = s.ratingDistribution(); err != nil {
		return nil, err
	}
	if stats.CityDistribution, err = s.cityDistribution(); err != nil {
		return nil, err
	}
	return stats, nil
}

// complexityDistribution orders buckets by tier rank, Simple through
// Expert, not alphabetically and not by count. Tiers with no designs are
// left out, matching a plain GROUP BY.
func (s *StatsService) complexityDistribution() ([]ComplexityBucket, error) {
	counts, err := s.designRepo.CountByComplexity()
	if err != nil {
		return nil, err
	}
	buckets := make([]ComplexityBucket, 0, len(counts))
	for _, level := range entity.ComplexityLevels() {
		if n, ok := counts[level]; ok {
			buckets = append(buckets, ComplexityBucket{Level: level, Count: n})
		}
	}
	return buckets, nil
}

// ratingDistribution always reports five buckets for 1..5 stars; ratings
// nobody gave show as 0 rather than being omitted.
func (s *StatsService) ratingDistribution() ([]int64, error) {
	counts, err := s.reviewRepo.RatingCounts()
	if err != nil {
		return nil, err
	}
	dist := make([]int64, 5)
	for rating, n := range counts {
		if rating >= 1 && rating <= 5 {
			dist[rating-1] = n
		}
	}
	return dist, nil
}

// cityDistribution keeps the top cities by customer count. The repository
// orders by count descending then city name, so ties at the cutoff resolve
// alphabetically.
func (s *StatsService) cityDistribution() ([]CityBucket, error) {
	rows, err := s.customerRepo.CityCounts()
	if err != nil {
		return nil, err
	}
	if len(rows) > topCityCount {
		rows = rows[:topCityCount]
	}
	buckets := make([]CityBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, CityBucket{City: row.City, Count: row.Count})
	}
	return buckets, nil
}
