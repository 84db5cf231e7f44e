// services/customer_service.go
package services

import (
	"errors"
	"strings"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type CustomerService struct {
	customerRepo *repository.CustomerRepository
	reviewRepo   *repository.ReviewRepository
}

func NewCustomerService(customerRepo *repository.CustomerRepository, reviewRepo *repository.ReviewRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, reviewRepo: reviewRepo}
}

type CustomerInput struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	City     string `json:"city"`
}

// CustomerView is a customer row with their review activity attached.
type CustomerView struct {
	CustomerID         uint    `json:"customer_id"`
	FullName           string  `json:"full_name"`
	Email              string  `json:"email"`
	City               string  `json:"city"`
	TotalReviews       int     `json:"total_reviews"`
	AverageRatingGiven float64 `json:"average_rating_given"`
}

func (s *CustomerService) Get(id uint) (*entity.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetView(id uint) (*CustomerView, error) {
	customer, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.FindByCustomer(id)
	if err != nil {
		return nil, err
	}
	view := buildCustomerView(customer, reviews)
	return &view, nil
}

// ListViews returns every customer with their review stats, oldest first.
func (s *CustomerService) ListViews() ([]CustomerView, error) {
	customers, err := s.customerRepo.FindAll()
	if err != nil {
		return nil, err
	}

	byCustomer, err := s.reviewRepo.FindAllByCustomers()
	if err != nil {
		return nil, err
	}

	views := make([]CustomerView, 0, len(customers))
	for i := range customers {
		views = append(views, buildCustomerView(&customers[i], byCustomer[customers[i].ID]))
	}
	return views, nil
}

func (s *CustomerService) Create(in CustomerInput) (*entity.Customer, error) {
	email := normalizeEmail(in.Email)
	count, err := s.customerRepo.CountByEmailExcluding(email, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	customer := &entity.Customer{
		FullName: strings.TrimSpace(in.FullName),
		Email:    email,
		City:     strings.TrimSpace(in.City),
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Update(id uint, in CustomerInput) (*entity.Customer, error) {
	customer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(in.Email)
	count, err := s.customerRepo.CountByEmailExcluding(email, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	customer.FullName = strings.TrimSpace(in.FullName)
	customer.Email = email
	customer.City = strings.TrimSpace(in.City)
	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func buildCustomerView(customer *entity.Customer, reviews []entity.Review) CustomerView {
	summary := AggregateRatings(reviews)
	return CustomerView{
		CustomerID:         customer.ID,
		FullName:           customer.FullName,
		Email:              customer.Email,
		City:               customer.City,
		TotalReviews:       summary.Count,
		AverageRatingGiven: summary.Average,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
