// services/auth_service.go
package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles customer signup/login and admin login. Credentials
// are bcrypt hashes; the comparison never reveals which half failed.
type AuthService struct {
	customerRepo *repository.CustomerRepository
	db           *gorm.DB
	jwtSecret    string
	jwtTTL       time.Duration
}

func NewAuthService(customerRepo *repository.CustomerRepository, db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		customerRepo: customerRepo,
		db:           db,
		jwtSecret:    secret,
		jwtTTL:       ttl,
	}
}

// Signup creates a customer account. A taken email fails with
// ErrDuplicateEmail so the frontend can say "email already registered".
func (s *AuthService) Signup(fullName, email, city, password string) (*entity.Customer, error) {
	email = normalizeEmail(email)

	count, err := s.customerRepo.CountByEmailExcluding(email, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	customer := &entity.Customer{
		FullName: strings.TrimSpace(fullName),
		Email:    email,
		City:     strings.TrimSpace(city),
		Password: string(hashed),
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Login checks customer credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.Customer, error) {
	customer, err := s.customerRepo.FindByEmail(normalizeEmail(email))
	if err != nil {
		return "", nil, errors.New("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateToken(customer.ID, "customer", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, customer, nil
}

// AdminLogin checks admin credentials and issues a JWT with the admin role.
func (s *AuthService) AdminLogin(username, password string) (string, *entity.Admin, error) {
	var admin entity.Admin
	if err := s.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(admin.ID, "admin", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, &admin, nil
}
