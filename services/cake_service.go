// services/cake_service.go
package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type CakeService struct {
	cakeRepo   *repository.CakeRepository
	designRepo *repository.DesignRepository
}

func NewCakeService(cakeRepo *repository.CakeRepository, designRepo *repository.DesignRepository) *CakeService {
	return &CakeService{cakeRepo: cakeRepo, designRepo: designRepo}
}

type CakeInput struct {
	CakeName     string  `json:"cake_name" binding:"required"`
	Flavor       string  `json:"flavor"`
	Frosting     string  `json:"frosting"`
	Size         string  `json:"size"`
	BasePrice    float64 `json:"base_price"`
	Availability bool    `json:"availability"`
}

func (s *CakeService) List() ([]entity.Cake, error) {
	return s.cakeRepo.FindAll()
}

func (s *CakeService) ListAvailable() ([]entity.Cake, error) {
	return s.cakeRepo.FindAvailable()
}

func (s *CakeService) Get(id uint) (*entity.Cake, error) {
	cake, err := s.cakeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cake, nil
}

// GetWithDesigns returns a cake and the designs built on it.
func (s *CakeService) GetWithDesigns(id uint) (*entity.Cake, []entity.Design, error) {
	cake, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}
	designs, err := s.designRepo.FindByCake(id)
	if err != nil {
		return nil, nil, err
	}
	return cake, designs, nil
}

func (s *CakeService) Search(term, flavor, size string, minPrice, maxPrice *float64) ([]entity.Cake, error) {
	return s.cakeRepo.Search(term, flavor, size, minPrice, maxPrice)
}

// Flavors and Sizes back the storefront search and calculator dropdowns.
func (s *CakeService) Flavors() ([]string, error) {
	return s.cakeRepo.DistinctFlavors()
}

func (s *CakeService) Sizes() ([]string, error) {
	return s.cakeRepo.DistinctSizes()
}

// PriceQuote is the calculator result for a cake and a complexity tier,
// priced without saving a design.
type PriceQuote struct {
	CakeID          uint                   `json:"cake_id"`
	CakeName        string                 `json:"cake_name"`
	BasePrice       float64                `json:"base_price"`
	ComplexityLevel entity.ComplexityLevel `json:"complexity_level"`
	Multiplier      float64                `json:"multiplier"`
	CalculatedPrice float64                `json:"calculated_price"`
}

// Quote prices a prospective design. Unknown complexity levels are
// rejected here; the lenient fallback is only for rows already stored.
func (s *CakeService) Quote(cakeID uint, level entity.ComplexityLevel) (*PriceQuote, error) {
	if !level.Valid() {
		return nil, &ValidationError{Field: "complexity_level", Reason: "unknown complexity level"}
	}
	cake, err := s.Get(cakeID)
	if err != nil {
		return nil, err
	}
	return &PriceQuote{
		CakeID:          cake.ID,
		CakeName:        cake.CakeName,
		BasePrice:       cake.BasePrice,
		ComplexityLevel: level,
		Multiplier:      complexityMultipliers[level],
		CalculatedPrice: CalculatePrice(&entity.Design{ComplexityLevel: level}, cake),
	}, nil
}

func (s *CakeService) Create(in CakeInput) (*entity.Cake, error) {
	if in.BasePrice < 0 {
		return nil, &ValidationError{Field: "base_price", Reason: "must not be negative"}
	}
	cake := &entity.Cake{
		CakeName:     in.CakeName,
		Flavor:       in.Flavor,
		Frosting:     in.Frosting,
		Size:         in.Size,
		BasePrice:    in.BasePrice,
		Availability: in.Availability,
	}
	if err := s.cakeRepo.Create(cake); err != nil {
		return nil, err
	}
	return cake, nil
}

func (s *CakeService) Update(id uint, in CakeInput) (*entity.Cake, error) {
	if in.BasePrice < 0 {
		return nil, &ValidationError{Field: "base_price", Reason: "must not be negative"}
	}
	cake, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	cake.CakeName = in.CakeName
	cake.Flavor = in.Flavor
	cake.Frosting = in.Frosting
	cake.Size = in.Size
	cake.BasePrice = in.BasePrice
	cake.Availability = in.Availability
	if err := s.cakeRepo.Update(cake); err != nil {
		return nil, err
	}
	return cake, nil
}
