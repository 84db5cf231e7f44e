// services/design_service.go
package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// Fallback artwork for designs created without an upload, same placeholder
// the storefront has always shipped with.
const DefaultDesignImageURL = "https://images.unsplash.com/photo-1464349095431-e9a21285b5f3?w=800&q=80"

type DesignService struct {
	designRepo *repository.DesignRepository
	cakeRepo   *repository.CakeRepository
	reviewRepo *repository.ReviewRepository
}

func NewDesignService(designRepo *repository.DesignRepository, cakeRepo *repository.CakeRepository, reviewRepo *repository.ReviewRepository) *DesignService {
	return &DesignService{designRepo: designRepo, cakeRepo: cakeRepo, reviewRepo: reviewRepo}
}

type DesignInput struct {
	CakeID          uint                   `json:"cake_id" binding:"required"`
	Theme           string                 `json:"theme"`
	ColorPalette    string                 `json:"color_palette"`
	TopperType      *string                `json:"topper_type"`
	ComplexityLevel entity.ComplexityLevel `json:"complexity_level"`
	ImageURL        string                 `json:"image_url"`
	Featured        bool                   `json:"featured"`
}

// ListWithDetails returns every design enriched with price and rating, in
// the storefront browse order: featured first, then oldest design.
func (s *DesignService) ListWithDetails() ([]DesignView, error) {
	designs, err := s.designRepo.FindAll()
	if err != nil {
		return nil, err
	}
	reviewsByDesign, err := s.reviewRepo.FindAllByDesigns()
	if err != nil {
		return nil, err
	}

	views := make([]DesignView, 0, len(designs))
	for i := range designs {
		d := &designs[i]
		views = append(views, BuildDesignView(d, &d.Cake, reviewsByDesign[d.ID]))
	}
	return views, nil
}

func (s *DesignService) GetWithDetails(id uint) (*DesignView, error) {
	design, err := s.designRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	reviews, err := s.reviewRepo.FindByDesign(id, false)
	if err != nil {
		return nil, err
	}
	view := BuildDesignView(design, &design.Cake, reviews)
	return &view, nil
}

// TopDesigns ranks every enriched design and keeps the first n.
func (s *DesignService) TopDesigns(n int) ([]DesignView, error) {
	views, err := s.ListWithDetails()
	if err != nil {
		return nil, err
	}
	return RankDesigns(views, n), nil
}

func (s *DesignService) Get(id uint) (*entity.Design, error) {
	design, err := s.designRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return design, nil
}

func (s *DesignService) Create(in DesignInput) (*entity.Design, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	imageURL := in.ImageURL
	if imageURL == "" {
		imageURL = DefaultDesignImageURL
	}
	design := &entity.Design{
		CakeID:          in.CakeID,
		Theme:           in.Theme,
		ColorPalette:    in.ColorPalette,
		TopperType:      in.TopperType,
		ComplexityLevel: in.ComplexityLevel,
		ImageURL:        imageURL,
		Featured:        in.Featured,
	}
	if err := s.designRepo.Create(design); err != nil {
		return nil, err
	}
	return design, nil
}

func (s *DesignService) Update(id uint, in DesignInput) (*entity.Design, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	design, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	design.CakeID = in.CakeID
	design.Theme = in.Theme
	design.ColorPalette = in.ColorPalette
	design.TopperType = in.TopperType
	design.ComplexityLevel = in.ComplexityLevel
	design.Featured = in.Featured
	if in.ImageURL != "" {
		design.ImageURL = in.ImageURL
	}
	if err := s.designRepo.Update(design); err != nil {
		return nil, err
	}
	return design, nil
}

// Writes are strict about the complexity enum even though pricing is
// lenient about rows already in the store.
func (s *DesignService) validate(in DesignInput) error {
	if !in.ComplexityLevel.Valid() {
		return &ValidationError{Field: "complexity_level", Reason: "must be one of Simple, Moderate, Complex, Expert"}
	}
	if _, err := s.cakeRepo.FindByID(in.CakeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ValidationError{Field: "cake_id", Reason: "cake does not exist"}
		}
		return err
	}
	return nil
}
