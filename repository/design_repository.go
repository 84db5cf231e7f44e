// repository/design_repository.go
package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type DesignRepository struct {
	DB *gorm.DB
}

func NewDesignRepository(db *gorm.DB) *DesignRepository {
	return &DesignRepository{DB: db}
}

func (r *DesignRepository) Create(design *entity.Design) error {
	return r.DB.Create(design).Error
}

func (r *DesignRepository) FindByID(id uint) (*entity.Design, error) {
	var design entity.Design
	if err := r.DB.Preload("Cake").First(&design, id).Error; err != nil {
		return nil, err
	}
	return &design, nil
}

// FindAll returns every design with its cake preloaded, featured first
// then oldest id, matching the storefront browse order.
func (r *DesignRepository) FindAll() ([]entity.Design, error) {
	var designs []entity.Design
	err := r.DB.Preload("Cake").
		Order("featured DESC, id ASC").
		Find(&designs).Error
	return designs, err
}

func (r *DesignRepository) FindByCake(cakeID uint) ([]entity.Design, error) {
	var designs []entity.Design
	err := r.DB.Where("cake_id = ?", cakeID).Order("id").Find(&designs).Error
	return designs, err
}

func (r *DesignRepository) Update(design *entity.Design) error {
	return r.DB.Save(design).Error
}

func (r *DesignRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Design{}).Count(&count).Error
	return count, err
}

// CountByComplexity groups designs by complexity level. Ordering of the
// buckets is the caller's concern.
func (r *DesignRepository) CountByComplexity() (map[entity.ComplexityLevel]int64, error) {
	type row struct {
		ComplexityLevel entity.ComplexityLevel
		Count           int64
	}
	var rows []row
	err := r.DB.Model(&entity.Design{}).
		Select("complexity_level, COUNT(*) AS count").
		Group("complexity_level").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.ComplexityLevel]int64, len(rows))
	for _, rw := range rows {
		counts[rw.ComplexityLevel] = rw.Count
	}
	return counts, nil
}
