// repository/cake_repository.go
package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type CakeRepository struct {
	DB *gorm.DB
}

func NewCakeRepository(db *gorm.DB) *CakeRepository {
	return &CakeRepository{DB: db}
}

func (r *CakeRepository) Create(cake *entity.Cake) error {
	return r.DB.Create(cake).Error
}

func (r *CakeRepository) FindByID(id uint) (*entity.Cake, error) {
	var cake entity.Cake
	if err := r.DB.First(&cake, id).Error; err != nil {
		return nil, err
	}
	return &cake, nil
}

func (r *CakeRepository) FindAll() ([]entity.Cake, error) {
	var cakes []entity.Cake
	err := r.DB.Order("id").Find(&cakes).Error
	return cakes, err
}

func (r *CakeRepository) FindAvailable() ([]entity.Cake, error) {
	var cakes []entity.Cake
	err := r.DB.Where("availability = ?", true).Order("id").Find(&cakes).Error
	return cakes, err
}

// Search filters cakes by name/flavor substring, exact flavor, exact size
// and a base price range. Empty parameters are skipped.
func (r *CakeRepository) Search(term, flavor, size string, minPrice, maxPrice *float64) ([]entity.Cake, error) {
	q := r.DB.Model(&entity.Cake{})
	if term != "" {
		like := "%" + term + "%"
		q = q.Where("cake_name LIKE ? OR flavor LIKE ?", like, like)
	}
	if flavor != "" {
		q = q.Where("flavor = ?", flavor)
	}
	if size != "" {
		q = q.Where("size = ?", size)
	}
	if minPrice != nil {
		q = q.Where("base_price >= ?", *minPrice)
	}
	if maxPrice != nil {
		q = q.Where("base_price <= ?", *maxPrice)
	}

	var cakes []entity.Cake
	err := q.Order("id").Find(&cakes).Error
	return cakes, err
}

// DistinctFlavors lists the flavors of cakes currently offered, for the
// storefront search form.
func (r *CakeRepository) DistinctFlavors() ([]string, error) {
	var flavors []string
	err := r.DB.Model(&entity.Cake{}).
		Where("availability = ? AND flavor <> ''", true).
		Distinct("flavor").
		Order("flavor").
		Pluck("flavor", &flavors).Error
	return flavors, err
}

func (r *CakeRepository) DistinctSizes() ([]string, error) {
	var sizes []string
	err := r.DB.Model(&entity.Cake{}).
		Where("availability = ? AND size <> ''", true).
		Distinct("size").
		Order("size").
		Pluck("size", &sizes).Error
	return sizes, err
}

func (r *CakeRepository) Update(cake *entity.Cake) error {
	return r.DB.Save(cake).Error
}

func (r *CakeRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Cake{}).Count(&count).Error
	return count, err
}

func (r *CakeRepository) CountAvailable() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Cake{}).Where("availability = ?", true).Count(&count).Error
	return count, err
}
