// repository/customer_repository.go
package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(customer *entity.Customer) error {
	return r.DB.Create(customer).Error
}

func (r *CustomerRepository) FindByID(id uint) (*entity.Customer, error) {
	var customer entity.Customer
	if err := r.DB.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) FindByEmail(email string) (*entity.Customer, error) {
	var customer entity.Customer
	if err := r.DB.Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// CountByEmailExcluding counts customers holding email, ignoring excludeID.
// Pass excludeID = 0 on insert.
func (r *CustomerRepository) CountByEmailExcluding(email string, excludeID uint) (int64, error) {
	var count int64
	q := r.DB.Model(&entity.Customer{}).Where("email = ?", email)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *CustomerRepository) FindAll() ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.DB.Order("id").Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) Update(customer *entity.Customer) error {
	return r.DB.Save(customer).Error
}

func (r *CustomerRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Customer{}).Count(&count).Error
	return count, err
}

type CityCount struct {
	City  string
	Count int64
}

// CityCounts groups customers by city, most customers first. Ties are
// broken by city name so the top-K cutoff is deterministic.
func (r *CustomerRepository) CityCounts() ([]CityCount, error) {
	var rows []CityCount
	err := r.DB.Model(&entity.Customer{}).
		Select("city, COUNT(*) AS count").
		Group("city").
		Order("count DESC, city ASC").
		Scan(&rows).Error
	return rows, err
}
