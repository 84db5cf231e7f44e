package services

import (
	"fmt"
	"testing"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory sqlite database named after the test
// so parallel tests never share state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Admin{},
		&entity.Cake{}, &entity.Design{},
		&entity.Customer{}, &entity.Review{},
	))
	return db
}

func newRepos(db *gorm.DB) (*repository.CakeRepository, *repository.DesignRepository, *repository.CustomerRepository, *repository.ReviewRepository) {
	return repository.NewCakeRepository(db),
		repository.NewDesignRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewReviewRepository(db)
}

func makeCake(t *testing.T, db *gorm.DB, name string, basePrice float64) *entity.Cake {
	t.Helper()
	cake := &entity.Cake{CakeName: name, Flavor: "Vanilla", BasePrice: basePrice, Availability: true}
	require.NoError(t, db.Create(cake).Error)
	return cake
}

func makeDesign(t *testing.T, db *gorm.DB, cakeID uint, level entity.ComplexityLevel, featured bool) *entity.Design {
	t.Helper()
	design := &entity.Design{
		CakeID:          cakeID,
		Theme:           fmt.Sprintf("theme-%d", time.Now().UnixNano()),
		ComplexityLevel: level,
		Featured:        featured,
	}
	require.NoError(t, db.Create(design).Error)
	return design
}

func makeCustomer(t *testing.T, db *gorm.DB, name, email, city string) *entity.Customer {
	t.Helper()
	customer := &entity.Customer{FullName: name, Email: email, City: city}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func makeReview(t *testing.T, db *gorm.DB, customerID, designID uint, rating int) *entity.Review {
	t.Helper()
	review := &entity.Review{
		CustomerID: customerID,
		DesignID:   designID,
		Rating:     rating,
		ReviewDate: time.Now(),
	}
	require.NoError(t, db.Create(review).Error)
	return review
}
