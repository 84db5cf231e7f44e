package services

import (
	"errors"
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerAssignsFreshID(t *testing.T) {
	db := setupTestDB(t)
	_, _, customerRepo, reviewRepo := newRepos(db)
	svc := NewCustomerService(customerRepo, reviewRepo)

	first, err := svc.Create(CustomerInput{FullName: "Maria Santos", Email: "maria@example.com", City: "Manila"})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	second, err := svc.Create(CustomerInput{FullName: "Juan Cruz", Email: "juan@example.com", City: "Quezon City"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	_, _, customerRepo, reviewRepo := newRepos(db)
	svc := NewCustomerService(customerRepo, reviewRepo)

	_, err := svc.Create(CustomerInput{FullName: "Maria Santos", Email: "maria@example.com"})
	require.NoError(t, err)

	// emails are normalized before comparison
	_, err = svc.Create(CustomerInput{FullName: "Other Maria", Email: "  MARIA@example.com "})
	assert.True(t, errors.Is(err, ErrDuplicateEmail))
}

func TestUpdateCustomerEmailCollision(t *testing.T) {
	db := setupTestDB(t)
	_, _, customerRepo, reviewRepo := newRepos(db)
	svc := NewCustomerService(customerRepo, reviewRepo)

	maria, err := svc.Create(CustomerInput{FullName: "Maria Santos", Email: "maria@example.com"})
	require.NoError(t, err)
	juan, err := svc.Create(CustomerInput{FullName: "Juan Cruz", Email: "juan@example.com"})
	require.NoError(t, err)

	// taking someone else's email fails
	_, err = svc.Update(juan.ID, CustomerInput{FullName: "Juan Cruz", Email: "maria@example.com"})
	assert.True(t, errors.Is(err, ErrDuplicateEmail))

	// keeping your own email is fine
	updated, err := svc.Update(maria.ID, CustomerInput{FullName: "Maria S.", Email: "maria@example.com", City: "Pasig"})
	require.NoError(t, err)
	assert.Equal(t, "Maria S.", updated.FullName)
	assert.Equal(t, "Pasig", updated.City)
}

func TestCustomerViewAggregatesReviews(t *testing.T) {
	db := setupTestDB(t)
	_, _, customerRepo, reviewRepo := newRepos(db)
	svc := NewCustomerService(customerRepo, reviewRepo)

	cake := makeCake(t, db, "Classic Vanilla", 1200)
	design := makeDesign(t, db, cake.ID, entity.ComplexitySimple, false)
	customer := makeCustomer(t, db, "Maria Santos", "maria@example.com", "Manila")
	makeReview(t, db, customer.ID, design.ID, 5)
	makeReview(t, db, customer.ID, design.ID, 4)

	view, err := svc.GetView(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.TotalReviews)
	assert.Equal(t, 4.5, view.AverageRatingGiven)
}

func TestCustomerViewNoReviews(t *testing.T) {
	db := setupTestDB(t)
	_, _, customerRepo, reviewRepo := newRepos(db)
	svc := NewCustomerService(customerRepo, reviewRepo)

	customer := makeCustomer(t, db, "Ana Reyes", "ana@example.com", "Makati")

	view, err := svc.GetView(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, view.TotalReviews)
	assert.Equal(t, 0.0, view.AverageRatingGiven)
}

func TestListViewsGroupsReviewsPerCustomer(t *testing.T) {
	db := setupTestDB(t)
	_, _, customerRepo, reviewRepo := newRepos(db)
	svc := NewCustomerService(customerRepo, reviewRepo)

	cake := makeCake(t, db, "Classic Vanilla", 1200)
	design := makeDesign(t, db, cake.ID, entity.ComplexitySimple, false)
	maria := makeCustomer(t, db, "Maria Santos", "maria@example.com", "Manila")
	ana := makeCustomer(t, db, "Ana Reyes", "ana@example.com", "Makati")
	makeReview(t, db, maria.ID, design.ID, 5)
	makeReview(t, db, maria.ID, design.ID, 4)

	views, err := svc.ListViews()
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, maria.ID, views[0].CustomerID)
	assert.Equal(t, 2, views[0].TotalReviews)
	assert.Equal(t, 4.5, views[0].AverageRatingGiven)

	assert.Equal(t, ana.ID, views[1].CustomerID)
	assert.Equal(t, 0, views[1].TotalReviews)
}

func TestGetCustomerNotFound(t *testing.T) {
	db := setupTestDB(t)
	_, _, customerRepo, reviewRepo := newRepos(db)
	svc := NewCustomerService(customerRepo, reviewRepo)

	_, err := svc.Get(404)
	assert.True(t, errors.Is(err, ErrNotFound))
}
