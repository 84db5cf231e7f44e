package services

import (
	"errors"
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListWithDetailsEnrichesRows(t *testing.T) {
	db := setupTestDB(t)
	cakeRepo, designRepo, _, reviewRepo := newRepos(db)
	svc := NewDesignService(designRepo, cakeRepo, reviewRepo)

	cake := makeCake(t, db, "Chocolate Dream", 1500)
	design := makeDesign(t, db, cake.ID, entity.ComplexityComplex, false)
	customer := makeCustomer(t, db, "Maria Santos", "maria@example.com", "Manila")
	makeReview(t, db, customer.ID, design.ID, 5)
	makeReview(t, db, customer.ID, design.ID, 4)

	views, err := svc.ListWithDetails()
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, design.ID, view.DesignID)
	assert.Equal(t, "Chocolate Dream", view.CakeName)
	assert.Equal(t, 2250.00, view.CalculatedPrice) // 1500 * 1.50
	assert.Equal(t, 4.5, view.AverageRating)
	assert.Equal(t, 2, view.ReviewCount)
}

func TestListWithDetailsFeaturedFirst(t *testing.T) {
	db := setupTestDB(t)
	cakeRepo, designRepo, _, reviewRepo := newRepos(db)
	svc := NewDesignService(designRepo, cakeRepo, reviewRepo)

	cake := makeCake(t, db, "Classic Vanilla", 1200)
	plain := makeDesign(t, db, cake.ID, entity.ComplexitySimple, false)
	featured := makeDesign(t, db, cake.ID, entity.ComplexitySimple, true)

	views, err := svc.ListWithDetails()
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, featured.ID, views[0].DesignID)
	assert.Equal(t, plain.ID, views[1].DesignID)
}

func TestGetWithDetailsNotFound(t *testing.T) {
	db := setupTestDB(t)
	cakeRepo, designRepo, _, reviewRepo := newRepos(db)
	svc := NewDesignService(designRepo, cakeRepo, reviewRepo)

	_, err := svc.GetWithDetails(404)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCreateDesignRejectsUnknownComplexity(t *testing.T) {
	db := setupTestDB(t)
	cakeRepo, designRepo, _, reviewRepo := newRepos(db)
	svc := NewDesignService(designRepo, cakeRepo, reviewRepo)

	cake := makeCake(t, db, "Classic Vanilla", 1200)

	_, err := svc.Create(DesignInput{CakeID: cake.ID, Theme: "Birthday", ComplexityLevel: "Insane"})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "complexity_level", validation.Field)
}

func TestCreateDesignRequiresExistingCake(t *testing.T) {
	db := setupTestDB(t)
	cakeRepo, designRepo, _, reviewRepo := newRepos(db)
	svc := NewDesignService(designRepo, cakeRepo, reviewRepo)

	_, err := svc.Create(DesignInput{CakeID: 9999, ComplexityLevel: entity.ComplexitySimple})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "cake_id", validation.Field)
}

func TestCreateDesignDefaultsImage(t *testing.T) {
	db := setupTestDB(t)
	cakeRepo, designRepo, _, reviewRepo := newRepos(db)
	svc := NewDesignService(designRepo, cakeRepo, reviewRepo)

	cake := makeCake(t, db, "Classic Vanilla", 1200)

	design, err := svc.Create(DesignInput{CakeID: cake.ID, Theme: "Birthday", ComplexityLevel: entity.ComplexityModerate})
	require.NoError(t, err)
	assert.Equal(t, DefaultDesignImageURL, design.ImageURL)
	assert.False(t, design.Featured)
}

func TestTopDesignsUsesRanking(t *testing.T) {
	db := setupTestDB(t)
	cakeRepo, designRepo, _, reviewRepo := newRepos(db)
	svc := NewDesignService(designRepo, cakeRepo, reviewRepo)

	cake := makeCake(t, db, "Classic Vanilla", 1200)
	customer := makeCustomer(t, db, "Maria Santos", "maria@example.com", "Manila")

	lowRated := makeDesign(t, db, cake.ID, entity.ComplexitySimple, false)
	makeReview(t, db, customer.ID, lowRated.ID, 2)

	topRated := makeDesign(t, db, cake.ID, entity.ComplexitySimple, false)
	makeReview(t, db, customer.ID, topRated.ID, 5)

	featured := makeDesign(t, db, cake.ID, entity.ComplexitySimple, true)
	makeReview(t, db, customer.ID, featured.ID, 3)

	top, err := svc.TopDesigns(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, featured.ID, top[0].DesignID)
	assert.Equal(t, topRated.ID, top[1].DesignID)
}
