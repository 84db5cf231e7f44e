package services

import (
	"errors"
	"testing"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignupAndLogin(t *testing.T) {
	db := setupTestDB(t)
	customerRepo := repository.NewCustomerRepository(db)
	svc := NewAuthService(customerRepo, db, "test-secret", time.Hour)

	customer, err := svc.Signup("Maria Santos", "Maria@Example.com", "Manila", "sweettooth")
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", customer.Email)
	// stored credential is a hash, never the password itself
	assert.NotEqual(t, "sweettooth", customer.Password)

	token, loggedIn, err := svc.Login("maria@example.com", "sweettooth")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, customer.ID, loggedIn.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	customerRepo := repository.NewCustomerRepository(db)
	svc := NewAuthService(customerRepo, db, "test-secret", time.Hour)

	_, err := svc.Signup("Maria Santos", "maria@example.com", "Manila", "sweettooth")
	require.NoError(t, err)

	_, err = svc.Signup("Impostor", "maria@example.com", "Cebu", "other")
	assert.True(t, errors.Is(err, ErrDuplicateEmail))
}

func TestLoginWrongCredentials(t *testing.T) {
	db := setupTestDB(t)
	customerRepo := repository.NewCustomerRepository(db)
	svc := NewAuthService(customerRepo, db, "test-secret", time.Hour)

	_, err := svc.Signup("Maria Santos", "maria@example.com", "Manila", "sweettooth")
	require.NoError(t, err)

	_, _, err = svc.Login("maria@example.com", "wrong")
	assert.Error(t, err)

	_, _, err = svc.Login("nobody@example.com", "sweettooth")
	assert.Error(t, err)
}

func TestAdminLogin(t *testing.T) {
	db := setupTestDB(t)
	customerRepo := repository.NewCustomerRepository(db)
	svc := NewAuthService(customerRepo, db, "test-secret", time.Hour)

	hashed, err := bcrypt.GenerateFromPassword([]byte("crumbear123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Admin{Username: "admin", PasswordHash: string(hashed)}).Error)

	token, admin, err := svc.AdminLogin("admin", "crumbear123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", admin.Username)

	_, _, err = svc.AdminLogin("admin", "nope")
	assert.Error(t, err)
}
