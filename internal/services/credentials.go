package services

import (
	"go-flowershop/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks a credential pair and yields the identity it belongs to.
type Verifier interface {
	Verify(email, password string) (models.User, bool)
}

// MockVerifier accepts every credential pair. Only the exact configured admin
// pair maps to the admin identity; anything else maps to the fallback user.
type MockVerifier struct {
	adminEmail string
	adminHash  []byte
	admin      models.User
	fallback   models.User
}

var _ Verifier = (*MockVerifier)(nil)

func NewMockVerifier(adminEmail, adminPassword string, admin, fallback models.User) (*MockVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &MockVerifier{
		adminEmail: adminEmail,
		adminHash:  hash,
		admin:      admin,
		fallback:   fallback,
	}, nil
}

func (v *MockVerifier) Verify(email, password string) (models.User, bool) {
	if email == "" || password == "" {
		return models.User{}, false
	}
	if email == v.adminEmail &&
		bcrypt.CompareHashAndPassword(v.adminHash, []byte(password)) == nil {
		return v.admin, true
	}
	return v.fallback, true
}
