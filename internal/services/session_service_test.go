package services

import (
	"testing"

	"go-flowershop/internal/models"
	"go-flowershop/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *SessionService {
	t.Helper()
	verifier, err := NewMockVerifier("admin@flowershop.com", "admin123", seed.Admin(), seed.DefaultUser())
	require.NoError(t, err)
	return NewSessionService(verifier)
}

func TestLoginRejectsEmptyFields(t *testing.T) {
	session := newTestSession(t)

	assert.False(t, session.Login("", "x"))
	assert.False(t, session.Login("x", ""))
	assert.False(t, session.IsLoggedIn())
	_, ok := session.Current()
	assert.False(t, ok)
}

func TestLoginAdminPair(t *testing.T) {
	session := newTestSession(t)

	require.True(t, session.Login("admin@flowershop.com", "admin123"))
	assert.True(t, session.IsLoggedIn())
	assert.True(t, session.IsAdmin())

	user, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestLoginAnyOtherPairIsRegularUser(t *testing.T) {
	session := newTestSession(t)

	require.True(t, session.Login("a@b.com", "pw"))
	assert.True(t, session.IsLoggedIn())
	assert.False(t, session.IsAdmin())

	user, _ := session.Current()
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, seed.DefaultUser().ID, user.ID)
}

func TestLoginAdminEmailWrongPasswordIsRegularUser(t *testing.T) {
	session := newTestSession(t)

	require.True(t, session.Login("admin@flowershop.com", "guess"))
	assert.False(t, session.IsAdmin())
}

func TestLoginAdminEmailMustMatchExactly(t *testing.T) {
	for _, email := range []string{" admin@flowershop.com", "ADMIN@flowershop.com", "admin@flowershop.com "} {
		session := newTestSession(t)

		require.True(t, session.Login(email, "admin123"), email)
		assert.False(t, session.IsAdmin(), email)
	}
}

type denyVerifier struct{}

func (denyVerifier) Verify(string, string) (models.User, bool) { return models.User{}, false }

func TestLoginRejectedByVerifierStaysAnonymous(t *testing.T) {
	session := NewSessionService(denyVerifier{})

	assert.False(t, session.Login("a@b.com", "pw"))
	assert.False(t, session.IsLoggedIn())
}

func TestSignup(t *testing.T) {
	session := newTestSession(t)

	assert.False(t, session.Signup("", "a@b.com", "pw"))
	assert.False(t, session.Signup("Ann", "", "pw"))
	assert.False(t, session.Signup("Ann", "a@b.com", ""))
	assert.False(t, session.IsLoggedIn())

	require.True(t, session.Signup("Ann", "ann@b.com", "pw"))
	first, _ := session.Current()
	assert.Equal(t, "Ann", first.Name)
	assert.Equal(t, models.RoleUser, first.Role)
	assert.NotEmpty(t, first.ID)

	require.True(t, session.Signup("Ann", "ann@b.com", "pw"))
	second, _ := session.Current()
	assert.NotEqual(t, first.ID, second.ID)
}

func TestLogout(t *testing.T) {
	session := newTestSession(t)
	session.Login("admin@flowershop.com", "admin123")

	session.Logout()
	session.Logout()

	assert.False(t, session.IsLoggedIn())
	assert.False(t, session.IsAdmin())
}

func TestUpdateProfilePreservesIDAndRole(t *testing.T) {
	session := newTestSession(t)
	name := "Jonathan"
	role := models.RoleAdmin

	session.UpdateProfile(models.UserUpdate{Name: &name})
	assert.False(t, session.IsLoggedIn())

	require.True(t, session.Login("a@b.com", "pw"))
	session.UpdateProfile(models.UserUpdate{Name: &name, Role: &role})

	user, _ := session.Current()
	assert.Equal(t, "Jonathan", user.Name)
	assert.Equal(t, seed.DefaultUser().Email, user.Email)
	assert.Equal(t, seed.DefaultUser().ID, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
}
