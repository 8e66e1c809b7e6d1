package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"muebleria/api/internal/core/services"
)

const (
	adminEmail    = "admin@muebleria.test"
	adminPassword = "correct horse battery staple"
	testSecret    = "super-secret-key-for-testing-purposes-1234567890"
)

func newAuthService(t *testing.T) *services.AdminAuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return services.NewAdminAuthService(adminEmail, string(hash), testSecret)
}

func TestAdminAuth_LoginAndVerify(t *testing.T) {
	svc := newAuthService(t)

	token, err := svc.Login(adminEmail, adminPassword)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminEmail, claims.Email)
	assert.Equal(t, "muebleria-api", claims.Issuer)
}

func TestAdminAuth_WrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(adminEmail, "guess")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAdminAuth_UnknownEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login("intruder@example.com", adminPassword)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAdminAuth_GarbageToken(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.VerifyToken("not.a.token")
	assert.Error(t, err)
}

func TestAdminAuth_TokenFromDifferentSecret(t *testing.T) {
	svc := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	other := services.NewAdminAuthService(adminEmail, string(hash), "another-secret-entirely-0987654321")

	token, err := other.Login(adminEmail, adminPassword)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.Error(t, err, "a token signed with a different secret must be rejected")
}
