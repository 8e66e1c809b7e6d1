package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is deliberately vague: callers must not learn
// whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

const adminTokenTTL = 12 * time.Hour

// AdminClaims carries the dashboard session identity.
type AdminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AdminAuthService guards the dashboard with a single operator account
// taken from the environment: an email and a bcrypt password hash.
type AdminAuthService struct {
	email        string
	passwordHash string
	secret       []byte
}

func NewAdminAuthService(email, passwordHash, secret string) *AdminAuthService {
	return &AdminAuthService{
		email:        email,
		passwordHash: passwordHash,
		secret:       []byte(secret),
	}
}

// Login verifies the operator credentials and mints a session token.
func (s *AdminAuthService) Login(email, password string) (string, error) {
	if email != s.email {
		// Constant-time hashing work regardless, to keep timing flat.
		_ = bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password))
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := AdminClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(adminTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "muebleria-api",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates signature, expiry and issuer of a session token.
func (s *AdminAuthService) VerifyToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 🛡️ Force the signing method check
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}
	if claims.Issuer != "muebleria-api" {
		return nil, errors.New("invalid token issuer")
	}
	return claims, nil
}
