package usecase

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/scrypt"

	"food-order-backend/internal/domain"
)

// GenerateSalt draws a fresh per-user salt.
func GenerateSalt() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// HashPassword derives the stored credential from the password and
// the user's salt. Plaintext is never persisted or compared.
func HashPassword(password, salt string) (string, error) {
	rawSalt, err := hex.DecodeString(salt)
	if err != nil {
		return "", err
	}
	dk, err := scrypt.Key([]byte(password), rawSalt, 1<<15, 8, 1, 32)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(dk), nil
}

// ValidatePassword re-derives the hash from the entered password and
// the stored salt and compares it with the saved hash.
func ValidatePassword(entered, saved, salt string) bool {
	derived, err := HashPassword(entered, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(derived), []byte(saved)) == 1
}

type AuthService struct {
	JWTSecret string
}

// Sign issues a bearer token carrying the minimal identity payload.
func (s *AuthService) Sign(p domain.AuthPayload) (string, error) {
	claims := jwt.MapClaims{
		"id":       p.ID,
		"email":    p.Email,
		"verified": p.Verified,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.JWTSecret))
}

// Verify decodes a bearer token into its payload. Any failure, be it
// signature, shape or expiry, reports false with no distinguishing
// reason; callers answer with a generic 401.
func (s *AuthService) Verify(token string) (domain.AuthPayload, bool) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(s.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return domain.AuthPayload{}, false
	}
	m, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return domain.AuthPayload{}, false
	}
	id, _ := m["id"].(string)
	email, _ := m["email"].(string)
	verified, _ := m["verified"].(bool)
	if id == "" {
		return domain.AuthPayload{}, false
	}
	return domain.AuthPayload{ID: id, Email: email, Verified: verified}, true
}
