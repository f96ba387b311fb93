package usecase

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"food-order-backend/internal/domain"
)

func TestPasswordRoundtrip(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	hashed, err := HashPassword("s3cret-pw", salt)
	require.NoError(t, err)

	require.True(t, ValidatePassword("s3cret-pw", hashed, salt))
	require.False(t, ValidatePassword("other-pw", hashed, salt))
	require.False(t, ValidatePassword("", hashed, salt))
}

func TestPasswordSaltMatters(t *testing.T) {
	saltA, _ := GenerateSalt()
	saltB, _ := GenerateSalt()
	require.NotEqual(t, saltA, saltB)

	hashedA, _ := HashPassword("same-password", saltA)
	hashedB, _ := HashPassword("same-password", saltB)
	require.NotEqual(t, hashedA, hashedB)
}

func TestSignVerifyRoundtrip(t *testing.T) {
	auth := &AuthService{JWTSecret: "test-secret"}
	payload := domain.AuthPayload{ID: "cust-1", Email: "a@b.com", Verified: true}

	token, err := auth.Sign(payload)
	require.NoError(t, err)

	got, ok := auth.Verify(token)
	require.True(t, ok)
	require.Equal(t, payload, got)
}

func TestVerifyRejectsSilently(t *testing.T) {
	auth := &AuthService{JWTSecret: "test-secret"}

	if _, ok := auth.Verify("not-a-token"); ok {
		t.Fatal("garbage token verified")
	}

	other := &AuthService{JWTSecret: "different-secret"}
	token, err := other.Sign(domain.AuthPayload{ID: "cust-1"})
	require.NoError(t, err)
	if _, ok := auth.Verify(token); ok {
		t.Fatal("token with wrong signature verified")
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       "cust-1",
		"email":    "a@b.com",
		"verified": true,
		"exp":      time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	if _, ok := auth.Verify(signed); ok {
		t.Fatal("expired token verified")
	}
}
