package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type signupInput struct {
	Email    string `validate:"required,email"`
	Phone    string `validate:"required,min=7,max=12"`
	Password string `validate:"required,min=6,max=12"`
}

func TestCheckValid(t *testing.T) {
	in := signupInput{Email: "a@b.com", Phone: "98000000", Password: "secret1"}
	require.Nil(t, Check(in))
}

func TestCheckCollectsAllFieldErrors(t *testing.T) {
	in := signupInput{Email: "not-an-email", Phone: "123", Password: ""}
	errs := Check(in)
	require.Len(t, errs, 3)

	byField := map[string]string{}
	for _, fe := range errs {
		byField[fe.Field] = fe.Message
	}
	require.Equal(t, "must be a valid email address", byField["email"])
	require.Equal(t, "must be at least 7 characters", byField["phone"])
	require.Equal(t, "is required", byField["password"])
}

func TestFieldErrorString(t *testing.T) {
	fe := FieldError{Field: "email", Message: "is required"}
	require.Equal(t, "email: is required", fe.Error())
}
