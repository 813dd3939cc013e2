package auth_test

import (
	"testing"

	"github.com/jrsteele09/go-auth-api/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegistration_Valid(t *testing.T) {
	errs := auth.ValidateRegistration(auth.RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.Nil(t, errs)
}

func TestValidateRegistration_ReportsEveryField(t *testing.T) {
	errs := auth.ValidateRegistration(auth.RegisterRequest{})
	require.Len(t, errs, 3)

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field)
		assert.NotEmpty(t, fe.Message)
	}
	assert.ElementsMatch(t, []string{"name", "email", "password"}, fields)
}

func TestValidateRegistration_Name(t *testing.T) {
	req := auth.RegisterRequest{Name: "   ", Email: "a@x.com", Password: "secret1"}
	errs := auth.ValidateRegistration(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
}

func TestValidateRegistration_Email(t *testing.T) {
	for _, email := range []string{"", "plain", "missing@tld", "two@@x.com", "spaces in@x.com"} {
		req := auth.RegisterRequest{Name: "A", Email: email, Password: "secret1"}
		errs := auth.ValidateRegistration(req)
		require.Len(t, errs, 1, "email %q should be rejected", email)
		assert.Equal(t, "email", errs[0].Field)
	}
}

func TestValidateRegistration_PasswordLength(t *testing.T) {
	req := auth.RegisterRequest{Name: "A", Email: "a@x.com", Password: "12345"}
	errs := auth.ValidateRegistration(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "password", errs[0].Field)

	req.Password = "123456"
	require.Nil(t, auth.ValidateRegistration(req))
}

func TestValidateLogin(t *testing.T) {
	require.Nil(t, auth.ValidateLogin(auth.LoginRequest{Email: "a@x.com", Password: "x"}))

	errs := auth.ValidateLogin(auth.LoginRequest{})
	require.Len(t, errs, 2)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := auth.ValidationErrors{
		{Field: "name", Message: "Name is required"},
		{Field: "email", Message: "Please include a valid email"},
	}
	assert.Equal(t, "Name is required; Please include a valid email", errs.Error())
}
