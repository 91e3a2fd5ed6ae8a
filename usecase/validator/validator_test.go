package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/superj80820/user-service/domain"
)

func TestValidateSignUp(t *testing.T) {
	for _, testCase := range []struct {
		name       string
		signUp     *domain.SignUpRequest
		violations []string
	}{
		{
			name: "valid",
			signUp: &domain.SignUpRequest{
				FirstName:       "York",
				LastName:        "Chen",
				Email:           "a@b.com",
				Password:        "secret1",
				ConfirmPassword: "secret1",
			},
			violations: nil,
		},
		{
			name: "first name trims below minimum",
			signUp: &domain.SignUpRequest{
				FirstName:       "Al ",
				LastName:        "Smith",
				Email:           "a@b.com",
				Password:        "secret1",
				ConfirmPassword: "secret1",
			},
			violations: []string{MsgFirstNameLength},
		},
		{
			name: "last name is not trimmed before the length check",
			signUp: &domain.SignUpRequest{
				FirstName:       "Al ",
				LastName:        "Al ",
				Email:           "a@b.com",
				Password:        "secret1",
				ConfirmPassword: "secret1",
			},
			violations: []string{MsgFirstNameLength},
		},
		{
			name: "accumulates every violation in check order",
			signUp: &domain.SignUpRequest{
				FirstName:       "Al",
				LastName:        "Smith",
				Email:           "a@b.com",
				Password:        "secret1",
				ConfirmPassword: "secret2",
			},
			violations: []string{MsgFirstNameLength, MsgPasswordNoMatch},
		},
		{
			name:   "empty payload fails everything",
			signUp: &domain.SignUpRequest{},
			violations: []string{
				MsgFirstNameLength,
				MsgLastNameLength,
				MsgEmailInvalid,
				MsgPasswordLength,
				MsgPasswordNoMatch,
			},
		},
		{
			name: "email needs a dot in the domain",
			signUp: &domain.SignUpRequest{
				FirstName:       "York",
				LastName:        "Chen",
				Email:           "a@localhost",
				Password:        "secret1",
				ConfirmPassword: "secret1",
			},
			violations: []string{MsgEmailInvalid},
		},
		{
			name: "email must not contain whitespace",
			signUp: &domain.SignUpRequest{
				FirstName:       "York",
				LastName:        "Chen",
				Email:           "a b@c.com",
				Password:        "secret1",
				ConfirmPassword: "secret1",
			},
			violations: []string{MsgEmailInvalid},
		},
		{
			name: "password below six characters",
			signUp: &domain.SignUpRequest{
				FirstName:       "York",
				LastName:        "Chen",
				Email:           "a@b.com",
				Password:        "five5",
				ConfirmPassword: "five5",
			},
			violations: []string{MsgPasswordLength},
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.violations, ValidateSignUp(testCase.signUp))
		})
	}
}

func TestValidateResetPassword(t *testing.T) {
	for _, testCase := range []struct {
		name      string
		reset     *domain.ResetPasswordRequest
		violation string
	}{
		{
			name: "valid",
			reset: &domain.ResetPasswordRequest{
				Email:           "a@b.com",
				NewPassword:     "secret2",
				ConfirmPassword: "secret2",
			},
			violation: "",
		},
		{
			name: "missing new password short-circuits before length and format",
			reset: &domain.ResetPasswordRequest{
				Email:           "not-an-email",
				ConfirmPassword: "x",
			},
			violation: MsgResetRequired,
		},
		{
			name: "mismatch checked before length",
			reset: &domain.ResetPasswordRequest{
				Email:           "a@b.com",
				NewPassword:     "abc",
				ConfirmPassword: "abd",
			},
			violation: MsgPasswordNoMatch,
		},
		{
			name: "length checked before email format",
			reset: &domain.ResetPasswordRequest{
				Email:           "not-an-email",
				NewPassword:     "abc",
				ConfirmPassword: "abc",
			},
			violation: MsgPasswordLength,
		},
		{
			name: "email format checked last",
			reset: &domain.ResetPasswordRequest{
				Email:           "not-an-email",
				NewPassword:     "secret2",
				ConfirmPassword: "secret2",
			},
			violation: MsgEmailInvalid,
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.violation, ValidateResetPassword(testCase.reset))
		})
	}
}
