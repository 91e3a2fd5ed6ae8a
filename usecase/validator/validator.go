// Package validator holds the pure input checks for sign-up and password
// reset payloads. Sign-up accumulates every violation in check order, reset
// returns on the first one, matching the service's documented contract.
package validator

import (
	"regexp"
	"strings"

	"github.com/superj80820/user-service/domain"
)

const (
	MsgFirstNameLength = "First name must be between 3-30 characters"
	MsgLastNameLength  = "Last name must be between 3-30 characters"
	MsgEmailInvalid    = "Enter a valid email address"
	MsgPasswordLength  = "Password must be at least 6 characters"
	MsgPasswordNoMatch = "Passwords do not match"
	MsgResetRequired   = "Email, newPassword, and confirmPassword are required"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateSignUp returns every violation in check order, empty means valid.
// The first name is trimmed before the length check while the last name is
// not. The original service has this asymmetry and callers may depend on it,
// so it is kept.
func ValidateSignUp(signUp *domain.SignUpRequest) []string {
	var violations []string

	trimmedFirstName := strings.TrimSpace(signUp.FirstName)
	if len(trimmedFirstName) < 3 || len(trimmedFirstName) > 30 {
		violations = append(violations, MsgFirstNameLength)
	}

	if len(signUp.LastName) < 3 || len(signUp.LastName) > 30 {
		violations = append(violations, MsgLastNameLength)
	}

	if !emailPattern.MatchString(signUp.Email) {
		violations = append(violations, MsgEmailInvalid)
	}

	if len(signUp.Password) < 6 {
		violations = append(violations, MsgPasswordLength)
	}

	if signUp.ConfirmPassword == "" || signUp.Password != signUp.ConfirmPassword {
		violations = append(violations, MsgPasswordNoMatch)
	}

	return violations
}

// ValidateResetPassword returns the first violation, empty means valid.
func ValidateResetPassword(reset *domain.ResetPasswordRequest) string {
	if reset.Email == "" || reset.NewPassword == "" || reset.ConfirmPassword == "" {
		return MsgResetRequired
	}
	if reset.NewPassword != reset.ConfirmPassword {
		return MsgPasswordNoMatch
	}
	if len(reset.NewPassword) < 6 {
		return MsgPasswordLength
	}
	if !emailPattern.MatchString(reset.Email) {
		return MsgEmailInvalid
	}
	return ""
}
