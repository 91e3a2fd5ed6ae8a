package code

import (
	"encoding/json"
	"fmt"
	httpPKG "net/http"

	"github.com/pkg/errors"
)

type errorCode struct {
	HTTPCode    int      `json:"http_code"`
	Code        int      `json:"code"`
	Message     string   `json:"message"`
	Details     []string `json:"errors,omitempty"`
	OriginError error    `json:"-"`
	CallStack   string   `json:"-"`
}

func (e errorCode) Error() string {
	errorStr, err := json.Marshal(e)
	if err != nil {
		panic(err)
	}
	return string(errorStr)
}

func (e *errorCode) AddErrorMetaData(err error) *errorCode {
	e.OriginError = err
	e.CallStack = fmt.Sprintf("%+v", err)
	return e
}

func (e *errorCode) AddCode(code int, args ...any) *errorCode {
	if httpErrorCodes, ok := errorCodes[e.HTTPCode]; ok {
		if errorCodes, ok := httpErrorCodes[code]; ok {
			e.Code = code
			e.Message = fmt.Sprintf(errorCodes, args...)
		}
	}
	return e
}

// AddMessage overrides the message for failures whose text is produced at
// runtime, such as validator output.
func (e *errorCode) AddMessage(message string) *errorCode {
	e.Message = message
	return e
}

// AddDetails attaches the ordered violation list carried by a validation
// failure response.
func (e *errorCode) AddDetails(details ...string) *errorCode {
	e.Details = append(e.Details, details...)
	return e
}

const (
	Default            = 0
	RateLimit          = 1
	InvalidBody        = 2
	Expired            = 3
	TokenRequired      = 4
	TokenInvalid       = 5
	PasswordInvalid    = 6
	ValidationFailed   = 7
	DuplicateEmail     = 8
	MissingCredentials = 9
	UserNotFound       = 10
	AccountNotFound    = 11
)

var errorCodes = map[int]map[int]string{
	httpPKG.StatusTooManyRequests: {
		Default:   "too many requests",
		RateLimit: "rate limit error. expiry: %d",
	},
	httpPKG.StatusNotFound: {
		Default:         "not found",
		UserNotFound:    "No user found with this email",
		AccountNotFound: "User not found",
	},
	httpPKG.StatusInternalServerError: {
		Default: "internal error",
	},
	httpPKG.StatusBadRequest: {
		Default:            "bad request",
		InvalidBody:        "invalid body",
		ValidationFailed:   "Validation failed",
		DuplicateEmail:     "User with this email already exists",
		MissingCredentials: "Email and password are required",
	},
	httpPKG.StatusUnauthorized: {
		Default:       "unauthorized",
		Expired:       "Unauthorized - Invalid token",
		TokenRequired: "Unauthorized - No token provided",
		TokenInvalid:  "Unauthorized - Invalid token",
	},
	httpPKG.StatusForbidden: {
		Default:         "forbidden",
		PasswordInvalid: "Invalid credentials",
	},
}

type errorCodeOption func(*errorCode)

func CreateErrorCode(code int, options ...errorCodeOption) *errorCode {
	resCode := httpPKG.StatusInternalServerError
	resMessage := errorCodes[httpPKG.StatusInternalServerError][Default]
	if codes, ok := errorCodes[code]; ok {
		resCode = code

		if errorCodes, ok := codes[Default]; ok {
			resMessage = errorCodes
		}
	}

	errorCode := errorCode{
		HTTPCode: resCode,
		Code:     Default,
		Message:  resMessage,
	}

	for _, option := range options {
		option(&errorCode)
	}

	return &errorCode
}

func ParseErrorCode(err error) *errorCode {
	causeErr := errors.Cause(err)
	switch errorCode := causeErr.(type) {
	case *errorCode:
		return errorCode
	}

	errorCode := CreateErrorCode(httpPKG.StatusInternalServerError).AddErrorMetaData(err)

	return errorCode
}
