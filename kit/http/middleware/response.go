package middleware

import (
	"context"
	"net/http"

	"github.com/superj80820/user-service/kit/code"
)

// EncodeResponseSetSuccessHTTPCode writes the response's success status code
// before the body encoder runs. Headers set after the first body write would
// be lost, so the content type is pinned here as well.
func EncodeResponseSetSuccessHTTPCode(next func(ctx context.Context, w http.ResponseWriter, response interface{}) error) func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	return func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
		successCode := code.ParseResponseSuccessCode(response)
		if successCode.HTTPCode != http.StatusOK {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(successCode.HTTPCode)
		}
		return next(ctx, w, response)
	}
}
