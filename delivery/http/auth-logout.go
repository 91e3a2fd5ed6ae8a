package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	httpTransportKit "github.com/superj80820/user-service/kit/http/transport"
)

var DecodeAuthLogoutRequest = httpTransportKit.DecodeEmptyRequest

type authLogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MakeAuthLogoutEndpoint always succeeds. There is no server-side session
// state, clearing the cookie is the whole logout.
func MakeAuthLogoutEndpoint() endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		return &authLogoutResponse{
			Success: true,
			Message: "Logout successful",
		}, nil
	}
}

func MakeAuthLogoutEncoder(env string) func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	return func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
		http.SetCookie(w, createClearSessionCookie(env))
		return httpTransportKit.EncodeJsonResponse(ctx, w, response)
	}
}
