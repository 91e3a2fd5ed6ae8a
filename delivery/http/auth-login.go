package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/superj80820/user-service/domain"
	authUseCaseLib "github.com/superj80820/user-service/usecase/auth"
	httpTransportKit "github.com/superj80820/user-service/kit/http/transport"
)

var DecodeAuthLoginRequest = httpTransportKit.DecodeJsonRequest[authLoginRequest]

type authLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authLoginUser struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type authLoginResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    authLoginUser `json:"user"`
}

func MakeAuthLoginEndpoint(svc domain.AuthUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(authLoginRequest)
		account, err := svc.Login(req.Email, req.Password)
		if err != nil {
			return nil, err
		}
		return &authLoginResponse{
			Success: true,
			Message: "Login successful",
			Token:   account.AccessToken,
			User: authLoginUser{
				ID:        account.ID,
				FirstName: account.FirstName,
				LastName:  account.LastName,
				Email:     account.Email,
				Role:      account.Role,
			},
		}, nil
	}
}

// MakeAuthLoginEncoder sets the session cookie alongside the body, the token
// travels both ways so non-browser clients can use the body field.
func MakeAuthLoginEncoder(env string) func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	return func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
		res := response.(*authLoginResponse)
		http.SetCookie(w, createSessionCookie(res.Token, env, authUseCaseLib.SessionTokenLifetime))
		return httpTransportKit.EncodeJsonResponse(ctx, w, response)
	}
}
