package http

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/superj80820/user-service/domain"
	httpMiddlewareKit "github.com/superj80820/user-service/kit/http/middleware"
	httpTransportKit "github.com/superj80820/user-service/kit/http/transport"
)

var (
	DecodeAuthForgotPasswordRequest  = httpTransportKit.DecodeJsonRequest[authForgotPasswordRequest]
	EncodeAuthForgotPasswordResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)
)

type authForgotPasswordRequest struct {
	Email           string `json:"email"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type authForgotPasswordResponse struct {
	Message string `json:"message"`
}

func MakeAuthForgotPasswordEndpoint(svc domain.AuthUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(authForgotPasswordRequest)
		if err := svc.ResetPassword(&domain.ResetPasswordRequest{
			Email:           req.Email,
			NewPassword:     req.NewPassword,
			ConfirmPassword: req.ConfirmPassword,
		}); err != nil {
			return nil, err
		}
		return &authForgotPasswordResponse{
			Message: "Password updated successfully",
		}, nil
	}
}
