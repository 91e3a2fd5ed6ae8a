package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/superj80820/user-service/domain"
	"github.com/superj80820/user-service/kit/code"
	httpMiddlewareKit "github.com/superj80820/user-service/kit/http/middleware"
	httpTransportKit "github.com/superj80820/user-service/kit/http/transport"
)

var (
	DecodeAccountRegisterRequest  = httpTransportKit.DecodeJsonRequest[accountRegisterRequest]
	EncodeAccountRegisterResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)
)

type accountRegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type accountRegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

func (accountRegisterResponse) SuccessCode() code.SuccessCode {
	return code.SuccessCode{HTTPCode: http.StatusCreated}
}

func MakeAccountRegisterEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(accountRegisterRequest)
		account, err := svc.Register(&domain.SignUpRequest{
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		})
		if err != nil {
			return nil, err
		}
		return &accountRegisterResponse{
			Message: "Sign up successful",
			UserID:  account.ID,
		}, nil
	}
}
