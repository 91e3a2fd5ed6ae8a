package http

import (
	"context"
	"time"

	"github.com/go-kit/kit/endpoint"
	"github.com/superj80820/user-service/domain"
	httpKit "github.com/superj80820/user-service/kit/http"
	httpMiddlewareKit "github.com/superj80820/user-service/kit/http/middleware"
	httpTransportKit "github.com/superj80820/user-service/kit/http/transport"
)

var (
	DecodeAccountProfileRequest  = httpTransportKit.DecodeEmptyRequest
	EncodeAccountProfileResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)
)

type accountProfileUser struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type accountProfileResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	User    accountProfileUser `json:"user"`
}

// MakeAccountProfileEndpoint relies on the auth middleware having put the
// verified account id on the context.
func MakeAccountProfileEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		account, err := svc.Get(httpKit.GetAccountID(ctx))
		if err != nil {
			return nil, err
		}
		return &accountProfileResponse{
			Success: true,
			Message: "Valid token",
			User: accountProfileUser{
				ID:        account.ID,
				FirstName: account.FirstName,
				LastName:  account.LastName,
				Email:     account.Email,
				Role:      account.Role,
				CreatedAt: account.CreatedAt,
				UpdatedAt: account.UpdatedAt,
			},
		}, nil
	}
}
