package middleware

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/pkg/errors"
	httpKit "github.com/superj80820/user-service/kit/http"
)

func CreateAuthMiddleware(authFunc func(ctx context.Context, token string) (accountID string, err error)) endpoint.Middleware {
	return func(e endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (response interface{}, err error) {
			token := httpKit.GetToken(ctx)
			accountID, err := authFunc(ctx, token)
			if err != nil {
				return nil, errors.Wrap(err, "auth failed")
			}
			ctx = httpKit.AddAccountID(ctx, accountID)
			return e(ctx, request)
		}
	}
}
