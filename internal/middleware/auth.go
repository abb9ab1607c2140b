package middleware

import (
	"context"
	"strings"

	"github.com/biskitsx/ZideQuest-Backend/pkg/errorx"
	"github.com/biskitsx/ZideQuest-Backend/pkg/router"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

// Authenticate requires a valid bearer token and records the actor's id and
// role in the context.
func Authenticate() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := bearerToken(ctx)
		if token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		accessToken, err := xcontext.TokenEngine(ctx).Verify(token)
		if err != nil {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		ctx = xcontext.WithRequestUserID(ctx, accessToken.ID)
		ctx = xcontext.WithRequestRole(ctx, accessToken.Role)
		return ctx, nil
	}
}

// AuthenticateOptional records the actor if a valid token was sent, but lets
// anonymous requests through.
func AuthenticateOptional() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := bearerToken(ctx)
		if token == "" {
			return nil, nil
		}

		accessToken, err := xcontext.TokenEngine(ctx).Verify(token)
		if err != nil {
			return nil, nil
		}

		ctx = xcontext.WithRequestUserID(ctx, accessToken.ID)
		ctx = xcontext.WithRequestRole(ctx, accessToken.Role)
		return ctx, nil
	}
}

func bearerToken(ctx context.Context) string {
	authorization := xcontext.HTTPRequest(ctx).Header.Get("Authorization")
	auth := strings.Split(authorization, " ")
	if len(auth) != 2 || auth[0] != "Bearer" {
		return ""
	}

	return auth[1]
}
