package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/service"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
	"github.com/Best-Company-A-S/masterticket/pkg/slogx"
)

type ctxKey struct{}

func withActor(ctx context.Context, a domain.ActiveContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// actorFrom returns the caller resolved by SessionMiddleware.
func actorFrom(ctx context.Context) (domain.ActiveContext, bool) {
	a, ok := ctx.Value(ctxKey{}).(domain.ActiveContext)
	return a, ok && a.UserID != ""
}

// SessionMiddleware resolves the bearer token to an ActiveContext and
// rejects the request with 401 when there is no live session.
func SessionMiddleware(accounts *service.AccountService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := httpx.BearerToken(r)
			if !ok {
				httpx.WriteBearerError(w, "missing bearer token")
				return
			}

			actor, err := accounts.Resolve(ctx, token)
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					httpx.WriteBearerError(w, "session is invalid or expired")
					return
				}
				slogx.FromContext(ctx).Error("failed to resolve session", slogx.Err(err))
				httpx.WriteError(w, http.StatusInternalServerError, internalError)
				return
			}

			ctx = httpx.WithUserID(ctx, actor.UserID)
			ctx = withActor(ctx, actor)
			ctx = slogx.With(ctx, "user_id", actor.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
