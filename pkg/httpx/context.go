package httpx

import (
	"context"
	"net/http"
)

type ctxKey string

const CtxKeyUserID ctxKey = "user_id"

// WithUserID records the authenticated user for middleware further down the
// chain, such as per-user rate limits.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}

func UserIDFromRequest(r *http.Request) string {
	v, _ := r.Context().Value(CtxKeyUserID).(string)
	return v
}
