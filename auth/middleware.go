package auth

import (
	"context"
	"net/http"

	"github.com/flightdesk/codec"
	"github.com/flightdesk/types"
)

type ctxKey struct{}

// Middleware rejects requests without a valid bearer token and stores the
// token subject in the request context.
func Middleware(tok *T) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := tok.Extract(r.Header.Get("Authorization"))
			if err == nil {
				var subject string
				if subject, err = tok.Verify(raw); err == nil {
					next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, subject)))
					return
				}
			}
			codec.WriteJSON(w, http.StatusUnauthorized, types.Error{Error: err.Error()})
		})
	}
}

// Subject returns the authenticated token subject, if any.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(ctxKey{}).(string)
	return s
}
