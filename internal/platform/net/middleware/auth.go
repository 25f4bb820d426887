package middleware

import (
	"net/http"

	perr "timeclock/internal/platform/errors"
	"timeclock/internal/platform/logger"
	pnet "timeclock/internal/platform/net"
)

// AuthPort is a tiny seam the token verifier implements
type AuthPort interface {
	// Parse returns a user id and role from the request or an error
	Parse(r *http.Request) (userID string, role string, err error)
}

// Auth is a no-op until wired. It uses the port when provided
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			uid, role, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithUser(r.Context(), uid)
			ctx = pnet.WithRequest(ctx, pnet.RequestID(ctx), role)
			// enrich the request-scoped logger so service logs carry the caller
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects requests whose context role does not match want
// Mount after Auth so the role has been resolved
func RequireRole(want string, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if pnet.Role(r.Context()) != want {
				err := perr.Forbiddenf("requires %s role", want)
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
