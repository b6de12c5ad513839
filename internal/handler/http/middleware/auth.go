package middleware

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklog-hq/attendance-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests without a valid bearer token. It runs after
// jwtauth.Verifier, which parses the Authorization header and attaches the
// token (or the parse error) to the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				// Distinguish a missing header from a token that failed
				// verification; both are 401.
				if errors.Is(err, jwtauth.ErrNoTokenFound) {
					response.Unauthorized(w, "Authorization token required")
					return
				}
				response.Unauthorized(w, "Invalid or expired token")
				return
			}

			if token == nil {
				response.Unauthorized(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// AuthOptional lets requests through whether or not they carry a token. A
// valid token still attaches identity to the request context (the Verifier
// ahead of this middleware does that); an absent or invalid one leaves the
// request unauthenticated instead of rejecting it.
func AuthOptional(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
