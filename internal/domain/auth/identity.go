package auth

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
)

// Identity is the caller resolved from a verified session token. It lives in
// the request context for the lifetime of the request and is never persisted.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// IdentityFromContext extracts the authenticated caller from the claims that
// the token verifier attached to the request context.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil {
		return Identity{}, ErrUnauthenticated
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return Identity{UserID: userID, Email: email, Role: role}, nil
}
