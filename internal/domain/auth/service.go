package auth

import (
	"context"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/user"
)

// AuthService defines business logic for signup, login and profile lookup
type AuthService interface {
	// Signup registers a new user and issues a session token
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)

	// Login verifies credentials and issues a session token
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)

	// GetProfile returns the authenticated caller's user record
	GetProfile(ctx context.Context) (user.UserResponse, error)
}
