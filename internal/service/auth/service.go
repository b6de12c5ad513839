package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/auth"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/user"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/database"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/jwt"
	"github.com/worklog-hq/attendance-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the salt rounds used when the user base was created.
const bcryptCost = 12

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// Signup implements auth.AuthService.
func (a *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		// Early-exit duplicate check; the unique index on users.email is the
		// authority under concurrent signups.
		exists, err := a.UserRepository.ExistsByEmail(txCtx, email)
		if err != nil {
			return fmt.Errorf("failed to check email existence: %w", err)
		}
		if exists {
			return auth.ErrEmailExists
		}

		created, err = a.UserRepository.Create(txCtx, user.User{
			Email:        email,
			PasswordHash: string(hash),
			FullName:     strings.TrimSpace(req.FullName),
			Role:         user.RoleUser,
			IsActive:     true,
		})
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}

	token, expiresAt, err := a.Service.GenerateToken(created.ID, created.Email, string(created.Role))
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create session token: %w", err)
	}

	return auth.AuthResponse{
		User:      created.ToResponse(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	userData, err := a.UserRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !userData.IsActive {
		return auth.AuthResponse{}, auth.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateToken(userData.ID, userData.Email, string(userData.Role))
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create session token: %w", err)
	}

	return auth.AuthResponse{
		User:      userData.ToResponse(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// GetProfile implements auth.AuthService.
func (a *AuthServiceImpl) GetProfile(ctx context.Context) (user.UserResponse, error) {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	userData, err := a.UserRepository.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, auth.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return userData.ToResponse(), nil
}
