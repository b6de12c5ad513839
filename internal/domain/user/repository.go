package user

import "context"

type UserRepository interface {
	// Create inserts a new user. A duplicate email is reported as
	// auth.ErrEmailExists by the storage layer.
	Create(ctx context.Context, newUser User) (User, error)

	// GetByEmail retrieves a user by lowercase email
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// ExistsByEmail reports whether a user with the email already exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
