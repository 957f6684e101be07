package ports

import (
	"context"

	"easytasks/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByID(ctx context.Context, id uint64) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.User, string, error)
	Login(ctx context.Context, username, password string) (domain.User, string, error)
	Profile(ctx context.Context, userID uint64) (domain.User, error)
}

// TokenManager issues and validates the bearer tokens carried by every
// authenticated request.
type TokenManager interface {
	Generate(userID uint64) (string, error)
	Validate(token string) (uint64, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
