package ports

import (
	"context"

	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
type AuthRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account has exactly this email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create returns domain.ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
