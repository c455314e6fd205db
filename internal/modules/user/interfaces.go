package user

import (
	"context"

	"doctorsportal/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	SetRole(ctx context.Context, id string, role domain.UserRole) (int64, error)
}

type TokenIssuer interface {
	GenerateToken(email string) (string, error)
}
