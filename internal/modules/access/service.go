package access

import (
	"context"
	"errors"
	"fmt"

	"doctorsportal/internal/domain"
	"doctorsportal/internal/repository"
)

type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Policy answers whether an identity holds the administrator capability.
// The answer is derived from User.Role only and always read from the store.
type Policy struct {
	users UserReader
}

func NewPolicy(users UserReader) *Policy {
	return &Policy{users: users}
}

// IsAdmin reports false, without an error, for unknown users and users
// with no role.
func (p *Policy) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := p.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup user: %w", err)
	}
	return u.IsAdmin(), nil
}
