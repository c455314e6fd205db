package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"doctorsportal/internal/domain"
	"doctorsportal/internal/pkg/validator"
	"doctorsportal/internal/repository"
)

type Service struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewService(users UserRepository, tokens TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register inserts the user unless one with the same email already exists.
// A concurrent insert of the same email resolves to StatusExisted.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*UpsertResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validator.Email(email) {
		return nil, ErrValidation
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return &UpsertResult{Status: StatusExisted, User: existing}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	u := &domain.User{
		Email: email,
		Name:  strings.TrimSpace(req.Name),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			existing, gerr := s.users.GetByEmail(ctx, email)
			if gerr != nil {
				return nil, fmt.Errorf("lookup user: %w", gerr)
			}
			return &UpsertResult{Status: StatusExisted, User: existing}, nil
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &UpsertResult{Status: StatusCreated, User: u}, nil
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Promote grants the administrator role. Promoting an admin again is a no-op.
func (s *Service) Promote(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if u.IsAdmin() {
		return u, nil
	}

	n, err := s.users.SetRole(ctx, id, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("set role: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	u.Role = domain.RoleAdmin
	return u, nil
}

// PromoteByEmail is the out-of-band path used to seat the first administrator.
func (s *Service) PromoteByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	return s.Promote(ctx, u.ID)
}

// IssueToken signs an identity assertion for a registered email.
func (s *Service) IssueToken(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrUnknownUser
	}
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrUnknownUser
	}
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}
	return s.tokens.GenerateToken(u.Email)
}
