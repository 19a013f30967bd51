package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/subsidy-service/internal/auth"
	"github.com/spec-kit/subsidy-service/internal/config"
	"github.com/spec-kit/subsidy-service/internal/domain"
	"github.com/spec-kit/subsidy-service/internal/repository"
	apperrors "github.com/spec-kit/subsidy-service/pkg/util"
)

const uniqueViolationCode = "23505"

// AuthService coordinates signup and login flows.
type AuthService struct {
	users      repository.UserRepository
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// SignUp creates a new portal account. Duplicate emails race at the store's
// unique constraint, so concurrent signups lose with a conflict instead of
// a check-then-insert window.
func (s *AuthService) SignUp(ctx context.Context, name, email string, role domain.Role, password string) (*domain.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflict("email already registered", map[string]any{"email": email})
		}
		return nil, err
	}
	return user, nil
}

// Login authenticates an account and enforces the role gate. Unknown email
// and wrong password produce the same message so a caller cannot tell which
// check failed.
func (s *AuthService) Login(ctx context.Context, email, password string, role domain.Role) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	if user.Role != role {
		return nil, apperrors.NewForbidden(fmt.Sprintf("account is registered to the %s portal", user.Role))
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
