package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wirebank/ledger/internal/apperrors"
	"github.com/wirebank/ledger/internal/core/domain"
	portsrepo "github.com/wirebank/ledger/internal/core/ports/repositories"
	portssvc "github.com/wirebank/ledger/internal/core/ports/services"
	"github.com/wirebank/ledger/internal/dto"
	"github.com/wirebank/ledger/internal/utils"
)

// userServiceImpl implements the UserSvcFacade interface over the identity
// registry.
type userServiceImpl struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service over the given repository.
func NewUserService(repo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userServiceImpl{userRepo: repo}
}

var _ portssvc.UserSvcFacade = (*userServiceImpl)(nil)

// Register creates a new user with a bcrypt-hashed credential. The plaintext
// password never leaves this method.
func (s *userServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if len(req.Username) < 3 {
		return nil, fmt.Errorf("username must be at least 3 characters: %w", apperrors.ErrValidation)
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters: %w", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user")
		}
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("username", user.Username))
	return &user, nil
}

// Authenticate verifies a username/password pair against the registry.
// Unknown usernames and wrong passwords both surface as
// apperrors.ErrInvalidCredentials so the two are indistinguishable to the
// caller.
func (s *userServiceImpl) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user for authentication")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// Exists checks the live registry for the username.
func (s *userServiceImpl) Exists(ctx context.Context, username string) (bool, error) {
	return s.userRepo.UserExists(ctx, username)
}
