package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MuriloBarros304/web-menu/internal/adapter/logger"
	"github.com/MuriloBarros304/web-menu/internal/domain"
	"github.com/MuriloBarros304/web-menu/internal/interfaces"
)

// Service handles registration, login and account administration.
// Self-registration always yields a customer account; role changes and
// deactivation are admin actions that never target the admin's own
// account.
type Service struct {
	users    interfaces.UserRepository
	sessions interfaces.SessionRepository
	logger   logger.Logger
}

func NewService(users interfaces.UserRepository, sessions interfaces.SessionRepository, logger logger.Logger) *Service {
	return &Service{users: users, sessions: sessions, logger: logger}
}

func (s *Service) Register(ctx context.Context, cmd interfaces.RegisterCommand) (*domain.User, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" {
		return nil, domain.Validationf("username is required")
	}
	if cmd.Password == "" {
		return nil, domain.Validationf("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.User{
		Username:     username,
		Email:        strings.TrimSpace(cmd.Email),
		PasswordHash: string(hash),
		// Self-registration never grants privileges.
		Role:     domain.RoleCustomer,
		IsActive: true,
	}

	if err := s.users.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("user_registered", "User registered", "", map[string]any{"user_id": account.ID, "username": account.Username})
	return account, nil
}

func (s *Service) Login(ctx context.Context, cmd interfaces.LoginCommand) (*interfaces.LoginResult, error) {
	account, err := s.users.FindByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account is disabled", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(cmd.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}

	token := uuid.NewString()
	if err := s.sessions.Create(ctx, token, account.ID); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.Info("user_logged_in", "User logged in", "", map[string]any{"user_id": account.ID})

	return &interfaces.LoginResult{
		Token:  token,
		UserID: account.ID,
		Email:  account.Email,
		Role:   account.Role,
	}, nil
}

// Logout discards the session behind the token. Unknown tokens are not
// an error; the session is gone either way.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

func (s *Service) Profile(ctx context.Context, caller domain.Caller) (*domain.User, error) {
	if !caller.Authenticated {
		return nil, domain.ErrUnauthorized
	}
	return s.users.FindByID(ctx, caller.UserID)
}

// UpdateProfile lets a user change their own email and password. Role
// and active state are read-only here.
func (s *Service) UpdateProfile(ctx context.Context, caller domain.Caller, cmd interfaces.UpdateProfileCommand) (*domain.User, error) {
	if !caller.Authenticated {
		return nil, domain.ErrUnauthorized
	}
	account, err := s.users.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if cmd.Email != nil {
		account.Email = strings.TrimSpace(*cmd.Email)
	}
	if cmd.Password != nil {
		if *cmd.Password == "" {
			return nil, domain.Validationf("password must not be empty")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*cmd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		account.PasswordHash = string(hash)
	}
	if err := s.users.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Service) ListUsers(ctx context.Context, caller domain.Caller) ([]*domain.User, error) {
	if !caller.Admin() {
		return nil, fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	return s.users.List(ctx)
}

func (s *Service) ChangeRole(ctx context.Context, caller domain.Caller, id int, role string) (*domain.User, error) {
	if !caller.Admin() {
		return nil, fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	if id == caller.UserID {
		return nil, domain.Validationf("cannot change your own user type")
	}
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}
	account, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	account.Role = parsed
	if err := s.users.Update(ctx, account); err != nil {
		return nil, err
	}
	s.logger.Info("user_role_changed", "User role changed", "", map[string]any{"user_id": id, "role": parsed})
	return account, nil
}

func (s *Service) ToggleActive(ctx context.Context, caller domain.Caller, id int) (*domain.User, error) {
	if !caller.Admin() {
		return nil, fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	if id == caller.UserID {
		return nil, domain.Validationf("cannot change your own active state")
	}
	account, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	account.IsActive = !account.IsActive
	if err := s.users.Update(ctx, account); err != nil {
		return nil, err
	}
	s.logger.Info("user_active_toggled", "User active state toggled", "", map[string]any{"user_id": id, "is_active": account.IsActive})
	return account, nil
}
