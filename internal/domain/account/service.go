package account

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Account, error)
	Create(ctx context.Context, username, password string) (Account, error)
	Authenticate(ctx context.Context, username, password string) (Account, error)
	AuthenticateBiometric(ctx context.Context, username string) (Account, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "account_service"),
	}
}

// List returns every known account, in stored order. It backs the account
// switcher in the UI layer.
func (s *Service) List(ctx context.Context) ([]Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list accounts", "error", err)
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	return accounts, nil
}

// Create registers a new account. Usernames are unique, compared
// case-sensitively with no normalization. A freshly created account is not
// logged in; the caller is expected to prompt for login afterwards.
func (s *Service) Create(ctx context.Context, username, password string) (Account, error) {
	if username == "" || password == "" {
		return Account{}, ErrInvalidInput
	}

	accounts, err := s.repo.List(ctx)
	if err != nil {
		return Account{}, fmt.Errorf("list accounts: %w", err)
	}

	for _, acc := range accounts {
		if acc.Username == username {
			return Account{}, ErrUsernameTaken
		}
	}

	acc := Account{Username: username, Password: password}
	if err := s.repo.Append(ctx, acc); err != nil {
		s.log.Error("failed to create account", "username", username, "error", err)
		return Account{}, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("account created", "username", username)

	return acc, nil
}

// Authenticate checks the credentials against the account collection.
// Both username and password must match exactly.
func (s *Service) Authenticate(ctx context.Context, username, password string) (Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return Account{}, fmt.Errorf("list accounts: %w", err)
	}

	for _, acc := range accounts {
		if acc.Username == username && acc.Password == password {
			return acc, nil
		}
	}

	s.log.Debug("authentication failed", "username", username)

	return Account{}, ErrInvalidCredentials
}

// AuthenticateBiometric resolves an account by username only. It performs
// no secret verification: the caller must already hold a successful device
// biometric confirmation before invoking it.
func (s *Service) AuthenticateBiometric(ctx context.Context, username string) (Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return Account{}, fmt.Errorf("list accounts: %w", err)
	}

	for _, acc := range accounts {
		if acc.Username == username {
			return acc, nil
		}
	}

	return Account{}, ErrUserNotFound
}
