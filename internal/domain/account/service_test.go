package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"pronotes/internal/storage/kv"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Account, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Account), args.Error(1)
}

func (m *MockRepository) Append(ctx context.Context, acc Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewRepo(kv.NewMemory()), slog.Default())
}

func TestService_Create(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	acc, err := service.Create(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", acc.Username)
	assert.Equal(t, "pw1", acc.Password)

	accounts, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Account{{Username: "alice", Password: "pw1"}}, accounts)
}

func TestService_Create_UsernameTaken(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = service.Create(ctx, "alice", "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// the failed signup must not touch the collection
	accounts, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
	assert.Equal(t, "pw1", accounts[0].Password)
}

func TestService_Create_CaseSensitiveUsernames(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, "alice", "pw1")
	require.NoError(t, err)

	// usernames are compared exactly, no normalization
	_, err = service.Create(ctx, "Alice", "pw2")
	require.NoError(t, err)

	accounts, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestService_Create_BlankFields(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "pw"},
		{name: "empty password", username: "alice", password: ""},
		{name: "empty both", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t)

			_, err := service.Create(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, "alice", "pw1")
	require.NoError(t, err)

	// every created account can authenticate with its own credentials
	acc, err := service.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", acc.Username)
}

func TestService_Authenticate_Failures(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, "alice", "pw1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "alice", password: "pw2"},
		{name: "unknown user", username: "bob", password: "pw1"},
		{name: "case mismatch", username: "Alice", password: "pw1"},
		{name: "empty credentials", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Authenticate(ctx, tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestService_AuthenticateBiometric(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Create(ctx, "alice", "pw1")
	require.NoError(t, err)

	// biometric auth resolves by username alone, the password is never checked
	acc, err := service.AuthenticateBiometric(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", acc.Username)

	_, err = service.AuthenticateBiometric(ctx, "bob")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Create_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything).Return([]Account{}, nil)
	mockRepo.On("Append", mock.Anything, Account{Username: "alice", Password: "pw1"}).
		Return(errors.New("disk full"))

	_, err := service.Create(context.Background(), "alice", "pw1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_StorageError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything).Return([]Account{}, errors.New("database error"))

	_, err := service.Authenticate(context.Background(), "alice", "pw1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}
