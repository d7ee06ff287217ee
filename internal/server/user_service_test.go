package server

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jonathan/recruit-ai/internal/config"
	"github.com/jonathan/recruit-ai/internal/db"
	"github.com/jonathan/recruit-ai/internal/types"
)

// mockDBClient is an in-memory DBClient for auth tests.
type mockDBClient struct {
	users map[uuid.UUID]*db.User
}

func newMockDBClient() *mockDBClient {
	return &mockDBClient{users: make(map[uuid.UUID]*db.User)}
}

func (m *mockDBClient) CreateUser(_ context.Context, name, email, avatarURL string) (uuid.UUID, error) {
	id := uuid.New()
	m.users[id] = &db.User{ID: id, Name: name, Email: email, AvatarURL: avatarURL}
	return id, nil
}

func (m *mockDBClient) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (m *mockDBClient) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockDBClient) CheckEmailExists(_ context.Context, email string) (bool, error) {
	u, _ := m.GetUserByEmail(context.Background(), email)
	return u != nil, nil
}

func (m *mockDBClient) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := m.users[userID]
	if !ok {
		return &ErrUserNotFound{UserID: userID}
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

// fastPasswordConfig uses the minimum bcrypt cost to keep tests quick.
func fastPasswordConfig() *config.PasswordConfig {
	return &config.PasswordConfig{BcryptCost: bcrypt.MinCost}
}

func TestRegisterAndLogin(t *testing.T) {
	mock := newMockDBClient()
	svc := NewUserService(mock, fastPasswordConfig(), nil)

	user, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Dana Smith",
		Email:    "dana@corp.example",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana Smith", user.Name)
	assert.Equal(t, "dana@corp.example", user.Email)

	loggedIn, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "dana@corp.example",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	mock := newMockDBClient()
	svc := NewUserService(mock, fastPasswordConfig(), nil)

	_, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name: "First", Email: "dup@corp.example", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &types.CreateUserRequest{
		Name: "Second", Email: "dup@corp.example", Password: "password456",
	})
	var dupErr *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "dup@corp.example", dupErr.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	mock := newMockDBClient()
	svc := NewUserService(mock, fastPasswordConfig(), nil)

	_, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name: "Dana", Email: "dana@corp.example", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &types.LoginRequest{
		Email: "dana@corp.example", Password: "wrong-password",
	})
	var credErr *ErrInvalidCredentials
	assert.ErrorAs(t, err, &credErr)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewUserService(newMockDBClient(), fastPasswordConfig(), nil)

	_, err := svc.Login(context.Background(), &types.LoginRequest{
		Email: "nobody@corp.example", Password: "password123",
	})
	var credErr *ErrInvalidCredentials
	assert.ErrorAs(t, err, &credErr)
}

func TestLoginPasswordNotSet(t *testing.T) {
	mock := newMockDBClient()
	id, err := mock.CreateUser(context.Background(), "No Password", "nopw@corp.example", "")
	require.NoError(t, err)
	// Simulate a legacy row with a hash but password_set unset
	hash, err := fastPasswordConfig().HashPassword("password123")
	require.NoError(t, err)
	mock.users[id].PasswordHash = hash
	mock.users[id].PasswordSet = false

	svc := NewUserService(mock, fastPasswordConfig(), nil)
	_, err = svc.Login(context.Background(), &types.LoginRequest{
		Email: "nopw@corp.example", Password: "password123",
	})
	var credErr *ErrInvalidCredentials
	assert.ErrorAs(t, err, &credErr)
}

func TestUpdatePassword(t *testing.T) {
	mock := newMockDBClient()
	svc := NewUserService(mock, fastPasswordConfig(), nil)

	user, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name: "Dana", Email: "dana@corp.example", Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePassword(context.Background(), user.ID, "password123", "newpassword456"))

	_, err = svc.Login(context.Background(), &types.LoginRequest{
		Email: "dana@corp.example", Password: "newpassword456",
	})
	assert.NoError(t, err)
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	mock := newMockDBClient()
	svc := NewUserService(mock, fastPasswordConfig(), nil)

	user, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name: "Dana", Email: "dana@corp.example", Password: "password123",
	})
	require.NoError(t, err)

	err = svc.UpdatePassword(context.Background(), user.ID, "wrong", "newpassword456")
	var mismatchErr *ErrPasswordMismatch
	assert.ErrorAs(t, err, &mismatchErr)
}

func TestUpdatePasswordUnknownUser(t *testing.T) {
	svc := NewUserService(newMockDBClient(), fastPasswordConfig(), nil)

	err := svc.UpdatePassword(context.Background(), uuid.New(), "password123", "newpassword456")
	var notFoundErr *ErrUserNotFound
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestRequestPasswordResetNeverReveals(t *testing.T) {
	mock := newMockDBClient()
	svc := NewUserService(mock, fastPasswordConfig(), nil)

	_, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name: "Dana", Email: "dana@corp.example", Password: "password123",
	})
	require.NoError(t, err)

	assert.NoError(t, svc.RequestPasswordReset(context.Background(), "dana@corp.example"))
	assert.NoError(t, svc.RequestPasswordReset(context.Background(), "stranger@corp.example"))
}
