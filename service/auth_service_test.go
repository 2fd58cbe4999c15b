package service

import (
	"context"
	"testing"
	"time"

	"schedulebuilder-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServiceWithFake() (*fakeUserStore, *AuthService) {
	users := newFakeUserStore()
	return users, NewAuthService(users, "test-secret", 30*time.Minute)
}

func TestRegisterAndLogin(t *testing.T) {
	_, svc := newAuthServiceWithFake()

	user, err := svc.Register(context.Background(), "alice@example.com", "correct horse")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	token, err := svc.Login(context.Background(), "alice@example.com", "correct horse")
	require.NoError(t, err)

	userID, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, svc := newAuthServiceWithFake()

	_, err := svc.Register(context.Background(), "alice@example.com", "password1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice@example.com", "password2")
	assert.ErrorIs(t, err, repository.ErrEmailTaken)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, svc := newAuthServiceWithFake()

	_, err := svc.Register(context.Background(), "alice@example.com", "correct horse")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice@example.com", "battery staple")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	_, svc := newAuthServiceWithFake()

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseToken_Garbage(t *testing.T) {
	_, svc := newAuthServiceWithFake()

	_, err := svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	users := newFakeUserStore()
	issuer := NewAuthService(users, "secret-a", 30*time.Minute)
	verifier := NewAuthService(users, "secret-b", 30*time.Minute)

	token, err := issuer.GenerateToken(42)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, "test-secret", -time.Minute)

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCurrentUser(t *testing.T) {
	_, svc := newAuthServiceWithFake()

	user, err := svc.Register(context.Background(), "alice@example.com", "correct horse")
	require.NoError(t, err)

	got, err := svc.CurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)

	_, err = svc.CurrentUser(context.Background(), 9999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
