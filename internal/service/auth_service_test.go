package service

import (
	"context"
	"testing"

	"petgroom-be/internal/apperror"
	"petgroom-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	factory, store := newFakeEnv()
	svc := NewAuthService(factory)

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Maria Silva",
		Email:    "maria@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "maria@example.com", registered.User.Email)

	require.Len(t, store.users, 1)
	require.NotNil(t, store.users[0].PasswordHash)
	assert.NotEqual(t, "supersecret", *store.users[0].PasswordHash)

	logged, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "maria@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.Id, logged.User.Id)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	factory, _ := newFakeEnv()
	svc := NewAuthService(factory)

	req := &dto.RegisterRequest{FullName: "Maria Silva", Email: "maria@example.com", Password: "supersecret"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	factory, _ := newFakeEnv()
	svc := NewAuthService(factory)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName: "Maria Silva",
		Email:    "maria@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "maria@example.com", Password: "wrong"})
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
}

func TestLoginRejectsGoogleOnlyAccount(t *testing.T) {
	factory, store := newFakeEnv()
	svc := NewAuthService(factory)

	user := seedUser(store)
	user.PasswordHash = nil

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: user.Email, Password: "anything"})
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
	assert.Equal(t, "account uses Google sign-in", appErr.Message)
}

func TestLoginUnknownEmail(t *testing.T) {
	factory, _ := newFakeEnv()
	svc := NewAuthService(factory)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.com", Password: "x"})
	appErr := apperror.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
}
