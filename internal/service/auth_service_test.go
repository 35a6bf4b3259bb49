package service_test

import (
	"context"
	"testing"

	"github.com/guilhermehba/estoque-ferro-velho/internal/config"
	"github.com/guilhermehba/estoque-ferro-velho/internal/dto"
	"github.com/guilhermehba/estoque-ferro-velho/internal/repository/memory"
	"github.com/guilhermehba/estoque-ferro-velho/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() service.AuthService {
	store := memory.NewStore()
	store.Seed()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	return service.NewAuthService(store.Users(), cfg)
}

func TestLoginWithDemoCredentials(t *testing.T) {
	svc := newAuthService()

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    memory.DemoEmail,
		Password: memory.DemoPassword,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, memory.DemoEmail, resp.User.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Email: memory.DemoEmail, Password: "wrong"})
	assert.Error(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: memory.DemoPassword})
	assert.Error(t, err)
}

func TestRefreshReturnsNewTokenPair(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	login, err := svc.Login(ctx, dto.LoginRequest{
		Email:    memory.DemoEmail,
		Password: memory.DemoPassword,
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}

func TestGetUser(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	login, err := svc.Login(ctx, dto.LoginRequest{
		Email:    memory.DemoEmail,
		Password: memory.DemoPassword,
	})
	require.NoError(t, err)

	user, err := svc.GetUser(ctx, uuid.MustParse(login.User.ID))
	require.NoError(t, err)
	assert.Equal(t, memory.DemoEmail, user.Email)

	_, err = svc.GetUser(ctx, uuid.New())
	assert.Error(t, err)
}
