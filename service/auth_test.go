package service

import (
	"Agora/config"
	"Agora/dao"
	"Agora/pkg/jwt"
	"Agora/pkg/response"
	"Agora/types"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		Config: &config.Config{
			Jwt: &config.Jwt{Secret: "test-secret", ExpiresTime: 3600},
		},
		UserDAO: dao.NewUser(db),
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &types.RegisterRequest{Username: "alice", Password: "secret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "alice", registered.Username)
	assert.NotEmpty(t, registered.AccessToken)

	// 用户名重复
	_, err = svc.Register(ctx, &types.RegisterRequest{Username: "alice", Password: "other-pass"})
	var be *response.BizError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusConflict, be.Code)

	// 令牌可解析且身份一致
	claims, err := jwt.ParseToken([]byte("test-secret"), "access", registered.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.False(t, claims.IsStaff)

	logged, err := svc.Login(ctx, &types.LoginRequest{Username: "alice", Password: "secret-pass"})
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, logged.UserID)

	_, err = svc.Login(ctx, &types.LoginRequest{Username: "alice", Password: "wrong-pass"})
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusUnauthorized, be.Code)

	_, err = svc.Login(ctx, &types.LoginRequest{Username: "nobody", Password: "whatever"})
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusUnauthorized, be.Code)
}
