package service

import (
	"Agora/config"
	"Agora/dao"
	"Agora/models"
	"Agora/pkg/encrypt"
	"Agora/pkg/jwt"
	"Agora/pkg/response"
	"Agora/types"
	"context"
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
}

type AuthService struct {
	Config  *config.Config
	UserDAO *dao.User
}

// Register 注册并直接签发令牌
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error) {
	if s.UserDAO.IsUsernameExist(ctx, req.Username) {
		return nil, response.NewError(http.StatusConflict, "用户名已存在")
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Password: hash,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewError(http.StatusConflict, "用户名已存在")
		}
		return nil, err
	}

	return s.issueToken(user)
}

// Login 登录
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	user, err := s.UserDAO.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusUnauthorized, "账号不存在")
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, response.NewError(http.StatusUnauthorized, "密码错误")
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (*types.LoginResponse, error) {
	expire := time.Duration(s.Config.Jwt.ExpiresTime) * time.Second
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret),
		user.ID, user.Username, user.IsStaff, "access", expire)
	if err != nil {
		return nil, err
	}

	return &types.LoginResponse{
		UserID:      user.ID,
		Username:    user.Username,
		IsStaff:     user.IsStaff,
		AccessToken: token,
		ExpiresIn:   s.Config.Jwt.ExpiresTime,
	}, nil
}
