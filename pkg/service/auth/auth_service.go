/*
 * @Description: 后台用户认证服务（登录、令牌刷新）
 * @Author: 安知鱼
 * @Date: 2025-11-10 19:05:40
 * @LastEditTime: 2026-02-18 16:32:07
 * @LastEditors: 安知鱼
 */
package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/behark/autoanikw-sub000/internal/pkg/auth"
	"github.com/behark/autoanikw-sub000/pkg/constant"
	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
	"github.com/behark/autoanikw-sub000/pkg/idgen"
)

// TokenPair 是登录/刷新返回的令牌对。
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Service 处理登录与令牌刷新。
type Service struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
}

func NewService(userRepo repository.UserRepository, jwtSecret []byte) *Service {
	return &Service{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// Login 校验用户名密码并签发令牌对。
// 用户不存在和密码错误返回同一个错误，不向外泄露哪一步失败。
func (s *Service) Login(ctx context.Context, username, password string) (*TokenPair, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: 用户名或密码错误", constant.ErrUnauthorized)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, fmt.Errorf("%w: 用户名或密码错误", constant.ErrUnauthorized)
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	if publicID, gerr := idgen.GeneratePublicID(user.ID, idgen.EntityTypeUser); gerr == nil {
		user.PublicID = publicID
	}
	return pair, user, nil
}

// Refresh 用 Refresh Token 换发新的令牌对。
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := auth.ParseToken(refreshToken, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constant.ErrInvalidToken, err)
	}

	userID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil || entityType != idgen.EntityTypeUser {
		return nil, constant.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: 用户不存在", constant.ErrInvalidToken)
	}
	return s.issueTokens(user)
}

func (s *Service) issueTokens(user *model.User) (*TokenPair, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role), s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("签发访问令牌失败: %w", err)
	}
	refreshToken, err := auth.GenerateRefreshToken(user.ID, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("签发刷新令牌失败: %w", err)
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// HashPassword 生成密码的 bcrypt 哈希，供初始化和改密使用。
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("生成密码哈希失败: %w", err)
	}
	return string(hash), nil
}
