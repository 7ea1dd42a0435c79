/*
 * @Description: 应用初始化数据：首次启动时创建默认管理员账号
 * @Author: 安知鱼
 * @Date: 2025-11-15 09:48:26
 * @LastEditTime: 2026-02-18 14:22:07
 * @LastEditors: 安知鱼
 */
package bootstrap

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/behark/autoanikw-sub000/pkg/domain/model"
	"github.com/behark/autoanikw-sub000/pkg/domain/repository"
	auth_service "github.com/behark/autoanikw-sub000/pkg/service/auth"
)

const defaultAdminUsername = "admin"

// EnsureAdminUser 在用户表为空时创建默认管理员。
// 初始密码优先取环境变量 AUTOANI_ADMIN_PASSWORD，没有则随机生成并打印到启动日志，
// 只打印这一次，之后无法再找回。
func EnsureAdminUser(ctx context.Context, userRepo repository.UserRepository) error {
	count, err := userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("检查用户表失败: %w", err)
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("AUTOANI_ADMIN_PASSWORD")
	generated := false
	if password == "" {
		password, err = randomPassword()
		if err != nil {
			return fmt.Errorf("生成初始密码失败: %w", err)
		}
		generated = true
	}

	hash, err := auth_service.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &model.User{
		Username:     defaultAdminUsername,
		PasswordHash: hash,
		Nickname:     "管理员",
		Role:         model.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("创建默认管理员失败: %w", err)
	}

	if generated {
		log.Printf("✅ 已创建默认管理员账号: %s，初始密码: %s（仅本次打印，请立即修改）", defaultAdminUsername, password)
	} else {
		log.Printf("✅ 已创建默认管理员账号: %s（密码来自环境变量）", defaultAdminUsername)
	}
	return nil
}

func randomPassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
