/*
 * @Description: JWT 签发、解析与密钥兜底的测试
 * @Author: 安知鱼
 * @Date: 2026-03-22 10:12:40
 * @LastEditTime: 2026-03-22 11:05:18
 * @LastEditors: 安知鱼
 */
package auth

import (
	"bytes"
	"os"
	"testing"

	"github.com/behark/autoanikw-sub000/pkg/idgen"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestEnsureSecret(t *testing.T) {
	t.Run("非空密钥原样返回", func(t *testing.T) {
		configured := []byte("my-configured-secret")
		got, err := EnsureSecret(configured)
		if err != nil {
			t.Fatalf("EnsureSecret 返回错误: %v", err)
		}
		if !bytes.Equal(got, configured) {
			t.Fatalf("配置的密钥被改写: %q", got)
		}
	})

	t.Run("空密钥随机生成", func(t *testing.T) {
		first, err := EnsureSecret(nil)
		if err != nil {
			t.Fatalf("EnsureSecret 返回错误: %v", err)
		}
		if len(first) == 0 {
			t.Fatal("生成的密钥为空")
		}
		second, err := EnsureSecret([]byte{})
		if err != nil {
			t.Fatalf("EnsureSecret 返回错误: %v", err)
		}
		if bytes.Equal(first, second) {
			t.Fatal("两次生成的密钥相同，不是随机值")
		}
	})
}

// 默认配置 JWTSecret 留空时，依赖 EnsureSecret 的兜底密钥必须能完整走通
// 签发和解析，否则登录永远返回 500。
func TestTokenRoundTripWithGeneratedSecret(t *testing.T) {
	secret, err := EnsureSecret(nil)
	if err != nil {
		t.Fatalf("生成密钥失败: %v", err)
	}

	token, err := GenerateToken(42, "admin", secret)
	if err != nil {
		t.Fatalf("签发Token失败: %v", err)
	}

	claims, err := ParseToken(token, secret)
	if err != nil {
		t.Fatalf("解析Token失败: %v", err)
	}
	if claims.Role != "admin" {
		t.Errorf("角色不符: got %q", claims.Role)
	}
	userID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil || entityType != idgen.EntityTypeUser || userID != 42 {
		t.Errorf("UserID 解码不符: id=%d type=%d err=%v", userID, entityType, err)
	}
}

func TestTokenRejectsEmptySecret(t *testing.T) {
	if _, err := GenerateToken(1, "admin", nil); err == nil {
		t.Error("空密钥签发 Access Token 应当报错")
	}
	if _, err := GenerateRefreshToken(1, nil); err == nil {
		t.Error("空密钥签发 Refresh Token 应当报错")
	}
	if _, err := ParseToken("whatever", nil); err == nil {
		t.Error("空密钥解析应当报错")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(7, "editor", []byte("secret-a"))
	if err != nil {
		t.Fatalf("签发Token失败: %v", err)
	}
	if _, err := ParseToken(token, []byte("secret-b")); err == nil {
		t.Error("错误密钥解析应当报错")
	}
}
