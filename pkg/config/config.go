/*
 * @Description: 统一配置管理 (ini 文件默认值 + 环境变量覆盖)
 * @Author: 安知鱼
 * @Date: 2025-11-03 11:24:50
 * @LastEditTime: 2026-03-10 14:18:36
 * @LastEditors: 安知鱼
 */
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
	"github.com/spf13/viper"
)

// 定义所有已知的配置键
var allKeys = []string{
	KeyServerPort, KeyServerDebug, KeyJWTSecret,
	KeyDBType, KeyDBHost, KeyDBPort, KeyDBUser, KeyDBPassword, KeyDBName, KeyDBDebug,
	KeyRedisAddr, KeyRedisPassword, KeyRedisDB,
	KeyMediaProvider, KeyMediaBucket, KeyMediaAccessKey, KeyMediaSecretKey,
	KeyMediaCDNDomain, KeyMediaBasePath, KeyMediaServer, KeyMediaLocalDir,
}

const (
	KeyServerPort  = "System.Port"
	KeyServerDebug = "System.Debug"
	KeyJWTSecret   = "System.JWTSecret"

	KeyDBType     = "Database.Type"
	KeyDBHost     = "Database.Host"
	KeyDBPort     = "Database.Port"
	KeyDBUser     = "Database.User"
	KeyDBPassword = "Database.Password"
	KeyDBName     = "Database.Name"
	KeyDBDebug    = "Database.Debug"

	KeyRedisAddr     = "Redis.Addr"
	KeyRedisPassword = "Redis.Password"
	KeyRedisDB       = "Redis.DB"

	// 媒体存储（远端对象存储）相关配置，应用启动时读取一次并注入网关。
	KeyMediaProvider  = "Media.Provider"
	KeyMediaBucket    = "Media.Bucket"
	KeyMediaAccessKey = "Media.AccessKey"
	KeyMediaSecretKey = "Media.SecretKey"
	KeyMediaCDNDomain = "Media.CDNDomain"
	KeyMediaBasePath  = "Media.BasePath"
	KeyMediaServer    = "Media.Server"
	KeyMediaLocalDir  = "Media.LocalDir"
)

type Config struct {
	vp *viper.Viper
}

// NewConfig 手动加载配置：先读 ini 文件作为默认值，再用环境变量逐键覆盖。
func NewConfig() (*Config, error) {
	vp := viper.New()
	filePath := "data/conf.ini"

	// --- 步骤 1: 使用 go-ini 从文件加载配置 (作为默认值) ---
	iniCfg, err := ini.Load(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("提示: 未找到 %s，将创建默认配置文件。", filePath)
			if err := createDefaultConfigFile(filePath); err != nil {
				log.Printf("警告: 创建默认配置文件失败: %v，将仅依赖环境变量或内部默认值。", err)
			} else {
				log.Printf("✅ 已创建默认配置文件: %s", filePath)
				iniCfg, err = ini.Load(filePath)
				if err != nil {
					log.Printf("警告: 重新加载配置文件失败: %v", err)
				}
			}
		} else {
			return nil, fmt.Errorf("错误: 解析配置文件 '%s' 失败: %w", filePath, err)
		}
	}

	if iniCfg != nil {
		for _, section := range iniCfg.Sections() {
			for _, key := range section.Keys() {
				viperKey := fmt.Sprintf("%s.%s", section.Name(), key.Name())
				if section.Name() == "DEFAULT" {
					viperKey = key.Name()
				}
				vp.Set(viperKey, key.Value())
			}
		}
		log.Println("从 data/conf.ini 文件加载了默认配置。")
	}

	// --- 步骤 2: 手动检查并覆盖环境变量 ---
	envReplacer := strings.NewReplacer(".", "_")
	envPrefix := "AUTOANI"

	for _, key := range allKeys {
		// 构建环境变量名，例如 AUTOANI_MEDIA_ACCESSKEY
		envVarName := fmt.Sprintf("%s_%s", envPrefix, envReplacer.Replace(strings.ToUpper(key)))
		if value, found := os.LookupEnv(envVarName); found {
			vp.Set(key, value)
			log.Printf("发现环境变量: %s, 已覆盖配置 '%s'。", envVarName, key)
		}
	}

	log.Println("✅ 配置加载器初始化完成。")
	return &Config{vp: vp}, nil
}

func (c *Config) GetString(key string) string {
	return c.vp.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.vp.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.vp.GetBool(key)
}

// createDefaultConfigFile 创建默认的配置文件
func createDefaultConfigFile(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	// 默认配置内容（使用 SQLite + 本地媒体存储，开箱即用）
	defaultConfig := `[System]
Port = 8091
Debug = false
# JWTSecret 留空时每次启动随机生成，生产环境务必固定
JWTSecret =

[Database]
Type = sqlite
Name = autoani_app.db
Debug = false

# Redis 配置（可选，未配置时使用内存缓存）
[Redis]
Addr =
Password =
DB = 0

# 媒体存储配置
# Provider 可选: local / qiniu / s3
[Media]
Provider = local
Bucket =
AccessKey =
SecretKey =
CDNDomain =
BasePath = media
Server =
LocalDir = ./data/media
`

	if err := os.WriteFile(filePath, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("写入默认配置失败: %w", err)
	}
	return nil
}
