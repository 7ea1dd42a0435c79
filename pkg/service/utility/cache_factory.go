/*
 * @Description: 缓存工厂，Redis 不可用时自动降级到内存缓存
 * @Author: 安知鱼
 * @Date: 2025-11-08 16:30:00
 * @LastEditTime: 2026-02-04 21:15:22
 * @LastEditors: 安知鱼
 */
package utility

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewCacheServiceWithFallback 创建带有自动降级功能的缓存服务
// 如果 redisClient 为 nil 或 Ping 失败，自动降级到内存缓存
func NewCacheServiceWithFallback(redisClient *redis.Client) CacheService {
	if redisClient == nil {
		log.Println("[缓存] 未配置 Redis，使用内存缓存")
		return NewMemoryCacheService()
	}

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Printf("[缓存] WARN: Redis 不可用: %v，降级到内存缓存", err)
		return NewMemoryCacheService()
	}

	log.Println("[缓存] 使用 Redis 缓存服务")
	return NewCacheService(redisClient)
}
