/*
 * @Description: 内存缓存服务，Redis 不可用时的降级实现
 * @Author: 安知鱼
 * @Date: 2025-11-08 16:02:10
 * @LastEditTime: 2026-02-04 21:11:38
 * @LastEditors: 安知鱼
 */
package utility

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// ErrCacheMiss 表示键不存在或已过期。
var ErrCacheMiss = fmt.Errorf("cache: key not found")

type cacheItem struct {
	value     string
	expiresAt time.Time // 零值表示永不过期
}

func (item *cacheItem) isExpired() bool {
	return !item.expiresAt.IsZero() && time.Now().After(item.expiresAt)
}

// memoryCacheService 是 CacheService 的进程内实现。
// 单机部署和测试环境使用，数据不跨进程、不落盘。
type memoryCacheService struct {
	mu   sync.RWMutex
	data map[string]*cacheItem
	stop chan struct{}
}

func NewMemoryCacheService() CacheService {
	s := &memoryCacheService{
		data: make(map[string]*cacheItem),
		stop: make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

// cleanupLoop 周期性清理过期的键，避免内存无限增长。
func (s *memoryCacheService) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			for key, item := range s.data {
				if item.isExpired() {
					delete(s.data, key)
				}
			}
			s.mu.Unlock()
		case <-s.stop:
			return
		}
	}
}

func (s *memoryCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	item := &cacheItem{value: fmt.Sprintf("%v", value)}
	if expiration > 0 {
		item.expiresAt = time.Now().Add(expiration)
	}
	s.mu.Lock()
	s.data[key] = item
	s.mu.Unlock()
	return nil
}

func (s *memoryCacheService) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	item, ok := s.data[key]
	s.mu.RUnlock()
	if !ok || item.isExpired() {
		return "", ErrCacheMiss
	}
	return item.value, nil
}

func (s *memoryCacheService) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.data, key)
	}
	s.mu.Unlock()
	return nil
}

// Scan 支持与 Redis 相同的 '*' 后缀通配，满足按前缀失效的需要。
func (s *memoryCacheService) Scan(ctx context.Context, pattern string) ([]string, error) {
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	s.mu.RLock()
	for key, item := range s.data {
		if item.isExpired() {
			continue
		}
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	s.mu.RUnlock()
	return keys, nil
}
