/*
 * @Description: 频率限制中间件
 * @Author: 安知鱼
 * @Date: 2025-11-12 11:00:00
 * @LastEditTime: 2026-01-14 15:59:28
 * @LastEditors: 安知鱼
 */
package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/behark/autoanikw-sub000/pkg/response"
)

// ipRateLimiter 用于存储每个IP地址的限流器
type ipRateLimiter struct {
	limiters map[string]*limiterInfo
	mu       sync.Mutex
	// 每个IP每分钟允许的请求数
	requestsPerMinute int
	// 突发请求数（允许短时间内的突发流量）
	burst int
}

type limiterInfo struct {
	limiter      *rate.Limiter
	lastAccessed time.Time
}

func newIPRateLimiter(requestsPerMinute, burst int) *ipRateLimiter {
	l := &ipRateLimiter{
		limiters:          make(map[string]*limiterInfo),
		requestsPerMinute: requestsPerMinute,
		burst:             burst,
	}
	go l.cleanupStaleEntries()
	return l
}

func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	info, exists := i.limiters[ip]
	if !exists {
		info = &limiterInfo{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(i.requestsPerMinute)), i.burst),
		}
		i.limiters[ip] = info
	}
	info.lastAccessed = time.Now()
	return info.limiter
}

// cleanupStaleEntries 定期清理长时间未访问的IP，避免map无限增长。
func (i *ipRateLimiter) cleanupStaleEntries() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		i.mu.Lock()
		for ip, info := range i.limiters {
			if time.Since(info.lastAccessed) > 10*time.Minute {
				delete(i.limiters, ip)
			}
		}
		i.mu.Unlock()
	}
}

// 登录接口限流器：每个IP每分钟5次，突发允许10次
var loginLimiter = newIPRateLimiter(5, 10)

// 上传接口限流器：每个IP每分钟30次，突发允许10次
var uploadLimiter = newIPRateLimiter(30, 10)

// LoginRateLimit 登录接口频率限制中间件，抵御口令爆破。
func LoginRateLimit() gin.HandlerFunc {
	return rateLimitWith(loginLimiter, "尝试过于频繁，请稍后再试")
}

// UploadRateLimit 上传接口频率限制中间件，防止单IP刷爆转码与存储带宽。
func UploadRateLimit() gin.HandlerFunc {
	return rateLimitWith(uploadLimiter, "上传过于频繁，请稍后再试")
}

func rateLimitWith(limiter *ipRateLimiter, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := getClientIP(c)
		if !limiter.getLimiter(ip).Allow() {
			response.Fail(c, http.StatusTooManyRequests, message)
			c.Abort()
			return
		}
		c.Next()
	}
}

// getClientIP 取客户端真实IP，剥离端口。
func getClientIP(c *gin.Context) string {
	ip := c.ClientIP()
	if host, _, err := net.SplitHostPort(ip); err == nil {
		return host
	}
	return ip
}
