/*
 * @Description: 七牛云Kodo媒体存储驱动
 * @Author: 安知鱼
 * @Date: 2025-11-05 10:02:17
 * @LastEditTime: 2026-03-18 11:20:45
 * @LastEditors: 安知鱼
 *
 * 七牛的图片变换走 URL 参数（imageView2），衍生图由云端按需生成，
 * URL 在生成完成前就可以确定性地构造出来。
 */
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/qiniu/go-sdk/v7/auth"
	qiniustorage "github.com/qiniu/go-sdk/v7/storage"
)

// QiniuKodoProvider 实现了 IMediaProvider 接口，用于处理与七牛云Kodo的所有交互。
type QiniuKodoProvider struct {
}

// NewQiniuKodoProvider 是 QiniuKodoProvider 的构造函数。
func NewQiniuKodoProvider() IMediaProvider {
	return &QiniuKodoProvider{}
}

// getCredentials 获取七牛云认证凭证
func (p *QiniuKodoProvider) getCredentials(policy *MediaPolicy) (*auth.Credentials, error) {
	if policy.AccessKey == "" {
		return nil, fmt.Errorf("七牛云配置缺少AccessKey")
	}
	if policy.SecretKey == "" {
		return nil, fmt.Errorf("七牛云配置缺少SecretKey")
	}
	return auth.New(policy.AccessKey, policy.SecretKey), nil
}

// getUploadConfig 根据上传域名解析区域配置
func (p *QiniuKodoProvider) getUploadConfig(policy *MediaPolicy) *qiniustorage.Config {
	cfg := &qiniustorage.Config{
		UseHTTPS:      true,
		UseCdnDomains: false,
	}

	// 七牛云区域域名格式: https://up-z0.qiniup.com (华东)
	// z0=华东, z1=华北, z2=华南, na0=北美, as0=东南亚
	if policy.Server != "" {
		server := strings.ToLower(policy.Server)
		switch {
		case strings.Contains(server, "up-z0"), strings.Contains(server, "up.qiniup.com"):
			cfg.Region = &qiniustorage.ZoneHuadong
		case strings.Contains(server, "up-z1"):
			cfg.Region = &qiniustorage.ZoneHuabei
		case strings.Contains(server, "up-z2"):
			cfg.Region = &qiniustorage.ZoneHuanan
		case strings.Contains(server, "up-na0"):
			cfg.Region = &qiniustorage.ZoneBeimei
		case strings.Contains(server, "up-as0"):
			cfg.Region = &qiniustorage.ZoneXinjiapo
		default:
			cfg.Region = &qiniustorage.ZoneHuadong
		}
	}

	return cfg
}

// Upload 上传文件到七牛云Kodo
func (p *QiniuKodoProvider) Upload(ctx context.Context, file io.Reader, policy *MediaPolicy, objectKey string, mimeType string) (*UploadResult, error) {
	if policy.BucketName == "" {
		return nil, fmt.Errorf("七牛云配置缺少存储空间名称")
	}

	mac, err := p.getCredentials(policy)
	if err != nil {
		return nil, err
	}

	log.Printf("[七牛云] 开始上传对象: objectKey=%s", objectKey)

	putPolicy := qiniustorage.PutPolicy{
		Scope: fmt.Sprintf("%s:%s", policy.BucketName, objectKey),
	}
	upToken := putPolicy.UploadToken(mac)

	// 读取文件内容到内存（七牛云SDK需要知道文件大小）
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("读取上传文件失败: %w", err)
	}

	cfg := p.getUploadConfig(policy)
	formUploader := qiniustorage.NewFormUploader(cfg)

	ret := qiniustorage.PutRet{}
	putExtra := qiniustorage.PutExtra{
		MimeType: mimeType,
	}

	err = formUploader.Put(ctx, &ret, upToken, objectKey, bytes.NewReader(data), int64(len(data)), &putExtra)
	if err != nil {
		log.Printf("[七牛云] 上传失败: %v", err)
		return nil, fmt.Errorf("上传文件到七牛云失败: %w", err)
	}

	log.Printf("[七牛云] 上传成功: objectKey=%s, hash=%s", objectKey, ret.Hash)

	return &UploadResult{
		StorageKey: objectKey,
		Size:       int64(len(data)),
		MimeType:   mimeType,
	}, nil
}

// Delete 从七牛云Kodo删除一个对象。对象不存在时返回 ErrObjectNotFound。
func (p *QiniuKodoProvider) Delete(ctx context.Context, policy *MediaPolicy, storageKey string) error {
	mac, err := p.getCredentials(policy)
	if err != nil {
		return err
	}

	cfg := qiniustorage.Config{UseHTTPS: true}
	bucketManager := qiniustorage.NewBucketManager(mac, &cfg)

	err = bucketManager.Delete(policy.BucketName, storageKey)
	if err != nil {
		// 612 是七牛云的"文件不存在"错误码
		if strings.Contains(err.Error(), "no such file or directory") ||
			strings.Contains(err.Error(), "612") {
			return ErrObjectNotFound
		}
		return fmt.Errorf("删除七牛云对象 %s 失败: %w", storageKey, err)
	}
	return nil
}

// BuildURL 构建对象的公开访问URL。
func (p *QiniuKodoProvider) BuildURL(policy *MediaPolicy, storageKey string) string {
	return fmt.Sprintf("%s/%s", normalizeCDNDomain(policy.CDNDomain), storageKey)
}

// BuildTransformURL 构建带 imageView2 图片处理参数的URL。
// 七牛云图片处理格式: ?imageView2/2/w/400/h/400/q/85/format/jpg
// 模式2表示等比缩放、不裁剪、不放大，与入库归一化的语义一致。
func (p *QiniuKodoProvider) BuildTransformURL(policy *MediaPolicy, storageKey string, spec TransformSpec) (string, error) {
	var sb strings.Builder
	sb.WriteString("imageView2/2")
	if spec.Width > 0 {
		fmt.Fprintf(&sb, "/w/%d", spec.Width)
	}
	if spec.Height > 0 {
		fmt.Fprintf(&sb, "/h/%d", spec.Height)
	}
	if spec.Quality > 0 {
		fmt.Fprintf(&sb, "/q/%d", spec.Quality)
	}
	if spec.Format != "" {
		fmt.Fprintf(&sb, "/format/%s", spec.Format)
	}
	return fmt.Sprintf("%s?%s", p.BuildURL(policy, storageKey), sb.String()), nil
}

// IsExist 检查对象是否存在于七牛云Kodo中
func (p *QiniuKodoProvider) IsExist(ctx context.Context, policy *MediaPolicy, storageKey string) (bool, error) {
	mac, err := p.getCredentials(policy)
	if err != nil {
		return false, err
	}

	cfg := qiniustorage.Config{UseHTTPS: true}
	bucketManager := qiniustorage.NewBucketManager(mac, &cfg)

	_, err = bucketManager.Stat(policy.BucketName, storageKey)
	if err != nil {
		if strings.Contains(err.Error(), "no such file or directory") ||
			strings.Contains(err.Error(), "612") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// normalizeCDNDomain 确保访问域名带协议前缀且不带尾斜杠。
func normalizeCDNDomain(domain string) string {
	domain = strings.TrimSuffix(domain, "/")
	if domain == "" {
		return domain
	}
	if !strings.HasPrefix(domain, "http://") && !strings.HasPrefix(domain, "https://") {
		domain = "https://" + domain
	}
	return domain
}
