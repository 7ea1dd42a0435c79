/*
 * @Description: AWS S3媒体存储驱动（使用aws-sdk-go-v2）
 * @Author: 安知鱼
 * @Date: 2025-11-05 10:30:00
 * @LastEditTime: 2026-03-18 11:25:12
 * @LastEditors: 安知鱼
 *
 * S3 不提供 URL 参数式的图片变换，BuildTransformURL 返回
 * ErrFeatureNotSupported，衍生图由上层在上传时本地渲染后以衍生键写入。
 */
package storage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// AWSS3Provider 实现了 IMediaProvider 接口，用于处理与AWS S3的所有交互。
type AWSS3Provider struct {
}

// NewAWSS3Provider 是 AWSS3Provider 的构造函数。
func NewAWSS3Provider() IMediaProvider {
	return &AWSS3Provider{}
}

// getS3Client 获取AWS S3客户端（使用aws-sdk-go-v2）
func (p *AWSS3Provider) getS3Client(ctx context.Context, policy *MediaPolicy) (*s3.Client, error) {
	if policy.BucketName == "" {
		return nil, fmt.Errorf("AWS S3配置缺少存储桶名称")
	}
	if policy.AccessKey == "" {
		return nil, fmt.Errorf("AWS S3配置缺少AccessKey")
	}
	if policy.SecretKey == "" {
		return nil, fmt.Errorf("AWS S3配置缺少SecretKey")
	}

	// 从Server字段获取区域和endpoint
	// Server格式可能是: "us-west-2" 或 "https://s3.us-west-2.amazonaws.com" 或自定义endpoint
	region := "us-east-1" // 默认区域
	var customEndpoint *string

	if policy.Server != "" {
		if strings.HasPrefix(policy.Server, "http") {
			parsedURL, err := url.Parse(policy.Server)
			if err == nil {
				customEndpoint = &policy.Server
				// 尝试从URL中提取区域信息
				if strings.Contains(parsedURL.Host, "amazonaws.com") {
					parts := strings.Split(parsedURL.Host, ".")
					if len(parts) >= 4 && strings.HasPrefix(parts[0], "s3") {
						region = parts[1] // s3.us-west-2.amazonaws.com
					}
				}
			}
		} else {
			// 假设是区域名称
			region = policy.Server
		}
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			policy.AccessKey,
			policy.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("创建AWS S3配置失败: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if customEndpoint != nil {
			o.BaseEndpoint = aws.String(*customEndpoint)
			o.UsePathStyle = true // 对于自定义endpoint通常需要path-style
		}
	})

	return client, nil
}

// Upload 上传文件到AWS S3
func (p *AWSS3Provider) Upload(ctx context.Context, file io.Reader, policy *MediaPolicy, objectKey string, mimeType string) (*UploadResult, error) {
	client, err := p.getS3Client(ctx, policy)
	if err != nil {
		return nil, err
	}

	log.Printf("[AWS S3] 开始上传对象: objectKey=%s", objectKey)

	// 将文件内容读入内存，以便获取准确的 ContentLength
	// 这对于第三方 S3 兼容服务（如 Ceph RGW、MinIO）尤为重要
	fileContent, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("读取上传文件失败: %w", err)
	}
	contentLength := int64(len(fileContent))

	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	// 计算 SHA256 校验和，避免第三方 S3 服务的 XAmzContentSHA256Mismatch 错误
	hash := sha256.Sum256(fileContent)
	checksumSHA256 := base64.StdEncoding.EncodeToString(hash[:])

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:         aws.String(policy.BucketName),
		Key:            aws.String(objectKey),
		Body:           bytes.NewReader(fileContent),
		ContentLength:  aws.Int64(contentLength),
		ContentType:    aws.String(mimeType),
		ChecksumSHA256: aws.String(checksumSHA256),
	})
	if err != nil {
		log.Printf("[AWS S3] 上传失败: %v", err)
		return nil, fmt.Errorf("上传文件到AWS S3失败: %w", err)
	}

	log.Printf("[AWS S3] 上传成功: objectKey=%s, size=%d", objectKey, contentLength)

	return &UploadResult{
		StorageKey: objectKey,
		Size:       contentLength,
		MimeType:   mimeType,
	}, nil
}

// Delete 从AWS S3删除一个对象。对象不存在时返回 ErrObjectNotFound。
//
// 注意：标准 S3 的 DeleteObject 对不存在的键也返回成功（幂等语义），
// 但部分兼容实现会返回 NoSuchKey，这里统一归一化。
func (p *AWSS3Provider) Delete(ctx context.Context, policy *MediaPolicy, storageKey string) error {
	client, err := p.getS3Client(ctx, policy)
	if err != nil {
		return err
	}

	_, err = client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(policy.BucketName),
		Key:    aws.String(storageKey),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		var notFound *types.NotFound
		if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("删除AWS S3对象 %s 失败: %w", storageKey, err)
	}
	return nil
}

// BuildURL 构建对象的公开访问URL。优先使用CDN域名，否则返回虚拟主机式S3地址。
func (p *AWSS3Provider) BuildURL(policy *MediaPolicy, storageKey string) string {
	if policy.CDNDomain != "" {
		return fmt.Sprintf("%s/%s", normalizeCDNDomain(policy.CDNDomain), storageKey)
	}
	region := policy.Server
	if region == "" || strings.HasPrefix(region, "http") {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", policy.BucketName, region, storageKey)
}

// BuildTransformURL S3不支持URL参数式图片变换。
func (p *AWSS3Provider) BuildTransformURL(policy *MediaPolicy, storageKey string, spec TransformSpec) (string, error) {
	return "", ErrFeatureNotSupported
}

// IsExist 检查对象是否存在于AWS S3中
func (p *AWSS3Provider) IsExist(ctx context.Context, policy *MediaPolicy, storageKey string) (bool, error) {
	client, err := p.getS3Client(ctx, policy)
	if err != nil {
		return false, err
	}

	_, err = client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(policy.BucketName),
		Key:    aws.String(storageKey),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		var notFound *types.NotFound
		if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("检查AWS S3对象是否存在失败: %w", err)
	}
	return true, nil
}
