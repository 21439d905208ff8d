package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"resume-parser-go/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
)

// 原始简历与解析文本共用一个存储桶，以对象键前缀区分并分别设置生命周期
const (
	uploadsPrefix    = "uploads/"
	parsedTextPrefix = "text/"
)

// ResumeObjectKey 返回原始简历文件的对象键
func ResumeObjectKey(submissionUUID, fileExt string) string {
	return uploadsPrefix + submissionUUID + fileExt
}

// ParsedTextObjectKey 返回解析文本的对象键
func ParsedTextObjectKey(submissionUUID string) string {
	return parsedTextPrefix + submissionUUID + ".txt"
}

// ObjectStorage 对象存储接口
type ObjectStorage interface {
	// UploadResumeFile 归档原始简历文件，返回对象键
	UploadResumeFile(ctx context.Context, submissionUUID, fileExt string, reader io.Reader, fileSize int64) (string, error)

	// UploadParsedText 归档解析后的文本，返回对象键
	UploadParsedText(ctx context.Context, submissionUUID string, text string) (string, error)

	// GetPresignedURL 获取对象的预签名下载URL
	GetPresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)

	// DeleteFile 删除对象
	DeleteFile(ctx context.Context, objectKey string) error
}

// 确保MinIO实现了ObjectStorage接口
var _ ObjectStorage = (*MinIO)(nil)

// MinIO 提供对象存储功能
type MinIO struct {
	client *minio.Client
	cfg    *config.MinIOConfig
	bucket string
	logger *log.Logger
}

// NewMinIO 创建MinIO客户端
func NewMinIO(cfg *config.MinIOConfig, logger *log.Logger) (*MinIO, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MinIO配置不能为空")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	logger.Printf("[MinIO] Initializing MinIO client with endpoint: %s, bucket: %s", cfg.Endpoint, cfg.BucketName)

	// 创建MinIO客户端
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		logger.Printf("[MinIO] Initialization failed: %v", err)
		return nil, fmt.Errorf("创建MinIO客户端失败: %w", err)
	}

	m := &MinIO{
		client: client,
		cfg:    cfg,
		bucket: cfg.BucketName,
		logger: logger,
	}

	// 确保存储桶存在
	if err := m.ensureBucketExists(cfg.BucketName, cfg.Location); err != nil {
		logger.Printf("[MinIO] Failed to ensure bucket %s exists: %v", cfg.BucketName, err)
		return nil, fmt.Errorf("确保存储桶 %s 存在失败: %w", cfg.BucketName, err)
	}

	// 设置生命周期规则
	if cfg.OriginalFileExpireDays > 0 || cfg.ParsedTextExpireDays > 0 {
		if err := m.setupLifecycleRules(context.Background()); err != nil {
			logger.Printf("[MinIO] Warning: Failed to set up lifecycle rules: %v", err)
		}
	}

	logger.Printf("[MinIO] Client initialized successfully for endpoint: %s", cfg.Endpoint)
	return m, nil
}

// ensureBucketExists 确保存储桶存在
func (m *MinIO) ensureBucketExists(bucketName, location string) error {
	m.logger.Printf("[MinIO] Ensuring bucket exists: %s (Location: %s)", bucketName, location)
	exists, err := m.client.BucketExists(context.Background(), bucketName)
	if err != nil {
		m.logger.Printf("[MinIO] Error checking if bucket %s exists: %v", bucketName, err)
		return fmt.Errorf("检查存储桶 %s 是否存在时出错: %w", bucketName, err)
	}
	if !exists {
		m.logger.Printf("[MinIO] Bucket %s does not exist, attempting to create...", bucketName)
		err = m.client.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			m.logger.Printf("[MinIO] Error creating bucket %s: %v", bucketName, err)
			return fmt.Errorf("创建存储桶 %s 失败: %w", bucketName, err)
		}
		m.logger.Printf("[MinIO] Bucket %s created successfully.", bucketName)
	} else {
		m.logger.Printf("[MinIO] Bucket %s already exists.", bucketName)
	}
	return nil
}

// setupLifecycleRules 按对象键前缀设置生命周期规则
func (m *MinIO) setupLifecycleRules(ctx context.Context) error {
	m.logger.Printf("[MinIO] Setting up lifecycle rules...")
	lc := lifecycle.NewConfiguration()

	if m.cfg.OriginalFileExpireDays > 0 {
		lc.Rules = append(lc.Rules, lifecycle.Rule{
			ID:         "expire-uploads",
			Status:     "Enabled",
			RuleFilter: lifecycle.Filter{Prefix: uploadsPrefix},
			Expiration: lifecycle.Expiration{
				Days: lifecycle.ExpirationDays(m.cfg.OriginalFileExpireDays),
			},
		})
	}
	if m.cfg.ParsedTextExpireDays > 0 {
		lc.Rules = append(lc.Rules, lifecycle.Rule{
			ID:         "expire-parsed-text",
			Status:     "Enabled",
			RuleFilter: lifecycle.Filter{Prefix: parsedTextPrefix},
			Expiration: lifecycle.Expiration{
				Days: lifecycle.ExpirationDays(m.cfg.ParsedTextExpireDays),
			},
		})
	}

	if err := m.client.SetBucketLifecycle(ctx, m.bucket, lc); err != nil {
		m.logger.Printf("[MinIO] Error setting lifecycle for bucket %s: %v", m.bucket, err)
		return fmt.Errorf("为存储桶 %s 设置生命周期失败: %w", m.bucket, err)
	}
	m.logger.Printf("[MinIO] Lifecycle rules setup completed.")
	return nil
}

// UploadResumeFile 归档原始简历文件
// 返回MinIO中的对象键 (不含bucket前缀)
func (m *MinIO) UploadResumeFile(ctx context.Context, submissionUUID, fileExt string, reader io.Reader, fileSize int64) (string, error) {
	objectName := ResumeObjectKey(submissionUUID, fileExt)
	contentType := getContentType(fileExt)

	if m.cfg.EnableTestLogging {
		m.logger.Printf("[MinIO-UploadResumeFile] Uploading: SubmissionUUID='%s', ObjectName='%s', Size=%d, ContentType='%s'",
			submissionUUID, objectName, fileSize, contentType)
	}

	info, err := m.client.PutObject(ctx, m.bucket, objectName, reader, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("上传对象 %s/%s 失败: %w", m.bucket, objectName, err)
	}

	if m.cfg.EnableTestLogging {
		m.logger.Printf("[MinIO-UploadResumeFile] Successfully uploaded %s, ETag: %s, Size: %d", objectName, info.ETag, info.Size)
	}
	return objectName, nil
}

// UploadParsedText 归档解析后的文本
func (m *MinIO) UploadParsedText(ctx context.Context, submissionUUID string, text string) (string, error) {
	objectName := ParsedTextObjectKey(submissionUUID)

	if m.cfg.EnableTestLogging {
		m.logger.Printf("[MinIO-UploadParsedText] Uploading: SubmissionUUID='%s', ObjectName='%s', TextLength=%d",
			submissionUUID, objectName, len(text))
	}

	_, err := m.client.PutObject(ctx, m.bucket, objectName, strings.NewReader(text), int64(len(text)),
		minio.PutObjectOptions{ContentType: "text/plain; charset=utf-8"})
	if err != nil {
		return "", fmt.Errorf("上传解析文本 %s 到存储桶 %s 失败: %w", objectName, m.bucket, err)
	}

	return objectName, nil
}

// GetPresignedURL 获取对象的预签名下载URL
func (m *MinIO) GetPresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	if m.cfg.EnableTestLogging {
		m.logger.Printf("[MinIO-GetPresignedURL] Generating for: ObjectKey='%s', Expiry=%s", objectKey, expiry)
	}

	presignedURL, err := m.client.PresignedGetObject(ctx, m.bucket, objectKey, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("生成MinIO预签名URL失败: %w", err)
	}
	return presignedURL.String(), nil
}

// DeleteFile 删除对象
func (m *MinIO) DeleteFile(ctx context.Context, objectKey string) error {
	m.logger.Printf("[MinIO] Deleting object: %s", objectKey)

	err := m.client.RemoveObject(ctx, m.bucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("删除对象 %s 失败: %w", objectKey, err)
	}
	return nil
}

// StatObject 暴露底层的StatObject方法，用于测试或特定场景
func (m *MinIO) StatObject(ctx context.Context, objectKey string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return m.client.StatObject(ctx, m.bucket, objectKey, opts)
}

// 获取内容类型
func getContentType(ext string) string {
	ext = strings.ToLower(ext)
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
