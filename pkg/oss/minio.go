package oss

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Minio struct {
	client   *minio.Client
	bucket   string
	endpoint string
	scheme   string
}

func InitMinio(endpoint, accessKeyID, secretAccessKey, bucket string, useSSL bool) (*Minio, error) {
	hlog.Infof("Initializing MinIO client with endpoint: %s, accessKey: %s", endpoint, accessKeyID)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return nil, err
	}

	ctx := context.Background()
	location := "us-east-1" // MinIO默认区域
	// 检查存储桶是否存在，不存在则创建
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: location}); err != nil {
			return nil, fmt.Errorf("create bucket error: %w", err)
		}
	}

	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	hlog.Info("Connect Minio Success")
	return &Minio{client: client, bucket: bucket, endpoint: endpoint, scheme: scheme}, nil
}

func (m *Minio) baseURL() string {
	return fmt.Sprintf("%s://%s/%s/", m.scheme, m.endpoint, m.bucket)
}

func (m *Minio) Put(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to upload %s: %v", objectName, err)
		return "", err
	}
	return m.baseURL() + objectName, nil
}

func (m *Minio) Fetch(ctx context.Context, objectName, dst string) error {
	return m.client.FGetObject(ctx, m.bucket, objectName, dst, minio.GetObjectOptions{})
}

func (m *Minio) Remove(ctx context.Context, objectName string) error {
	return m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
}

func (m *Minio) ObjectName(url string) (string, bool) {
	if !strings.HasPrefix(url, m.baseURL()) {
		return "", false
	}
	return strings.TrimPrefix(url, m.baseURL()), true
}
