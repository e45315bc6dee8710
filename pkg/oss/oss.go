package oss

import (
	"context"
	"io"

	"VideoHub.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Storage keeps uploaded media. Object names look like "videos/<file>".
type Storage interface {
	Put(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (url string, err error)
	// Fetch copies the object into the local file dst.
	Fetch(ctx context.Context, objectName, dst string) error
	Remove(ctx context.Context, objectName string) error
	// ObjectName maps a URL produced by Put back to its object name.
	ObjectName(url string) (string, bool)
}

var storage Storage

// Init selects MinIO when an endpoint is configured, otherwise the local public directory.
func Init() error {
	if config.ConfigInfo.Minio.Endpoint != "" {
		s, err := InitMinio(config.ConfigInfo.Minio.Endpoint, config.ConfigInfo.Minio.AccessKey,
			config.ConfigInfo.Minio.SecretKey, config.ConfigInfo.Minio.Bucket, config.ConfigInfo.Minio.UseSSL)
		if err != nil {
			return err
		}
		storage = s
		return nil
	}
	hlog.Infof("Using local storage at %s", config.ConfigInfo.Storage.LocalDir)
	storage = NewLocal(config.ConfigInfo.Storage.LocalDir, config.ConfigInfo.Storage.URLPrefix)
	return nil
}

func Default() Storage {
	return storage
}

// SetDefault replaces the active storage, used by tests.
func SetDefault(s Storage) Storage {
	prev := storage
	storage = s
	return prev
}
