// "Тупой" клиент объектного хранилища: скачать объект по s3:// URL.

package s3storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ilkoid/pattern-ai/pkg/config"
)

type Client struct {
	api           *minio.Client
	defaultBucket string
}

// New создает клиент, используя наш конфиг
func New(cfg config.S3Config) (*Client, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		api:           minioClient,
		defaultBucket: cfg.Bucket,
	}, nil
}

// ParseURL разбирает "s3://bucket/key" на bucket и key.
// Форма "s3:///key" (без bucket) допустима — bucket берётся из конфига.
func ParseURL(rawURL string) (bucket, key string, err error) {
	const prefix = "s3://"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", "", fmt.Errorf("not an s3 url: %s", rawURL)
	}

	rest := strings.TrimPrefix(rawURL, prefix)
	bucket, key, found := strings.Cut(rest, "/")
	if !found || key == "" {
		return "", "", fmt.Errorf("s3 url must be s3://bucket/key, got: %s", rawURL)
	}
	return bucket, key, nil
}

// Fetch скачивает объект целиком в память.
//
// Реализует datafile.Fetcher.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	bucket, key, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	if bucket == "" {
		bucket = c.defaultBucket
	}

	obj, err := c.api.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, obj); err != nil {
		return nil, fmt.Errorf("download of '%s' failed: %w", key, err)
	}

	return buf.Bytes(), nil
}
