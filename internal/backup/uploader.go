package backup

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"github.com/BruksfildServices01/pulcro-admin/internal/config"
)

//go:generate mockgen -source=uploader.go -destination=mocks/uploader_mock.go -package=mocks

// Uploader grava um objeto no destino dos backups
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
}

type S3Uploader struct {
	client *s3.Client
	bucket string
}

// NewS3Uploader monta o cliente com credenciais estáticas. Com Endpoint
// preenchido (MinIO, R2...) usa path-style.
func NewS3Uploader(cfg config.Backup) *S3Uploader {
	opts := s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Uploader{
		client: s3.New(opts),
		bucket: cfg.Bucket,
	}
}

func (u *S3Uploader) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return errors.Wrapf(err, "put s3://%s/%s", u.bucket, key)
	}
	return nil
}
