package artifact

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Store uploads artifacts to an S3-compatible object store.
type S3Store struct {
	client *minio.Client
	bucket string
}

// NewS3Store connects to an S3-compatible endpoint and ensures the bucket
// exists.
func NewS3Store(ctx context.Context, endpoint, accessKey, secretKey, bucket string, secure bool) (*S3Store, error) {
	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", endpoint, err)
	}

	exists, err := cli.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket %s: %w", bucket, err)
		}
	}

	return &S3Store{client: cli, bucket: bucket}, nil
}

// Put uploads the file at path as an object named name and returns its
// object URL.
func (s *S3Store) Put(ctx context.Context, name, path string) (string, error) {
	object := filepath.Base(name)
	_, err := s.client.FPutObject(ctx, s.bucket, object, path, minio.PutObjectOptions{
		ContentType: "application/x-tar",
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", object, err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, object), nil
}
