package store

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/alex38x15-dot/nebula-draw-magic/internal/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/samber/lo"
)

type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store uploads artifacts into one of two buckets, public or private, and
// derives the retrievable URL from a configured base. It also backs the
// Remover used for persist-failure cleanup.
type S3Store struct {
	Client        s3API
	PublicBucket  string
	PrivateBucket string
	BaseURL       string
}

func (s *S3Store) Upload(ctx context.Context, params UploadParams) (UploadResult, error) {
	bucket := lo.Ternary(params.Public, s.PublicBucket, s.PrivateBucket)
	key := ObjectKey(params.Owner, time.Now())

	log := log.FromContextOrDiscard(ctx).WithGroup("store").With(
		"bucket", bucket,
		"key", key,
		"bytes", len(params.Data),
	)
	log.Info("uploading to s3")

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(params.Data),
		ContentType:  aws.String("image/jpeg"),
		CacheControl: aws.String("max-age=3600"),
	})
	if err != nil {
		return UploadResult{}, err
	}

	return UploadResult{
		Bucket: bucket,
		Key:    key,
		URL:    s.objectURL(bucket, key),
	}, nil
}

func (s *S3Store) Remove(ctx context.Context, bucket, key string) error {
	log := log.FromContextOrDiscard(ctx).WithGroup("store").With("bucket", bucket, "key", key)
	log.Info("removing from s3")

	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *S3Store) objectURL(bucket, key string) string {
	return strings.TrimSuffix(s.BaseURL, "/") + "/" + bucket + "/" + key
}
