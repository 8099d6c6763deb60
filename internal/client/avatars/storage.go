// Package avatars stores profile pictures in S3-compatible object storage.
//
// Objects are written through a presigned PUT and read back through a
// presigned GET URL. The profile row keeps a "s3://" reference to the object
// rather than a URL, since presigned URLs expire.
package avatars

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/nutrio/internal/netx"
	"github.com/google/uuid"
)

// RefPrefix marks an avatar reference that must be resolved through Storage.
const RefPrefix = "s3://"

const presignTTL = 15 * time.Minute

var ErrInvalidRef = errors.New("not an avatar reference")

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	uploadToPresignedURL = netx.UploadToPresignedURL
)

// Storage uploads avatars and resolves references to fetchable URLs.
type Storage interface {
	Upload(ctx context.Context, userID, contentType string, data []byte) (ref string, err error)
	URL(ctx context.Context, ref string) (string, error)
}

type Config struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

type S3Storage struct {
	cfg Config
}

func NewS3Storage(cfg Config) *S3Storage {
	return &S3Storage{cfg: cfg}
}

// IsRef reports whether s is an object reference rather than a plain URL.
func IsRef(s string) bool {
	return strings.HasPrefix(s, RefPrefix)
}

func (s *S3Storage) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return newS3PresignClient(client), nil
}

func objectKey(userID, contentType string) string {
	ext := ""
	switch contentType {
	case "image/png":
		ext = ".png"
	case "image/jpeg":
		ext = ".jpg"
	case "image/webp":
		ext = ".webp"
	}
	return fmt.Sprintf("avatars/%s/%s%s", userID, uuid.NewString(), ext)
}

// Upload stores data under a fresh key and returns its reference.
func (s *S3Storage) Upload(ctx context.Context, userID, contentType string, data []byte) (string, error) {
	pc, err := s.presignClient(ctx)
	if err != nil {
		return "", fmt.Errorf("avatar storage: %w", err)
	}

	bucket := s.cfg.Bucket
	key := objectKey(userID, contentType)

	in := &s3.PutObjectInput{Bucket: &bucket, Key: &key}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	req, err := presignPutObject(pc, ctx, in, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}

	if err := uploadToPresignedURL(ctx, req.URL, contentType, data); err != nil {
		return "", err
	}
	return RefPrefix + key, nil
}

// URL returns a presigned GET URL for ref.
func (s *S3Storage) URL(ctx context.Context, ref string) (string, error) {
	if !IsRef(ref) {
		return "", ErrInvalidRef
	}
	key := strings.TrimPrefix(ref, RefPrefix)

	pc, err := s.presignClient(ctx)
	if err != nil {
		return "", fmt.Errorf("avatar storage: %w", err)
	}

	bucket := s.cfg.Bucket
	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}
	return req.URL, nil
}
