// Package storage relays uploaded images to an S3-compatible object
// store (Cloudflare R2 in production) and hands back a public URL.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	appconfig "checkin-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// MaxUploadSize caps image uploads at 10 MiB
const MaxUploadSize = 10 << 20

const uploadTimeout = 30 * time.Second

var (
	// ErrNotAnImage is returned before any storage write when the
	// declared content type is not image/*
	ErrNotAnImage = errors.New("only image files are allowed")
	// ErrTooLarge is returned when the upload exceeds MaxUploadSize
	ErrTooLarge = errors.New("image exceeds the maximum upload size")
	// ErrUploadTimeout marks an upload that hit the operation deadline
	ErrUploadTimeout = errors.New("image upload timed out")
)

// UploadResult is the stored object's public URL and storage key
type UploadResult struct {
	URL string
	Key string
}

// objectStore is the slice of the S3 API the uploader needs
type objectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	PutObjectAcl(ctx context.Context, params *s3.PutObjectAclInput, optFns ...func(*s3.Options)) (*s3.PutObjectAclOutput, error)
}

type Uploader struct {
	client        objectStore
	bucket        string
	publicBaseURL string
}

// NewUploader builds an uploader against the configured S3/R2 endpoint
func NewUploader(cfg *appconfig.Config) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Storage.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure storage client: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
		}
	})

	return &Uploader{
		client:        client,
		bucket:        cfg.Storage.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.Storage.PublicBaseURL, "/"),
	}, nil
}

// Upload writes the image bytes under a collision-free key, marks the
// object public-read, and returns its public URL. If publishing fails
// after the write the object stays unpublished and the caller sees an
// error; no cleanup is attempted.
func (u *Uploader) Upload(ctx context.Context, data []byte, contentType, originalName string) (*UploadResult, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}
	if len(data) > MaxUploadSize {
		return nil, ErrTooLarge
	}

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	// Timestamp prefix plus a random token so concurrent uploads from
	// different sessions never collide.
	key := fmt.Sprintf("checkin-images/%d_%s_%s",
		time.Now().UnixMilli(), uuid.NewString(), originalName)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, u.wrap("write", err)
	}

	_, err = u.client.PutObjectAcl(ctx, &s3.PutObjectAclInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		ACL:    types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return nil, u.wrap("publish", err)
	}

	log.Printf("[Storage] Uploaded %s (%d bytes)", key, len(data))
	return &UploadResult{
		URL: u.publicBaseURL + "/" + key,
		Key: key,
	}, nil
}

func (u *Uploader) wrap(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUploadTimeout
	}
	return fmt.Errorf("image %s failed: %w", op, err)
}
