// Package s3 implements payload storage on Amazon S3 or any S3-compatible
// object store (MinIO, Localstack).
//
// The storage path recorded on file metadata is the object key, so payloads
// written by this backend are portable across service instances sharing the
// same bucket.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/depotlabs/filedepot/internal/logger"
	"github.com/depotlabs/filedepot/pkg/store/payload"
)

// S3PayloadStore implements payload.Store on an S3 bucket.
type S3PayloadStore struct {
	client    *s3.Client
	bucket    string
	keyPrefix string
}

// S3PayloadStoreConfig contains configuration for the S3 payload store.
type S3PayloadStoreConfig struct {
	// Region is the AWS region of the bucket.
	Region string `mapstructure:"region"`

	// Bucket is the bucket holding payload objects.
	Bucket string `mapstructure:"bucket"`

	// KeyPrefix is prepended to every object key (e.g. "payloads/").
	KeyPrefix string `mapstructure:"key_prefix"`

	// Endpoint overrides the S3 endpoint for compatible stores like MinIO.
	Endpoint string `mapstructure:"endpoint"`

	// AccessKeyID and SecretAccessKey select static credentials. When empty
	// the default AWS credential chain applies.
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// NewS3PayloadStore builds the AWS client configuration and verifies the
// bucket is reachable with a HeadBucket call.
func NewS3PayloadStore(ctx context.Context, config S3PayloadStoreConfig) (*S3PayloadStore, error) {
	var configOptions []func(*awsConfig.LoadOptions) error
	configOptions = append(configOptions, awsConfig.WithRegion(config.Region))

	if config.AccessKeyID != "" && config.SecretAccessKey != "" {
		configOptions = append(configOptions, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.AccessKeyID, config.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, configOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if config.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.Endpoint)
			// Path-style addressing is required by most S3-compatible
			// stores when a custom endpoint is in play.
			o.UsePathStyle = true
		}
	})

	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(config.Bucket)}); err != nil {
		return nil, fmt.Errorf("failed to reach bucket %q: %w", config.Bucket, err)
	}

	logger.Info("S3 payload store ready (bucket=%q region=%q)", config.Bucket, config.Region)

	return &S3PayloadStore{
		client:    client,
		bucket:    config.Bucket,
		keyPrefix: config.KeyPrefix,
	}, nil
}

// Write uploads data under a random UUID key and returns that key as the
// storage path.
func (s *S3PayloadStore) Write(ctx context.Context, data []byte) (string, error) {
	key := s.keyPrefix + uuid.NewString()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload payload %s: %w", key, err)
	}

	return key, nil
}

// Read downloads the object stored under path.
func (s *S3PayloadStore) Read(ctx context.Context, path string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, payload.ErrNoPayload
		}
		return nil, fmt.Errorf("failed to download payload %s: %w", path, err)
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload body %s: %w", path, err)
	}

	return data, nil
}
