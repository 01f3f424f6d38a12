package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/kozaktomas/color-season/internal/config"
	"github.com/kozaktomas/color-season/internal/constants"
	"github.com/rs/zerolog/log"
)

// putObjectAPI is the part of the S3 client the store needs.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store uploads to an S3 bucket or an S3-compatible service such as
// Supabase Storage, MinIO or R2.
type S3Store struct {
	client    putObjectAPI
	bucket    string
	region    string
	endpoint  string
	publicURL string
	pathStyle bool
}

// NewS3Store initializes an S3 client using static credentials and region.
func NewS3Store(ctx context.Context, cfg config.StorageConfig) (*S3Store, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, errors.New("s3 credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}
	region := cfg.Region
	if region == "" {
		region = constants.DefaultRegion
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	})

	cfg.Region = region
	return newS3Store(client, cfg), nil
}

func newS3Store(client putObjectAPI, cfg config.StorageConfig) *S3Store {
	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		endpoint:  cfg.Endpoint,
		publicURL: cfg.PublicURL,
		pathStyle: cfg.PathStyle,
	}
}

// Name implements Store.
func (s *S3Store) Name() string {
	return config.BackendS3
}

// Put implements Store. Bodies that cannot seek are buffered, since request
// signing needs to read the payload twice.
func (s *S3Store) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (Object, error) {
	if err := validateKey(key); err != nil {
		return Object{}, err
	}

	body, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(io.LimitReader(r, constants.MaxUploadSize+1))
		if err != nil {
			return Object{}, fmt.Errorf("reading upload: %w", err)
		}
		if len(data) > constants.MaxUploadSize {
			return Object{}, fmt.Errorf("upload exceeds %d bytes", constants.MaxUploadSize)
		}
		body = bytes.NewReader(data)
		size = int64(len(data))
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("Failed to put S3 object")
		return Object{}, fmt.Errorf("put s3 object: %w", err)
	}

	return Object{
		Key:         key,
		URL:         s.URL(key),
		ContentType: contentType,
		Size:        size,
	}, nil
}

// URL implements Store. A configured public URL wins; otherwise the URL is
// derived from the endpoint and addressing style.
func (s *S3Store) URL(key string) string {
	escaped := url.PathEscape(key)
	if s.publicURL != "" {
		return s.publicURL + "/" + escaped
	}
	if s.endpoint == "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, escaped)
	}
	if s.pathStyle {
		return s.endpoint + "/" + s.bucket + "/" + escaped
	}
	u, err := url.Parse(s.endpoint)
	if err != nil || u.Host == "" {
		return s.endpoint + "/" + s.bucket + "/" + escaped
	}
	u.Host = s.bucket + "." + u.Host
	return u.String() + "/" + escaped
}
