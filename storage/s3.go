package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianmade/agency-site-backend/errs"
)

// Cloud uploads get higher ceilings than the local path because the bytes
// stream to the bucket instead of being buffered through this service.
const (
	S3MaxImageSize = 50 << 20  // 50MB
	S3MaxVideoSize = 100 << 20 // 100MB
)

// S3Config carries the connection settings for an S3-compatible bucket.
// Endpoint is only set for non-AWS providers (MinIO, Supabase storage, R2).
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	PublicBaseURL   string
}

// S3Store stores blobs in an S3-compatible bucket and can issue pre-signed
// direct-upload URLs.
type S3Store struct {
	client        *s3.Client
	presigner     *s3.PresignClient
	bucket        string
	publicBaseURL string
	logger        zerolog.Logger
}

func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicBaseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3Store{
		client:        client,
		presigner:     s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		publicBaseURL: publicBaseURL,
		logger:        log.With().Str("storage", "s3").Str("bucket", cfg.Bucket).Logger(),
	}, nil
}

func (s *S3Store) Type() string { return BackendS3 }

// Upload validates and streams the blob to the bucket in a single PutObject.
func (s *S3Store) Upload(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (*Object, error) {
	mediaType, err := validateUpload(contentType, size, S3MaxImageSize, S3MaxVideoSize)
	if err != nil {
		return nil, err
	}

	key := ObjectKey(folder, filename)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return nil, errs.NewStorageError("upload", err)
	}

	return &Object{
		Key:       key,
		Filename:  path.Base(key),
		URL:       s.PublicURL(key),
		MediaType: mediaType,
		Size:      size,
	}, nil
}

// List pages through the bucket under the given prefix and returns entries
// with a recognized media extension.
func (s *S3Store) List(ctx context.Context, prefix string) ([]Object, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix + "/")
	}

	var objects []Object
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errs.NewStorageError("list", err)
		}

		for _, item := range page.Contents {
			key := aws.ToString(item.Key)
			mediaType, ok := MediaTypeForFilename(key)
			if !ok {
				continue
			}
			objects = append(objects, Object{
				Key:       key,
				Filename:  path.Base(key),
				URL:       s.PublicURL(key),
				MediaType: mediaType,
				Size:      aws.ToInt64(item.Size),
				CreatedAt: aws.ToTime(item.LastModified),
			})
		}
	}

	if objects == nil {
		objects = []Object{}
	}
	return objects, nil
}

// Delete removes one blob by key. S3 deletes are idempotent: deleting a
// missing key succeeds.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errs.NewStorageError("delete", err)
	}
	return nil
}

// PresignUpload issues a short-lived write URL so the caller can PUT large
// files straight to the bucket. The content type is pinned into the signature
// so the eventual PUT cannot smuggle in a disallowed type.
func (s *S3Store) PresignUpload(ctx context.Context, folder, filename, contentType string) (*PresignedUpload, error) {
	if _, ok := MediaTypeForContentType(contentType); !ok {
		return nil, errs.NewUnsupportedMediaTypeError(contentType)
	}

	key := ObjectKey(folder, filename)
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return nil, errs.NewStorageError("presign", err)
	}

	return &PresignedUpload{
		SignedURL: req.URL,
		PublicURL: s.PublicURL(key),
		Key:       key,
		ExpiresIn: PresignExpiry,
	}, nil
}

func (s *S3Store) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}

// KeyFromURL reverses PublicURL, also accepting virtual-hosted and path-style
// bucket URLs so keys survive a public-base change.
func (s *S3Store) KeyFromURL(rawURL string) (string, bool) {
	if strings.HasPrefix(rawURL, s.publicBaseURL+"/") {
		key := strings.TrimPrefix(rawURL, s.publicBaseURL+"/")
		return key, key != ""
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	p := strings.TrimPrefix(u.Path, "/")
	if strings.HasPrefix(u.Host, s.bucket+".") {
		return p, p != ""
	}
	if strings.HasPrefix(p, s.bucket+"/") {
		key := strings.TrimPrefix(p, s.bucket+"/")
		return key, key != ""
	}
	return "", false
}
