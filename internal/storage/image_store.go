package storage

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	apperrors "vendorhub/internal/errors"
)

// MaxImageSize is the upload size ceiling in bytes (5 MiB).
const MaxImageSize = 5 * 1024 * 1024

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// nowMillis is swappable in tests to pin the storage key timestamp.
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}

// File is an image pending upload.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Validate checks the file against the type allow-list and size ceiling.
// It performs no I/O, so a rejected file causes zero side effects.
func Validate(f *File) error {
	if _, ok := allowedTypes[strings.ToLower(f.ContentType)]; !ok {
		return apperrors.ErrImageType
	}
	if f.Size > MaxImageSize {
		return apperrors.ErrImageTooLarge
	}
	return nil
}

// ObjectPutter is the subset of the S3 client the store depends on.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageStore uploads validated images to a public S3-compatible bucket.
type ImageStore struct {
	client        ObjectPutter
	bucket        string
	publicBaseURL string
}

// NewImageStore builds an S3 client against a custom endpoint (MinIO-style
// static credentials) and returns a store targeting the given bucket.
func NewImageStore(ctx context.Context, endpoint, region, accessKey, secretKey, bucket, publicBaseURL string) (*ImageStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKey,
			secretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	if publicBaseURL == "" {
		publicBaseURL = strings.TrimRight(endpoint, "/") + "/" + bucket
	}

	return &ImageStore{client: client, bucket: bucket, publicBaseURL: publicBaseURL}, nil
}

// NewImageStoreWithClient wires an explicit client; used by tests.
func NewImageStoreWithClient(client ObjectPutter, bucket, publicBaseURL string) *ImageStore {
	return &ImageStore{client: client, bucket: bucket, publicBaseURL: publicBaseURL}
}

// StorageKey derives the object key for a file within a folder:
// {folder}/{millisecond-timestamp}_{sanitized-name}. The scheme is
// best-effort unique: two same-named uploads within one millisecond collide.
func StorageKey(folder, filename string) string {
	clean := filenameSanitizer.ReplaceAllString(filename, "_")
	return fmt.Sprintf("%s/%d_%s", folder, nowMillis(), clean)
}

// Upload validates the file, stores it under a derived key, and returns the
// public URL. Validation failures happen before any network call. There is
// no cleanup path: if a later database write fails, the object is orphaned.
func (s *ImageStore) Upload(ctx context.Context, f *File, folder string) (string, error) {
	if err := Validate(f); err != nil {
		return "", err
	}

	key := StorageKey(folder, f.Name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        f.Reader,
		ContentType: aws.String(f.ContentType),
	})
	if err != nil {
		return "", &apperrors.UploadError{Err: err}
	}

	return s.PublicURL(key), nil
}

// PublicURL returns the unauthenticated link to an uploaded object.
func (s *ImageStore) PublicURL(key string) string {
	return strings.TrimRight(s.publicBaseURL, "/") + "/" + key
}
