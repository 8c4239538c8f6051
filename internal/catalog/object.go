package catalog

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/template-finder/internal/types"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectFetcher opens objects from S3-compatible storage.
type ObjectFetcher interface {
	Fetch(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}

// ObjectStoreConfig holds the connection settings for S3-compatible storage.
type ObjectStoreConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	UseSSL          bool
}

// MinioFetcher reads objects with a minio client.
type MinioFetcher struct {
	Client *minio.Client
}

// NewMinioFetcher creates a client for the configured endpoint.
func NewMinioFetcher(cfg ObjectStoreConfig) (*MinioFetcher, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, fmt.Errorf("object store endpoint is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}
	return &MinioFetcher{Client: client}, nil
}

// Fetch opens an object for reading.
func (m *MinioFetcher) Fetch(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	obj, err := m.Client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// DefaultObjectMaxBytes caps catalog objects read from storage.
const DefaultObjectMaxBytes = 16 << 20

// ObjectSource reads a JSON or XLSX catalog from a bucket.
type ObjectSource struct {
	Fetcher ObjectFetcher
	Bucket  string
	Key     string
}

// ParseObjectURI splits s3://bucket/key into its parts.
func ParseObjectURI(uri string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("object URI %q must start with s3://", uri)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("object URI %q must name a bucket and a key", uri)
	}
	return bucket, key, nil
}

func (s *ObjectSource) uri() string {
	return "s3://" + s.Bucket + "/" + s.Key
}

// Load downloads and decodes the object.
func (s *ObjectSource) Load(ctx context.Context) ([]types.TemplateRecord, error) {
	body, err := s.Fetcher.Fetch(ctx, s.Bucket, s.Key)
	if err != nil {
		return nil, &Error{Source: s.uri(), Message: "failed to open object", Cause: err}
	}
	defer func() { _ = body.Close() }()

	data, err := readAllLimited(body, DefaultObjectMaxBytes)
	if err != nil {
		return nil, &Error{Source: s.uri(), Message: "failed to read object", Cause: err}
	}

	records, err := decodeByName(s.Key, data)
	if err != nil {
		return nil, &Error{Source: s.uri(), Message: "failed to decode catalog", Cause: err}
	}
	return records, nil
}
