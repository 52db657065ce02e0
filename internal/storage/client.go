// Package storage wraps an S3 compatible object store (typically MinIO) holding
// uploaded video sources, trailers, artworks, captions and legal documents.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/hbomb79/Marquee/pkg/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	log = logger.Get("Storage")

	ErrObjectNotFound = errors.New("object does not exist")
)

type (
	ObjectInfo struct {
		Bucket       string
		Key          string
		Size         int64
		ContentType  string
		ETag         string
		LastModified time.Time
	}

	Client struct {
		config Config
		core   *minio.Core
	}
)

func New(config Config) (*Client, error) {
	core, err := minio.NewCore(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
		Region: config.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	return &Client{config: config, core: core}, nil
}

func (client *Client) Buckets() Buckets { return client.config.Buckets }

// EnsureBuckets creates any of the configured buckets which do not yet exist.
func (client *Client) EnsureBuckets(ctx context.Context) error {
	for _, bucket := range client.config.Buckets.All() {
		exists, err := client.core.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("failed to check if bucket %s exists: %w", bucket, err)
		}
		if exists {
			log.Verbosef("Bucket %s already exists\n", bucket)
			continue
		}

		if err := client.core.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: client.config.Region}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
		log.Emit(logger.NEW, "Created bucket %s\n", bucket)
	}

	return nil
}

// Health checks the object store is reachable by querying for the videos bucket.
func (client *Client) Health(ctx context.Context) error {
	if _, err := client.core.BucketExists(ctx, client.config.Buckets.Videos); err != nil {
		return fmt.Errorf("object storage unreachable: %w", err)
	}

	return nil
}

// Stat returns information about the object, or ErrObjectNotFound if
// no object exists at the path provided.
func (client *Client) Stat(ctx context.Context, bucket string, object string) (*ObjectInfo, error) {
	info, err := client.core.StatObject(ctx, bucket, object, minio.StatObjectOptions{})
	if err != nil {
		return nil, translateError(err)
	}

	return &ObjectInfo{
		Bucket:       bucket,
		Key:          info.Key,
		Size:         info.Size,
		ContentType:  info.ContentType,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	}, nil
}

// Get opens the object for reading. The caller must close the reader.
func (client *Client) Get(ctx context.Context, bucket string, object string) (io.ReadCloser, error) {
	reader, _, _, err := client.core.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, translateError(err)
	}

	return reader, nil
}

// Remove deletes the object. Removing an object which does not exist is not an error.
func (client *Client) Remove(ctx context.Context, bucket string, object string) error {
	if err := client.core.RemoveObject(ctx, bucket, object, minio.RemoveObjectOptions{}); err != nil {
		if err := translateError(err); errors.Is(err, ErrObjectNotFound) {
			return nil
		}
		return fmt.Errorf("failed to remove %s/%s: %w", bucket, object, err)
	}

	log.Emit(logger.REMOVE, "Removed object %s/%s\n", bucket, object)
	return nil
}

// Put stores a small object in a single request. Large media should
// be uploaded via the multipart backend instead.
func (client *Client) Put(ctx context.Context, bucket string, object string, data io.Reader, size int64, contentType string) error {
	if _, err := client.core.Client.PutObject(ctx, bucket, object, data, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return fmt.Errorf("failed to put %s/%s: %w", bucket, object, err)
	}

	return nil
}

// PublicURL returns the URL at which the object can be fetched.
func (client *Client) PublicURL(bucket string, object string) string {
	return PublicURL(client.config, bucket, object)
}

func (client *Client) Multipart() *MultipartBackend {
	return &MultipartBackend{core: client.core}
}

func PublicURL(config Config, bucket string, object string) string {
	base := strings.TrimRight(config.PublicURL, "/")
	if base == "" {
		scheme := "http"
		if config.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + config.Endpoint
	}

	segments := strings.Split(object, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return base + "/" + url.PathEscape(bucket) + "/" + strings.Join(segments, "/")
}

func translateError(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket", "NoSuchUpload":
		return fmt.Errorf("%w: %w", ErrObjectNotFound, err)
	default:
		return err
	}
}
