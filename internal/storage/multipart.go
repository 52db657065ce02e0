package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hbomb79/Marquee/pkg/upload"
	"github.com/minio/minio-go/v7"
)

const listPageSize = 1000

// MultipartBackend exposes the S3 multipart API of the object store for
// resumable uploads.
type MultipartBackend struct {
	core *minio.Core
}

func (backend *MultipartBackend) NewUpload(ctx context.Context, bucket string, object string, contentType string) (string, error) {
	uploadID, err := backend.core.NewMultipartUpload(ctx, bucket, object, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to create multipart upload for %s/%s: %w", bucket, object, err)
	}

	log.Debugf("Started multipart upload %s for %s/%s\n", uploadID, bucket, object)
	return uploadID, nil
}

// UploadExists returns true if the upload ID is listed among the in-progress
// multipart uploads for the object.
func (backend *MultipartBackend) UploadExists(ctx context.Context, bucket string, object string, uploadID string) (bool, error) {
	keyMarker, uploadIDMarker := "", ""
	for {
		result, err := backend.core.ListMultipartUploads(ctx, bucket, object, keyMarker, uploadIDMarker, "", listPageSize)
		if err != nil {
			if errors.Is(translateError(err), ErrObjectNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("failed to list multipart uploads for %s/%s: %w", bucket, object, err)
		}

		for _, pending := range result.Uploads {
			if pending.Key == object && pending.UploadID == uploadID {
				return true, nil
			}
		}

		if !result.IsTruncated {
			return false, nil
		}
		keyMarker, uploadIDMarker = result.NextKeyMarker, result.NextUploadIDMarker
	}
}

func (backend *MultipartBackend) ListParts(ctx context.Context, bucket string, object string, uploadID string) ([]upload.Part, error) {
	var parts []upload.Part
	marker := 0
	for {
		result, err := backend.core.ListObjectParts(ctx, bucket, object, uploadID, marker, listPageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list parts of upload %s: %w", uploadID, translateError(err))
		}

		for _, part := range result.ObjectParts {
			parts = append(parts, upload.Part{Number: part.PartNumber, ETag: part.ETag, Size: part.Size})
		}

		if !result.IsTruncated {
			return parts, nil
		}
		marker = result.NextPartNumberMarker
	}
}

func (backend *MultipartBackend) PutPart(ctx context.Context, bucket string, object string, uploadID string, number int, data io.Reader, size int64) (upload.Part, error) {
	part, err := backend.core.PutObjectPart(ctx, bucket, object, uploadID, number, data, size, minio.PutObjectPartOptions{})
	if err != nil {
		return upload.Part{}, err
	}

	return upload.Part{Number: part.PartNumber, ETag: part.ETag, Size: part.Size}, nil
}

func (backend *MultipartBackend) Complete(ctx context.Context, bucket string, object string, uploadID string, parts []upload.Part) error {
	complete := make([]minio.CompletePart, 0, len(parts))
	for _, part := range parts {
		complete = append(complete, minio.CompletePart{PartNumber: part.Number, ETag: part.ETag})
	}

	if _, err := backend.core.CompleteMultipartUpload(ctx, bucket, object, uploadID, complete, minio.PutObjectOptions{}); err != nil {
		return fmt.Errorf("failed to complete multipart upload %s: %w", uploadID, err)
	}

	return nil
}

func (backend *MultipartBackend) Abort(ctx context.Context, bucket string, object string, uploadID string) error {
	if err := backend.core.AbortMultipartUpload(ctx, bucket, object, uploadID); err != nil {
		return fmt.Errorf("failed to abort multipart upload %s: %w", uploadID, err)
	}

	return nil
}
