// Package upload implements resumable, chunked uploads over a multipart object
// storage backend (S3-style multipart uploads).
//
// Each upload is identified by a fingerprint of its source and destination. The
// fingerprint is mapped to the backends upload ID so that an interrupted upload
// can later be resumed by re-uploading only the parts the backend has
// not acknowledged.
package upload

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/hbomb79/Marquee/pkg/logger"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"
)

// PartSize is the size of every part of an upload, except the last which
// may be smaller.
const PartSize int64 = 6 * 1024 * 1024

const defaultConcurrency = 4

var (
	log = logger.Get("Upload")

	ErrInvalidSource = errors.New("upload source is invalid")
)

type (
	Part struct {
		Number int
		ETag   string
		Size   int64
	}

	// Backend is a multipart object store.
	Backend interface {
		NewUpload(ctx context.Context, bucket string, object string, contentType string) (string, error)
		// UploadExists returns true if the upload is still in progress
		// for the object (i.e. it has not been completed or aborted).
		UploadExists(ctx context.Context, bucket string, object string, uploadID string) (bool, error)
		ListParts(ctx context.Context, bucket string, object string, uploadID string) ([]Part, error)
		PutPart(ctx context.Context, bucket string, object string, uploadID string, number int, data io.Reader, size int64) (Part, error)
		Complete(ctx context.Context, bucket string, object string, uploadID string, parts []Part) error
		Abort(ctx context.Context, bucket string, object string, uploadID string) error
	}

	// FingerprintStore remembers the upload ID for a fingerprint between attempts.
	FingerprintStore interface {
		Get(ctx context.Context, fingerprint string) (string, bool, error)
		Put(ctx context.Context, fingerprint string, uploadID string, target Target) error
		Delete(ctx context.Context, fingerprint string) error
	}

	Source struct {
		Reader      io.ReaderAt
		Size        int64
		Name        string
		ContentType string
		ModTime     time.Time
	}

	Target struct {
		Bucket string
		Object string
	}

	Options struct {
		// OnProgress is called with the percentage of bytes acknowledged by the
		// backend. Values are strictly increasing, and the final call is always 100.
		OnProgress func(percent int)
	}

	Result struct {
		UploadID      string
		Resumed       bool
		PartsUploaded int
		PartsSkipped  int
	}

	Uploader struct {
		backend      Backend
		fingerprints FingerprintStore
		concurrency  int
	}

	Option func(*Uploader)
)

// WithConcurrency sets the maximum number of parts uploaded in parallel.
func WithConcurrency(n int) Option {
	return func(u *Uploader) {
		if n > 0 {
			u.concurrency = n
		}
	}
}

// New creates an Uploader. If fingerprints is nil, an in-memory store is used
// and so uploads can only be resumed within the same process.
func New(backend Backend, fingerprints FingerprintStore, opts ...Option) *Uploader {
	if fingerprints == nil {
		fingerprints = NewMemoryFingerprintStore()
	}

	u := &Uploader{backend: backend, fingerprints: fingerprints, concurrency: defaultConcurrency}
	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Fingerprint identifies an upload of the source to the target. Two attempts
// to upload the same file to the same object produce the same fingerprint.
func Fingerprint(source Source, target Target) string {
	h, _ := blake2b.New256(nil)
	for _, field := range []string{
		target.Bucket,
		target.Object,
		source.Name,
		strconv.FormatInt(source.Size, 10),
		strconv.FormatInt(source.ModTime.UnixNano(), 10),
		source.ContentType,
	} {
		h.Write([]byte(field))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}

// Upload uploads the source to the target, resuming a previous attempt if the
// backend still holds it. On failure the fingerprint is retained so that
// calling Upload again with the same source resumes from the acknowledged parts.
func (uploader *Uploader) Upload(ctx context.Context, source Source, target Target, opts Options) (*Result, error) {
	if source.Reader == nil || source.Size < 0 {
		return nil, ErrInvalidSource
	}

	fingerprint := Fingerprint(source, target)
	uploadID, acknowledged, err := uploader.resolveUpload(ctx, fingerprint, source, target)
	if err != nil {
		return nil, err
	}

	result := &Result{UploadID: uploadID, Resumed: len(acknowledged) > 0}
	progress := newProgressTracker(source.Size, opts.OnProgress)

	total := partCount(source.Size)
	parts := make([]Part, 0, total)
	var skipped int64
	for _, part := range acknowledged {
		parts = append(parts, part)
		skipped += part.Size
	}
	result.PartsSkipped = len(acknowledged)
	if skipped > 0 {
		progress.add(skipped)
	}

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(uploader.concurrency)
	for number := 1; number <= total; number++ {
		if _, ok := acknowledged[number]; ok {
			continue
		}

		offset, size := partBounds(number, source.Size)
		group.Go(func() error {
			reader := io.NewSectionReader(source.Reader, offset, size)
			part, err := uploader.backend.PutPart(groupCtx, target.Bucket, target.Object, uploadID, number, reader, size)
			if err != nil {
				return fmt.Errorf("failed to upload part %d/%d: %w", number, total, err)
			}
			part.Size = size

			mu.Lock()
			parts = append(parts, part)
			result.PartsUploaded++
			mu.Unlock()

			progress.add(size)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		log.Warnf("Upload of %s/%s interrupted (%d of %d parts acknowledged): %v\n", target.Bucket, target.Object, len(parts), total, err)
		return nil, err
	}

	sort.Slice(parts, func(i, j int) bool { return parts[i].Number < parts[j].Number })
	if err := uploader.backend.Complete(ctx, target.Bucket, target.Object, uploadID, parts); err != nil {
		return nil, fmt.Errorf("failed to complete upload %s: %w", uploadID, err)
	}

	if err := uploader.fingerprints.Delete(ctx, fingerprint); err != nil {
		log.Warnf("Failed to forget fingerprint for completed upload %s: %v\n", uploadID, err)
	}

	progress.finish()
	log.Emit(logger.SUCCESS, "Upload of %s/%s complete (%d parts uploaded, %d resumed)\n", target.Bucket, target.Object, result.PartsUploaded, result.PartsSkipped)
	return result, nil
}

// resolveUpload finds the upload to use for the fingerprint. If a previous upload is
// still in progress on the backend then its acknowledged parts are returned
// (keyed by part number), otherwise a new upload is started.
func (uploader *Uploader) resolveUpload(ctx context.Context, fingerprint string, source Source, target Target) (string, map[int]Part, error) {
	uploadID, found, err := uploader.fingerprints.Get(ctx, fingerprint)
	if err != nil {
		return "", nil, fmt.Errorf("failed to lookup upload fingerprint: %w", err)
	}

	if found {
		exists, err := uploader.backend.UploadExists(ctx, target.Bucket, target.Object, uploadID)
		if err != nil {
			return "", nil, fmt.Errorf("failed to check existing upload %s: %w", uploadID, err)
		}

		if exists {
			parts, err := uploader.backend.ListParts(ctx, target.Bucket, target.Object, uploadID)
			if err != nil {
				return "", nil, fmt.Errorf("failed to list parts for upload %s: %w", uploadID, err)
			}

			acknowledged := make(map[int]Part, len(parts))
			for _, part := range parts {
				if _, expected := partBounds(part.Number, source.Size); part.Number <= partCount(source.Size) && part.Size == expected {
					acknowledged[part.Number] = part
				}
			}

			log.Infof("Resuming upload %s with %d acknowledged parts\n", uploadID, len(acknowledged))
			return uploadID, acknowledged, nil
		}

		log.Debugf("Upload %s for fingerprint no longer exists, starting again\n", uploadID)
		if err := uploader.fingerprints.Delete(ctx, fingerprint); err != nil {
			return "", nil, fmt.Errorf("failed to forget stale upload fingerprint: %w", err)
		}
	}

	uploadID, err = uploader.backend.NewUpload(ctx, target.Bucket, target.Object, source.ContentType)
	if err != nil {
		return "", nil, fmt.Errorf("failed to start upload: %w", err)
	}

	if err := uploader.fingerprints.Put(ctx, fingerprint, uploadID, target); err != nil {
		return "", nil, fmt.Errorf("failed to record upload fingerprint: %w", err)
	}

	return uploadID, nil, nil
}

func partCount(size int64) int {
	if size <= 0 {
		return 1
	}

	return int((size + PartSize - 1) / PartSize)
}

// partBounds returns the offset and size of the (1-indexed) part number.
func partBounds(number int, size int64) (int64, int64) {
	offset := int64(number-1) * PartSize
	remaining := size - offset
	if remaining < 0 {
		return offset, 0
	}
	if remaining > PartSize {
		return offset, PartSize
	}

	return offset, remaining
}

type progressTracker struct {
	sync.Mutex
	total     int64
	acked     int64
	last      int
	onProcess func(int)
}

func newProgressTracker(total int64, onProgress func(int)) *progressTracker {
	return &progressTracker{total: total, last: -1, onProcess: onProgress}
}

// add records acknowledged bytes. The percentage reported is capped at 99
// until finish is called.
func (p *progressTracker) add(n int64) {
	p.Lock()
	defer p.Unlock()

	p.acked += n
	if p.total <= 0 {
		return
	}

	p.report(min(int(p.acked*100/p.total), 99))
}

func (p *progressTracker) finish() {
	p.Lock()
	defer p.Unlock()
	p.report(100)
}

func (p *progressTracker) report(percent int) {
	if percent <= p.last {
		return
	}

	p.last = percent
	if p.onProcess != nil {
		p.onProcess(percent)
	}
}
