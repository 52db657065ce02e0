package upload

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"
	tsync "github.com/hbomb79/Marquee/pkg/sync"
)

var ErrUploadNotFound = errors.New("multipart upload does not exist")

type fingerprintEntry struct {
	uploadID string
	target   Target
}

// MemoryFingerprintStore is a process-local FingerprintStore.
type MemoryFingerprintStore struct {
	entries tsync.TypedSyncMap[string, fingerprintEntry]
}

func NewMemoryFingerprintStore() *MemoryFingerprintStore { return &MemoryFingerprintStore{} }

func (store *MemoryFingerprintStore) Get(_ context.Context, fingerprint string) (string, bool, error) {
	entry, ok := store.entries.Load(fingerprint)
	return entry.uploadID, ok, nil
}

func (store *MemoryFingerprintStore) Put(_ context.Context, fingerprint string, uploadID string, target Target) error {
	store.entries.Store(fingerprint, fingerprintEntry{uploadID: uploadID, target: target})
	return nil
}

func (store *MemoryFingerprintStore) Delete(_ context.Context, fingerprint string) error {
	store.entries.Delete(fingerprint)
	return nil
}

func (store *MemoryFingerprintStore) Len() int { return store.entries.Len() }

type memoryUpload struct {
	bucket string
	object string
	parts  map[int][]byte
}

// MemoryBackend is an in-memory multipart Backend, primarily for testing
// code which performs uploads without access to an object store.
type MemoryBackend struct {
	mu      sync.Mutex
	uploads map[string]*memoryUpload
	objects map[string][]byte

	// BeforePut, if set, is called before each part is stored. Returning an
	// error fails the part.
	BeforePut func(number int) error
	puts      map[int]int
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		uploads: make(map[string]*memoryUpload),
		objects: make(map[string][]byte),
		puts:    make(map[int]int),
	}
}

func (backend *MemoryBackend) NewUpload(_ context.Context, bucket string, object string, _ string) (string, error) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	id := uuid.NewString()
	backend.uploads[id] = &memoryUpload{bucket: bucket, object: object, parts: make(map[int][]byte)}
	return id, nil
}

func (backend *MemoryBackend) UploadExists(_ context.Context, bucket string, object string, uploadID string) (bool, error) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	upload, ok := backend.uploads[uploadID]
	return ok && upload.bucket == bucket && upload.object == object, nil
}

func (backend *MemoryBackend) ListParts(_ context.Context, _ string, _ string, uploadID string) ([]Part, error) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	upload, ok := backend.uploads[uploadID]
	if !ok {
		return nil, ErrUploadNotFound
	}

	parts := make([]Part, 0, len(upload.parts))
	for number, data := range upload.parts {
		parts = append(parts, Part{Number: number, ETag: etag(data), Size: int64(len(data))})
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].Number < parts[j].Number })

	return parts, nil
}

func (backend *MemoryBackend) PutPart(ctx context.Context, _ string, _ string, uploadID string, number int, data io.Reader, _ int64) (Part, error) {
	if backend.BeforePut != nil {
		if err := backend.BeforePut(number); err != nil {
			return Part{}, err
		}
	}

	buf, err := io.ReadAll(data)
	if err != nil {
		return Part{}, err
	}
	if err := ctx.Err(); err != nil {
		return Part{}, err
	}

	backend.mu.Lock()
	defer backend.mu.Unlock()

	upload, ok := backend.uploads[uploadID]
	if !ok {
		return Part{}, ErrUploadNotFound
	}

	upload.parts[number] = buf
	backend.puts[number]++
	return Part{Number: number, ETag: etag(buf), Size: int64(len(buf))}, nil
}

func (backend *MemoryBackend) Complete(_ context.Context, bucket string, object string, uploadID string, parts []Part) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	upload, ok := backend.uploads[uploadID]
	if !ok {
		return ErrUploadNotFound
	}

	var out bytes.Buffer
	for _, part := range parts {
		data, ok := upload.parts[part.Number]
		if !ok || etag(data) != part.ETag {
			return fmt.Errorf("part %d is missing or does not match", part.Number)
		}
		out.Write(data)
	}

	backend.objects[bucket+"/"+object] = out.Bytes()
	delete(backend.uploads, uploadID)
	return nil
}

func (backend *MemoryBackend) Abort(_ context.Context, _ string, _ string, uploadID string) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	delete(backend.uploads, uploadID)
	return nil
}

// Object returns the content of a completed upload.
func (backend *MemoryBackend) Object(bucket string, object string) ([]byte, bool) {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	data, ok := backend.objects[bucket+"/"+object]
	return data, ok
}

// PutCount returns the number of times the part number was stored.
func (backend *MemoryBackend) PutCount(number int) int {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	return backend.puts[number]
}

func etag(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
