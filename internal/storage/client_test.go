package storage_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"io"
	"testing"
	"time"

	"github.com/hbomb79/Marquee/internal/storage"
	"github.com/hbomb79/Marquee/pkg/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	minioImage     = "minio/minio:RELEASE.2024-01-16T16-07-38Z"
	minioAccessKey = "marquee"
	minioSecretKey = "marquee-secret"
)

func Test_PublicURL(t *testing.T) {
	tests := []struct {
		name   string
		config storage.Config
		object string
		want   string
	}{
		{"Derived from endpoint", storage.Config{Endpoint: "localhost:9000"}, "abc/original.mp4", "http://localhost:9000/videos/abc/original.mp4"},
		{"Derived from SSL endpoint", storage.Config{Endpoint: "s3.example.com", UseSSL: true}, "abc/original.mp4", "https://s3.example.com/videos/abc/original.mp4"},
		{"Configured base", storage.Config{Endpoint: "minio:9000", PublicURL: "https://cdn.example.com/"}, "abc/my video.mp4", "https://cdn.example.com/videos/abc/my%20video.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.PublicURL(tt.config, "videos", tt.object))
		})
	}
}

func newMinioClient(t *testing.T) *storage.Client {
	if testing.Short() {
		t.Skip("skipping object storage integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        minioImage,
			Cmd:          []string{"server", "/data"},
			ExposedPorts: []string{"9000/tcp"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     minioAccessKey,
				"MINIO_ROOT_PASSWORD": minioSecretKey,
			},
			WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start minio container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := storage.New(storage.Config{
		Endpoint:  endpoint,
		AccessKey: minioAccessKey,
		SecretKey: minioSecretKey,
		Buckets:   storage.Buckets{Videos: "videos", Trailers: "trailers", Artworks: "artworks", Captions: "captions", Legal: "legal-docs"},
	})
	require.NoError(t, err)
	require.NoError(t, client.EnsureBuckets(ctx))
	require.NoError(t, client.EnsureBuckets(ctx), "ensuring buckets must be idempotent")

	return client
}

func Test_ObjectLifecycle(t *testing.T) {
	client := newMinioClient(t)
	ctx := context.Background()

	_, err := client.Stat(ctx, "captions", "missing.vtt")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)

	body := []byte("WEBVTT\n\n00:00.000 --> 00:01.000\nHello")
	require.NoError(t, client.Put(ctx, "captions", "abc/en.vtt", bytes.NewReader(body), int64(len(body)), "text/vtt"))

	info, err := client.Stat(ctx, "captions", "abc/en.vtt")
	require.NoError(t, err)
	assert.Equal(t, int64(len(body)), info.Size)

	reader, err := client.Get(ctx, "captions", "abc/en.vtt")
	require.NoError(t, err)
	got, err := io.ReadAll(reader)
	require.NoError(t, reader.Close())
	require.NoError(t, err)
	assert.Equal(t, body, got)

	require.NoError(t, client.Remove(ctx, "captions", "abc/en.vtt"))
	require.NoError(t, client.Remove(ctx, "captions", "abc/en.vtt"), "removing a missing object is not an error")
	_, err = client.Stat(ctx, "captions", "abc/en.vtt")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}

// Test_MultipartResume interrupts a real multipart upload and ensures the
// resumed upload produces an identical object.
func Test_MultipartResume(t *testing.T) {
	client := newMinioClient(t)
	ctx := context.Background()

	data := make([]byte, upload.PartSize*2+512)
	_, err := rand.Read(data)
	require.NoError(t, err)

	source := upload.Source{Reader: bytes.NewReader(data), Size: int64(len(data)), Name: "clip.mp4", ContentType: "video/mp4", ModTime: time.Now()}
	target := upload.Target{Bucket: "videos", Object: "abc/original.mp4"}
	fingerprints := upload.NewMemoryFingerprintStore()

	interrupted := &interruptingBackend{MultipartBackend: client.Multipart(), failPart: 2}
	_, err = upload.New(interrupted, fingerprints, upload.WithConcurrency(1)).Upload(ctx, source, target, upload.Options{})
	require.Error(t, err)

	result, err := upload.New(client.Multipart(), fingerprints).Upload(ctx, source, target, upload.Options{})
	require.NoError(t, err)
	assert.True(t, result.Resumed)
	assert.Equal(t, 1, result.PartsSkipped)

	reader, err := client.Get(ctx, "videos", "abc/original.mp4")
	require.NoError(t, err)
	defer reader.Close()

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, got))
}

type interruptingBackend struct {
	*storage.MultipartBackend
	failPart int
}

func (b *interruptingBackend) PutPart(ctx context.Context, bucket string, object string, uploadID string, number int, data io.Reader, size int64) (upload.Part, error) {
	if number >= b.failPart {
		return upload.Part{}, io.ErrUnexpectedEOF
	}

	return b.MultipartBackend.PutPart(ctx, bucket, object, uploadID, number, data, size)
}
