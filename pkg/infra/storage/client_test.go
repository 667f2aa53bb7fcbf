package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/m-mizutani/cihooks/pkg/domain/model"
	"github.com/m-mizutani/cihooks/pkg/settings"
	"github.com/m-mizutani/gt"
)

type memObject struct {
	bucket string
	key    string
	attrs  objectAttrs
	buf    bytes.Buffer
}

type memWriter struct {
	obj      *memObject
	closeErr error
}

func (w *memWriter) Write(p []byte) (int, error) { return w.obj.buf.Write(p) }
func (w *memWriter) Close() error                { return w.closeErr }

func newMemClient(t *testing.T, closeErr error) (*Client, *[]*memObject) {
	t.Helper()
	s, err := settings.Default()
	gt.NoError(t, err)

	var objects []*memObject
	client := &Client{
		s3: s.S3,
		open: func(ctx context.Context, bucket, key string, attrs objectAttrs) io.WriteCloser {
			obj := &memObject{bucket: bucket, key: key, attrs: attrs}
			objects = append(objects, obj)
			return &memWriter{obj: obj, closeErr: closeErr}
		},
	}
	return client, &objects
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(p, data, 0600))
	return p
}

func TestCopyFile_WithRename(t *testing.T) {
	client, objects := newMemClient(t, nil)
	local := writeFile(t, "clickhouse", []byte("binary"))

	outcome, err := client.CopyFile(context.Background(), model.Upload{
		LocalPath:  local,
		Bucket:     "clickhouse-builds",
		Key:        "master/amd64/clickhouse-full",
		WithRename: true,
	})
	gt.NoError(t, err)

	gt.Number(t, len(*objects)).Equal(1)
	obj := (*objects)[0]
	gt.Value(t, obj.bucket).Equal("clickhouse-builds")
	gt.Value(t, obj.key).Equal("master/amd64/clickhouse-full")
	gt.Value(t, obj.attrs.ContentType).Equal("application/octet-stream")
	gt.Value(t, obj.attrs.ContentEncoding).Equal("")
	gt.Value(t, obj.buf.String()).Equal("binary")

	gt.Value(t, outcome.URL).Equal("https://clickhouse-builds.s3.amazonaws.com/master/amd64/clickhouse-full")
	gt.Number(t, outcome.Size).Equal(int64(6))
}

func TestCopyFile_WithoutRename(t *testing.T) {
	client, objects := newMemClient(t, nil)
	local := writeFile(t, "report.log", []byte("log line"))

	outcome, err := client.CopyFile(context.Background(), model.Upload{
		LocalPath: local,
		Bucket:    "clickhouse-test-reports",
		Key:       "PRs/1/logs",
	})
	gt.NoError(t, err)

	obj := (*objects)[0]
	gt.Value(t, obj.key).Equal("PRs/1/logs/report.log")
	gt.Value(t, obj.attrs.ContentType).Equal(textContentType)
	gt.Value(t, outcome.URL).Equal("https://s3.amazonaws.com/clickhouse-test-reports/PRs/1/logs/report.log")
}

func TestCopyFile_CompressLargeText(t *testing.T) {
	client, objects := newMemClient(t, nil)
	client.s3.CompressThresholdMB = 1

	content := strings.Repeat("a", 2*1024*1024)
	local := writeFile(t, "server.log", []byte(content))

	outcome, err := client.CopyFile(context.Background(), model.Upload{
		LocalPath:  local,
		Bucket:     "clickhouse-builds",
		Key:        "logs/server.log",
		WithRename: true,
	})
	gt.NoError(t, err)

	obj := (*objects)[0]
	gt.Value(t, obj.attrs.ContentEncoding).Equal("gzip")
	gt.Number(t, outcome.Size).Less(int64(len(content)))

	gz, err := gzip.NewReader(&obj.buf)
	gt.NoError(t, err)
	raw, err := io.ReadAll(gz)
	gt.NoError(t, err)
	gt.Value(t, string(raw)).Equal(content)
}

func TestCopyFile_Errors(t *testing.T) {
	t.Run("missing local file", func(t *testing.T) {
		client, objects := newMemClient(t, nil)
		_, err := client.CopyFile(context.Background(), model.Upload{
			LocalPath: filepath.Join(t.TempDir(), "missing"),
			Bucket:    "b",
			Key:       "k",
		})
		gt.Error(t, err)
		gt.Number(t, len(*objects)).Equal(0)
	})

	t.Run("directory", func(t *testing.T) {
		client, _ := newMemClient(t, nil)
		_, err := client.CopyFile(context.Background(), model.Upload{
			LocalPath: t.TempDir(),
			Bucket:    "b",
			Key:       "k",
		})
		gt.Error(t, err)
	})

	t.Run("finalize failure", func(t *testing.T) {
		closeErr := errors.New("permission denied")
		client, _ := newMemClient(t, closeErr)
		local := writeFile(t, "clickhouse", []byte("binary"))

		_, err := client.CopyFile(context.Background(), model.Upload{
			LocalPath:  local,
			Bucket:     "b",
			Key:        "k",
			WithRename: true,
		})
		gt.Error(t, err).Is(closeErr)
	})
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name   string
		upload model.Upload
		want   string
	}{
		{
			name:   "rename keeps key",
			upload: model.Upload{LocalPath: "/x/clickhouse-stripped", Key: "master/amd64/clickhouse", WithRename: true},
			want:   "master/amd64/clickhouse",
		},
		{
			name:   "no rename appends base name",
			upload: model.Upload{LocalPath: "/x/clickhouse-stripped", Key: "master/amd64"},
			want:   "master/amd64/clickhouse-stripped",
		},
		{
			name:   "leading slash is dropped",
			upload: model.Upload{LocalPath: "/x/a", Key: "/master/a", WithRename: true},
			want:   "master/a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, objectKey(tt.upload)).Equal(tt.want)
		})
	}
}

func TestNew_WithEmulator(t *testing.T) {
	endpoint := os.Getenv("TEST_STORAGE_EMULATOR_ENDPOINT")
	if endpoint == "" {
		t.Skip("TEST_STORAGE_EMULATOR_ENDPOINT is not set")
	}

	s, err := settings.Default()
	gt.NoError(t, err)

	client, err := New(context.Background(), s.S3, WithEndpoint(endpoint), WithoutAuthentication())
	gt.NoError(t, err)
	defer client.Close()
}
