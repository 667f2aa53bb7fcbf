package storage

import (
	"context"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
	"github.com/m-mizutani/cihooks/pkg/domain/model"
	"github.com/m-mizutani/cihooks/pkg/settings"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

const textContentType = "text/plain; charset=utf-8"

// objectAttrs are written together with an object
type objectAttrs struct {
	ContentType     string
	ContentEncoding string
}

type openFunc func(ctx context.Context, bucket, key string, attrs objectAttrs) io.WriteCloser

// Client copies local files into object storage buckets
type Client struct {
	open    openFunc
	s3      settings.S3
	closeFn func() error
}

type config struct {
	clientOpts []option.ClientOption
}

// Option configures the storage client
type Option func(*config)

// WithEndpoint overrides the storage API endpoint
func WithEndpoint(endpoint string) Option {
	return func(c *config) {
		c.clientOpts = append(c.clientOpts, option.WithEndpoint(endpoint))
	}
}

// WithCredentialsFile authenticates with a service account key file
func WithCredentialsFile(path string) Option {
	return func(c *config) {
		c.clientOpts = append(c.clientOpts, option.WithCredentialsFile(path))
	}
}

// WithoutAuthentication disables authentication, e.g. for a local emulator
func WithoutAuthentication() Option {
	return func(c *config) {
		c.clientOpts = append(c.clientOpts, option.WithoutAuthentication())
	}
}

// New creates a storage client. s3 provides bucket endpoints, the
// compression threshold and the text-like file extensions.
func New(ctx context.Context, s3 settings.S3, opts ...Option) (*Client, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	gcs, err := storage.NewClient(ctx, cfg.clientOpts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	open := func(ctx context.Context, bucket, key string, attrs objectAttrs) io.WriteCloser {
		w := gcs.Bucket(bucket).Object(key).NewWriter(ctx)
		w.ContentType = attrs.ContentType
		w.ContentEncoding = attrs.ContentEncoding
		return w
	}

	return &Client{open: open, s3: s3, closeFn: gcs.Close}, nil
}

// Close releases the underlying storage client
func (c *Client) Close() error {
	if c.closeFn == nil {
		return nil
	}
	return c.closeFn()
}

// CopyFile uploads a local file. When upload.WithRename is false the local
// file name is appended to upload.Key.
func (c *Client) CopyFile(ctx context.Context, upload model.Upload) (*model.UploadOutcome, error) {
	logger := ctxlog.From(ctx)

	key := objectKey(upload)

	f, err := os.Open(upload.LocalPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open local file", goerr.V("path", upload.LocalPath))
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to stat local file", goerr.V("path", upload.LocalPath))
	}
	if stat.IsDir() {
		return nil, goerr.New("local path is a directory", goerr.V("path", upload.LocalPath))
	}

	attrs := objectAttrs{ContentType: c.contentType(upload.LocalPath)}
	compress := c.shouldCompress(upload.LocalPath, stat.Size())
	if compress {
		attrs.ContentEncoding = "gzip"
	}

	logger.Info("Uploading file",
		"local_path", upload.LocalPath,
		"bucket", upload.Bucket,
		"key", key,
		"size", humanize.Bytes(uint64(stat.Size())),
		"gzip", compress,
	)

	w := c.open(ctx, upload.Bucket, key, attrs)
	counter := &countingWriter{w: w}

	if err := copyContent(counter, f, compress); err != nil {
		_ = w.Close()
		return nil, goerr.Wrap(err, "failed to write object",
			goerr.V("bucket", upload.Bucket),
			goerr.V("key", key),
		)
	}
	if err := w.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to finalize object",
			goerr.V("bucket", upload.Bucket),
			goerr.V("key", key),
		)
	}

	outcome := &model.UploadOutcome{
		Upload: upload,
		URL:    c.publicURL(upload.Bucket, key),
		Size:   counter.n,
	}

	logger.Info("Uploaded file", "url", outcome.URL, "stored", humanize.Bytes(uint64(counter.n)))

	return outcome, nil
}

func copyContent(w io.Writer, r io.Reader, compress bool) error {
	if !compress {
		_, err := io.Copy(w, r)
		return err
	}

	gz := gzip.NewWriter(w)
	if _, err := io.Copy(gz, r); err != nil {
		return err
	}
	return gz.Close()
}

func objectKey(upload model.Upload) string {
	key := strings.TrimPrefix(upload.Key, "/")
	if upload.WithRename {
		return key
	}
	return path.Join(key, filepath.Base(upload.LocalPath))
}

func (c *Client) isText(localPath string) bool {
	return slices.Contains(c.s3.TextContentExtensions, strings.ToLower(filepath.Ext(localPath)))
}

func (c *Client) contentType(localPath string) string {
	if c.isText(localPath) {
		return textContentType
	}
	if t := mime.TypeByExtension(filepath.Ext(localPath)); t != "" {
		return t
	}
	return "application/octet-stream"
}

func (c *Client) shouldCompress(localPath string, size int64) bool {
	return c.isText(localPath) && size > c.s3.CompressThreshold()
}

func (c *Client) publicURL(bucket, key string) string {
	if endpoint, ok := c.s3.HTTPEndpoint(bucket); ok {
		return "https://" + endpoint + "/" + key
	}
	return "https://storage.googleapis.com/" + bucket + "/" + key
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
