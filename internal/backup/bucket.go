package backup

import (
	"context"
	"io"

	"github.com/go-faster/errors"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/sync/errgroup"
)

const archiveContentType = "application/gzip"

// BucketConfig locates an S3-compatible bucket holding archives.
type BucketConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Secure    bool
}

// Bucket stores archives as objects. It is safe for concurrent use.
type Bucket struct {
	client *minio.Client
	name   string
}

// NewBucket connects to the object store and creates the bucket if missing.
func NewBucket(ctx context.Context, cfg BucketConfig) (*Bucket, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, errors.New("bucket endpoint and name are required")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create object store client")
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, "check bucket")
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrap(err, "create bucket")
		}
	}
	return &Bucket{client: client, name: cfg.Bucket}, nil
}

// ExportTo streams an archive of src into the object key without buffering it
// on disk.
func (b *Bucket) ExportTo(ctx context.Context, src Source, key string) (int, error) {
	pr, pw := io.Pipe()
	var n int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		n, err = Export(gctx, src, pw)
		pw.CloseWithError(err)
		return err
	})
	g.Go(func() error {
		_, err := b.client.PutObject(gctx, b.name, key, pr, -1, minio.PutObjectOptions{
			ContentType: archiveContentType,
		})
		pr.CloseWithError(err)
		return errors.Wrapf(err, "upload %s", key)
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return n, nil
}

// ImportFrom reads the archive stored under key into dst.
func (b *Bucket) ImportFrom(ctx context.Context, key string, dst Sink) (int, error) {
	obj, err := b.client.GetObject(ctx, b.name, key, minio.GetObjectOptions{})
	if err != nil {
		return 0, errors.Wrapf(err, "get %s", key)
	}
	defer func() { _ = obj.Close() }()

	return Import(ctx, obj, dst)
}
