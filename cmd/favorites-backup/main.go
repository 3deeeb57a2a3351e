// Command favorites-backup exports the favorites table to a gzip-compressed
// JSON-lines file and imports such a file back.
//
//	favorites-backup [-database-url URL] export FILE
//	favorites-backup [-database-url URL] import FILE
//
// With -s3-bucket set, FILE names an object in that bucket instead of a local
// path.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-faster/errors"
	_ "github.com/joho/godotenv/autoload"

	"github.com/xenking/shopfront/internal/backup"
	"github.com/xenking/shopfront/internal/storage/postgres"
)

func main() {
	var (
		databaseURL string
		bucket      backup.BucketConfig
	)
	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&bucket.Endpoint, "s3-endpoint", os.Getenv("SHOP_S3_ENDPOINT"), "S3-compatible endpoint, host:port")
	flag.StringVar(&bucket.Bucket, "s3-bucket", "", "store archives in this bucket instead of local files")
	flag.StringVar(&bucket.AccessKey, "s3-access-key", os.Getenv("SHOP_S3_ACCESS_KEY"), "S3 access key")
	flag.StringVar(&bucket.SecretKey, "s3-secret-key", os.Getenv("SHOP_S3_SECRET_KEY"), "S3 secret key")
	flag.BoolVar(&bucket.Secure, "s3-secure", true, "use TLS for the S3 endpoint")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] export|import FILE\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	cmd, path := flag.Arg(0), flag.Arg(1)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, bucket, cmd, path); err != nil {
		slog.Error("favorites backup failed", slog.String("command", cmd), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, databaseURL string, bucket backup.BucketConfig, cmd, path string) error {
	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}
	store := postgres.NewFavoriteStore(pool)

	if bucket.Bucket != "" {
		return runBucket(ctx, bucket, store, cmd, path)
	}

	switch cmd {
	case "export":
		return export(ctx, store, path)
	case "import":
		return restore(ctx, store, path)
	default:
		return errors.Errorf("unknown command %q", cmd)
	}
}

func export(ctx context.Context, store backup.Source, path string) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create archive")
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = errors.Wrap(err, "close archive")
		}
	}()

	n, err := backup.Export(ctx, store, f)
	if err != nil {
		return err
	}
	slog.Info("exported favorites", slog.Int("count", n), slog.String("path", path))
	return nil
}

func restore(ctx context.Context, store backup.Sink, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open archive")
	}
	defer func() { _ = f.Close() }()

	n, err := backup.Import(ctx, f, store)
	slog.Info("imported favorites", slog.Int("count", n), slog.String("path", path))
	return err
}

func runBucket(ctx context.Context, cfg backup.BucketConfig, store *postgres.FavoriteStore, cmd, key string) error {
	b, err := backup.NewBucket(ctx, cfg)
	if err != nil {
		return err
	}

	var n int
	switch cmd {
	case "export":
		n, err = b.ExportTo(ctx, store, key)
	case "import":
		n, err = b.ImportFrom(ctx, key, store)
	default:
		return errors.Errorf("unknown command %q", cmd)
	}
	slog.Info("favorites archive processed",
		slog.String("command", cmd),
		slog.Int("count", n),
		slog.String("bucket", cfg.Bucket),
		slog.String("key", key),
	)
	return err
}
