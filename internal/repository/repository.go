// Package repository combines the backend client, the local favorites store
// and the mapping layer into one operation per use case.
//
// Every operation returns a result.Result. Errors and panics raised by the
// collaborators are trapped at the method boundary and reported as
// result.Error; negative backend responses become result.Fail.
package repository

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/xenking/shopfront/internal/domain/cart"
	"github.com/xenking/shopfront/internal/domain/product"
	"github.com/xenking/shopfront/internal/result"
)

const instrumentationName = "github.com/xenking/shopfront/internal/repository"

// DefaultErrorMessage replaces fault descriptions that turn out to be empty.
const DefaultErrorMessage = "Something went wrong"

// Remote is the subset of the backend API used by the Repository.
type Remote interface {
	GetProducts(ctx context.Context) (*product.ProductsResponse, error)
	GetProductDetail(ctx context.Context, id int) (*product.ProductDetailResponse, error)
	GetSaleProducts(ctx context.Context) (*product.ProductsResponse, error)
	SearchProduct(ctx context.Context, query string) (*product.ProductsResponse, error)
	GetProductsByCategory(ctx context.Context, category string) (*product.ProductsResponse, error)
	GetCategories(ctx context.Context) (*product.CategoriesResponse, error)
	AddToCart(ctx context.Context, req cart.AddRequest) (*product.CartResponse, error)
	DeleteFromCart(ctx context.Context, req cart.DeleteRequest) (*product.BaseResponse, error)
	GetCartProducts(ctx context.Context, userID string) (*product.ProductsResponse, error)
	ClearCart(ctx context.Context, req cart.ClearRequest) (*product.BaseResponse, error)
}

// Options holds optional telemetry providers. Nil providers are replaced
// with no-op implementations.
type Options struct {
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

// Repository implements the product, cart and favorites use cases.
type Repository struct {
	remote    Remote
	favorites product.FavoriteStore

	tracer  trace.Tracer
	results metric.Int64Counter
}

// New creates a Repository over the given backend and favorites store.
func New(remote Remote, favorites product.FavoriteStore, opts Options) (*Repository, error) {
	tp := opts.TracerProvider
	if tp == nil {
		tp = tracenoop.NewTracerProvider()
	}
	mp := opts.MeterProvider
	if mp == nil {
		mp = metricnoop.NewMeterProvider()
	}

	results, err := mp.Meter(instrumentationName).Int64Counter("shop.repository.results",
		metric.WithDescription("Repository operation outcomes"),
		metric.WithUnit("{result}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create results counter")
	}

	return &Repository{
		remote:    remote,
		favorites: favorites,
		tracer:    tp.Tracer(instrumentationName),
		results:   results,
	}, nil
}

// run executes fn as operation op. A returned error or a panic becomes
// result.Error; the outcome is traced, counted and logged.
func run[T any](
	ctx context.Context,
	r *Repository,
	op string,
	fn func(ctx context.Context) (result.Result[T], error),
) (res result.Result[T]) {
	ctx, span := r.tracer.Start(ctx, "Repository."+op)
	defer span.End()

	defer func() {
		if rec := recover(); rec != nil {
			zctx.From(ctx).Error("Repository panic recovered",
				zap.String("operation", op),
				zap.Any("panic", rec),
				zap.Stack("stack"),
			)
			res = result.Error[T](errorMessage(errors.Errorf("%s: %v", op, rec)))
		}
		r.observe(ctx, span, op, res.Kind(), res.Message())
	}()

	out, err := fn(ctx)
	if err != nil {
		return result.Error[T](errorMessage(err))
	}
	return out
}

func (r *Repository) observe(ctx context.Context, span trace.Span, op string, kind result.Kind, msg string) {
	span.SetAttributes(attribute.String("shop.result", kind.String()))
	r.results.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", kind.String()),
	))

	lg := zctx.From(ctx)
	switch kind {
	case result.KindFail:
		lg.Debug("Repository operation failed", zap.String("operation", op), zap.String("message", msg))
	case result.KindError:
		span.SetStatus(codes.Error, msg)
		lg.Warn("Repository operation error", zap.String("operation", op), zap.String("message", msg))
	}
}

// guard converts a panic in a concurrently running collaborator call into an
// error, since recover in run cannot see other goroutines.
func guard(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = errors.Errorf("panic: %v", rec)
			}
		}()
		return fn()
	}
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return DefaultErrorMessage
}
