// Package remote implements the typed HTTP client for the e-commerce backend.
//
// The backend wraps every payload in an envelope carrying its own status code.
// The client decodes the envelope whatever the HTTP status and leaves the
// interpretation of the status field to the caller; only failures to reach the
// backend or to decode its reply are returned as errors.
package remote

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/xenking/shopfront/internal/domain/cart"
	"github.com/xenking/shopfront/internal/domain/product"
)

// ErrUnexpectedStatus is wrapped into errors for replies that carry a non-2xx
// HTTP status and a body that is not a backend envelope or has no status
// field.
var ErrUnexpectedStatus = errors.New("unexpected http status")

const maxBodySize = 8 << 20

// Config holds the backend location and request settings.
type Config struct {
	// BaseURL is the backend root, e.g. https://api.example.com/ecommerce/.
	BaseURL string
	// Store is sent in the "store" header to select the backend tenant.
	Store string
	// Timeout bounds a single request. Zero means no client-side timeout.
	Timeout time.Duration
}

// Option customizes a Client.
type Option func(*options)

type options struct {
	httpClient     *http.Client
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithHTTPClient replaces the underlying HTTP client. The client is used as is,
// without instrumentation.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithTracerProvider sets the tracer provider for the instrumented transport.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// WithMeterProvider sets the meter provider for the instrumented transport.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

// Client calls the backend endpoints.
type Client struct {
	base  *url.URL
	store string
	http  *http.Client
}

// New creates a Client for the backend described by cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("base url %q must be absolute", cfg.BaseURL)
	}
	if base.Path == "" || base.Path[len(base.Path)-1] != '/' {
		base.Path += "/"
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	hc := o.httpClient
	if hc == nil {
		var otelOpts []otelhttp.Option
		if o.tracerProvider != nil {
			otelOpts = append(otelOpts, otelhttp.WithTracerProvider(o.tracerProvider))
		}
		if o.meterProvider != nil {
			otelOpts = append(otelOpts, otelhttp.WithMeterProvider(o.meterProvider))
		}
		hc = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport, otelOpts...),
		}
	}

	return &Client{base: base, store: cfg.Store, http: hc}, nil
}

// GetProducts lists the whole catalog.
func (c *Client) GetProducts(ctx context.Context) (*product.ProductsResponse, error) {
	var resp product.ProductsResponse
	if err := c.do(ctx, http.MethodGet, "get_products.php", nil, nil, productsDecoder(&resp)); err != nil {
		return nil, errors.Wrap(err, "get products")
	}
	return &resp, nil
}

// GetProductDetail fetches a single product.
func (c *Client) GetProductDetail(ctx context.Context, id int) (*product.ProductDetailResponse, error) {
	q := url.Values{"id": {strconv.Itoa(id)}}
	var resp product.ProductDetailResponse
	if err := c.do(ctx, http.MethodGet, "get_product_detail.php", q, nil, productDetailDecoder(&resp)); err != nil {
		return nil, errors.Wrapf(err, "get product %d", id)
	}
	return &resp, nil
}

// GetSaleProducts lists products currently on sale.
func (c *Client) GetSaleProducts(ctx context.Context) (*product.ProductsResponse, error) {
	var resp product.ProductsResponse
	if err := c.do(ctx, http.MethodGet, "get_sale_products.php", nil, nil, productsDecoder(&resp)); err != nil {
		return nil, errors.Wrap(err, "get sale products")
	}
	return &resp, nil
}

// SearchProduct runs a free-text product search.
func (c *Client) SearchProduct(ctx context.Context, query string) (*product.ProductsResponse, error) {
	q := url.Values{"query": {query}}
	var resp product.ProductsResponse
	if err := c.do(ctx, http.MethodGet, "search_product.php", q, nil, productsDecoder(&resp)); err != nil {
		return nil, errors.Wrap(err, "search product")
	}
	return &resp, nil
}

// GetProductsByCategory lists the products of one category.
func (c *Client) GetProductsByCategory(ctx context.Context, category string) (*product.ProductsResponse, error) {
	q := url.Values{"category": {category}}
	var resp product.ProductsResponse
	if err := c.do(ctx, http.MethodGet, "get_products_by_category.php", q, nil, productsDecoder(&resp)); err != nil {
		return nil, errors.Wrapf(err, "get products of category %q", category)
	}
	return &resp, nil
}

// GetCategories lists the catalog categories.
func (c *Client) GetCategories(ctx context.Context) (*product.CategoriesResponse, error) {
	var resp product.CategoriesResponse
	if err := c.do(ctx, http.MethodGet, "get_categories.php", nil, nil, categoriesDecoder(&resp)); err != nil {
		return nil, errors.Wrap(err, "get categories")
	}
	return &resp, nil
}

// AddToCart puts a product into the user's cart.
func (c *Client) AddToCart(ctx context.Context, req cart.AddRequest) (*product.CartResponse, error) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("userId")
	e.Str(req.UserID)
	e.FieldStart("productId")
	e.Int(req.ProductID)
	e.ObjEnd()

	var resp product.CartResponse
	if err := c.do(ctx, http.MethodPost, "add_to_cart.php", nil, e.Bytes(), baseDecoder(&resp.BaseResponse)); err != nil {
		return nil, errors.Wrap(err, "add to cart")
	}
	return &resp, nil
}

// DeleteFromCart removes a product from the user's cart.
func (c *Client) DeleteFromCart(ctx context.Context, req cart.DeleteRequest) (*product.BaseResponse, error) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("userId")
	e.Str(req.UserID)
	e.FieldStart("id")
	e.Int(req.ProductID)
	e.ObjEnd()

	var resp product.BaseResponse
	if err := c.do(ctx, http.MethodPost, "delete_from_cart.php", nil, e.Bytes(), baseDecoder(&resp)); err != nil {
		return nil, errors.Wrap(err, "delete from cart")
	}
	return &resp, nil
}

// GetCartProducts lists the products in the user's cart.
func (c *Client) GetCartProducts(ctx context.Context, userID string) (*product.ProductsResponse, error) {
	q := url.Values{"userId": {userID}}
	var resp product.ProductsResponse
	if err := c.do(ctx, http.MethodGet, "get_cart_products.php", q, nil, productsDecoder(&resp)); err != nil {
		return nil, errors.Wrap(err, "get cart products")
	}
	return &resp, nil
}

// ClearCart empties the user's cart.
func (c *Client) ClearCart(ctx context.Context, req cart.ClearRequest) (*product.BaseResponse, error) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("userId")
	e.Str(req.UserID)
	e.ObjEnd()

	var resp product.BaseResponse
	if err := c.do(ctx, http.MethodPost, "clear_cart.php", nil, e.Bytes(), baseDecoder(&resp)); err != nil {
		return nil, errors.Wrap(err, "clear cart")
	}
	return &resp, nil
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body []byte,
	decode func(d *jx.Decoder) error,
) error {
	u := c.base.ResolveReference(&url.URL{Path: path, RawQuery: query.Encode()})

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.store != "" {
		req.Header.Set("store", c.store)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return errors.Wrap(err, "read body")
	}

	httpOK := resp.StatusCode >= 200 && resp.StatusCode <= 299
	if err := decode(jx.DecodeBytes(data)); err != nil {
		if !httpOK {
			return errors.Wrapf(ErrUnexpectedStatus, "%s", resp.Status)
		}
		return errors.Wrap(err, "decode response")
	}
	if !httpOK && !hasStatusField(data) {
		return errors.Wrapf(ErrUnexpectedStatus, "%s", resp.Status)
	}
	return nil
}

// hasStatusField reports whether data is an object with a top-level status key.
func hasStatusField(data []byte) bool {
	var found bool
	if err := jx.DecodeBytes(data).ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) == "status" {
			found = true
		}
		return d.Skip()
	}); err != nil {
		return false
	}
	return found
}
