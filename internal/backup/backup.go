// Package backup moves the favorites table to and from a gzip-compressed
// JSON-lines archive, one favorite per line.
package backup

import (
	"bufio"
	"context"
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/shopfront/internal/domain/product"
)

const maxLineSize = 1 << 20

// Source lists the favorites to export.
type Source interface {
	Products(ctx context.Context) ([]product.Favorite, error)
}

// Sink stores imported favorites. Add must replace an existing record with the
// same ID.
type Sink interface {
	Add(ctx context.Context, f product.Favorite) error
}

// Export writes every favorite of src to w and returns how many were written.
func Export(ctx context.Context, src Source, w io.Writer) (int, error) {
	favorites, err := src.Products(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "list favorites")
	}

	zw := pgzip.NewWriter(w)
	defer func() { _ = zw.Close() }()
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	for _, f := range favorites {
		e.Reset()
		encodeFavorite(e, f)
		e.RawStr("\n")
		if _, err := zw.Write(e.Bytes()); err != nil {
			return 0, errors.Wrapf(err, "write favorite %d", f.ID)
		}
	}
	if err := zw.Close(); err != nil {
		return 0, errors.Wrap(err, "flush archive")
	}
	return len(favorites), nil
}

// Import reads an archive from r and adds every record to dst. Decoding and
// storing run concurrently; the first failure stops both. It returns how
// many records were stored.
func Import(ctx context.Context, r io.Reader, dst Sink) (int, error) {
	zr, err := pgzip.NewReader(r)
	if err != nil {
		return 0, errors.Wrap(err, "open archive")
	}
	defer func() { _ = zr.Close() }()

	records := make(chan product.Favorite, 64)
	stored := 0

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(records)

		sc := bufio.NewScanner(zr)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for line := 1; sc.Scan(); line++ {
			if len(sc.Bytes()) == 0 {
				continue
			}
			f, err := decodeFavorite(jx.DecodeBytes(sc.Bytes()))
			if err != nil {
				return errors.Wrapf(err, "line %d", line)
			}
			select {
			case records <- f:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return errors.Wrap(sc.Err(), "read archive")
	})
	g.Go(func() error {
		for f := range records {
			if err := dst.Add(gctx, f); err != nil {
				return errors.Wrapf(err, "store favorite %d", f.ID)
			}
			stored++
		}
		return nil
	})

	err = g.Wait()
	return stored, err
}

func encodeFavorite(e *jx.Encoder, f product.Favorite) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Int(f.ID) })
		e.Field("title", func(e *jx.Encoder) { e.Str(f.Title) })
		e.Field("price", func(e *jx.Encoder) { e.Str(f.Price.String()) })
		e.Field("salePrice", func(e *jx.Encoder) { e.Str(f.SalePrice.String()) })
		e.Field("description", func(e *jx.Encoder) { e.Str(f.Description) })
		e.Field("category", func(e *jx.Encoder) { e.Str(f.Category) })
		e.Field("imageOne", func(e *jx.Encoder) { e.Str(f.ImageOne) })
		e.Field("imageTwo", func(e *jx.Encoder) { e.Str(f.ImageTwo) })
		e.Field("imageThree", func(e *jx.Encoder) { e.Str(f.ImageThree) })
		e.Field("rate", func(e *jx.Encoder) { e.Float64(f.Rate) })
		e.Field("count", func(e *jx.Encoder) { e.Int(f.Count) })
		e.Field("saleState", func(e *jx.Encoder) { e.Bool(f.SaleState) })
	})
}

func decodeFavorite(d *jx.Decoder) (product.Favorite, error) {
	var (
		f     product.Favorite
		hasID bool
	)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "id":
			f.ID, err = d.Int()
			hasID = err == nil
		case "title":
			f.Title, err = d.Str()
		case "price":
			f.Price, err = decodeDecimal(d)
		case "salePrice":
			f.SalePrice, err = decodeDecimal(d)
		case "description":
			f.Description, err = d.Str()
		case "category":
			f.Category, err = d.Str()
		case "imageOne":
			f.ImageOne, err = d.Str()
		case "imageTwo":
			f.ImageTwo, err = d.Str()
		case "imageThree":
			f.ImageThree, err = d.Str()
		case "rate":
			f.Rate, err = d.Float64()
		case "count":
			f.Count, err = d.Int()
		case "saleState":
			f.SaleState, err = d.Bool()
		default:
			err = d.Skip()
		}
		return errors.Wrapf(err, "field %q", key)
	})
	if err != nil {
		return f, err
	}
	if !hasID {
		return f, errors.New("missing id")
	}
	return f, nil
}

func decodeDecimal(d *jx.Decoder) (decimal.Decimal, error) {
	s, err := d.Str()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(s)
}
