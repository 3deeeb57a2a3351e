package remote

import (
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/xenking/shopfront/internal/domain/product"
)

// The backend is loose about types: numbers sometimes arrive quoted, booleans
// as 0/1, and any field may be null. The helpers below accept all of those.

func productsDecoder(resp *product.ProductsResponse) func(d *jx.Decoder) error {
	return func(d *jx.Decoder) error {
		return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			if string(key) == "products" {
				products, err := decodeProducts(d)
				if err != nil {
					return errors.Wrap(err, "products")
				}
				resp.Products = products
				return nil
			}
			return decodeBaseField(d, key, &resp.BaseResponse)
		})
	}
}

func productDetailDecoder(resp *product.ProductDetailResponse) func(d *jx.Decoder) error {
	return func(d *jx.Decoder) error {
		return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			if string(key) == "product" {
				if d.Next() == jx.Null {
					return d.Null()
				}
				p, err := decodeProduct(d)
				if err != nil {
					return errors.Wrap(err, "product")
				}
				resp.Product = &p
				return nil
			}
			return decodeBaseField(d, key, &resp.BaseResponse)
		})
	}
}

func categoriesDecoder(resp *product.CategoriesResponse) func(d *jx.Decoder) error {
	return func(d *jx.Decoder) error {
		return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			if string(key) == "categories" {
				if d.Next() == jx.Null {
					return d.Null()
				}
				return d.Arr(func(d *jx.Decoder) error {
					c, err := decodeCategory(d)
					if err != nil {
						return errors.Wrap(err, "category")
					}
					resp.Categories = append(resp.Categories, c)
					return nil
				})
			}
			return decodeBaseField(d, key, &resp.BaseResponse)
		})
	}
}

func baseDecoder(resp *product.BaseResponse) func(d *jx.Decoder) error {
	return func(d *jx.Decoder) error {
		return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			return decodeBaseField(d, key, resp)
		})
	}
}

// decodeBaseField handles the envelope fields and skips anything else.
func decodeBaseField(d *jx.Decoder, key []byte, resp *product.BaseResponse) error {
	switch string(key) {
	case "status":
		v, err := optInt(d)
		if err != nil {
			return errors.Wrap(err, "status")
		}
		resp.Status = deref(v)
	case "message":
		v, err := optString(d)
		if err != nil {
			return errors.Wrap(err, "message")
		}
		resp.Message = deref(v)
	default:
		return d.Skip()
	}
	return nil
}

func decodeProducts(d *jx.Decoder) ([]product.Product, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}
	var out []product.Product
	err := d.Arr(func(d *jx.Decoder) error {
		p, err := decodeProduct(d)
		if err != nil {
			return errors.Wrapf(err, "[%d]", len(out))
		}
		out = append(out, p)
		return nil
	})
	return out, err
}

func decodeProduct(d *jx.Decoder) (product.Product, error) {
	var p product.Product
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "id":
			p.ID, err = optInt(d)
		case "title":
			p.Title, err = optString(d)
		case "price":
			p.Price, err = optDecimal(d)
		case "salePrice":
			p.SalePrice, err = optDecimal(d)
		case "description":
			p.Description, err = optString(d)
		case "category":
			p.Category, err = optString(d)
		case "imageOne":
			p.ImageOne, err = optString(d)
		case "imageTwo":
			p.ImageTwo, err = optString(d)
		case "imageThree":
			p.ImageThree, err = optString(d)
		case "rate":
			p.Rate, err = optFloat(d)
		case "count":
			p.Count, err = optInt(d)
		case "saleState":
			p.SaleState, err = optBool(d)
		default:
			return d.Skip()
		}
		return errors.Wrap(err, string(key))
	})
	return p, err
}

// decodeCategory accepts either {"id":1,"name":"Shoes"} or a bare label.
func decodeCategory(d *jx.Decoder) (product.Category, error) {
	var c product.Category
	if d.Next() == jx.String {
		label, err := d.Str()
		c.Label = label
		return c, err
	}
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "id":
			v, err := optInt(d)
			c.ID = deref(v)
			return errors.Wrap(err, "id")
		case "name", "title":
			v, err := optString(d)
			c.Label = deref(v)
			return errors.Wrap(err, string(key))
		default:
			return d.Skip()
		}
	})
	return c, err
}

func optString(d *jx.Decoder) (*string, error) {
	switch d.Next() {
	case jx.Null:
		return nil, d.Null()
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return nil, err
		}
		s := n.String()
		return &s, nil
	default:
		s, err := d.Str()
		if err != nil {
			return nil, err
		}
		return &s, nil
	}
}

func optInt(d *jx.Decoder) (*int, error) {
	switch d.Next() {
	case jx.Null:
		return nil, d.Null()
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrapf(err, "parse int %q", s)
		}
		return &v, nil
	default:
		v, err := d.Int()
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}

func optFloat(d *jx.Decoder) (*float64, error) {
	switch d.Next() {
	case jx.Null:
		return nil, d.Null()
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse float %q", s)
		}
		return &v, nil
	default:
		v, err := d.Float64()
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}

func optBool(d *jx.Decoder) (*bool, error) {
	switch d.Next() {
	case jx.Null:
		return nil, d.Null()
	case jx.Number:
		v, err := d.Int()
		if err != nil {
			return nil, err
		}
		b := v != 0
		return &b, nil
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return nil, err
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, errors.Wrapf(err, "parse bool %q", s)
		}
		return &b, nil
	default:
		b, err := d.Bool()
		if err != nil {
			return nil, err
		}
		return &b, nil
	}
}

func optDecimal(d *jx.Decoder) (decimal.NullDecimal, error) {
	var raw string
	switch d.Next() {
	case jx.Null:
		return decimal.NullDecimal{}, d.Null()
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return decimal.NullDecimal{}, err
		}
		raw = s
	default:
		n, err := d.Num()
		if err != nil {
			return decimal.NullDecimal{}, err
		}
		raw = n.String()
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, errors.Wrapf(err, "parse decimal %q", raw)
	}
	return decimal.NewNullDecimal(v), nil
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
