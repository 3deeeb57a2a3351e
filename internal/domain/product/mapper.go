package product

import "github.com/shopspring/decimal"

// ToUI resolves defaults for every missing field and marks the product as a
// favorite when its ID is in favorites. A product without an ID is never a
// favorite.
func (p Product) ToUI(favorites IDSet) ProductUI {
	ui := ProductUI{
		Title:       deref(p.Title),
		Price:       orZero(p.Price),
		SalePrice:   orZero(p.SalePrice),
		Description: deref(p.Description),
		Category:    deref(p.Category),
		ImageOne:    deref(p.ImageOne),
		ImageTwo:    deref(p.ImageTwo),
		ImageThree:  deref(p.ImageThree),
		Rate:        deref(p.Rate),
		Count:       deref(p.Count),
		SaleState:   deref(p.SaleState),
	}
	if p.ID != nil {
		ui.ID = *p.ID
		ui.IsFavorite = favorites.Contains(*p.ID)
	}
	return ui
}

// MapProducts converts wire products into UI records. The result is never nil.
func MapProducts(products []Product, favorites IDSet) []ProductUI {
	out := make([]ProductUI, len(products))
	for i, p := range products {
		out[i] = p.ToUI(favorites)
	}
	return out
}

// ToFavorite returns the record persisted when p is favorited.
func (p ProductUI) ToFavorite() Favorite {
	return Favorite{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		SalePrice:   p.SalePrice,
		Description: p.Description,
		Category:    p.Category,
		ImageOne:    p.ImageOne,
		ImageTwo:    p.ImageTwo,
		ImageThree:  p.ImageThree,
		Rate:        p.Rate,
		Count:       p.Count,
		SaleState:   p.SaleState,
	}
}

// ToUI converts a stored favorite back into a UI record. Stored favorites are
// favorites by definition.
func (f Favorite) ToUI() ProductUI {
	return ProductUI{
		ID:          f.ID,
		Title:       f.Title,
		Price:       f.Price,
		SalePrice:   f.SalePrice,
		Description: f.Description,
		Category:    f.Category,
		ImageOne:    f.ImageOne,
		ImageTwo:    f.ImageTwo,
		ImageThree:  f.ImageThree,
		Rate:        f.Rate,
		Count:       f.Count,
		SaleState:   f.SaleState,
		IsFavorite:  true,
	}
}

// MapFavorites converts stored favorites into UI records.
func MapFavorites(favorites []Favorite) []ProductUI {
	out := make([]ProductUI, len(favorites))
	for i, f := range favorites {
		out[i] = f.ToUI()
	}
	return out
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
