package handler

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/shopfront/gen/oas"
	"github.com/xenking/shopfront/internal/domain/product"
	"github.com/xenking/shopfront/internal/viewmodel"
)

func optMessage(msg string) oas.OptString {
	if msg == "" {
		return oas.OptString{}
	}
	return oas.NewOptString(msg)
}

func toProduct(p product.ProductUI) oas.Product {
	return oas.Product{
		ID:          p.ID,
		Title:       oas.NewOptString(p.Title),
		Price:       oas.NewOptString(p.Price.String()),
		SalePrice:   oas.NewOptString(p.SalePrice.String()),
		Description: oas.NewOptString(p.Description),
		Category:    oas.NewOptString(p.Category),
		ImageOne:    oas.NewOptString(p.ImageOne),
		ImageTwo:    oas.NewOptString(p.ImageTwo),
		ImageThree:  oas.NewOptString(p.ImageThree),
		Rate:        oas.NewOptFloat64(p.Rate),
		Count:       oas.NewOptInt(p.Count),
		SaleState:   oas.NewOptBool(p.SaleState),
		IsFavorite:  oas.NewOptBool(p.IsFavorite),
	}
}

// fromProduct converts a request body back to the presentation model. Absent
// prices stay zero.
func fromProduct(p *oas.Product) (product.ProductUI, error) {
	ui := product.ProductUI{
		ID:          p.ID,
		Title:       p.Title.Or(""),
		Description: p.Description.Or(""),
		Category:    p.Category.Or(""),
		ImageOne:    p.ImageOne.Or(""),
		ImageTwo:    p.ImageTwo.Or(""),
		ImageThree:  p.ImageThree.Or(""),
		Rate:        p.Rate.Or(0),
		Count:       p.Count.Or(0),
		SaleState:   p.SaleState.Or(false),
		IsFavorite:  p.IsFavorite.Or(false),
	}
	var err error
	if v, ok := p.Price.Get(); ok {
		if ui.Price, err = decimal.NewFromString(v); err != nil {
			return ui, errors.Wrap(err, "price")
		}
	}
	if v, ok := p.SalePrice.Get(); ok {
		if ui.SalePrice, err = decimal.NewFromString(v); err != nil {
			return ui, errors.Wrap(err, "sale price")
		}
	}
	return ui, nil
}

func toProductsState(s viewmodel.Products) *oas.ProductsState {
	out := &oas.ProductsState{
		Status:  oas.StateStatus(s.Status),
		Message: optMessage(s.Message),
	}
	if s.Status == viewmodel.StatusSuccess {
		out.Data = make([]oas.Product, len(s.Data))
		for i, p := range s.Data {
			out.Data[i] = toProduct(p)
		}
	}
	return out
}

func toProductState(s viewmodel.State[product.ProductUI]) *oas.ProductState {
	out := &oas.ProductState{
		Status:  oas.StateStatus(s.Status),
		Message: optMessage(s.Message),
	}
	if s.Status == viewmodel.StatusSuccess {
		out.Data = oas.NewOptProduct(toProduct(s.Data))
	}
	return out
}

func toCategoriesState(s viewmodel.State[[]product.Category]) *oas.CategoriesState {
	out := &oas.CategoriesState{
		Status:  oas.StateStatus(s.Status),
		Message: optMessage(s.Message),
	}
	if s.Status == viewmodel.StatusSuccess {
		out.Data = make([]oas.Category, len(s.Data))
		for i, c := range s.Data {
			out.Data[i] = oas.Category{ID: c.ID, Name: c.Label}
		}
	}
	return out
}

func toActionState(s viewmodel.State[struct{}]) *oas.ActionState {
	return &oas.ActionState{
		Status:  oas.StateStatus(s.Status),
		Message: optMessage(s.Message),
	}
}

// toAckState carries the backend envelope of a successful cart mutation.
func toAckState(status viewmodel.Status, msg string, ack product.BaseResponse) *oas.AckState {
	out := &oas.AckState{
		Status:  oas.StateStatus(status),
		Message: optMessage(msg),
	}
	if status == viewmodel.StatusSuccess {
		out.Data = oas.NewOptAck(oas.Ack{Status: ack.Status, Message: optMessage(ack.Message)})
	}
	return out
}
