// Package handler implements the generated oas.Handler over the screen
// view-models and streams the home feeds as server-sent events.
//
// Every reply body is a screen state. Backend failures are reported inside
// the state with HTTP 200; only malformed requests get a 4xx code.
package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	ht "github.com/ogen-go/ogen/http"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"

	"github.com/xenking/shopfront/gen/oas"
	"github.com/xenking/shopfront/internal/viewmodel"
)

// Compile-time check ensuring Handler satisfies the ogen Handler interface.
var _ oas.Handler = (*Handler)(nil)

// Session is the sign-in surface used by the handler.
type Session interface {
	SignIn(ctx context.Context, userID string) error
}

// Screens groups the view-models served by the handler.
type Screens struct {
	Home      *viewmodel.Home
	Detail    *viewmodel.Detail
	Search    *viewmodel.Search
	Category  *viewmodel.Category
	Cart      *viewmodel.Cart
	Favorites *viewmodel.Favorites
}

// Handler implements the ogen-generated Handler interface, delegating every
// operation to the screen view-models.
type Handler struct {
	oas.UnimplementedHandler

	screens Screens
	session Session
}

// NewHandler constructs a Handler with the screens it serves.
func NewHandler(screens Screens, session Session) *Handler {
	return &Handler{screens: screens, session: session}
}

// ErrorHandler replies to requests the generated server could not decode, and
// to operations that failed, with a popup state.
func ErrorHandler(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	var (
		paramsErr  *ogenerrors.DecodeParamsError
		requestErr *ogenerrors.DecodeRequestError
	)
	code, msg := http.StatusInternalServerError, "internal error"
	switch {
	case errors.As(err, &paramsErr):
		code, msg = http.StatusBadRequest, "invalid request parameters"
	case errors.As(err, &requestErr):
		code, msg = http.StatusBadRequest, "invalid request body"
	case errors.Is(err, ht.ErrNotImplemented):
		code, msg = http.StatusNotImplemented, "not implemented"
	default:
		zctx.From(ctx).Error("Request failed", zap.Error(err))
	}

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	state := oas.ActionState{Status: oas.StateStatusPopup, Message: oas.NewOptString(msg)}
	state.Encode(e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if _, err := e.WriteTo(w); err != nil {
		zctx.From(ctx).Debug("Write error reply", zap.Error(err))
	}
}
