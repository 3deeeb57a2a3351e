package handler

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/shopfront/gen/oas"
	"github.com/xenking/shopfront/internal/viewmodel"
)

const streamKeepAlive = 15 * time.Second

// SignIn implements signIn operation.
func (h *Handler) SignIn(ctx context.Context, req *oas.SignInRequest) (oas.SignInRes, error) {
	if err := h.session.SignIn(ctx, req.UserId); err != nil {
		return &oas.SignInBadRequest{
			Status:  oas.StateStatusPopup,
			Message: oas.NewOptString(err.Error()),
		}, nil
	}
	return &oas.ActionState{Status: oas.StateStatusSuccess}, nil
}

// LogOut implements logOut operation.
func (h *Handler) LogOut(ctx context.Context) (*oas.ActionState, error) {
	if err := h.screens.Home.LogOut(ctx); err != nil {
		return &oas.ActionState{
			Status:  oas.StateStatusPopup,
			Message: oas.NewOptString(err.Error()),
		}, nil
	}
	return toActionState(viewmodel.GoToSignIn[struct{}]()), nil
}

// GetHomeProducts implements getHomeProducts operation.
func (h *Handler) GetHomeProducts(ctx context.Context) (*oas.ProductsState, error) {
	return toProductsState(h.screens.Home.LoadProducts(ctx)), nil
}

// GetHomeSale implements getHomeSale operation.
func (h *Handler) GetHomeSale(ctx context.Context) (*oas.ProductsState, error) {
	return toProductsState(h.screens.Home.LoadSaleProducts(ctx)), nil
}

// SetHomeFavorite implements setHomeFavorite operation.
func (h *Handler) SetHomeFavorite(ctx context.Context, req *oas.Product) (oas.SetHomeFavoriteRes, error) {
	p, err := fromProduct(req)
	if err != nil {
		return &oas.SetHomeFavoriteBadRequest{
			Status:  oas.StateStatusPopup,
			Message: oas.NewOptString("invalid product: " + err.Error()),
		}, nil
	}
	return toActionState(h.screens.Home.SetFavoriteState(ctx, p)), nil
}

// HomeStream sends every change of the home feeds as a server-sent event named
// after the feed. The current states are sent first.
func (h *Handler) HomeStream(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	rc := http.NewResponseController(w)
	products := h.screens.Home.Products.Subscribe(ctx)
	sale := h.screens.Home.Sale.Subscribe(ctx)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		zctx.From(ctx).Warn("Streaming unsupported", zap.Error(err))
		return
	}

	keepAlive := time.NewTicker(streamKeepAlive)
	defer keepAlive.Stop()

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	lg := zctx.From(ctx)
	for {
		var err error
		select {
		case <-ctx.Done():
			return
		case s, open := <-products:
			if !open {
				return
			}
			err = writeEvent(w, e, "products", s)
		case s, open := <-sale:
			if !open {
				return
			}
			err = writeEvent(w, e, "sale", s)
		case <-keepAlive.C:
			_, err = io.WriteString(w, ": keep-alive\n\n")
		}
		if err == nil {
			err = rc.Flush()
		}
		if err != nil {
			lg.Debug("Home stream closed", zap.Error(err))
			return
		}
	}
}

// writeEvent writes s as one event. The state JSON never contains a raw
// newline, so it fits a single data line.
func writeEvent(w io.Writer, e *jx.Encoder, name string, s viewmodel.Products) error {
	e.Reset()
	toProductsState(s).Encode(e)

	data := e.Bytes()
	buf := make([]byte, 0, len(data)+len(name)+16)
	buf = append(buf, "event: "...)
	buf = append(buf, name...)
	buf = append(buf, "\ndata: "...)
	buf = append(buf, data...)
	buf = append(buf, "\n\n"...)
	_, err := w.Write(buf)
	return err
}
