// Package httpmiddleware holds the net/http middleware chain of the state
// server.
package httpmiddleware

import (
	"net/http"
	"slices"
)

// Middleware decorates an http.Handler.
type Middleware func(next http.Handler) http.Handler

// Wrap applies middlewares to h so that the first one listed runs first.
func Wrap(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range slices.Backward(middlewares) {
		h = m(h)
	}
	return h
}
