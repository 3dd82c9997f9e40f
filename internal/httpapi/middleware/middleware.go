// Package middleware provides the HTTP middleware stack for the transcriber
// service. Cross-cutting middleware (CORS, body limits, request logging) uses
// the standard http.Handler form and is applied at the server level; Gin
// middleware (recovery, request IDs, rate limiting) goes on the engine.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain composes multiple middleware. The first in the list is the outermost
// (runs first on a request, last on a response).
func Chain(middlewares ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
