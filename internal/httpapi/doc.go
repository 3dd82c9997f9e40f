// Package httpapi provides the HTTP server and request handlers for the
// transcriber service, using Gin with HTTP/2 h2c support.
//
// Every response uses the same JSON envelope:
//
//	{"success": bool, "message": string, "data": any}
//
// # Middleware
//
// The engine carries panic recovery, request-ID propagation, and an
// optional per-client rate limit. Cross-cutting concerns that apply to
// every request regardless of routing (CORS, body-size limiting, request
// logging) wrap the engine as plain http.Handler middleware from
// httpapi/middleware.
//
// # Routes
//
//   - POST /api/v1/transcribe: transcribe with the local backend
//   - POST /api/v2/transcribe: transcribe with the remote backend
//   - GET  /health: component health aggregation
package httpapi
