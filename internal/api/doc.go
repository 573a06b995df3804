// Package api exposes loans and payments over HTTP/JSON and carries the
// server's middleware chain: request IDs, rate limiting, access logging,
// panic recovery and CORS.
package api
