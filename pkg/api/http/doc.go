// Package http provides the HTTP API implementation.
//
// The API server answers from a fixed route table matched on the exact
// request path:
//   - / returns the informational text page
//   - /api/health returns the JSON health report
//   - any other path returns 404 Not Found
//
// Every response allows any origin. A separate metrics server exposes
// Prometheus metrics on its own listener.
package http
