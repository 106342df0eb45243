// Package check exposes reconciliation runs over HTTP.
//
// # Components
//
//   - Service: loads the reference set and runs the engine; overlapping
//     triggers share one pass.
//   - Handler: HTTP endpoints.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /check : Run a reconciliation pass (supports ?dry_run=true).
//   - GET /check/reference : List reference groups and their sizes.
package check
