// Package apperr defines the application error taxonomy.
//
// Errors are plain typed values inspected with errors.As at the HTTP
// boundary, where they map onto status codes:
//
//   - SourceUnavailable -> 503 (external provider unreachable)
//   - NotFound          -> 404 (no matching record or artifact)
//   - StoreError        -> 500 (persistence failure)
//   - ValidationError   -> 400 (malformed input, reserved)
//
// Anything else funnels into the generic 500 handler, which hides the
// underlying message outside of development.
package apperr
