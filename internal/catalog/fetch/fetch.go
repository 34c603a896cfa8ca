// Package fetch defines the transport abstraction consumed by the API
// gateway: a logical path plus query parameters in, a status code plus raw
// body out. The default implementation serves canned JSON fixtures; a live
// HTTP implementation exists for a configured base URL.
package fetch

import "context"

// Logical paths understood by every Fetcher implementation.
const (
	PathSearch          = "/search"
	PathItems           = "/items"
	PathItemDescription = "/items/description"
)

// Query parameter names.
const (
	ParamQuery = "q"
	ParamIDs   = "ids"
)

// Response is a raw transport result. Body is JSON text; callers decode it.
type Response struct {
	StatusCode int
	Body       []byte
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Fetcher issues one logical request. A returned error means the transport
// itself failed (cancellation, I/O); a non-success status is reported via
// Response, not error.
type Fetcher interface {
	Fetch(ctx context.Context, path string, params map[string]string) (Response, error)
}
