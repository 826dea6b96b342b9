// Package docling is a client SDK for the Docling Serve document
// conversion API.
//
// Requests and responses are immutable value objects constructed through
// fluent builders. A built Client holds no per-call state and is safe to
// share across goroutines; builders are not.
//
// Transport failures surface as *url.Error, non-2xx responses as
// *StatusError, and malformed JSON as the encoding/json error. Nothing is
// retried or logged inside a call.
package docling

import (
	"context"
)

// Api is the capability set any Docling Serve binding implements.
type Api interface {
	// Health reports the current health of the service.
	Health(ctx context.Context) (*HealthCheckResponse, error)

	// ConvertSource converts the request's sources into a processed
	// document using the given conversion options and optional target.
	ConvertSource(ctx context.Context, request *ConvertDocumentRequest) (*ConvertDocumentResponse, error)
}
