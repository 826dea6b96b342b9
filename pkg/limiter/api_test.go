package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/adrianliechti/docling-go/pkg/docling"
	"github.com/adrianliechti/docling-go/pkg/limiter"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type stubApi struct {
	calls int
}

func (s *stubApi) Health(ctx context.Context) (*docling.HealthCheckResponse, error) {
	s.calls++

	return docling.NewHealthCheckResponseBuilder().
		Status("ok").
		Build(), nil
}

func (s *stubApi) ConvertSource(ctx context.Context, request *docling.ConvertDocumentRequest) (*docling.ConvertDocumentResponse, error) {
	s.calls++

	return docling.NewConvertDocumentResponseBuilder().
		Status(docling.ConversionStatusSuccess).
		Build(), nil
}

func TestApiDelegates(t *testing.T) {
	ctx := context.Background()

	stub := &stubApi{}

	api := limiter.NewApi(rate.NewLimiter(rate.Inf, 0), stub)

	health, err := api.Health(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status())

	request := docling.NewConvertDocumentRequestBuilder().
		Sources(docling.NewFileSource([]byte("hello"), "hello.txt", "text/plain")).
		Build()

	result, err := api.ConvertSource(ctx, request)
	require.NoError(t, err)
	require.Equal(t, docling.ConversionStatusSuccess, result.Status())

	require.Equal(t, 2, stub.calls)
}

func TestApiNilLimiter(t *testing.T) {
	ctx := context.Background()

	stub := &stubApi{}

	api := limiter.NewApi(nil, stub)

	_, err := api.Health(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stub.calls)
}

func TestApiDelays(t *testing.T) {
	ctx := context.Background()

	stub := &stubApi{}

	// Burst of one and ten requests per second, so the second call has
	// to wait roughly 100ms for the next token.
	api := limiter.NewApi(rate.NewLimiter(rate.Limit(10), 1), stub)

	start := time.Now()

	_, err := api.Health(ctx)
	require.NoError(t, err)

	_, err = api.Health(ctx)
	require.NoError(t, err)

	require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	require.Equal(t, 2, stub.calls)
}
