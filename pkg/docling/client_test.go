package docling_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/adrianliechti/docling-go/pkg/docling"
	"github.com/adrianliechti/docling-go/pkg/docling/doclingtest"

	"github.com/stretchr/testify/require"
)

func TestClientBuilderDefaults(t *testing.T) {
	client, err := docling.NewClientBuilder().Build()
	require.NoError(t, err)

	require.Equal(t, docling.DefaultBaseURL, client.BaseURL().String())
}

func TestClientBuilderValidation(t *testing.T) {
	tests := []struct {
		name    string
		builder *docling.ClientBuilder
	}{
		{
			name:    "blank base URL",
			builder: docling.NewClientBuilder().BaseURL(""),
		},
		{
			name:    "whitespace base URL",
			builder: docling.NewClientBuilder().BaseURL("   "),
		},
		{
			name:    "unparsable base URL",
			builder: docling.NewClientBuilder().BaseURL("://missing-scheme"),
		},
		{
			name:    "unsupported scheme",
			builder: docling.NewClientBuilder().BaseURL("ftp://example.com"),
		},
		{
			name:    "missing host",
			builder: docling.NewClientBuilder().BaseURL("http://"),
		},
		{
			name:    "nil URL",
			builder: docling.NewClientBuilder().URL(nil),
		},
		{
			name:    "nil transport",
			builder: docling.NewClientBuilder().Transport(nil),
		},
		{
			name:    "nil codec",
			builder: docling.NewClientBuilder().Codec(nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := tt.builder.Build()

			require.Error(t, err)
			require.ErrorIs(t, err, docling.ErrConfiguration)
			require.Nil(t, client)
		})
	}
}

func TestClientBuilderKeepsFirstError(t *testing.T) {
	client, err := docling.NewClientBuilder().
		BaseURL("").
		Codec(nil).
		Build()

	require.Nil(t, client)
	require.Error(t, err)
	require.Contains(t, err.Error(), "base URL")
}

func TestClientBuilderFailsBeforeNetwork(t *testing.T) {
	var calls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client, err := docling.NewClientBuilder().
		BaseURL(server.URL).
		BaseURL("").
		Build()

	require.Error(t, err)
	require.Nil(t, client)
	require.Zero(t, calls.Load())
}

func TestClientProtocolSelection(t *testing.T) {
	t.Run("plaintext pins http1", func(t *testing.T) {
		client, err := docling.NewClientBuilder().
			BaseURL("http://localhost:5001").
			Build()
		require.NoError(t, err)

		transport, ok := client.HTTPClient().Transport.(*http.Transport)
		require.True(t, ok)

		require.NotNil(t, transport.Protocols)
		require.True(t, transport.Protocols.HTTP1())
		require.False(t, transport.Protocols.HTTP2())
	})

	t.Run("tls negotiates", func(t *testing.T) {
		client, err := docling.NewClientBuilder().
			BaseURL("https://docling.example.com").
			Build()
		require.NoError(t, err)

		transport, ok := client.HTTPClient().Transport.(*http.Transport)
		require.True(t, ok)

		require.Nil(t, transport.Protocols)
	})
}

func TestClientToBuilder(t *testing.T) {
	client, err := docling.NewClientBuilder().
		BaseURL("http://docling.internal:5001/prefix").
		APIKey("secret").
		Build()
	require.NoError(t, err)

	rebuilt, err := client.ToBuilder().Build()
	require.NoError(t, err)

	require.Equal(t, client.BaseURL(), rebuilt.BaseURL())

	// The plaintext protocol pin must not stick to rebuilt clients that
	// move to TLS.
	secure, err := client.ToBuilder().
		BaseURL("https://docling.internal").
		Build()
	require.NoError(t, err)

	require.Nil(t, secure.HTTPClient().Transport.(*http.Transport).Protocols)
}

func TestClientHealth(t *testing.T) {
	server := doclingtest.New()
	defer server.Close()

	client, err := docling.NewClientBuilder().
		BaseURL(server.URL()).
		Build()
	require.NoError(t, err)

	health, err := client.Health(context.Background())
	require.NoError(t, err)

	require.Equal(t, "ok", health.Status())
}

func TestClientBaseURLPrefix(t *testing.T) {
	var path atomic.Value

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path.Store(r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	}))
	defer server.Close()

	client, err := docling.NewClientBuilder().
		BaseURL(server.URL + "/docling").
		Build()
	require.NoError(t, err)

	_, err = client.Health(context.Background())
	require.NoError(t, err)

	require.Equal(t, "/docling/health", path.Load())
}

func TestClientRequestShape(t *testing.T) {
	type captured struct {
		method      string
		path        string
		accept      string
		contentType string
		apiKey      string
	}

	var got atomic.Pointer[captured]

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Store(&captured{
			method:      r.Method,
			path:        r.URL.Path,
			accept:      r.Header.Get("Accept"),
			contentType: r.Header.Get("Content-Type"),
			apiKey:      r.Header.Get("X-Api-Key"),
		})

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "success", "processing_time": 0.1}`))
	}))
	defer server.Close()

	client, err := docling.NewClientBuilder().
		BaseURL(server.URL).
		APIKey("secret").
		Build()
	require.NoError(t, err)

	request := docling.NewConvertDocumentRequestBuilder().
		Sources(docling.NewFileSource([]byte("hello"), "hello.txt", "text/plain")).
		Build()

	_, err = client.ConvertSource(context.Background(), request)
	require.NoError(t, err)

	require.Equal(t, &captured{
		method:      http.MethodPost,
		path:        "/v1/convert/source",
		accept:      "application/json",
		contentType: "application/json",
		apiKey:      "secret",
	}, got.Load())
}

func TestClientConvertSource(t *testing.T) {
	server := doclingtest.New()
	defer server.Close()

	client, err := docling.NewClientBuilder().
		BaseURL(server.URL()).
		Build()
	require.NoError(t, err)

	request := docling.NewConvertDocumentRequestBuilder().
		Sources(docling.NewFileSource([]byte("hello"), "hello.txt", "text/plain")).
		Options(docling.NewConvertOptionsBuilder().ToFormats(docling.OutputFormatMarkdown).Build()).
		Target(docling.TargetInBody()).
		Build()

	response, err := client.ConvertSource(context.Background(), request)
	require.NoError(t, err)

	require.Equal(t, docling.ConversionStatusSuccess, response.Status())
	require.Equal(t, "hello.txt", response.Document().Filename())
	require.NotNil(t, response.Document().MarkdownContent())

	received := server.Requests()
	require.Len(t, received, 1)
	require.True(t, request.Equal(received[0]))
}

func TestClientConvertSourceFailureStatus(t *testing.T) {
	server := doclingtest.New(doclingtest.WithFailure(docling.ErrorItem{
		ComponentType: "document_backend",
		ModuleName:    "PdfBackend",
		ErrorMessage:  "corrupt document",
	}))
	defer server.Close()

	client, err := docling.NewClientBuilder().
		BaseURL(server.URL()).
		Build()
	require.NoError(t, err)

	request := docling.NewConvertDocumentRequestBuilder().
		Sources(docling.NewFileSource([]byte("broken"), "broken.pdf", "application/pdf")).
		Build()

	response, err := client.ConvertSource(context.Background(), request)
	require.NoError(t, err)

	require.Equal(t, docling.ConversionStatusFailure, response.Status())
	require.Nil(t, response.Document())

	items := response.Errors()
	require.Len(t, items, 1)
	require.Equal(t, "corrupt document", items[0].ErrorMessage)
}

func TestClientConvertSourceValidation(t *testing.T) {
	client, err := docling.NewClientBuilder().Build()
	require.NoError(t, err)

	_, err = client.ConvertSource(context.Background(), nil)
	require.Error(t, err)

	_, err = client.ConvertSource(context.Background(), docling.NewConvertDocumentRequestBuilder().Build())
	require.Error(t, err)
	require.Contains(t, err.Error(), "sources")
}

func TestClientAPIKey(t *testing.T) {
	server := doclingtest.New(doclingtest.WithAPIKey("secret"))
	defer server.Close()

	t.Run("missing key", func(t *testing.T) {
		client, err := docling.NewClientBuilder().
			BaseURL(server.URL()).
			Build()
		require.NoError(t, err)

		_, err = client.Health(context.Background())
		require.Error(t, err)

		var statusErr *docling.StatusError
		require.ErrorAs(t, err, &statusErr)
		require.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	})

	t.Run("matching key", func(t *testing.T) {
		client, err := docling.NewClientBuilder().
			BaseURL(server.URL()).
			APIKey("secret").
			Build()
		require.NoError(t, err)

		health, err := client.Health(context.Background())
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status())
	})
}

func TestClientTransportError(t *testing.T) {
	client, err := docling.NewClientBuilder().
		BaseURL("http://127.0.0.1:1").
		Build()
	require.NoError(t, err)

	_, err = client.Health(context.Background())
	require.Error(t, err)

	var urlErr *url.Error
	require.True(t, errors.As(err, &urlErr))
}

func TestClientDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	}))
	defer server.Close()

	client, err := docling.NewClientBuilder().
		BaseURL(server.URL).
		Build()
	require.NoError(t, err)

	_, err = client.Health(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode health response")
}
