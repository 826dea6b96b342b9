package docling

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is where a locally run Docling Serve instance listens.
const DefaultBaseURL = "http://localhost:5001"

var _ Api = (*Client)(nil)

// Client talks to a Docling Serve instance over HTTP. Build one with
// NewClientBuilder; the zero value is not usable.
type Client struct {
	baseURL *url.URL
	apiKey  string

	httpClient *http.Client
	codec      Codec

	transport    *TransportBuilder
	codecBuilder *CodecBuilder
}

// ClientBuilder accumulates client configuration. Setters validate
// eagerly and record the first failure; Build reports it before any
// network activity.
type ClientBuilder struct {
	baseURL *url.URL
	apiKey  string

	transport *TransportBuilder
	codec     *CodecBuilder

	err error
}

// NewClientBuilder returns a builder preconfigured for DefaultBaseURL
// with a plain transport and the default JSON codec.
func NewClientBuilder() *ClientBuilder {
	baseURL, _ := url.Parse(DefaultBaseURL)

	return &ClientBuilder{
		baseURL: baseURL,

		transport: NewTransportBuilder(),
		codec:     NewCodecBuilder(),
	}
}

// BaseURL sets the service base URL from a string. Endpoint paths are
// joined onto it, so a path prefix such as "/docling" is preserved.
func (b *ClientBuilder) BaseURL(baseURL string) *ClientBuilder {
	if strings.TrimSpace(baseURL) == "" {
		b.recordError(configErrorf("base URL must not be blank"))
		return b
	}

	u, err := url.Parse(baseURL)

	if err != nil {
		b.recordError(configErrorf("parse base URL %q: %v", baseURL, err))
		return b
	}

	return b.URL(u)
}

// URL sets the service base URL.
func (b *ClientBuilder) URL(baseURL *url.URL) *ClientBuilder {
	if baseURL == nil {
		b.recordError(configErrorf("base URL must not be nil"))
		return b
	}

	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		b.recordError(configErrorf("base URL %q must use the http or https scheme", baseURL))
		return b
	}

	if baseURL.Host == "" {
		b.recordError(configErrorf("base URL %q must include a host", baseURL))
		return b
	}

	b.baseURL = cloneURL(baseURL)

	return b
}

// APIKey sets the key sent as X-Api-Key on every request. Empty means
// unauthenticated.
func (b *ClientBuilder) APIKey(apiKey string) *ClientBuilder {
	b.apiKey = apiKey
	return b
}

// Transport replaces the transport configuration.
func (b *ClientBuilder) Transport(transport *TransportBuilder) *ClientBuilder {
	if transport == nil {
		b.recordError(configErrorf("transport builder must not be nil"))
		return b
	}

	b.transport = transport

	return b
}

// Codec replaces the serialization configuration.
func (b *ClientBuilder) Codec(codec *CodecBuilder) *ClientBuilder {
	if codec == nil {
		b.recordError(configErrorf("codec builder must not be nil"))
		return b
	}

	b.codec = codec

	return b
}

func (b *ClientBuilder) recordError(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build validates the accumulated configuration and produces a Client.
// A configuration failure recorded by any setter is returned here,
// before anything touches the network.
func (b *ClientBuilder) Build() (*Client, error) {
	if b.err != nil {
		return nil, b.err
	}

	transport := b.transport.clone()

	// Plaintext connections have no ALPN step to agree on a protocol,
	// and the service does not speak h2c.
	if b.baseURL.Scheme == "http" {
		transport.forceHTTP1Only()
	}

	return &Client{
		baseURL: cloneURL(b.baseURL),
		apiKey:  b.apiKey,

		httpClient: transport.Build(),
		codec:      b.codec.Build(),

		transport:    b.transport.clone(),
		codecBuilder: b.codec.clone(),
	}, nil
}

// BaseURL returns the resolved base URL. The value is a copy.
func (c *Client) BaseURL() *url.URL {
	return cloneURL(c.baseURL)
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// ToBuilder returns a builder seeded with this client's configuration.
func (c *Client) ToBuilder() *ClientBuilder {
	return &ClientBuilder{
		baseURL: cloneURL(c.baseURL),
		apiKey:  c.apiKey,

		transport: c.transport.clone(),
		codec:     c.codecBuilder.clone(),
	}
}

// Health reports the current health of the service.
func (c *Client) Health(ctx context.Context) (*HealthCheckResponse, error) {
	u := c.baseURL.JoinPath("health")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)

	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if !successful(resp) {
		return nil, convertError(resp)
	}

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	var response HealthCheckResponse

	if err := c.codec.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode health response: %w", err)
	}

	return &response, nil
}

// ConvertSource converts the request's sources into a processed
// document using the given conversion options and optional target.
func (c *Client) ConvertSource(ctx context.Context, request *ConvertDocumentRequest) (*ConvertDocumentResponse, error) {
	if request == nil {
		return nil, errors.New("convert request must not be nil")
	}

	if err := request.Validate(); err != nil {
		return nil, fmt.Errorf("validate convert request: %w", err)
	}

	payload, err := c.codec.Marshal(request)

	if err != nil {
		return nil, fmt.Errorf("encode convert request: %w", err)
	}

	u := c.baseURL.JoinPath("v1", "convert", "source")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if !successful(resp) {
		return nil, convertError(resp)
	}

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	var response ConvertDocumentResponse

	if err := c.codec.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode convert response: %w", err)
	}

	return &response, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	return c.httpClient.Do(req)
}

func successful(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func convertError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	return &StatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,

		Body: body,
	}
}

func cloneURL(u *url.URL) *url.URL {
	c := *u

	if u.User != nil {
		user := *u.User
		c.User = &user
	}

	return &c
}

func Ptr[T any](v T) *T {
	return &v
}
