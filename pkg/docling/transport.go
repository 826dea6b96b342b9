package docling

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TransportBuilder accumulates HTTP transport settings and produces the
// *http.Client a Client calls through.
//
// Docling Serve runs on FastAPI, which does not fall back gracefully when
// a connection negotiates beyond HTTP/1.1 over plaintext. ClientBuilder
// therefore pins the transport to HTTP/1.1 whenever the resolved base URL
// scheme is "http"; TLS connections negotiate as usual.
type TransportBuilder struct {
	timeout   time.Duration
	proxy     func(*http.Request) (*url.URL, error)
	tlsConfig *tls.Config

	instrument bool
	forceHTTP1 bool
}

func NewTransportBuilder() *TransportBuilder {
	return &TransportBuilder{}
}

// Timeout sets the per-call timeout. Zero means no timeout; conversions
// of large documents can run for minutes.
func (b *TransportBuilder) Timeout(timeout time.Duration) *TransportBuilder {
	b.timeout = timeout
	return b
}

// Proxy overrides the proxy selection function. The default honors the
// standard proxy environment variables.
func (b *TransportBuilder) Proxy(proxy func(*http.Request) (*url.URL, error)) *TransportBuilder {
	b.proxy = proxy
	return b
}

// TLSConfig sets the TLS configuration for encrypted connections.
func (b *TransportBuilder) TLSConfig(config *tls.Config) *TransportBuilder {
	b.tlsConfig = config
	return b
}

// Instrument wraps the transport with OpenTelemetry tracing.
func (b *TransportBuilder) Instrument(instrument bool) *TransportBuilder {
	b.instrument = instrument
	return b
}

func (b *TransportBuilder) forceHTTP1Only() *TransportBuilder {
	b.forceHTTP1 = true
	return b
}

func (b *TransportBuilder) Build() *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
	}

	if b.proxy != nil {
		transport.Proxy = b.proxy
	}

	if b.tlsConfig != nil {
		transport.TLSClientConfig = b.tlsConfig.Clone()
	}

	if b.forceHTTP1 {
		protocols := new(http.Protocols)
		protocols.SetHTTP1(true)

		transport.Protocols = protocols
	}

	var rt http.RoundTripper = transport

	if b.instrument {
		rt = otelhttp.NewTransport(transport)
	}

	return &http.Client{
		Transport: rt,
		Timeout:   b.timeout,
	}
}

func (b *TransportBuilder) clone() *TransportBuilder {
	c := *b

	if b.tlsConfig != nil {
		c.tlsConfig = b.tlsConfig.Clone()
	}

	return &c
}
