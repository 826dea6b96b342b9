package docling

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"maps"
	"mime"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

type SourceKind string

const (
	SourceKindHTTP SourceKind = "http"
	SourceKindFile SourceKind = "file"
)

// Source is a document to convert, either fetched by the service over
// HTTP or uploaded inline as base64. Implementations are HTTPSource and
// FileSource.
type Source interface {
	Kind() SourceKind

	// Validate reports whether the source is complete enough to send.
	Validate() error

	wire() any
}

// HTTPSource points the service at a document URL. Optional headers are
// sent along when the service fetches it.
type HTTPSource struct {
	url     string
	headers map[string]string
}

// NewHTTPSource builds a source for the given document URL.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		url: url,
	}
}

func (s *HTTPSource) Kind() SourceKind {
	return SourceKindHTTP
}

// URL returns the document URL.
func (s *HTTPSource) URL() string {
	return s.url
}

// Headers returns the fetch headers. The map is a copy.
func (s *HTTPSource) Headers() map[string]string {
	return maps.Clone(s.headers)
}

// ToBuilder returns a builder seeded with this source's fields.
func (s *HTTPSource) ToBuilder() *HTTPSourceBuilder {
	return &HTTPSourceBuilder{
		url:     s.url,
		headers: s.headers,
	}
}

// Equal reports whether two sources carry identical field values.
func (s *HTTPSource) Equal(other *HTTPSource) bool {
	if s == nil && other == nil {
		return true
	}

	if s == nil || other == nil {
		return false
	}

	return s.url == other.url && equalMapStringString(s.headers, other.headers)
}

func (s *HTTPSource) Validate() error {
	return validation.Errors{
		"url": validation.Validate(s.url, validation.Required, is.RequestURL),
	}.Filter()
}

type httpSourceWire struct {
	Kind    SourceKind        `json:"kind"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
}

func (s *HTTPSource) wire() any {
	return httpSourceWire{
		Kind:    SourceKindHTTP,
		URL:     s.url,
		Headers: s.headers,
	}
}

// HTTPSourceBuilder accumulates HTTPSource fields.
type HTTPSourceBuilder struct {
	url     string
	headers map[string]string
}

func NewHTTPSourceBuilder() *HTTPSourceBuilder {
	return &HTTPSourceBuilder{}
}

// URL sets the document URL.
func (b *HTTPSourceBuilder) URL(url string) *HTTPSourceBuilder {
	b.url = url
	return b
}

// Headers replaces the fetch headers. The map is copied on Build.
func (b *HTTPSourceBuilder) Headers(headers map[string]string) *HTTPSourceBuilder {
	b.headers = headers
	return b
}

// Header sets a single fetch header. The headers are cloned first so maps
// passed to Headers or seeded by ToBuilder stay untouched.
func (b *HTTPSourceBuilder) Header(key, value string) *HTTPSourceBuilder {
	headers := maps.Clone(b.headers)

	if headers == nil {
		headers = map[string]string{}
	}

	headers[key] = value
	b.headers = headers

	return b
}

func (b *HTTPSourceBuilder) Build() *HTTPSource {
	return &HTTPSource{
		url:     b.url,
		headers: maps.Clone(b.headers),
	}
}

// FileSource uploads a document inline. The service detects the input
// format from the filename extension.
type FileSource struct {
	base64String string
	filename     string
}

// NewFileSource builds a source from raw document content. An empty
// filename is replaced with a generated one, using the extension
// registered for contentType when available.
func NewFileSource(content []byte, filename, contentType string) *FileSource {
	if filename == "" {
		filename = uuid.New().String()

		if ext, _ := mime.ExtensionsByType(contentType); len(ext) > 0 {
			filename += ext[0]
		}
	}

	return &FileSource{
		base64String: base64.StdEncoding.EncodeToString(content),
		filename:     filename,
	}
}

func (s *FileSource) Kind() SourceKind {
	return SourceKindFile
}

// Base64String returns the base64-encoded document content.
func (s *FileSource) Base64String() string {
	return s.base64String
}

// Filename returns the document name.
func (s *FileSource) Filename() string {
	return s.filename
}

// ToBuilder returns a builder seeded with this source's fields.
func (s *FileSource) ToBuilder() *FileSourceBuilder {
	return &FileSourceBuilder{
		base64String: s.base64String,
		filename:     s.filename,
	}
}

// Equal reports whether two sources carry identical field values.
func (s *FileSource) Equal(other *FileSource) bool {
	if s == nil && other == nil {
		return true
	}

	if s == nil || other == nil {
		return false
	}

	return s.base64String == other.base64String && s.filename == other.filename
}

func (s *FileSource) Validate() error {
	return validation.Errors{
		"base64_string": validation.Validate(s.base64String, validation.Required, is.Base64),
		"filename":      validation.Validate(s.filename, validation.Required),
	}.Filter()
}

type fileSourceWire struct {
	Kind         SourceKind `json:"kind"`
	Base64String string     `json:"base64_string"`
	Filename     string     `json:"filename"`
}

func (s *FileSource) wire() any {
	return fileSourceWire{
		Kind:         SourceKindFile,
		Base64String: s.base64String,
		Filename:     s.filename,
	}
}

// FileSourceBuilder accumulates FileSource fields.
type FileSourceBuilder struct {
	base64String string
	filename     string
}

func NewFileSourceBuilder() *FileSourceBuilder {
	return &FileSourceBuilder{}
}

// Base64String sets the base64-encoded document content.
func (b *FileSourceBuilder) Base64String(content string) *FileSourceBuilder {
	b.base64String = content
	return b
}

// Content sets the document content from raw bytes, encoding it as
// base64.
func (b *FileSourceBuilder) Content(content []byte) *FileSourceBuilder {
	b.base64String = base64.StdEncoding.EncodeToString(content)
	return b
}

// Filename sets the document name.
func (b *FileSourceBuilder) Filename(filename string) *FileSourceBuilder {
	b.filename = filename
	return b
}

func (b *FileSourceBuilder) Build() *FileSource {
	return &FileSource{
		base64String: b.base64String,
		filename:     b.filename,
	}
}

type TargetKind string

const (
	TargetKindInBody TargetKind = "inbody"
	TargetKindZip    TargetKind = "zip"
)

// Target selects how the service returns the converted document: inline
// in the response body, or packaged as a zip archive.
type Target struct {
	kind TargetKind
}

// TargetInBody returns the converted document inline in the response.
func TargetInBody() *Target {
	return &Target{kind: TargetKindInBody}
}

// TargetZip packages the converted document as a zip archive.
func TargetZip() *Target {
	return &Target{kind: TargetKindZip}
}

func (t *Target) Kind() TargetKind {
	return t.kind
}

// Equal reports whether two targets carry the same kind.
func (t *Target) Equal(other *Target) bool {
	if t == nil && other == nil {
		return true
	}

	if t == nil || other == nil {
		return false
	}

	return t.kind == other.kind
}

type targetWire struct {
	Kind TargetKind `json:"kind"`
}

func (t *Target) MarshalJSON() ([]byte, error) {
	return marshalWire(targetWire{Kind: t.kind})
}

func (t *Target) UnmarshalJSON(data []byte) error {
	var wire targetWire

	if err := unmarshalWire(data, &wire); err != nil {
		return err
	}

	t.kind = wire.Kind

	return nil
}

// ConvertDocumentRequest names the sources to convert, the conversion
// options and an optional result target. Instances are immutable;
// construct them with NewConvertDocumentRequestBuilder.
type ConvertDocumentRequest struct {
	sources []Source
	options *ConvertOptions
	target  *Target
}

// Sources returns the documents to convert. The slice is a copy.
func (r *ConvertDocumentRequest) Sources() []Source {
	return slices.Clone(r.sources)
}

// Options returns the conversion options, or nil when the service
// defaults apply.
func (r *ConvertDocumentRequest) Options() *ConvertOptions {
	return r.options
}

// Target returns the result target, or nil for the service default.
func (r *ConvertDocumentRequest) Target() *Target {
	return r.target
}

// ToBuilder returns a builder seeded with this request's fields.
func (r *ConvertDocumentRequest) ToBuilder() *ConvertDocumentRequestBuilder {
	return &ConvertDocumentRequestBuilder{
		sources: r.sources,
		options: r.options,
		target:  r.target,
	}
}

// Equal reports whether two requests carry identical field values.
func (r *ConvertDocumentRequest) Equal(other *ConvertDocumentRequest) bool {
	if r == nil && other == nil {
		return true
	}

	if r == nil || other == nil {
		return false
	}

	if !equalSources(r.sources, other.sources) {
		return false
	}

	if !r.options.Equal(other.options) {
		return false
	}

	return r.target.Equal(other.target)
}

// Validate reports whether the request is complete enough to send: at
// least one source, each source complete. The client validates before
// serializing so incomplete requests never reach the wire.
func (r *ConvertDocumentRequest) Validate() error {
	return validation.Errors{
		"sources": validation.Validate(r.sources, validation.Required),
	}.Filter()
}

type convertDocumentRequestWire struct {
	Options *ConvertOptions   `json:"options,omitempty"`
	Sources []json.RawMessage `json:"sources"`
	Target  *Target           `json:"target,omitempty"`
}

func (r *ConvertDocumentRequest) MarshalJSON() ([]byte, error) {
	sources := make([]json.RawMessage, 0, len(r.sources))

	for _, s := range r.sources {
		data, err := marshalWire(s.wire())

		if err != nil {
			return nil, err
		}

		sources = append(sources, data)
	}

	return marshalWire(convertDocumentRequestWire{
		Options: r.options,
		Sources: sources,
		Target:  r.target,
	})
}

func (r *ConvertDocumentRequest) UnmarshalJSON(data []byte) error {
	var wire convertDocumentRequestWire

	if err := unmarshalWire(data, &wire); err != nil {
		return err
	}

	sources := make([]Source, 0, len(wire.Sources))

	for _, raw := range wire.Sources {
		source, err := unmarshalSource(raw)

		if err != nil {
			return err
		}

		sources = append(sources, source)
	}

	b := NewConvertDocumentRequestBuilder()
	b.sources = sources
	b.options = wire.Options
	b.target = wire.Target

	*r = *b.Build()

	return nil
}

func unmarshalSource(data []byte) (Source, error) {
	var probe struct {
		Kind SourceKind `json:"kind"`
	}

	if err := unmarshalWire(data, &probe); err != nil {
		return nil, err
	}

	switch probe.Kind {
	case SourceKindHTTP:
		var wire httpSourceWire

		if err := unmarshalWire(data, &wire); err != nil {
			return nil, err
		}

		return NewHTTPSourceBuilder().URL(wire.URL).Headers(wire.Headers).Build(), nil

	case SourceKindFile:
		var wire fileSourceWire

		if err := unmarshalWire(data, &wire); err != nil {
			return nil, err
		}

		return NewFileSourceBuilder().Base64String(wire.Base64String).Filename(wire.Filename).Build(), nil

	default:
		return nil, fmt.Errorf("unknown source kind: %q", probe.Kind)
	}
}

func equalSources(a, b []Source) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !equalSource(a[i], b[i]) {
			return false
		}
	}

	return true
}

func equalSource(a, b Source) bool {
	switch sa := a.(type) {
	case *HTTPSource:
		sb, ok := b.(*HTTPSource)
		return ok && sa.Equal(sb)

	case *FileSource:
		sb, ok := b.(*FileSource)
		return ok && sa.Equal(sb)
	}

	return false
}

// ConvertDocumentRequestBuilder accumulates ConvertDocumentRequest
// fields.
type ConvertDocumentRequestBuilder struct {
	sources []Source
	options *ConvertOptions
	target  *Target
}

func NewConvertDocumentRequestBuilder() *ConvertDocumentRequestBuilder {
	return &ConvertDocumentRequestBuilder{}
}

// Sources replaces the documents to convert. The slice is copied on
// Build.
func (b *ConvertDocumentRequestBuilder) Sources(sources ...Source) *ConvertDocumentRequestBuilder {
	b.sources = sources
	return b
}

// Options sets the conversion options.
func (b *ConvertDocumentRequestBuilder) Options(options *ConvertOptions) *ConvertDocumentRequestBuilder {
	b.options = options
	return b
}

// Target sets the result target.
func (b *ConvertDocumentRequestBuilder) Target(target *Target) *ConvertDocumentRequestBuilder {
	b.target = target
	return b
}

func (b *ConvertDocumentRequestBuilder) Build() *ConvertDocumentRequest {
	return &ConvertDocumentRequest{
		sources: slices.Clone(b.sources),
		options: b.options,
		target:  b.target,
	}
}
