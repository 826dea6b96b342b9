package docling

import (
	"maps"
	"slices"
)

// ConversionStatus reports the outcome of a conversion run.
type ConversionStatus string

const (
	ConversionStatusSuccess        ConversionStatus = "success"
	ConversionStatusPartialSuccess ConversionStatus = "partial_success"
	ConversionStatusSkipped        ConversionStatus = "skipped"
	ConversionStatusFailure        ConversionStatus = "failure"
)

// ErrorItem describes a single failure reported by the conversion
// pipeline.
type ErrorItem struct {
	ComponentType string `json:"component_type"`
	ModuleName    string `json:"module_name"`
	ErrorMessage  string `json:"error_message"`
}

// DocumentResponse is the converted document in up to five optional
// representations. Instances are immutable; construct them with
// NewDocumentResponseBuilder.
type DocumentResponse struct {
	doctagsContent  *string
	filename        string
	htmlContent     *string
	jsonContent     map[string]any
	markdownContent *string
	textContent     *string
}

// DoctagsContent returns the DocTags representation, or nil if the format
// was not produced.
func (r *DocumentResponse) DoctagsContent() *string {
	return copyPtr(r.doctagsContent)
}

// Filename returns the name of the source document.
func (r *DocumentResponse) Filename() string {
	return r.filename
}

// HTMLContent returns the HTML representation, or nil if the format was
// not produced.
func (r *DocumentResponse) HTMLContent() *string {
	return copyPtr(r.htmlContent)
}

// JSONContent returns the lossless JSON representation. The result is
// never nil and is a copy; modifying it does not affect the response.
func (r *DocumentResponse) JSONContent() map[string]any {
	if r.jsonContent == nil {
		return map[string]any{}
	}

	return maps.Clone(r.jsonContent)
}

// MarkdownContent returns the Markdown representation, or nil if the
// format was not produced.
func (r *DocumentResponse) MarkdownContent() *string {
	return copyPtr(r.markdownContent)
}

// TextContent returns the plain text representation, or nil if the format
// was not produced.
func (r *DocumentResponse) TextContent() *string {
	return copyPtr(r.textContent)
}

// ToBuilder returns a builder seeded with this response's fields.
func (r *DocumentResponse) ToBuilder() *DocumentResponseBuilder {
	return &DocumentResponseBuilder{
		doctagsContent:  r.doctagsContent,
		filename:        r.filename,
		htmlContent:     r.htmlContent,
		jsonContent:     r.jsonContent,
		markdownContent: r.markdownContent,
		textContent:     r.textContent,
	}
}

// Equal reports whether two responses carry identical field values.
func (r *DocumentResponse) Equal(other *DocumentResponse) bool {
	if r == nil && other == nil {
		return true
	}

	if r == nil || other == nil {
		return false
	}

	if r.filename != other.filename {
		return false
	}

	if !equalPtr(r.doctagsContent, other.doctagsContent) {
		return false
	}

	if !equalPtr(r.htmlContent, other.htmlContent) {
		return false
	}

	if !equalPtr(r.markdownContent, other.markdownContent) {
		return false
	}

	if !equalPtr(r.textContent, other.textContent) {
		return false
	}

	return equalMapStringAny(r.jsonContent, other.jsonContent)
}

type documentResponseWire struct {
	DoctagsContent  *string        `json:"doctags_content,omitempty"`
	Filename        string         `json:"filename"`
	HTMLContent     *string        `json:"html_content,omitempty"`
	JSONContent     map[string]any `json:"json_content"`
	MarkdownContent *string        `json:"md_content,omitempty"`
	TextContent     *string        `json:"text_content,omitempty"`
}

func (r *DocumentResponse) MarshalJSON() ([]byte, error) {
	jsonContent := r.jsonContent

	if jsonContent == nil {
		jsonContent = map[string]any{}
	}

	return marshalWire(documentResponseWire{
		DoctagsContent:  r.doctagsContent,
		Filename:        r.filename,
		HTMLContent:     r.htmlContent,
		JSONContent:     jsonContent,
		MarkdownContent: r.markdownContent,
		TextContent:     r.textContent,
	})
}

func (r *DocumentResponse) UnmarshalJSON(data []byte) error {
	var wire documentResponseWire

	if err := unmarshalWire(data, &wire); err != nil {
		return err
	}

	b := NewDocumentResponseBuilder()
	b.doctagsContent = wire.DoctagsContent
	b.filename = wire.Filename
	b.htmlContent = wire.HTMLContent
	b.jsonContent = wire.JSONContent
	b.markdownContent = wire.MarkdownContent
	b.textContent = wire.TextContent

	*r = *b.Build()

	return nil
}

// DocumentResponseBuilder accumulates DocumentResponse fields. Build may
// be called repeatedly; each call produces an independent response.
type DocumentResponseBuilder struct {
	doctagsContent  *string
	filename        string
	htmlContent     *string
	jsonContent     map[string]any
	markdownContent *string
	textContent     *string
}

func NewDocumentResponseBuilder() *DocumentResponseBuilder {
	return &DocumentResponseBuilder{}
}

// DoctagsContent sets the DocTags representation.
func (b *DocumentResponseBuilder) DoctagsContent(content string) *DocumentResponseBuilder {
	b.doctagsContent = &content
	return b
}

// Filename sets the source document name.
func (b *DocumentResponseBuilder) Filename(filename string) *DocumentResponseBuilder {
	b.filename = filename
	return b
}

// HTMLContent sets the HTML representation.
func (b *DocumentResponseBuilder) HTMLContent(content string) *DocumentResponseBuilder {
	b.htmlContent = &content
	return b
}

// JSONContent sets the lossless JSON representation. The map is copied on
// Build; later changes to it do not reach built responses.
func (b *DocumentResponseBuilder) JSONContent(content map[string]any) *DocumentResponseBuilder {
	b.jsonContent = content
	return b
}

// MarkdownContent sets the Markdown representation.
func (b *DocumentResponseBuilder) MarkdownContent(content string) *DocumentResponseBuilder {
	b.markdownContent = &content
	return b
}

// TextContent sets the plain text representation.
func (b *DocumentResponseBuilder) TextContent(content string) *DocumentResponseBuilder {
	b.textContent = &content
	return b
}

func (b *DocumentResponseBuilder) Build() *DocumentResponse {
	jsonContent := map[string]any{}

	if b.jsonContent != nil {
		jsonContent = maps.Clone(b.jsonContent)
	}

	return &DocumentResponse{
		doctagsContent:  b.doctagsContent,
		filename:        b.filename,
		htmlContent:     b.htmlContent,
		jsonContent:     jsonContent,
		markdownContent: b.markdownContent,
		textContent:     b.textContent,
	}
}

// ConvertDocumentResponse wraps the converted document together with the
// pipeline status, reported errors and processing metadata.
type ConvertDocumentResponse struct {
	document       *DocumentResponse
	status         ConversionStatus
	errors         []ErrorItem
	processingTime float64
	timings        map[string]any
}

// Document returns the converted document, or nil when the conversion
// produced none.
func (r *ConvertDocumentResponse) Document() *DocumentResponse {
	return r.document
}

// Status returns the conversion outcome.
func (r *ConvertDocumentResponse) Status() ConversionStatus {
	return r.status
}

// Errors returns the failures reported by the pipeline. The slice is a
// copy.
func (r *ConvertDocumentResponse) Errors() []ErrorItem {
	return slices.Clone(r.errors)
}

// ProcessingTime returns the server-side processing duration in seconds.
func (r *ConvertDocumentResponse) ProcessingTime() float64 {
	return r.processingTime
}

// Timings returns the profiling breakdown. The result is never nil and is
// a copy.
func (r *ConvertDocumentResponse) Timings() map[string]any {
	if r.timings == nil {
		return map[string]any{}
	}

	return maps.Clone(r.timings)
}

// ToBuilder returns a builder seeded with this response's fields.
func (r *ConvertDocumentResponse) ToBuilder() *ConvertDocumentResponseBuilder {
	return &ConvertDocumentResponseBuilder{
		document:       r.document,
		status:         r.status,
		errors:         r.errors,
		processingTime: r.processingTime,
		timings:        r.timings,
	}
}

// Equal reports whether two responses carry identical field values.
func (r *ConvertDocumentResponse) Equal(other *ConvertDocumentResponse) bool {
	if r == nil && other == nil {
		return true
	}

	if r == nil || other == nil {
		return false
	}

	if r.status != other.status {
		return false
	}

	if r.processingTime != other.processingTime {
		return false
	}

	if !r.document.Equal(other.document) {
		return false
	}

	if !slices.Equal(r.errors, other.errors) {
		return false
	}

	return equalMapStringAny(r.timings, other.timings)
}

type convertDocumentResponseWire struct {
	Document       *DocumentResponse `json:"document,omitempty"`
	Status         ConversionStatus  `json:"status"`
	Errors         []ErrorItem       `json:"errors,omitempty"`
	ProcessingTime float64           `json:"processing_time"`
	Timings        map[string]any    `json:"timings,omitempty"`
}

func (r *ConvertDocumentResponse) MarshalJSON() ([]byte, error) {
	return marshalWire(convertDocumentResponseWire{
		Document:       r.document,
		Status:         r.status,
		Errors:         r.errors,
		ProcessingTime: r.processingTime,
		Timings:        r.timings,
	})
}

func (r *ConvertDocumentResponse) UnmarshalJSON(data []byte) error {
	var wire convertDocumentResponseWire

	if err := unmarshalWire(data, &wire); err != nil {
		return err
	}

	b := NewConvertDocumentResponseBuilder()
	b.document = wire.Document
	b.status = wire.Status
	b.errors = wire.Errors
	b.processingTime = wire.ProcessingTime
	b.timings = wire.Timings

	*r = *b.Build()

	return nil
}

// ConvertDocumentResponseBuilder accumulates ConvertDocumentResponse
// fields.
type ConvertDocumentResponseBuilder struct {
	document       *DocumentResponse
	status         ConversionStatus
	errors         []ErrorItem
	processingTime float64
	timings        map[string]any
}

func NewConvertDocumentResponseBuilder() *ConvertDocumentResponseBuilder {
	return &ConvertDocumentResponseBuilder{}
}

// Document sets the converted document.
func (b *ConvertDocumentResponseBuilder) Document(document *DocumentResponse) *ConvertDocumentResponseBuilder {
	b.document = document
	return b
}

// Status sets the conversion outcome.
func (b *ConvertDocumentResponseBuilder) Status(status ConversionStatus) *ConvertDocumentResponseBuilder {
	b.status = status
	return b
}

// Errors replaces the reported failures. The slice is copied on Build.
func (b *ConvertDocumentResponseBuilder) Errors(errors ...ErrorItem) *ConvertDocumentResponseBuilder {
	b.errors = errors
	return b
}

// ProcessingTime sets the server-side processing duration in seconds.
func (b *ConvertDocumentResponseBuilder) ProcessingTime(seconds float64) *ConvertDocumentResponseBuilder {
	b.processingTime = seconds
	return b
}

// Timings sets the profiling breakdown. The map is copied on Build.
func (b *ConvertDocumentResponseBuilder) Timings(timings map[string]any) *ConvertDocumentResponseBuilder {
	b.timings = timings
	return b
}

func (b *ConvertDocumentResponseBuilder) Build() *ConvertDocumentResponse {
	timings := map[string]any{}

	if b.timings != nil {
		timings = maps.Clone(b.timings)
	}

	return &ConvertDocumentResponse{
		document:       b.document,
		status:         b.status,
		errors:         slices.Clone(b.errors),
		processingTime: b.processingTime,
		timings:        timings,
	}
}
