package docling

import (
	"slices"
)

type InputFormat string

const (
	InputFormatDocx     InputFormat = "docx"
	InputFormatPptx     InputFormat = "pptx"
	InputFormatHTML     InputFormat = "html"
	InputFormatImage    InputFormat = "image"
	InputFormatPDF      InputFormat = "pdf"
	InputFormatAsciidoc InputFormat = "asciidoc"
	InputFormatMarkdown InputFormat = "md"
	InputFormatCSV      InputFormat = "csv"
	InputFormatXlsx     InputFormat = "xlsx"
)

type OutputFormat string

const (
	OutputFormatMarkdown OutputFormat = "md"
	OutputFormatJSON     OutputFormat = "json"
	OutputFormatHTML     OutputFormat = "html"
	OutputFormatText     OutputFormat = "text"
	OutputFormatDoctags  OutputFormat = "doctags"
)

type ImageExportMode string

const (
	ImageExportModePlaceholder ImageExportMode = "placeholder"
	ImageExportModeEmbedded    ImageExportMode = "embedded"
	ImageExportModeReferenced  ImageExportMode = "referenced"
)

type OCREngine string

const (
	OCREngineEasyOCR   OCREngine = "easyocr"
	OCREngineOcrMac    OCREngine = "ocrmac"
	OCREngineRapidOCR  OCREngine = "rapidocr"
	OCREngineTesserOCR OCREngine = "tesserocr"
	OCREngineTesseract OCREngine = "tesseract"
)

type PDFBackend string

const (
	PDFBackendPyPdfium2 PDFBackend = "pypdfium2"
	PDFBackendDLParseV1 PDFBackend = "dlparse_v1"
	PDFBackendDLParseV2 PDFBackend = "dlparse_v2"
	PDFBackendDLParseV4 PDFBackend = "dlparse_v4"
)

type TableMode string

const (
	TableModeFast     TableMode = "fast"
	TableModeAccurate TableMode = "accurate"
)

type ProcessingPipeline string

const (
	ProcessingPipelineStandard ProcessingPipeline = "standard"
	ProcessingPipelineVLM      ProcessingPipeline = "vlm"
	ProcessingPipelineASR      ProcessingPipeline = "asr"
)

// ConvertOptions tunes a conversion. Every field is optional; unset
// fields are omitted from the request so the service defaults apply.
// Instances are immutable; construct them with NewConvertOptionsBuilder.
type ConvertOptions struct {
	fromFormats             []InputFormat
	toFormats               []OutputFormat
	imageExportMode         *ImageExportMode
	doOCR                   *bool
	forceOCR                *bool
	ocrEngine               *OCREngine
	ocrLang                 []string
	pdfBackend              *PDFBackend
	tableMode               *TableMode
	pipeline                *ProcessingPipeline
	abortOnError            *bool
	returnAsFile            *bool
	doTableStructure        *bool
	includeImages           *bool
	imagesScale             *float64
	mdPageBreakPlaceholder  *string
	documentTimeout         *float64
}

// FromFormats returns the accepted input formats. The slice is a copy.
func (o *ConvertOptions) FromFormats() []InputFormat {
	return slices.Clone(o.fromFormats)
}

// ToFormats returns the requested output formats. The slice is a copy.
func (o *ConvertOptions) ToFormats() []OutputFormat {
	return slices.Clone(o.toFormats)
}

// ImageExportMode returns the image export mode, or nil when unset.
func (o *ConvertOptions) ImageExportMode() *ImageExportMode {
	return copyPtr(o.imageExportMode)
}

// DoOCR returns the OCR toggle, or nil when unset.
func (o *ConvertOptions) DoOCR() *bool {
	return copyPtr(o.doOCR)
}

// ForceOCR returns the full-page OCR toggle, or nil when unset.
func (o *ConvertOptions) ForceOCR() *bool {
	return copyPtr(o.forceOCR)
}

// OCREngine returns the OCR engine, or nil when unset.
func (o *ConvertOptions) OCREngine() *OCREngine {
	return copyPtr(o.ocrEngine)
}

// OCRLang returns the OCR languages. The slice is a copy.
func (o *ConvertOptions) OCRLang() []string {
	return slices.Clone(o.ocrLang)
}

// PDFBackend returns the PDF parser backend, or nil when unset.
func (o *ConvertOptions) PDFBackend() *PDFBackend {
	return copyPtr(o.pdfBackend)
}

// TableMode returns the table structure mode, or nil when unset.
func (o *ConvertOptions) TableMode() *TableMode {
	return copyPtr(o.tableMode)
}

// Pipeline returns the processing pipeline, or nil when unset.
func (o *ConvertOptions) Pipeline() *ProcessingPipeline {
	return copyPtr(o.pipeline)
}

// AbortOnError returns the abort-on-error toggle, or nil when unset.
func (o *ConvertOptions) AbortOnError() *bool {
	return copyPtr(o.abortOnError)
}

// ReturnAsFile returns the return-as-file toggle, or nil when unset.
func (o *ConvertOptions) ReturnAsFile() *bool {
	return copyPtr(o.returnAsFile)
}

// DoTableStructure returns the table structure toggle, or nil when
// unset.
func (o *ConvertOptions) DoTableStructure() *bool {
	return copyPtr(o.doTableStructure)
}

// IncludeImages returns the include-images toggle, or nil when unset.
func (o *ConvertOptions) IncludeImages() *bool {
	return copyPtr(o.includeImages)
}

// ImagesScale returns the image scale factor, or nil when unset.
func (o *ConvertOptions) ImagesScale() *float64 {
	return copyPtr(o.imagesScale)
}

// MDPageBreakPlaceholder returns the markdown page break placeholder,
// or nil when unset.
func (o *ConvertOptions) MDPageBreakPlaceholder() *string {
	return copyPtr(o.mdPageBreakPlaceholder)
}

// DocumentTimeout returns the per-document timeout in seconds, or nil
// when unset.
func (o *ConvertOptions) DocumentTimeout() *float64 {
	return copyPtr(o.documentTimeout)
}

// ToBuilder returns a builder seeded with this options value's fields.
func (o *ConvertOptions) ToBuilder() *ConvertOptionsBuilder {
	return &ConvertOptionsBuilder{
		fromFormats:            o.fromFormats,
		toFormats:              o.toFormats,
		imageExportMode:        o.imageExportMode,
		doOCR:                  o.doOCR,
		forceOCR:               o.forceOCR,
		ocrEngine:              o.ocrEngine,
		ocrLang:                o.ocrLang,
		pdfBackend:             o.pdfBackend,
		tableMode:              o.tableMode,
		pipeline:               o.pipeline,
		abortOnError:           o.abortOnError,
		returnAsFile:           o.returnAsFile,
		doTableStructure:       o.doTableStructure,
		includeImages:          o.includeImages,
		imagesScale:            o.imagesScale,
		mdPageBreakPlaceholder: o.mdPageBreakPlaceholder,
		documentTimeout:        o.documentTimeout,
	}
}

// Equal reports whether two options values carry identical field
// values.
func (o *ConvertOptions) Equal(other *ConvertOptions) bool {
	if o == nil && other == nil {
		return true
	}

	if o == nil || other == nil {
		return false
	}

	return slices.Equal(o.fromFormats, other.fromFormats) &&
		slices.Equal(o.toFormats, other.toFormats) &&
		equalPtr(o.imageExportMode, other.imageExportMode) &&
		equalPtr(o.doOCR, other.doOCR) &&
		equalPtr(o.forceOCR, other.forceOCR) &&
		equalPtr(o.ocrEngine, other.ocrEngine) &&
		slices.Equal(o.ocrLang, other.ocrLang) &&
		equalPtr(o.pdfBackend, other.pdfBackend) &&
		equalPtr(o.tableMode, other.tableMode) &&
		equalPtr(o.pipeline, other.pipeline) &&
		equalPtr(o.abortOnError, other.abortOnError) &&
		equalPtr(o.returnAsFile, other.returnAsFile) &&
		equalPtr(o.doTableStructure, other.doTableStructure) &&
		equalPtr(o.includeImages, other.includeImages) &&
		equalPtr(o.imagesScale, other.imagesScale) &&
		equalPtr(o.mdPageBreakPlaceholder, other.mdPageBreakPlaceholder) &&
		equalPtr(o.documentTimeout, other.documentTimeout)
}

type convertOptionsWire struct {
	FromFormats            []InputFormat       `json:"from_formats,omitempty"`
	ToFormats              []OutputFormat      `json:"to_formats,omitempty"`
	ImageExportMode        *ImageExportMode    `json:"image_export_mode,omitempty"`
	DoOCR                  *bool               `json:"do_ocr,omitempty"`
	ForceOCR               *bool               `json:"force_ocr,omitempty"`
	OCREngine              *OCREngine          `json:"ocr_engine,omitempty"`
	OCRLang                []string            `json:"ocr_lang,omitempty"`
	PDFBackend             *PDFBackend         `json:"pdf_backend,omitempty"`
	TableMode              *TableMode          `json:"table_mode,omitempty"`
	Pipeline               *ProcessingPipeline `json:"pipeline,omitempty"`
	AbortOnError           *bool               `json:"abort_on_error,omitempty"`
	ReturnAsFile           *bool               `json:"return_as_file,omitempty"`
	DoTableStructure       *bool               `json:"do_table_structure,omitempty"`
	IncludeImages          *bool               `json:"include_images,omitempty"`
	ImagesScale            *float64            `json:"images_scale,omitempty"`
	MDPageBreakPlaceholder *string             `json:"md_page_break_placeholder,omitempty"`
	DocumentTimeout        *float64            `json:"document_timeout,omitempty"`
}

func (o *ConvertOptions) MarshalJSON() ([]byte, error) {
	return marshalWire(convertOptionsWire{
		FromFormats:            o.fromFormats,
		ToFormats:              o.toFormats,
		ImageExportMode:        o.imageExportMode,
		DoOCR:                  o.doOCR,
		ForceOCR:               o.forceOCR,
		OCREngine:              o.ocrEngine,
		OCRLang:                o.ocrLang,
		PDFBackend:             o.pdfBackend,
		TableMode:              o.tableMode,
		Pipeline:               o.pipeline,
		AbortOnError:           o.abortOnError,
		ReturnAsFile:           o.returnAsFile,
		DoTableStructure:       o.doTableStructure,
		IncludeImages:          o.includeImages,
		ImagesScale:            o.imagesScale,
		MDPageBreakPlaceholder: o.mdPageBreakPlaceholder,
		DocumentTimeout:        o.documentTimeout,
	})
}

func (o *ConvertOptions) UnmarshalJSON(data []byte) error {
	var wire convertOptionsWire

	if err := unmarshalWire(data, &wire); err != nil {
		return err
	}

	b := NewConvertOptionsBuilder()
	b.fromFormats = wire.FromFormats
	b.toFormats = wire.ToFormats
	b.imageExportMode = wire.ImageExportMode
	b.doOCR = wire.DoOCR
	b.forceOCR = wire.ForceOCR
	b.ocrEngine = wire.OCREngine
	b.ocrLang = wire.OCRLang
	b.pdfBackend = wire.PDFBackend
	b.tableMode = wire.TableMode
	b.pipeline = wire.Pipeline
	b.abortOnError = wire.AbortOnError
	b.returnAsFile = wire.ReturnAsFile
	b.doTableStructure = wire.DoTableStructure
	b.includeImages = wire.IncludeImages
	b.imagesScale = wire.ImagesScale
	b.mdPageBreakPlaceholder = wire.MDPageBreakPlaceholder
	b.documentTimeout = wire.DocumentTimeout

	*o = *b.Build()

	return nil
}

// ConvertOptionsBuilder accumulates ConvertOptions fields. Setters take
// plain values; unset fields stay absent.
type ConvertOptionsBuilder struct {
	fromFormats            []InputFormat
	toFormats              []OutputFormat
	imageExportMode        *ImageExportMode
	doOCR                  *bool
	forceOCR               *bool
	ocrEngine              *OCREngine
	ocrLang                []string
	pdfBackend             *PDFBackend
	tableMode              *TableMode
	pipeline               *ProcessingPipeline
	abortOnError           *bool
	returnAsFile           *bool
	doTableStructure       *bool
	includeImages          *bool
	imagesScale            *float64
	mdPageBreakPlaceholder *string
	documentTimeout        *float64
}

func NewConvertOptionsBuilder() *ConvertOptionsBuilder {
	return &ConvertOptionsBuilder{}
}

// FromFormats replaces the accepted input formats. The slice is copied
// on Build.
func (b *ConvertOptionsBuilder) FromFormats(formats ...InputFormat) *ConvertOptionsBuilder {
	b.fromFormats = formats
	return b
}

// ToFormats replaces the requested output formats. The slice is copied
// on Build.
func (b *ConvertOptionsBuilder) ToFormats(formats ...OutputFormat) *ConvertOptionsBuilder {
	b.toFormats = formats
	return b
}

// ImageExportMode sets the image export mode.
func (b *ConvertOptionsBuilder) ImageExportMode(mode ImageExportMode) *ConvertOptionsBuilder {
	b.imageExportMode = &mode
	return b
}

// DoOCR toggles OCR.
func (b *ConvertOptionsBuilder) DoOCR(value bool) *ConvertOptionsBuilder {
	b.doOCR = &value
	return b
}

// ForceOCR toggles full-page OCR, replacing any programmatic text.
func (b *ConvertOptionsBuilder) ForceOCR(value bool) *ConvertOptionsBuilder {
	b.forceOCR = &value
	return b
}

// OCREngine sets the OCR engine.
func (b *ConvertOptionsBuilder) OCREngine(engine OCREngine) *ConvertOptionsBuilder {
	b.ocrEngine = &engine
	return b
}

// OCRLang replaces the OCR languages. The slice is copied on Build.
func (b *ConvertOptionsBuilder) OCRLang(languages ...string) *ConvertOptionsBuilder {
	b.ocrLang = languages
	return b
}

// PDFBackend sets the PDF parser backend.
func (b *ConvertOptionsBuilder) PDFBackend(backend PDFBackend) *ConvertOptionsBuilder {
	b.pdfBackend = &backend
	return b
}

// TableMode sets the table structure mode.
func (b *ConvertOptionsBuilder) TableMode(mode TableMode) *ConvertOptionsBuilder {
	b.tableMode = &mode
	return b
}

// Pipeline sets the processing pipeline.
func (b *ConvertOptionsBuilder) Pipeline(pipeline ProcessingPipeline) *ConvertOptionsBuilder {
	b.pipeline = &pipeline
	return b
}

// AbortOnError toggles aborting the batch on the first failure.
func (b *ConvertOptionsBuilder) AbortOnError(value bool) *ConvertOptionsBuilder {
	b.abortOnError = &value
	return b
}

// ReturnAsFile toggles returning the result as a file download.
func (b *ConvertOptionsBuilder) ReturnAsFile(value bool) *ConvertOptionsBuilder {
	b.returnAsFile = &value
	return b
}

// DoTableStructure toggles table structure extraction.
func (b *ConvertOptionsBuilder) DoTableStructure(value bool) *ConvertOptionsBuilder {
	b.doTableStructure = &value
	return b
}

// IncludeImages toggles image extraction.
func (b *ConvertOptionsBuilder) IncludeImages(value bool) *ConvertOptionsBuilder {
	b.includeImages = &value
	return b
}

// ImagesScale sets the image scale factor.
func (b *ConvertOptionsBuilder) ImagesScale(scale float64) *ConvertOptionsBuilder {
	b.imagesScale = &scale
	return b
}

// MDPageBreakPlaceholder sets the markdown page break placeholder.
func (b *ConvertOptionsBuilder) MDPageBreakPlaceholder(placeholder string) *ConvertOptionsBuilder {
	b.mdPageBreakPlaceholder = &placeholder
	return b
}

// DocumentTimeout sets the per-document timeout in seconds.
func (b *ConvertOptionsBuilder) DocumentTimeout(seconds float64) *ConvertOptionsBuilder {
	b.documentTimeout = &seconds
	return b
}

func (b *ConvertOptionsBuilder) Build() *ConvertOptions {
	return &ConvertOptions{
		fromFormats:            slices.Clone(b.fromFormats),
		toFormats:              slices.Clone(b.toFormats),
		imageExportMode:        b.imageExportMode,
		doOCR:                  b.doOCR,
		forceOCR:               b.forceOCR,
		ocrEngine:              b.ocrEngine,
		ocrLang:                slices.Clone(b.ocrLang),
		pdfBackend:             b.pdfBackend,
		tableMode:              b.tableMode,
		pipeline:               b.pipeline,
		abortOnError:           b.abortOnError,
		returnAsFile:           b.returnAsFile,
		doTableStructure:       b.doTableStructure,
		includeImages:          b.includeImages,
		imagesScale:            b.imagesScale,
		mdPageBreakPlaceholder: b.mdPageBreakPlaceholder,
		documentTimeout:        b.documentTimeout,
	}
}
