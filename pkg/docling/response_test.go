package docling_test

import (
	"encoding/json"
	"testing"

	"github.com/adrianliechti/docling-go/pkg/docling"

	"github.com/stretchr/testify/require"
)

func TestDocumentResponseBuilder(t *testing.T) {
	response := docling.NewDocumentResponseBuilder().
		DoctagsContent("<doctag>content</doctag>").
		Filename("test-document.pdf").
		HTMLContent("<html><body>content</body></html>").
		JSONContent(map[string]any{"key": "value"}).
		MarkdownContent("# content").
		TextContent("content").
		Build()

	require.Equal(t, docling.Ptr("<doctag>content</doctag>"), response.DoctagsContent())
	require.Equal(t, "test-document.pdf", response.Filename())
	require.Equal(t, docling.Ptr("<html><body>content</body></html>"), response.HTMLContent())
	require.Equal(t, map[string]any{"key": "value"}, response.JSONContent())
	require.Equal(t, docling.Ptr("# content"), response.MarkdownContent())
	require.Equal(t, docling.Ptr("content"), response.TextContent())
}

func TestDocumentResponseAbsentFields(t *testing.T) {
	response := docling.NewDocumentResponseBuilder().
		Filename("test-document.pdf").
		Build()

	require.Nil(t, response.DoctagsContent())
	require.Nil(t, response.HTMLContent())
	require.Nil(t, response.MarkdownContent())
	require.Nil(t, response.TextContent())

	require.NotNil(t, response.JSONContent())
	require.Empty(t, response.JSONContent())
}

func TestDocumentResponseEmptyFields(t *testing.T) {
	response := docling.NewDocumentResponseBuilder().
		DoctagsContent("").
		Filename("empty-document.txt").
		HTMLContent("").
		JSONContent(map[string]any{}).
		MarkdownContent("").
		TextContent("").
		Build()

	// Empty content is distinct from absent content.
	require.Equal(t, docling.Ptr(""), response.DoctagsContent())
	require.Equal(t, docling.Ptr(""), response.HTMLContent())
	require.Equal(t, docling.Ptr(""), response.MarkdownContent())
	require.Equal(t, docling.Ptr(""), response.TextContent())

	require.Equal(t, "empty-document.txt", response.Filename())
	require.Empty(t, response.JSONContent())
}

func TestDocumentResponseImmutability(t *testing.T) {
	content := map[string]any{"key": "value"}

	response := docling.NewDocumentResponseBuilder().
		Filename("test-document.pdf").
		JSONContent(content).
		Build()

	content["key"] = "changed"
	content["extra"] = true

	require.Equal(t, map[string]any{"key": "value"}, response.JSONContent())

	returned := response.JSONContent()
	returned["key"] = "changed"

	require.Equal(t, map[string]any{"key": "value"}, response.JSONContent())
}

func TestDocumentResponseToBuilder(t *testing.T) {
	response := docling.NewDocumentResponseBuilder().
		Filename("test-document.pdf").
		JSONContent(map[string]any{"key": "value"}).
		MarkdownContent("# content").
		Build()

	rebuilt := response.ToBuilder().Build()

	require.True(t, response.Equal(rebuilt))

	changed := response.ToBuilder().
		Filename("other-document.pdf").
		Build()

	require.False(t, response.Equal(changed))
	require.Equal(t, "test-document.pdf", response.Filename())
	require.Equal(t, "other-document.pdf", changed.Filename())
	require.Equal(t, response.MarkdownContent(), changed.MarkdownContent())
}

func TestDocumentResponseEqual(t *testing.T) {
	build := func() *docling.DocumentResponse {
		return docling.NewDocumentResponseBuilder().
			Filename("test-document.pdf").
			JSONContent(map[string]any{"key": "value"}).
			TextContent("content").
			Build()
	}

	require.True(t, build().Equal(build()))

	var absent *docling.DocumentResponse
	require.True(t, absent.Equal(nil))
	require.False(t, absent.Equal(build()))
	require.False(t, build().Equal(nil))

	other := build().ToBuilder().TextContent("").Build()
	require.False(t, build().Equal(other))
}

func TestDocumentResponseMarshal(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		response := docling.NewDocumentResponseBuilder().
			DoctagsContent("<doctag/>").
			Filename("test-document.pdf").
			HTMLContent("<p>content</p>").
			JSONContent(map[string]any{"key": "value"}).
			MarkdownContent("# content").
			TextContent("content").
			Build()

		data, err := json.Marshal(response)
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(data, &fields))

		require.Equal(t, "<doctag/>", fields["doctags_content"])
		require.Equal(t, "test-document.pdf", fields["filename"])
		require.Equal(t, "<p>content</p>", fields["html_content"])
		require.Equal(t, map[string]any{"key": "value"}, fields["json_content"])
		require.Equal(t, "# content", fields["md_content"])
		require.Equal(t, "content", fields["text_content"])
	})

	t.Run("absent fields omitted", func(t *testing.T) {
		response := docling.NewDocumentResponseBuilder().
			Filename("test-document.pdf").
			Build()

		data, err := json.Marshal(response)
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(data, &fields))

		require.NotContains(t, fields, "doctags_content")
		require.NotContains(t, fields, "html_content")
		require.NotContains(t, fields, "md_content")
		require.NotContains(t, fields, "text_content")

		// json_content is always written, even when empty.
		require.Equal(t, map[string]any{}, fields["json_content"])
	})

	t.Run("html not escaped", func(t *testing.T) {
		response := docling.NewDocumentResponseBuilder().
			Filename("test-document.html").
			HTMLContent("<p>a & b</p>").
			Build()

		// Plain json.Marshal escapes HTML on its outer pass; the codec
		// is what keeps document content readable.
		data, err := docling.NewCodecBuilder().Build().Marshal(response)
		require.NoError(t, err)

		require.Contains(t, string(data), "<p>a & b</p>")
	})
}

func TestDocumentResponseUnmarshal(t *testing.T) {
	data := []byte(`{
		"doctags_content": "<doctag/>",
		"filename": "test-document.pdf",
		"html_content": "<p>content</p>",
		"json_content": {"key": "value"},
		"md_content": "# content",
		"text_content": "content",
		"unknown_field": true
	}`)

	var response docling.DocumentResponse
	require.NoError(t, json.Unmarshal(data, &response))

	require.Equal(t, docling.Ptr("<doctag/>"), response.DoctagsContent())
	require.Equal(t, "test-document.pdf", response.Filename())
	require.Equal(t, docling.Ptr("<p>content</p>"), response.HTMLContent())
	require.Equal(t, map[string]any{"key": "value"}, response.JSONContent())
	require.Equal(t, docling.Ptr("# content"), response.MarkdownContent())
	require.Equal(t, docling.Ptr("content"), response.TextContent())
}

func TestDocumentResponseUnmarshalMissingContent(t *testing.T) {
	var response docling.DocumentResponse
	require.NoError(t, json.Unmarshal([]byte(`{"filename": "test-document.pdf"}`), &response))

	require.Equal(t, "test-document.pdf", response.Filename())
	require.Nil(t, response.MarkdownContent())
	require.NotNil(t, response.JSONContent())
	require.Empty(t, response.JSONContent())
}

func TestConvertDocumentResponseBuilder(t *testing.T) {
	document := docling.NewDocumentResponseBuilder().
		Filename("test-document.pdf").
		MarkdownContent("# content").
		Build()

	response := docling.NewConvertDocumentResponseBuilder().
		Document(document).
		Status(docling.ConversionStatusSuccess).
		ProcessingTime(1.25).
		Timings(map[string]any{"pipeline_total": 1.2}).
		Build()

	require.True(t, document.Equal(response.Document()))
	require.Equal(t, docling.ConversionStatusSuccess, response.Status())
	require.Empty(t, response.Errors())
	require.Equal(t, 1.25, response.ProcessingTime())
	require.Equal(t, map[string]any{"pipeline_total": 1.2}, response.Timings())
}

func TestConvertDocumentResponseFailure(t *testing.T) {
	response := docling.NewConvertDocumentResponseBuilder().
		Status(docling.ConversionStatusFailure).
		Errors(docling.ErrorItem{
			ComponentType: "document_backend",
			ModuleName:    "PdfBackend",
			ErrorMessage:  "corrupt document",
		}).
		Build()

	require.Nil(t, response.Document())
	require.Equal(t, docling.ConversionStatusFailure, response.Status())

	errors := response.Errors()
	require.Len(t, errors, 1)
	require.Equal(t, "corrupt document", errors[0].ErrorMessage)
}

func TestConvertDocumentResponseImmutability(t *testing.T) {
	items := []docling.ErrorItem{{ErrorMessage: "first"}}
	timings := map[string]any{"pipeline_total": 1.2}

	response := docling.NewConvertDocumentResponseBuilder().
		Status(docling.ConversionStatusPartialSuccess).
		Errors(items...).
		Timings(timings).
		Build()

	items[0].ErrorMessage = "changed"
	timings["pipeline_total"] = 9.9

	require.Equal(t, "first", response.Errors()[0].ErrorMessage)
	require.Equal(t, map[string]any{"pipeline_total": 1.2}, response.Timings())

	response.Errors()[0].ErrorMessage = "changed"
	response.Timings()["pipeline_total"] = 9.9

	require.Equal(t, "first", response.Errors()[0].ErrorMessage)
	require.Equal(t, map[string]any{"pipeline_total": 1.2}, response.Timings())
}

func TestConvertDocumentResponseToBuilder(t *testing.T) {
	response := docling.NewConvertDocumentResponseBuilder().
		Status(docling.ConversionStatusSuccess).
		ProcessingTime(0.5).
		Build()

	rebuilt := response.ToBuilder().Build()
	require.True(t, response.Equal(rebuilt))

	changed := response.ToBuilder().
		Status(docling.ConversionStatusSkipped).
		Build()

	require.False(t, response.Equal(changed))
	require.Equal(t, docling.ConversionStatusSuccess, response.Status())
}

func TestConvertDocumentResponseJSON(t *testing.T) {
	data := []byte(`{
		"document": {
			"filename": "report.docx",
			"md_content": "# Report",
			"json_content": {}
		},
		"status": "success",
		"processing_time": 2.5,
		"timings": {"pipeline_total": 2.4}
	}`)

	var response docling.ConvertDocumentResponse
	require.NoError(t, json.Unmarshal(data, &response))

	require.Equal(t, docling.ConversionStatusSuccess, response.Status())
	require.Equal(t, "report.docx", response.Document().Filename())
	require.Equal(t, docling.Ptr("# Report"), response.Document().MarkdownContent())
	require.Equal(t, 2.5, response.ProcessingTime())

	encoded, err := json.Marshal(&response)
	require.NoError(t, err)

	var decoded docling.ConvertDocumentResponse
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	require.True(t, response.Equal(&decoded))
}
