package docling_test

import (
	"encoding/json"
	"testing"

	"github.com/adrianliechti/docling-go/pkg/docling"

	"github.com/stretchr/testify/require"
)

func TestCodecDefaults(t *testing.T) {
	codec := docling.NewCodecBuilder().Build()

	data, err := codec.Marshal(map[string]any{"html": "<p>a & b</p>"})
	require.NoError(t, err)

	require.Equal(t, `{"html":"<p>a & b</p>"}`, string(data))

	var decoded map[string]any
	require.NoError(t, codec.Unmarshal(data, &decoded))

	require.Equal(t, "<p>a & b</p>", decoded["html"])
}

func TestCodecEscapeHTML(t *testing.T) {
	codec := docling.NewCodecBuilder().EscapeHTML(true).Build()

	data, err := codec.Marshal(map[string]any{"html": "<p>"})
	require.NoError(t, err)

	require.NotContains(t, string(data), `<p>`)
	require.Contains(t, string(data), `<p>`)
}

func TestCodecUseNumber(t *testing.T) {
	codec := docling.NewCodecBuilder().UseNumber(true).Build()

	var decoded map[string]any
	require.NoError(t, codec.Unmarshal([]byte(`{"processing_time": 1.25}`), &decoded))

	require.Equal(t, json.Number("1.25"), decoded["processing_time"])
}

func TestCodecDisallowUnknownFields(t *testing.T) {
	codec := docling.NewCodecBuilder().DisallowUnknownFields(true).Build()

	var decoded struct {
		Status string `json:"status"`
	}

	err := codec.Unmarshal([]byte(`{"status": "ok", "surprise": true}`), &decoded)
	require.Error(t, err)

	relaxed := docling.NewCodecBuilder().Build()
	require.NoError(t, relaxed.Unmarshal([]byte(`{"status": "ok", "surprise": true}`), &decoded))
	require.Equal(t, "ok", decoded.Status)
}

func TestCodecIndent(t *testing.T) {
	codec := docling.NewCodecBuilder().Indent("  ").Build()

	data, err := codec.Marshal(map[string]any{"status": "ok"})
	require.NoError(t, err)

	require.Equal(t, "{\n  \"status\": \"ok\"\n}", string(data))
}
