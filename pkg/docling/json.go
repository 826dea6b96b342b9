package docling

import (
	"bytes"
	"encoding/json"
)

// marshalWire encodes the wire form of a value object. HTML escaping is
// off so document content stays readable; a Codec built with
// EscapeHTML(true) re-escapes on the outer pass.
func marshalWire(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func unmarshalWire(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
