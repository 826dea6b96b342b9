package docling

import (
	"bytes"
	"encoding/json"
)

// Codec encodes requests and decodes responses. The default codec is
// encoding/json with HTML escaping disabled.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// CodecBuilder accumulates serialization feature toggles and produces an
// immutable Codec.
type CodecBuilder struct {
	escapeHTML            bool
	useNumber             bool
	disallowUnknownFields bool
	indent                string
}

func NewCodecBuilder() *CodecBuilder {
	return &CodecBuilder{}
}

// EscapeHTML toggles HTML escaping of <, > and & in encoded output.
func (b *CodecBuilder) EscapeHTML(escape bool) *CodecBuilder {
	b.escapeHTML = escape
	return b
}

// UseNumber decodes JSON numbers as json.Number instead of float64.
func (b *CodecBuilder) UseNumber(use bool) *CodecBuilder {
	b.useNumber = use
	return b
}

// DisallowUnknownFields rejects response fields not present in the
// destination type.
func (b *CodecBuilder) DisallowUnknownFields(disallow bool) *CodecBuilder {
	b.disallowUnknownFields = disallow
	return b
}

// Indent enables indented encoding using the given indent string.
func (b *CodecBuilder) Indent(indent string) *CodecBuilder {
	b.indent = indent
	return b
}

func (b *CodecBuilder) Build() Codec {
	return &jsonCodec{
		escapeHTML:            b.escapeHTML,
		useNumber:             b.useNumber,
		disallowUnknownFields: b.disallowUnknownFields,
		indent:                b.indent,
	}
}

func (b *CodecBuilder) clone() *CodecBuilder {
	c := *b
	return &c
}

type jsonCodec struct {
	escapeHTML            bool
	useNumber             bool
	disallowUnknownFields bool
	indent                string
}

func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(c.escapeHTML)

	if c.indent != "" {
		enc.SetIndent("", c.indent)
	}

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	if c.useNumber {
		dec.UseNumber()
	}

	if c.disallowUnknownFields {
		dec.DisallowUnknownFields()
	}

	return dec.Decode(v)
}
