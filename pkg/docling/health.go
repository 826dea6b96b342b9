package docling

import (
	"maps"
)

// HealthCheckResponse is the opaque status payload of the health
// endpoint. The service currently answers {"status":"ok"}; unknown keys
// are carried through untouched.
type HealthCheckResponse struct {
	payload map[string]any
}

// Status returns the value of the "status" key, or "" when absent.
func (r *HealthCheckResponse) Status() string {
	if v, ok := r.payload["status"].(string); ok {
		return v
	}

	return ""
}

// Payload returns the full status payload. The result is never nil and is
// a copy.
func (r *HealthCheckResponse) Payload() map[string]any {
	if r.payload == nil {
		return map[string]any{}
	}

	return maps.Clone(r.payload)
}

// ToBuilder returns a builder seeded with this response's payload.
func (r *HealthCheckResponse) ToBuilder() *HealthCheckResponseBuilder {
	return &HealthCheckResponseBuilder{
		payload: r.payload,
	}
}

// Equal reports whether two responses carry identical payloads.
func (r *HealthCheckResponse) Equal(other *HealthCheckResponse) bool {
	if r == nil && other == nil {
		return true
	}

	if r == nil || other == nil {
		return false
	}

	return equalMapStringAny(r.payload, other.payload)
}

func (r *HealthCheckResponse) MarshalJSON() ([]byte, error) {
	payload := r.payload

	if payload == nil {
		payload = map[string]any{}
	}

	return marshalWire(payload)
}

func (r *HealthCheckResponse) UnmarshalJSON(data []byte) error {
	var payload map[string]any

	if err := unmarshalWire(data, &payload); err != nil {
		return err
	}

	*r = *NewHealthCheckResponseBuilder().Payload(payload).Build()

	return nil
}

// HealthCheckResponseBuilder accumulates HealthCheckResponse fields.
type HealthCheckResponseBuilder struct {
	payload map[string]any
}

func NewHealthCheckResponseBuilder() *HealthCheckResponseBuilder {
	return &HealthCheckResponseBuilder{}
}

// Status sets the "status" key of the payload. The payload is cloned
// first so maps passed to Payload or seeded by ToBuilder stay untouched.
func (b *HealthCheckResponseBuilder) Status(status string) *HealthCheckResponseBuilder {
	payload := maps.Clone(b.payload)

	if payload == nil {
		payload = map[string]any{}
	}

	payload["status"] = status
	b.payload = payload

	return b
}

// Payload replaces the whole payload. The map is copied on Build.
func (b *HealthCheckResponseBuilder) Payload(payload map[string]any) *HealthCheckResponseBuilder {
	b.payload = payload
	return b
}

func (b *HealthCheckResponseBuilder) Build() *HealthCheckResponse {
	payload := map[string]any{}

	if b.payload != nil {
		payload = maps.Clone(b.payload)
	}

	return &HealthCheckResponse{
		payload: payload,
	}
}
