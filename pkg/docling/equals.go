package docling

import (
	"maps"
	"reflect"
)

// equalPtr compares two pointers by pointed-to value. Both nil is equal;
// nil never equals a pointer to the zero value.
func equalPtr[T comparable](a, b *T) bool {
	if a == nil && b == nil {
		return true
	}

	if a == nil || b == nil {
		return false
	}

	return *a == *b
}

// equalMapStringAny compares passthrough JSON mappings. Nil and empty are
// considered equal.
func equalMapStringAny(a, b map[string]any) bool {
	return maps.EqualFunc(a, b, reflect.DeepEqual)
}

func equalMapStringString(a, b map[string]string) bool {
	return maps.Equal(a, b)
}

// copyPtr returns a pointer to a copy of the pointed-to value, keeping
// value objects detached from their accessors' results.
func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}
