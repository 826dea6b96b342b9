package docling

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrConfiguration marks builder configuration failures. It is reported
// by Build before any network activity and matches with errors.Is.
var ErrConfiguration = errors.New("invalid configuration")

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// StatusError is returned when the service answers with a non-2xx status.
// Status interpretation is left to the caller; the raw body is preserved.
type StatusError struct {
	StatusCode int
	Status     string

	Body []byte
}

func (e *StatusError) Error() string {
	if len(e.Body) == 0 {
		if e.Status != "" {
			return e.Status
		}

		return http.StatusText(e.StatusCode)
	}

	return strings.TrimSpace(string(e.Body))
}
