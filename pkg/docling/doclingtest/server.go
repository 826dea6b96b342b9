// Package doclingtest provides an in-process Docling Serve stand-in for
// tests. The server speaks the same endpoints and wire format as the
// real service, returns configurable fixtures and records every decoded
// conversion request.
package doclingtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"slices"
	"sync"
	"time"

	"github.com/adrianliechti/docling-go/pkg/docling"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Server struct {
	server *httptest.Server

	apiKey string

	document *docling.DocumentResponse
	failure  *docling.ErrorItem

	mu       sync.Mutex
	requests []*docling.ConvertDocumentRequest
}

type Option func(*Server)

// WithAPIKey makes the server reject requests lacking a matching
// X-Api-Key header.
func WithAPIKey(apiKey string) Option {
	return func(s *Server) {
		s.apiKey = apiKey
	}
}

// WithDocument sets the document returned by conversions. A document
// without a filename gets one derived from the request's first source.
func WithDocument(document *docling.DocumentResponse) Option {
	return func(s *Server) {
		s.document = document
	}
}

// WithFailure makes conversions report a failed status carrying the
// given error item instead of a document.
func WithFailure(failure docling.ErrorItem) Option {
	return func(s *Server) {
		s.failure = &failure
	}
}

// New starts the stand-in server. Callers own the returned server and
// must Close it.
func New(options ...Option) *Server {
	s := &Server{
		document: docling.NewDocumentResponseBuilder().
			MarkdownContent("# Sample\n\nConverted by doclingtest.").
			Build(),
	}

	for _, option := range options {
		option(s)
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Api-Key"},
	}))

	r.Use(s.requireAPIKey)

	r.Get("/health", s.handleHealth)
	r.Post("/v1/convert/source", s.handleConvertSource)

	s.server = httptest.NewServer(r)

	return s
}

// URL returns the server's base URL.
func (s *Server) URL() string {
	return s.server.URL
}

func (s *Server) Close() {
	s.server.Close()
}

// Requests returns the conversion requests received so far, oldest
// first.
func (s *Server) Requests() []*docling.ConvertDocumentRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.requests)
}

func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey != "" && r.Header.Get("X-Api-Key") != s.apiKey {
			writeError(w, http.StatusUnauthorized, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJson(w, docling.NewHealthCheckResponseBuilder().Status("ok").Build())
}

func (s *Server) handleConvertSource(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var request docling.ConvertDocumentRequest

	if err := readJson(r, &request); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	if err := request.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, &request)
	s.mu.Unlock()

	response := s.convertResponse(&request, time.Since(started))

	writeJson(w, response)
}

func (s *Server) convertResponse(request *docling.ConvertDocumentRequest, elapsed time.Duration) *docling.ConvertDocumentResponse {
	if s.failure != nil {
		return docling.NewConvertDocumentResponseBuilder().
			Status(docling.ConversionStatusFailure).
			Errors(*s.failure).
			ProcessingTime(elapsed.Seconds()).
			Build()
	}

	document := s.document

	if document.Filename() == "" {
		document = document.ToBuilder().
			Filename(sourceFilename(request)).
			Build()
	}

	return docling.NewConvertDocumentResponseBuilder().
		Document(document).
		Status(docling.ConversionStatusSuccess).
		ProcessingTime(elapsed.Seconds()).
		Build()
}

func sourceFilename(request *docling.ConvertDocumentRequest) string {
	sources := request.Sources()

	if len(sources) == 0 {
		return "document"
	}

	switch source := sources[0].(type) {
	case *docling.FileSource:
		return source.Filename()

	case *docling.HTTPSource:
		if u, err := url.Parse(source.URL()); err == nil {
			if name := path.Base(u.Path); name != "." && name != "/" {
				return name
			}
		}
	}

	return "document"
}

func readJson(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	w.Write([]byte(text))
}
