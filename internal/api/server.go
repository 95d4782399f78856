package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/roach88/orbitr/internal/catalog"
	"github.com/roach88/orbitr/internal/rso"
)

// RecordStore is the subset of store.Store the handlers use.
type RecordStore interface {
	List() ([]rso.Record, error)
	Len() (int, error)
	Get(satcat string) (rso.Record, bool, error)
	Create(r rso.Record) (rso.Record, error)
	Replace(satcat string, r rso.Record) (rso.Record, error)
	Delete(satcat string) error
}

// Options configures a Server.
type Options struct {
	// FrontendDir, if set, is served under /app/ and / redirects there.
	FrontendDir string

	// Catalog supplies the almanac endpoint. Defaults to catalog.Load.
	Catalog func() []rso.Record

	// RequestID generates ids for requests that arrive without one.
	// Defaults to UUIDv7.
	RequestID func() string

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Server holds the HTTP handlers for the record API.
type Server struct {
	store       RecordStore
	frontendDir string
	catalog     func() []rso.Record
	requestID   func() string
	logger      *slog.Logger
}

// New creates a Server backed by st.
func New(st RecordStore, opts Options) *Server {
	s := &Server{
		store:       st,
		frontendDir: opts.FrontendDir,
		catalog:     opts.Catalog,
		requestID:   opts.RequestID,
		logger:      opts.Logger,
	}
	if s.catalog == nil {
		s.catalog = catalog.Load
	}
	if s.requestID == nil {
		s.requestID = func() string { return uuid.Must(uuid.NewV7()).String() }
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// RegisterRoutes registers every route on mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/rso", s.handleList)
	mux.HandleFunc("POST /api/rso", s.handleCreate)
	mux.HandleFunc("GET /api/rso/almanac/catalog", s.handleCatalog)
	mux.HandleFunc("GET /api/rso/{satcat}", s.handleGet)
	mux.HandleFunc("PUT /api/rso/{satcat}", s.handleReplace)
	mux.HandleFunc("PATCH /api/rso/{satcat}", s.handlePatch)
	mux.HandleFunc("DELETE /api/rso/{satcat}", s.handleDelete)

	if s.frontendDir != "" {
		mux.Handle("GET /app/", http.StripPrefix("/app/", http.FileServer(http.Dir(s.frontendDir))))
		mux.HandleFunc("GET /app", redirectTo("/app/"))
		mux.HandleFunc("GET /{$}", redirectTo("/app/"))
	}
}

// Handler returns the routed handler wrapped in request-id and logging middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return s.withRequestID(s.withLogging(mux))
}

func redirectTo(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusFound)
	}
}
