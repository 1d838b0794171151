package http

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/andreas-buehlmeier/pptx-parser/pkg/domain/interfaces"
	"github.com/andreas-buehlmeier/pptx-parser/pkg/utils/logbus"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var assetFS embed.FS

// config holds internal HTTP server configuration
type config struct {
	addr string
	hub  *logbus.Hub
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithHub sets the log hub backing the live log stream. Without a hub the
// /ws/log route is not registered.
func WithHub(hub *logbus.Hub) Option {
	return func(c *config) {
		c.hub = hub
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	extractUC interfaces.ExtractUseCase,
	store interfaces.ReportStore,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr: "127.0.0.1:8080",
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	views, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse templates")
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth)

	// Upload form and extraction
	uploadHandler := NewUploadHandler(extractUC, store, views)
	router.Get("/", uploadHandler.Index)
	router.Post("/upload-form", uploadHandler.Handle)

	// Report download
	reportHandler := NewReportHandler(store, views)
	router.Get("/download-report", reportHandler.Handle)

	// Live log stream
	if cfg.hub != nil {
		logStream := NewLogStreamHandler(cfg.hub)
		router.Get("/ws/log", logStream.Handle)
	}

	// Static assets
	staticFS, err := fs.Sub(assetFS, "static")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to mount static assets")
	}
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
