package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fieldwork-dev/fieldwork/internal/errors"
	"github.com/fieldwork-dev/fieldwork/pkg/form"
	"github.com/fieldwork-dev/fieldwork/pkg/middleware"
)

// FieldSpec declares one field of a served form.
type FieldSpec struct {
	Name     string
	Label    string
	Required bool
}

// FormSpec declares a form the server instantiates per connection.
// Engines are per-connection so concurrent visitors never share field state.
type FormSpec struct {
	Name        string
	SuccessText string

	// HideDelay is the success indicator auto-hide delay.
	// Zero means the default (5s).
	HideDelay time.Duration

	Fields []FieldSpec
}

// Config configures the live server.
type Config struct {
	// Addr is the host:port to listen on.
	Addr string

	// ReadTimeout bounds how long a connection may stay silent.
	ReadTimeout time.Duration

	// WriteTimeout bounds each outgoing write.
	WriteTimeout time.Duration

	// Logger is the server logger. Defaults to slog.Default().
	Logger *slog.Logger

	// Middleware wraps event handling (metrics, tracing).
	Middleware []middleware.Middleware

	// Observer receives per-field validation outcomes on every engine.
	Observer form.Observer
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:         "localhost:3000",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// Server serves form interactivity over a WebSocket endpoint. Events
// (blur, input, submit) come in as JSON messages; presentation patches
// (class toggles, error text, value resets) go back out.
type Server struct {
	config   Config
	logger   *slog.Logger
	specs    map[string]FormSpec
	order    []string
	upgrader websocket.Upgrader
	httpSrv  *http.Server
}

// New creates a server with the given configuration.
func New(config Config) *Server {
	if config.ReadTimeout == 0 {
		config.ReadTimeout = 60 * time.Second
	}
	if config.WriteTimeout == 0 {
		config.WriteTimeout = 10 * time.Second
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		config: config,
		logger: logger.With("component", "server"),
		specs:  make(map[string]FormSpec),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// RegisterForm adds a form specification.
func (s *Server) RegisterForm(spec FormSpec) error {
	if _, exists := s.specs[spec.Name]; exists {
		return errors.DuplicateForm(spec.Name)
	}
	s.specs[spec.Name] = spec
	s.order = append(s.order, spec.Name)
	return nil
}

// Forms returns the registered form names in registration order.
func (s *Server) Forms() []string {
	return s.order
}

// Router returns the HTTP handler: /live (WebSocket), /healthz and
// /metrics.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/live", s.handleLive)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// ListenAndServe starts the server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	s.httpSrv = &http.Server{
		Addr:    s.config.Addr,
		Handler: s.Router(),
	}
	s.logger.Info("listening", "addr", s.config.Addr, "forms", s.order)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.ServerStart(err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// handleLive upgrades the connection and runs the event loop.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "error", err)
		return
	}

	c := newConn(s, ws)
	defer c.close()
	c.readLoop(r.Context())
}
