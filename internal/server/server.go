package server

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/moonkev/loadtarget/internal/model"
)

const contentTypeJSON = "application/json; charset=utf-8"

// Config holds the listener configuration
type Config struct {
	Port   int
	Routes *model.RouteTable // nil serves the default table
	Logger *slog.Logger      // nil uses slog.Default()
}

// Server serves a static route table over plain HTTP.
type Server struct {
	port   int
	logger *slog.Logger
	mux    *http.ServeMux
}

// New builds the mux for the route table. Every route is GET only; anything
// else falls through to the ServeMux defaults (404, or 405 for a known path).
func New(cfg Config) *Server {
	routes := cfg.Routes
	if routes == nil {
		routes = model.DefaultRouteTable()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		port:   cfg.Port,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	for _, r := range routes.Routes() {
		s.mux.Handle(pattern(r.Path), s.routeHandler(r))
	}
	return s
}

// Handler returns the HTTP handler serving the route table.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe binds the configured port and serves until the listener fails.
// A bind error is returned as is; there is no retry.
func (s *Server) ListenAndServe() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on %d: %w", s.port, err)
	}
	return s.Serve(lis)
}

// Serve announces the bound address and serves requests on lis.
func (s *Server) Serve(lis net.Listener) error {
	port := s.port
	if addr, ok := lis.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	s.logger.Info(fmt.Sprintf("App listening at http://localhost:%d", port))
	return http.Serve(lis, s.mux)
}

func (s *Server) routeHandler(r model.Route) http.HandlerFunc {
	hit := r.Path + " ... hit"
	return func(w http.ResponseWriter, req *http.Request) {
		s.logger.Info(hit)

		w.Header().Set("Content-Type", contentTypeJSON)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(r.Body); err != nil {
			s.logger.Debug("response write failed", "path", r.Path, "remote", req.RemoteAddr, "error", err)
		}
	}
}

// pattern turns a literal path into an exact-match GET pattern. A trailing
// slash would otherwise match the whole subtree.
func pattern(path string) string {
	if strings.HasSuffix(path, "/") {
		return "GET " + path + "{$}"
	}
	return "GET " + path
}
