// Package httpapi exposes the project catalogue over JSON/HTTP: a public
// read side and a bearer-protected admin side.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/showcase/internal/logging"
	"github.com/dmitrijs2005/showcase/internal/server/services"
	"github.com/gorilla/mux"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	address  string
	logger   logging.Logger
	users    *services.UserService
	projects *services.ProjectService
}

func NewServer(addr string, l logging.Logger, us *services.UserService, ps *services.ProjectService) *Server {
	return &Server{
		address:  addr,
		logger:   l.With("module", "http_server"),
		users:    us,
		projects: ps,
	}
}

// Handler builds the router with its middleware chain.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestID, s.logRequests, s.recoverPanics)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Ruta no encontrada", "")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Método no permitido", "")
	})

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)
	api.HandleFunc("/projects", s.listProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id:[0-9]+}", s.getProject).Methods(http.MethodGet)

	admin := api.NewRoute().Subrouter()
	admin.Use(s.requireAuth)
	admin.HandleFunc("/projects", s.createProject).Methods(http.MethodPost)
	admin.HandleFunc("/projects/{id:[0-9]+}", s.updateProject).Methods(http.MethodPut)
	admin.HandleFunc("/projects/{id:[0-9]+}", s.deleteProject).Methods(http.MethodDelete)

	return r
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

func (s *Server) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
