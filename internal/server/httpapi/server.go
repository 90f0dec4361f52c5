package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dpetrovs/userreg/internal/logging"
)

const shutdownTimeout = 10 * time.Second

// Server runs the HTTP endpoint and shuts it down gracefully when the
// supplied context is cancelled.
type Server struct {
	srv    *http.Server
	logger logging.Logger
}

func NewServer(addr string, h *Handler, logger logging.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         addr,
			Handler:      NewRouter(h),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Run blocks until the context is cancelled or the listener fails.
// In-flight requests get shutdownTimeout to complete.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "http server listening", "addr", s.srv.Addr)
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info(ctx, "shutting down http server")
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.srv.Shutdown(shutCtx)
	}
}
