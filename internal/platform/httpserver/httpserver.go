package httpserver

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultReadHeaderTimeout = 5 * time.Second
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 60 * time.Second
)

type Option func(*http.Server)

// WithTimeouts overrides the read and write deadlines. Zero keeps the default.
func WithTimeouts(read, write time.Duration) Option {
	return func(srv *http.Server) {
		if read > 0 {
			srv.ReadTimeout = read
		}
		if write > 0 {
			srv.WriteTimeout = write
		}
	}
}

// WithErrorLog sends net/http's own error output to logger at warn level.
func WithErrorLog(logger *slog.Logger) Option {
	return func(srv *http.Server) {
		if logger != nil {
			srv.ErrorLog = slog.NewLogLogger(logger.Handler(), slog.LevelWarn)
		}
	}
}

func New(addr string, handler http.Handler, opts ...Option) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
	}
	for _, opt := range opts {
		opt(srv)
	}
	return srv
}
