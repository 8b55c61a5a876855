// Package httpserver builds the storefront's *http.Server.
package httpserver

import (
	"log/slog"
	"net/http"
	"time"
)

// New builds an HTTP server with the storefront's timeouts. WriteTimeout
// leaves room for the payment confirmation round trip to the gateway.
func New(addr string, handler http.Handler, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}
}
