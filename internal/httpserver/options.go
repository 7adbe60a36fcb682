// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"net/http"
	"time"
)

// Option is a functional option for the HTTP server.
type Option func(s *settings)

type settings struct {
	handler           http.Handler
	address           string
	serverName        string
	logger            Logger
	readTimeout       time.Duration
	readHeaderTimeout time.Duration
	shutdownTimeout   time.Duration
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}

	if s.handler == nil {
		s.handler = http.NewServeMux()
	}

	if s.serverName == "" {
		s.serverName = "http"
	}

	if s.logger == nil {
		s.logger = &noopLogger{}
	}

	if s.readTimeout == 0 {
		const defaultReadTimeout = 10 * time.Second
		s.readTimeout = defaultReadTimeout
	}

	if s.readHeaderTimeout == 0 {
		const defaultReadHeaderTimeout = time.Second
		s.readHeaderTimeout = defaultReadHeaderTimeout
	}

	if s.shutdownTimeout == 0 {
		const defaultShutdownTimeout = 3 * time.Second
		s.shutdownTimeout = defaultShutdownTimeout
	}

	return s
}

// Handler sets the http handler to use for the HTTP server.
// It defaults to an empty mux created with `http.NewServeMux()`.
func Handler(handler http.Handler) Option {
	return func(s *settings) {
		s.handler = handler
	}
}

// Address sets the listening address for the HTTP server.
// The default is the empty address which means any available
// address is assigned by the OS.
func Address(address string) Option {
	return func(s *settings) {
		s.address = address
	}
}

// WithLogger sets the logger to use for the HTTP server,
// together with a server name to use in the logs.
// It defaults to a no-op logger.
func WithLogger(serverName string, logger Logger) Option {
	return func(s *settings) {
		s.serverName = serverName
		s.logger = logger
	}
}

// ReadTimeout sets the read timeout for the HTTP server.
// The default timeout is 10 seconds.
func ReadTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.readTimeout = timeout
	}
}

// ReadHeaderTimeout sets the header read timeout
// for the HTTP server. The default timeout is 1 second.
func ReadHeaderTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.readHeaderTimeout = timeout
	}
}

// ShutdownTimeout sets an optional timeout for the HTTP server
// to shutdown. The default shutdown is 3 seconds.
func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.shutdownTimeout = timeout
	}
}

type noopLogger struct{}

func (noopLogger) Info(_ string)  {}
func (noopLogger) Warn(_ string)  {}
func (noopLogger) Error(_ string) {}
