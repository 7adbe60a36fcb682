// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Server is an HTTP server running until its context is canceled.
type Server struct {
	settings   settings
	address    string
	addressSet chan struct{}
}

// New creates a new HTTP server with the options given.
func New(options ...Option) *Server {
	return &Server{
		settings:   newSettings(options),
		addressSet: make(chan struct{}),
	}
}

// Run listens and serves until the context is canceled.
// The ready channel is closed once the server is listening,
// and the done channel receives the exit error of the server.
// It must only be called once.
func (s *Server) Run(ctx context.Context, ready chan<- struct{}, done chan<- error) {
	server := &http.Server{
		Addr:              s.settings.address,
		Handler:           s.settings.handler,
		ReadTimeout:       s.settings.readTimeout,
		ReadHeaderTimeout: s.settings.readHeaderTimeout,
	}

	listener, err := net.Listen("tcp", s.settings.address)
	if err != nil {
		close(s.addressSet)
		done <- fmt.Errorf("listening on %s: %w", s.settings.address, err)
		return
	}

	s.address = listener.Addr().String()
	close(s.addressSet)

	crashed := make(chan struct{})
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		select {
		case <-ctx.Done():
		case <-crashed:
			return
		}

		s.settings.logger.Warn(s.settings.serverName + " http server shutting down: " + ctx.Err().Error())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.settings.shutdownTimeout)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			s.settings.logger.Error(s.settings.serverName + " http server failed shutting down: " + err.Error())
		}
	}()

	s.settings.logger.Info(s.settings.serverName + " http server listening on " + s.address)
	close(ready)

	err = server.Serve(listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		close(crashed)
		<-shutdownDone
		done <- fmt.Errorf("serving on %s: %w", s.address, err)
		return
	}

	<-shutdownDone
	done <- nil
}

// GetAddress blocks until the server is listening and returns
// the address it listens on. It returns the empty string if
// the server failed to listen.
func (s *Server) GetAddress() (address string) {
	<-s.addressSet
	return s.address
}
