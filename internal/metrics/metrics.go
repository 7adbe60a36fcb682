// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ChainSafe/devp2p-bridge/internal/httpserver"
	"github.com/ChainSafe/devp2p-bridge/internal/log"
)

const stopTimeout = 30 * time.Second

var (
	// ErrServerStopped is returned when the metrics server exits before being stopped.
	ErrServerStopped = errors.New("metrics server exited unexpectedly")
	// ErrStopTimeout is returned when the metrics server does not stop in time.
	ErrStopTimeout = errors.New("metrics server exit timeout")
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

// Server is a metrics http server
type Server struct {
	cancel context.CancelFunc
	server *httpserver.Server
	done   chan error
}

// NewServer is a constructor for metrics server
func NewServer(address string) (s *Server) {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return &Server{
		server: httpserver.New(
			httpserver.Address(address),
			httpserver.Handler(router),
			httpserver.WithLogger("metrics", logger),
		),
	}
}

// Start will start a dedicated metrics server at the given address.
func (s *Server) Start() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})
	s.done = make(chan error, 1)

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		logger.Infof("metrics available at http://%s/metrics", s.server.GetAddress())
		return nil
	case err := <-s.done:
		cancel()
		if err != nil {
			return err
		}
		return ErrServerStopped
	}
}

// Address returns the address the server listens on.
func (s *Server) Address() string {
	return s.server.GetAddress()
}

// Stop will stop the metrics server
func (s *Server) Stop() (err error) {
	s.cancel()

	timer := time.NewTimer(stopTimeout)
	defer timer.Stop()

	select {
	case err := <-s.done:
		if err != nil {
			return fmt.Errorf("running metrics server: %w", err)
		}
		return nil
	case <-timer.C:
		return ErrStopTimeout
	}
}
