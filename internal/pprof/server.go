// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pprof

import (
	"net/http/pprof"

	"github.com/gorilla/mux"

	"github.com/ChainSafe/devp2p-bridge/internal/httpserver"
)

// NewServer creates a new pprof server which will listen at
// the address specified.
func NewServer(address string, logger httpserver.Logger,
	options ...httpserver.Option) *httpserver.Server {
	router := mux.NewRouter()
	router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("/debug/pprof/profile", pprof.Profile)
	router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("/debug/pprof/trace", pprof.Trace)
	// the index serves the named profiles such as heap and goroutine
	router.PathPrefix("/debug/pprof/").HandlerFunc(pprof.Index)

	options = append([]httpserver.Option{
		httpserver.Address(address),
		httpserver.Handler(router),
		httpserver.WithLogger("pprof", logger),
	}, options...)
	return httpserver.New(options...)
}
