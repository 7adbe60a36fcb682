// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "devp2p_bridge_state"

var (
	importedHeaders = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "imported_headers_total",
		Help:      "Total number of headers imported in the in-memory blockchain.",
	})
	bestBlockNumber = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "best_block_number",
		Help:      "Highest block number stored in the in-memory blockchain.",
	})
)
