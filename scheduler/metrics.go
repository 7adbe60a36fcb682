// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scheduler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "devp2p_bridge_scheduler"

var (
	servedRequests = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "served_header_requests_total",
		Help:      "Header requests answered to peers.",
	})
	receivedHeaders = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "received_headers_total",
		Help:      "Headers received from peers and imported.",
	})
	droppedEvents = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "dropped_events_total",
		Help:      "Inbound messages dropped because the queue was full.",
	})
)
