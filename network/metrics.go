// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "devp2p_bridge_network"

var (
	inboundMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "inbound_messages_total",
		Help:      "Messages received from peers, by protocol.",
	}, []string{"protocol"})
	outboundMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "outbound_messages_total",
		Help:      "Messages sent to peers, by protocol.",
	}, []string{"protocol"})
	droppedMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "dropped_messages_total",
		Help:      "Outbound messages dropped because no session could carry them, by protocol.",
	}, []string{"protocol"})
	penalties = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "penalties_total",
		Help:      "Penalties applied to peers, by kind.",
	}, []string{"kind"})
	connectedPeers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "connected_peers",
		Help:      "Peers with a session reported to the sink.",
	})
)
