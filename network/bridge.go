// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"sync"

	"github.com/ChainSafe/devp2p-bridge/types"
)

// sessionTracker reports a peer to the sink once per session,
// however many sub-protocols the session runs.
type sessionTracker struct {
	sink Sink

	// mutex is held while calling the sink for lifecycle events,
	// so that no bridge reads a message for a peer before the sink
	// has been told the peer is connected.
	mutex sync.Mutex
	peers map[types.PeerID]map[types.ProtocolID]struct{}
}

func newSessionTracker(sink Sink) *sessionTracker {
	return &sessionTracker{
		sink:  sink,
		peers: make(map[types.PeerID]map[types.ProtocolID]struct{}),
	}
}

func (t *sessionTracker) connected(peer types.PeerID, protocol types.ProtocolID,
	capabilities types.Capabilities) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	protocols, has := t.peers[peer]
	if !has {
		protocols = make(map[types.ProtocolID]struct{})
		t.peers[peer] = protocols
	}
	protocols[protocol] = struct{}{}

	if len(protocols) > 1 {
		logger.Tracef("peer %s already connected, protocol %s joins the session",
			peer.TerminalString(), protocol)
		return
	}

	connectedPeers.Inc()
	t.sink.Connected(peer, capabilities)
}

func (t *sessionTracker) disconnected(peer types.PeerID, protocol types.ProtocolID) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	protocols, has := t.peers[peer]
	if !has {
		return
	}

	if _, has := protocols[protocol]; !has {
		return
	}
	delete(protocols, protocol)

	if len(protocols) > 0 {
		return
	}

	delete(t.peers, peer)
	connectedPeers.Dec()
	t.sink.Disconnected(peer)
}

func (t *sessionTracker) peerCount() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return len(t.peers)
}

// protocolBridge is the transport handler installed for one sub-protocol.
// It forwards the transport events to the sink.
type protocolBridge struct {
	protocol types.ProtocolID
	sink     Sink
	sessions *sessionTracker
}

func newProtocolBridge(protocol types.ProtocolID, sessions *sessionTracker) *protocolBridge {
	return &protocolBridge{
		protocol: protocol,
		sink:     sessions.sink,
		sessions: sessions,
	}
}

func (b *protocolBridge) Read(_ Context, peer types.PeerID, messageID uint64, data []byte) {
	inboundMessages.WithLabelValues(b.protocol.String()).Inc()
	b.sink.ReceiveMessage(peer, b.protocol, messageID, data)
}

func (b *protocolBridge) Connected(ctx Context, peer types.PeerID) {
	capabilities := make(types.Capabilities)

	info, ok := ctx.SessionInfo(peer)
	if ok {
		logger.Debugf("peer %s connected on protocol %s from %s with client %s",
			peer.TerminalString(), b.protocol, info.RemoteAddress, info.ClientID)
		capabilities = projectCapabilities(info.Capabilities)
	} else {
		logger.Warnf("no session found for connected peer %s on protocol %s",
			peer.TerminalString(), b.protocol)
	}

	b.sessions.connected(peer, b.protocol, capabilities)
}

func (b *protocolBridge) Disconnected(_ Context, peer types.PeerID) {
	logger.Debugf("peer %s disconnected from protocol %s", peer.TerminalString(), b.protocol)
	b.sessions.disconnected(peer, b.protocol)
}

// projectCapabilities keeps the capabilities of known sub-protocols only.
func projectCapabilities(advertised []Capability) types.Capabilities {
	capabilities := make(types.Capabilities)
	for _, capability := range advertised {
		id, ok := types.ProtocolIDFromName(capability.Name)
		if !ok {
			continue
		}
		capabilities.Add(id, capability.Version)
	}
	return capabilities
}
