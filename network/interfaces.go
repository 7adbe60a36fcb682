// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"github.com/ChainSafe/devp2p-bridge/types"
)

// Sink is the consumer of every inbound network event.
// Implementations are expected to enqueue the event and return promptly.
type Sink interface {
	ReceiveMessage(peer types.PeerID, protocol types.ProtocolID, messageID uint64, data []byte)
	Connected(peer types.PeerID, capabilities types.Capabilities)
	Disconnected(peer types.PeerID)
}

// Transport is the devp2p stack the service runs on.
type Transport interface {
	Start() error
	Stop() error
	RegisterProtocol(id types.ProtocolID, handler ProtocolHandler) error
	WithContext(id types.ProtocolID, fn func(ctx Context) error) error
	DisconnectPeer(peer types.PeerID)
	DisablePeer(peer types.PeerID)
	PeerCount() int
}

// Context gives access to the sessions of a single sub-protocol.
type Context interface {
	Protocol() types.ProtocolID
	Send(peer types.PeerID, messageID uint64, data []byte) error
	SessionInfo(peer types.PeerID) (info SessionInfo, ok bool)
}

// ProtocolHandler is called by the transport for the sessions of
// the sub-protocol it is registered for.
type ProtocolHandler interface {
	Read(ctx Context, peer types.PeerID, messageID uint64, data []byte)
	Connected(ctx Context, peer types.PeerID)
	Disconnected(ctx Context, peer types.PeerID)
}

// SessionInfo describes the live session with a peer.
type SessionInfo struct {
	ClientID      string
	RemoteAddress string
	Capabilities  []Capability
}

// Capability is a sub-protocol version advertised by a peer during the handshake.
type Capability struct {
	Name    string
	Version uint
}
