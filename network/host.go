// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	gethlog "github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/p2p"
	"github.com/ethereum/go-ethereum/p2p/enode"
	"github.com/ethereum/go-ethereum/p2p/enr"

	"github.com/ChainSafe/devp2p-bridge/internal/log"
	"github.com/ChainSafe/devp2p-bridge/types"
)

var _ Transport = (*host)(nil)

// sessionGateTimeout bounds the wait of a sub-protocol for its siblings
// to start before it reports the end of the session.
const sessionGateTimeout = 5 * time.Second

// host wraps a devp2p server. Every sub-protocol version is offered to
// peers when the host is created, and handlers are bound to the offered
// sub-protocols afterwards.
type host struct {
	server        *p2p.Server
	publicAddress string
	publicPort    int

	slots map[types.ProtocolID]*protocolSlot

	bannedMutex sync.RWMutex
	banned      map[types.PeerID]struct{}

	gatesMutex sync.Mutex
	gates      map[*p2p.Peer]*sessionGate
}

// sessionGate tracks the sub-protocols run by one devp2p connection.
// The ready channel is closed once every matched sub-protocol started,
// and no sub-protocol reports its disconnection before that.
type sessionGate struct {
	expected int
	arrived  int
	departed int
	ready    chan struct{}
}

// protocolSlot is the sub-protocol as offered to peers.
// Its handler is nil until one is registered.
type protocolSlot struct {
	host *host
	id   types.ProtocolID

	mutex   sync.RWMutex
	handler ProtocolHandler
	peers   map[types.PeerID]*peerSession
}

type peerSession struct {
	peer *p2p.Peer
	rw   p2p.MsgReadWriter
}

func newHost(cfg *Config, specs []ProtocolSpec) *host {
	h := &host{
		slots:  make(map[types.ProtocolID]*protocolSlot, len(specs)),
		banned: make(map[types.PeerID]struct{}),
		gates:  make(map[*p2p.Peer]*sessionGate),
	}

	if cfg.publicAddress != nil {
		h.publicAddress = cfg.publicAddress.String()
		h.publicPort = cfg.publicAddress.Port
	}

	var protocols []p2p.Protocol
	for _, spec := range specs {
		slot := &protocolSlot{
			host:  h,
			id:    spec.ID,
			peers: make(map[types.PeerID]*peerSession),
		}
		h.slots[spec.ID] = slot

		for _, version := range spec.Versions {
			protocols = append(protocols, p2p.Protocol{
				Name:    spec.ID.Name(),
				Version: version.Number,
				Length:  version.MessageCount,
				Run:     slot.run,
			})
		}
	}

	serverLogger := gethlog.New("pkg", "p2p")
	serverLogger.SetHandler(log.NewGethHandler(logger.New(log.AddContext("module", "p2p"))))

	h.server = &p2p.Server{
		Config: p2p.Config{
			PrivateKey:     cfg.privateKey,
			MaxPeers:       cfg.MaxPeers,
			Name:           cfg.ClientVersion,
			BootstrapNodes: cfg.bootNodes,
			NoDiscovery:    cfg.NoDiscovery,
			ListenAddr:     cfg.ListenAddress,
			NAT:            cfg.nat,
			NodeDatabase:   cfg.nodeDatabase(),
			Protocols:      protocols,
			Logger:         serverLogger,
		},
	}

	return h
}

// Start starts the devp2p server.
func (h *host) Start() error {
	err := h.server.Start()
	if err != nil {
		return err
	}

	if h.publicPort != 0 {
		localNode := h.server.LocalNode()
		localNode.Set(enr.TCP(h.publicPort))
		localNode.SetFallbackUDP(h.publicPort)
	}

	logger.Infof("started devp2p server at %s", h.server.Self().URLv4())
	if h.publicAddress != "" {
		logger.Infof("announcing public address %s", h.publicAddress)
	}
	return nil
}

// Stop stops the devp2p server, disconnecting all peers.
func (h *host) Stop() error {
	h.server.Stop()
	return nil
}

// self returns the node record of the host. The host must be started.
func (h *host) self() *enode.Node {
	return h.server.Self()
}

func (h *host) RegisterProtocol(id types.ProtocolID, handler ProtocolHandler) error {
	slot, ok := h.slots[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrProtocolNotOffered, id)
	}

	slot.mutex.Lock()
	defer slot.mutex.Unlock()

	if slot.handler != nil {
		return fmt.Errorf("%w: %s", ErrProtocolAlreadyRegistered, id)
	}
	slot.handler = handler
	return nil
}

func (h *host) WithContext(id types.ProtocolID, fn func(ctx Context) error) error {
	slot, ok := h.slots[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrProtocolNotOffered, id)
	}
	return fn(slot)
}

func (h *host) DisconnectPeer(peer types.PeerID) {
	for _, p := range h.sessionPeers(peer) {
		p.Disconnect(p2p.DiscRequested)
	}
}

func (h *host) DisablePeer(peer types.PeerID) {
	h.bannedMutex.Lock()
	h.banned[peer] = struct{}{}
	h.bannedMutex.Unlock()

	for _, p := range h.sessionPeers(peer) {
		p.Disconnect(p2p.DiscUselessPeer)
	}
}

func (h *host) isBanned(peer types.PeerID) bool {
	h.bannedMutex.RLock()
	defer h.bannedMutex.RUnlock()
	_, banned := h.banned[peer]
	return banned
}

// PeerCount returns the number of peers running at least one
// of the offered sub-protocols.
func (h *host) PeerCount() int {
	peers := make(map[types.PeerID]struct{})
	for _, slot := range h.slots {
		slot.mutex.RLock()
		for peer := range slot.peers {
			peers[peer] = struct{}{}
		}
		slot.mutex.RUnlock()
	}
	return len(peers)
}

// sessionPeers returns the devp2p peer for each sub-protocol
// session with the peer given.
func (h *host) sessionPeers(peer types.PeerID) (peers []*p2p.Peer) {
	for _, slot := range h.slots {
		slot.mutex.RLock()
		session, ok := slot.peers[peer]
		slot.mutex.RUnlock()
		if ok {
			peers = append(peers, session.peer)
		}
	}
	return peers
}

// matchedProtocols returns the number of sub-protocols the devp2p server
// runs for a peer advertising the capabilities given, that is the number
// of distinct names with at least one version offered by both sides.
func (h *host) matchedProtocols(caps []p2p.Cap) int {
	names := make(map[string]struct{})
	for _, c := range caps {
		for _, protocol := range h.server.Protocols {
			if protocol.Name == c.Name && protocol.Version == c.Version {
				names[c.Name] = struct{}{}
				break
			}
		}
	}
	return len(names)
}

// arrive records that one sub-protocol of the connection started.
func (h *host) arrive(p *p2p.Peer) *sessionGate {
	h.gatesMutex.Lock()
	defer h.gatesMutex.Unlock()

	gate, ok := h.gates[p]
	if !ok {
		expected := h.matchedProtocols(p.Caps())
		if expected < 1 {
			expected = 1
		}
		gate = &sessionGate{
			expected: expected,
			ready:    make(chan struct{}),
		}
		h.gates[p] = gate
	}

	gate.arrived++
	if gate.arrived == gate.expected {
		close(gate.ready)
	}
	return gate
}

// depart records that one sub-protocol of the connection ended. If wait
// is true, it first waits for all the sub-protocols of the connection
// to have started.
func (h *host) depart(p *p2p.Peer, gate *sessionGate, wait bool) {
	timedOut := false
	if wait {
		timer := time.NewTimer(sessionGateTimeout)
		select {
		case <-gate.ready:
		case <-timer.C:
			timedOut = true
			logger.Warnf("peer %s: %d of %d sub-protocols started after %s",
				types.PeerID(p.ID()).TerminalString(), gate.arrived, gate.expected, sessionGateTimeout)
		}
		timer.Stop()
	}

	h.gatesMutex.Lock()
	defer h.gatesMutex.Unlock()

	gate.departed++
	if gate.departed == gate.expected || (timedOut && gate.departed == gate.arrived) {
		delete(h.gates, p)
	}
}

// run is called by the devp2p server for each peer negotiating
// the sub-protocol, and returns when the session ends.
func (s *protocolSlot) run(p *p2p.Peer, rw p2p.MsgReadWriter) error {
	peer := types.PeerID(p.ID())

	if s.host.isBanned(peer) {
		s.host.depart(p, s.host.arrive(p), false)
		logger.Debugf("rejecting banned peer %s", peer.TerminalString())
		return p2p.DiscUselessPeer
	}

	s.mutex.Lock()
	handler := s.handler
	if handler == nil {
		s.mutex.Unlock()
		s.host.depart(p, s.host.arrive(p), false)
		logger.Debugf("rejecting peer %s: no handler for protocol %s", peer.TerminalString(), s.id)
		return p2p.DiscSubprotocolError
	}
	s.peers[peer] = &peerSession{peer: p, rw: rw}
	s.mutex.Unlock()

	handler.Connected(s, peer)
	gate := s.host.arrive(p)

	err := s.readMessages(handler, peer, rw)

	s.mutex.Lock()
	delete(s.peers, peer)
	s.mutex.Unlock()

	// a sibling sub-protocol still starting must report its connection
	// before this one reports the disconnection
	s.host.depart(p, gate, true)
	handler.Disconnected(s, peer)
	return err
}

func (s *protocolSlot) readMessages(handler ProtocolHandler, peer types.PeerID, rw p2p.MsgReadWriter) error {
	for {
		msg, err := rw.ReadMsg()
		if err != nil {
			return err
		}

		data := make([]byte, msg.Size)
		_, err = io.ReadFull(msg.Payload, data)
		if err != nil {
			return fmt.Errorf("reading message payload: %w", err)
		}

		err = msg.Discard()
		if err != nil {
			return fmt.Errorf("discarding message: %w", err)
		}

		handler.Read(s, peer, msg.Code, data)
	}
}

// Protocol implements Context.
func (s *protocolSlot) Protocol() types.ProtocolID {
	return s.id
}

// Send implements Context.
func (s *protocolSlot) Send(peer types.PeerID, messageID uint64, data []byte) error {
	s.mutex.RLock()
	session, ok := s.peers[peer]
	s.mutex.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s on protocol %s", ErrPeerNotConnected, peer.TerminalString(), s.id)
	}

	return session.rw.WriteMsg(p2p.Msg{
		Code:    messageID,
		Size:    uint32(len(data)),
		Payload: bytes.NewReader(data),
	})
}

// SessionInfo implements Context.
func (s *protocolSlot) SessionInfo(peer types.PeerID) (info SessionInfo, ok bool) {
	s.mutex.RLock()
	session, ok := s.peers[peer]
	s.mutex.RUnlock()
	if !ok {
		return info, false
	}

	caps := session.peer.Caps()
	info = SessionInfo{
		ClientID:      session.peer.Name(),
		RemoteAddress: session.peer.RemoteAddr().String(),
		Capabilities:  make([]Capability, len(caps)),
	}
	for i, c := range caps {
		info.Capabilities[i] = Capability{Name: c.Name, Version: c.Version}
	}
	return info, true
}
