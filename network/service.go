// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ChainSafe/devp2p-bridge/internal/log"
	"github.com/ChainSafe/devp2p-bridge/types"
)

const peerCountLogInterval = 30 * time.Second

var logger = log.NewFromGlobal(log.AddContext("pkg", "network"))

// Service is the network facade used by the scheduler. It forwards
// inbound events from all sub-protocols to a single sink, and carries
// outbound messages and penalties to the transport.
type Service struct {
	ctx    context.Context
	cancel context.CancelFunc

	cfg       *Config
	registry  *Registry
	transport Transport

	peerCountInterval time.Duration

	stopMutex sync.Mutex

	sessionsMutex sync.RWMutex
	sessions      *sessionTracker
}

// NewService builds the configuration, creates the devp2p transport
// offering the configured sub-protocols and starts it.
func NewService(cfg *Config) (*Service, error) {
	logger.Patch(log.SetLevel(cfg.LogLvl))

	err := cfg.build()
	if err != nil {
		return nil, err
	}

	registry := newRegistryFromSpecs(cfg.Protocols)
	h := newHost(cfg, registry.Specs())

	return newService(cfg, registry, h)
}

func newService(cfg *Config, registry *Registry, transport Transport) (*Service, error) {
	err := transport.Start()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTransportStart, err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Service{
		ctx:               ctx,
		cancel:            cancel,
		cfg:               cfg,
		registry:          registry,
		transport:         transport,
		peerCountInterval: peerCountLogInterval,
	}

	go s.logPeerCount()

	return s, nil
}

// Start does nothing since the transport is started with the service.
func (s *Service) Start() error {
	if s.IsStopped() {
		logger.Warn("cannot start network service: service is stopped")
		return nil
	}
	logger.Debug("network service already started")
	return nil
}

// Stop stops the transport. It is safe to call more than once.
func (s *Service) Stop() error {
	s.stopMutex.Lock()
	defer s.stopMutex.Unlock()

	if s.IsStopped() {
		return nil
	}
	s.cancel()

	err := s.transport.Stop()
	if err != nil {
		return fmt.Errorf("stopping transport: %w", err)
	}

	logger.Info("network service stopped")
	return nil
}

// IsStopped returns true if the service is stopped.
func (s *Service) IsStopped() bool {
	return s.ctx.Err() != nil
}

// RegisterHandler installs a bridge to the sink on every registered
// sub-protocol. A sub-protocol the transport refuses is not served.
func (s *Service) RegisterHandler(sink Sink) {
	if sink == nil {
		logger.Warn("ignoring nil sink")
		return
	}

	sessions := newSessionTracker(sink)

	registered := 0
	for _, spec := range s.registry.Specs() {
		bridge := newProtocolBridge(spec.ID, sessions)
		err := s.transport.RegisterProtocol(spec.ID, bridge)
		if err != nil {
			logger.Errorf("failed to register handler for protocol %s: %s", spec.ID, err)
			continue
		}
		registered++
	}

	if registered == 0 {
		return
	}

	s.sessionsMutex.Lock()
	s.sessions = sessions
	s.sessionsMutex.Unlock()
}

// Send sends the message to the peer on the sub-protocol given.
// The message is dropped if the peer has no session on the sub-protocol.
func (s *Service) Send(protocol types.ProtocolID, peer types.PeerID, messageID uint64, data []byte) {
	if s.IsStopped() {
		s.drop(protocol, peer, messageID, "service is stopped")
		return
	}

	err := s.transport.WithContext(protocol, func(ctx Context) error {
		return ctx.Send(peer, messageID, data)
	})
	if err != nil {
		s.drop(protocol, peer, messageID, err.Error())
		return
	}

	outboundMessages.WithLabelValues(protocol.String()).Inc()
}

func (*Service) drop(protocol types.ProtocolID, peer types.PeerID, messageID uint64, reason string) {
	droppedMessages.WithLabelValues(protocol.String()).Inc()
	logger.Debugf("dropping message with id %d for peer %s on protocol %s: %s",
		messageID, peer.TerminalString(), protocol, reason)
}

// Penalize disconnects the peer for a Kick, and disconnects it
// for the lifetime of the service for a Ban.
func (s *Service) Penalize(peer types.PeerID, kind types.Penalty) {
	if s.IsStopped() {
		return
	}

	switch kind {
	case types.Kick:
		s.transport.DisconnectPeer(peer)
	case types.Ban:
		s.transport.DisablePeer(peer)
	default:
		logger.Warnf("ignoring unknown %s for peer %s", kind, peer.TerminalString())
		return
	}

	penalties.WithLabelValues(kind.String()).Inc()
	logger.Debugf("applied %s penalty to peer %s", kind, peer.TerminalString())
}

// PeerCount returns the number of peers in session with the transport.
func (s *Service) PeerCount() int {
	return s.transport.PeerCount()
}

// sessionCount returns the number of peers reported to the sink.
func (s *Service) sessionCount() int {
	s.sessionsMutex.RLock()
	defer s.sessionsMutex.RUnlock()
	if s.sessions == nil {
		return 0
	}
	return s.sessions.peerCount()
}

func (s *Service) logPeerCount() {
	ticker := time.NewTicker(s.peerCountInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			count := s.PeerCount()
			logger.Debugf("peer count %d (sessions %d), min=%d and max=%d",
				count, s.sessionCount(), s.cfg.MinPeers, s.cfg.MaxPeers)
			if count < s.cfg.MinPeers {
				logger.Warnf("peer count %d is below the minimum of %d", count, s.cfg.MinPeers)
			}
		case <-s.ctx.Done():
			return
		}
	}
}
