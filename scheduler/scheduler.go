// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/ChainSafe/devp2p-bridge/internal/log"
	"github.com/ChainSafe/devp2p-bridge/network"
	"github.com/ChainSafe/devp2p-bridge/types"
)

// DefaultQueueSize is the default capacity of the inbound event queue.
const DefaultQueueSize = 1024

var logger = log.NewFromGlobal(log.AddContext("pkg", "scheduler"))

var _ network.Sink = (*Scheduler)(nil)

// Config is the scheduler configuration.
type Config struct {
	LogLvl     log.Level
	QueueSize  int
	Network    Network
	Blockchain Blockchain
}

type eventKind uint8

const (
	messageEvent eventKind = iota
	connectedEvent
	disconnectedEvent
)

type event struct {
	kind         eventKind
	peer         types.PeerID
	protocol     types.ProtocolID
	messageID    uint64
	data         []byte
	capabilities types.Capabilities
}

// Scheduler consumes the inbound network events on a single worker,
// serving header requests from the blockchain and importing the
// headers received.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	network    Network
	blockchain Blockchain
	queue      chan event

	startStopMutex sync.Mutex
	started        bool

	peersMutex sync.RWMutex
	peers      map[types.PeerID]types.Capabilities
}

// NewScheduler creates a scheduler. It must be started with Start.
func NewScheduler(cfg Config) (*Scheduler, error) {
	if cfg.Network == nil {
		return nil, ErrNilNetwork
	}

	if cfg.Blockchain == nil {
		return nil, ErrNilBlockchain
	}

	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}

	logger.Patch(log.SetLevel(cfg.LogLvl))

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
		network:    cfg.Network,
		blockchain: cfg.Blockchain,
		queue:      make(chan event, cfg.QueueSize),
		peers:      make(map[types.PeerID]types.Capabilities),
	}, nil
}

// Start starts the worker, registers the scheduler as the network
// sink and starts the network.
func (s *Scheduler) Start() error {
	s.startStopMutex.Lock()
	defer s.startStopMutex.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true

	go s.run()

	s.network.RegisterHandler(s)

	err := s.network.Start()
	if err != nil {
		s.cancel()
		<-s.done
		return fmt.Errorf("starting network: %w", err)
	}

	logger.Info("scheduler started")
	return nil
}

// Stop stops the network and then the worker.
// Events still queued are discarded.
func (s *Scheduler) Stop() error {
	s.startStopMutex.Lock()
	defer s.startStopMutex.Unlock()

	if !s.started || s.ctx.Err() != nil {
		return nil
	}

	err := s.network.Stop()

	s.cancel()
	<-s.done

	if err != nil {
		return fmt.Errorf("stopping network: %w", err)
	}

	logger.Info("scheduler stopped")
	return nil
}

// ReceiveMessage implements network.Sink. The message is dropped
// if the queue is full.
func (s *Scheduler) ReceiveMessage(peer types.PeerID, protocol types.ProtocolID,
	messageID uint64, data []byte) {
	if s.ctx.Err() != nil {
		return
	}

	select {
	case s.queue <- event{
		kind:      messageEvent,
		peer:      peer,
		protocol:  protocol,
		messageID: messageID,
		data:      data,
	}:
	default:
		droppedEvents.Inc()
		logger.Warnf("queue is full, dropping message with id %d from peer %s on protocol %s",
			messageID, peer.TerminalString(), protocol)
	}
}

// Connected implements network.Sink. It waits for space in the
// queue unless the scheduler is stopped.
func (s *Scheduler) Connected(peer types.PeerID, capabilities types.Capabilities) {
	s.enqueue(event{kind: connectedEvent, peer: peer, capabilities: capabilities})
}

// Disconnected implements network.Sink. It waits for space in the
// queue unless the scheduler is stopped.
func (s *Scheduler) Disconnected(peer types.PeerID) {
	s.enqueue(event{kind: disconnectedEvent, peer: peer})
}

func (s *Scheduler) enqueue(e event) {
	select {
	case s.queue <- e:
	case <-s.ctx.Done():
	}
}

// Peers returns the connected peers and their capabilities.
func (s *Scheduler) Peers() map[types.PeerID]types.Capabilities {
	s.peersMutex.RLock()
	defer s.peersMutex.RUnlock()

	peers := make(map[types.PeerID]types.Capabilities, len(s.peers))
	for peer, capabilities := range s.peers {
		peers[peer] = capabilities
	}
	return peers
}

// PeerCount returns the number of connected peers.
func (s *Scheduler) PeerCount() int {
	s.peersMutex.RLock()
	defer s.peersMutex.RUnlock()
	return len(s.peers)
}

func (s *Scheduler) run() {
	defer close(s.done)

	for {
		select {
		case <-s.ctx.Done():
			return
		case e := <-s.queue:
			s.handleEvent(e)
		}
	}
}

func (s *Scheduler) handleEvent(e event) {
	switch e.kind {
	case connectedEvent:
		s.peersMutex.Lock()
		s.peers[e.peer] = e.capabilities
		s.peersMutex.Unlock()
		logger.Debugf("peer %s connected with protocols %v", e.peer.TerminalString(), e.capabilities.Protocols())
	case disconnectedEvent:
		s.peersMutex.Lock()
		delete(s.peers, e.peer)
		s.peersMutex.Unlock()
		logger.Debugf("peer %s disconnected", e.peer.TerminalString())
	case messageEvent:
		s.handleMessage(e.peer, e.protocol, e.messageID, e.data)
	}
}
