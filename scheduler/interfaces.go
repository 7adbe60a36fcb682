// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scheduler

import (
	ethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/ChainSafe/devp2p-bridge/network"
	"github.com/ChainSafe/devp2p-bridge/types"
)

// Network is the network service the scheduler drives.
type Network interface {
	Start() error
	Stop() error
	RegisterHandler(sink network.Sink)
	Send(protocol types.ProtocolID, peer types.PeerID, messageID uint64, data []byte)
	Penalize(peer types.PeerID, kind types.Penalty)
}

// Blockchain is the header store serving and receiving headers.
type Blockchain interface {
	HeaderRequest(start types.BlockID, max, skip uint64, reverse bool) []*ethtypes.Header
	ImportHeader(header *ethtypes.Header) error
}
