// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scheduler

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/eth/protocols/eth"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/ChainSafe/devp2p-bridge/types"
)

// maxHeadersServe is the maximum number of headers sent in a single response.
const maxHeadersServe = 1024

func (s *Scheduler) handleMessage(peer types.PeerID, protocol types.ProtocolID,
	messageID uint64, data []byte) {
	if protocol != types.Eth {
		logger.Tracef("ignoring message with id %d from peer %s on protocol %s",
			messageID, peer.TerminalString(), protocol)
		return
	}

	switch messageID {
	case eth.GetBlockHeadersMsg:
		s.handleGetBlockHeaders(peer, data)
	case eth.BlockHeadersMsg:
		s.handleBlockHeaders(peer, data)
	default:
		logger.Tracef("ignoring eth message with id %d from peer %s",
			messageID, peer.TerminalString())
	}
}

func (s *Scheduler) handleGetBlockHeaders(peer types.PeerID, data []byte) {
	var request eth.GetBlockHeadersPacket66
	err := rlp.DecodeBytes(data, &request)
	if err == nil && request.GetBlockHeadersPacket == nil {
		err = errEmptyRequest
	}
	if err != nil {
		logger.Debugf("kicking peer %s for invalid header request: %s", peer.TerminalString(), err)
		s.network.Penalize(peer, types.Kick)
		return
	}

	query := request.GetBlockHeadersPacket
	amount := query.Amount
	if amount > maxHeadersServe {
		amount = maxHeadersServe
	}

	origin := types.NumberID(query.Origin.Number)
	if query.Origin.Hash != (common.Hash{}) {
		origin = types.HashID(query.Origin.Hash)
	}

	headers := s.blockchain.HeaderRequest(origin, amount, query.Skip, query.Reverse)

	response, err := rlp.EncodeToBytes(&eth.BlockHeadersPacket66{
		RequestId:          request.RequestId,
		BlockHeadersPacket: eth.BlockHeadersPacket(headers),
	})
	if err != nil {
		logger.Errorf("cannot encode %d headers for peer %s: %s", len(headers), peer.TerminalString(), err)
		return
	}

	logger.Tracef("serving %d headers from %s to peer %s", len(headers), origin, peer.TerminalString())
	s.network.Send(types.Eth, peer, eth.BlockHeadersMsg, response)
	servedRequests.Inc()
}

func (s *Scheduler) handleBlockHeaders(peer types.PeerID, data []byte) {
	var response eth.BlockHeadersPacket66
	err := rlp.DecodeBytes(data, &response)
	if err != nil {
		logger.Debugf("kicking peer %s for invalid headers: %s", peer.TerminalString(), err)
		s.network.Penalize(peer, types.Kick)
		return
	}

	for _, header := range response.BlockHeadersPacket {
		err = s.blockchain.ImportHeader(header)
		if err != nil {
			logger.Debugf("kicking peer %s for header not imported: %s", peer.TerminalString(), err)
			s.network.Penalize(peer, types.Kick)
			return
		}
		receivedHeaders.Inc()
	}

	logger.Tracef("imported %d headers from peer %s", len(response.BlockHeadersPacket), peer.TerminalString())
}
