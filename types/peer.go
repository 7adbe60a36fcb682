// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"encoding/hex"
	"fmt"
)

// PeerIDLength is the length in bytes of a PeerID.
const PeerIDLength = 32

// PeerID identifies a remote peer for the lifetime of its session.
// It is the node ID assigned by the devp2p transport.
type PeerID [PeerIDLength]byte

// NewPeerID casts a byte slice to a PeerID.
// If the input is longer than 32 bytes, it takes the first 32 bytes.
func NewPeerID(in []byte) (id PeerID) {
	copy(id[:], in)
	return id
}

// String returns the full hex encoding of the peer ID.
func (id PeerID) String() string {
	return hex.EncodeToString(id[:])
}

// TerminalString returns a shortened hex string suitable for logs.
func (id PeerID) TerminalString() string {
	return hex.EncodeToString(id[:8])
}

// Penalty is the action taken against a misbehaving peer.
type Penalty uint8

const (
	// Kick disconnects the peer. The session may be established again later.
	Kick Penalty = iota
	// Ban disconnects the peer and refuses any further session with it.
	Ban
)

func (p Penalty) String() string {
	switch p {
	case Kick:
		return "kick"
	case Ban:
		return "ban"
	default:
		return fmt.Sprintf("penalty(%d)", uint8(p))
	}
}
