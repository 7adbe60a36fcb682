// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"
	"sort"
)

// ProtocolNameLength is the length of a sub-protocol tag on the wire.
const ProtocolNameLength = 3

// ProtocolID is the closed set of sub-protocols the node knows about.
type ProtocolID uint8

const (
	// Eth is the ethereum wire protocol.
	Eth ProtocolID = iota
	// Parity is the parity warp sync protocol.
	Parity
)

// KnownProtocols lists every ProtocolID, in order.
var KnownProtocols = []ProtocolID{Eth, Parity}

// Name returns the 3 bytes tag used on the wire for the sub-protocol,
// or an empty string for an unknown ID.
func (p ProtocolID) Name() string {
	switch p {
	case Eth:
		return "eth"
	case Parity:
		return "par"
	default:
		return ""
	}
}

// IsKnown returns true if the ID is one of the KnownProtocols.
func (p ProtocolID) IsKnown() bool {
	return p.Name() != ""
}

func (p ProtocolID) String() string {
	switch p {
	case Eth:
		return "Eth"
	case Parity:
		return "Parity"
	default:
		return fmt.Sprintf("ProtocolID(%d)", uint8(p))
	}
}

// ProtocolIDFromName resolves a wire tag to its ProtocolID.
// It returns false for tags the node does not know.
func ProtocolIDFromName(name string) (id ProtocolID, ok bool) {
	if len(name) != ProtocolNameLength {
		return 0, false
	}

	for _, id := range KnownProtocols {
		if id.Name() == name {
			return id, true
		}
	}
	return 0, false
}

// Capabilities maps each sub-protocol a peer supports to the
// versions it advertises for it. Versions are sorted and unique.
type Capabilities map[ProtocolID][]uint

// Add records the version for the protocol given.
func (c Capabilities) Add(protocol ProtocolID, version uint) {
	versions := c[protocol]
	i := sort.Search(len(versions), func(i int) bool { return versions[i] >= version })
	if i < len(versions) && versions[i] == version {
		return
	}

	versions = append(versions, 0)
	copy(versions[i+1:], versions[i:])
	versions[i] = version
	c[protocol] = versions
}

// Has returns true if the version of the protocol given is present.
func (c Capabilities) Has(protocol ProtocolID, version uint) bool {
	versions := c[protocol]
	i := sort.Search(len(versions), func(i int) bool { return versions[i] >= version })
	return i < len(versions) && versions[i] == version
}

// Protocols returns the protocols present, in ascending order.
func (c Capabilities) Protocols() []ProtocolID {
	protocols := make([]ProtocolID, 0, len(c))
	for protocol := range c {
		protocols = append(protocols, protocol)
	}
	sort.Slice(protocols, func(i, j int) bool { return protocols[i] < protocols[j] })
	return protocols
}
