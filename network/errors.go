// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"errors"
)

var (
	ErrProtocolAlreadyRegistered = errors.New("protocol already registered")
	ErrNoVersions                = errors.New("protocol has no version")
	ErrUnknownProtocol           = errors.New("unknown protocol")
	ErrInvalidVersion            = errors.New("invalid protocol version")
	ErrProtocolNotOffered        = errors.New("protocol not offered by the transport")
	ErrPeerNotConnected          = errors.New("peer is not connected")

	ErrInvalidPublicAddress = errors.New("invalid public address")
	ErrInvalidListenAddress = errors.New("invalid listen address")
	ErrInvalidBootNode      = errors.New("invalid boot node")
	ErrInvalidPeerBounds    = errors.New("invalid peer bounds")
	ErrTransportStart       = errors.New("cannot start transport")
)
