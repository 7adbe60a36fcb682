// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"crypto/ecdsa"
	"fmt"
	"net"
	"path/filepath"

	"github.com/ethereum/go-ethereum/p2p/enode"
	"github.com/ethereum/go-ethereum/p2p/nat"

	"github.com/ChainSafe/devp2p-bridge/internal/log"
)

const (
	// DefaultClientVersion the default value for Config.ClientVersion
	DefaultClientVersion = "devp2p-bridge/v0.1.0"

	// DefaultListenAddress the default value for Config.ListenAddress
	DefaultListenAddress = ":30303"

	// DefaultKeyFile the file name of the node key in Config.BasePath
	DefaultKeyFile = "node.key"

	// DefaultNodeDatabase the directory name of the node database in Config.BasePath
	DefaultNodeDatabase = "nodes"

	// DefaultMinPeers is the default minimum peer count
	DefaultMinPeers = 5

	// DefaultMaxPeers is the default maximum peer count
	DefaultMaxPeers = 50
)

// Config is used to configure a network service
type Config struct {
	LogLvl log.Level

	// ClientVersion the client name advertised in the handshake
	ClientVersion string
	// PublicAddress the ip:port announced to peers, optional
	PublicAddress string
	// ListenAddress the local address to listen on, optional
	ListenAddress string
	// BootNodes the enode URLs contacted at startup
	BootNodes []string
	// NATEnabled enables port mapping through UPnP
	NATEnabled bool

	MinPeers int
	MaxPeers int

	// NoDiscovery disables the discovery protocol
	NoDiscovery bool
	// BasePath the directory holding the node key and the node database.
	// If empty, an ephemeral key and an in-memory node database are used.
	BasePath string

	// Protocols the sub-protocols to serve, DefaultProtocols() if nil
	Protocols []ProtocolSpec

	privateKey    *ecdsa.PrivateKey
	bootNodes     []*enode.Node
	publicAddress *net.TCPAddr
	nat           nat.Interface
}

// build checks the configuration, sets up the node identity and applies
// default values where appropriate
func (c *Config) build() error {
	c.setDefaults()

	err := c.checkPeerBounds()
	if err != nil {
		return err
	}

	err = c.buildAddresses()
	if err != nil {
		return err
	}

	err = c.buildBootNodes()
	if err != nil {
		return err
	}

	err = c.buildIdentity()
	if err != nil {
		return err
	}

	if !c.NoDiscovery && len(c.bootNodes) == 0 {
		logger.Warn("discovery is enabled but no boot node is defined")
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.ClientVersion == "" {
		c.ClientVersion = DefaultClientVersion
	}

	if c.ListenAddress == "" {
		c.ListenAddress = DefaultListenAddress
	}

	if c.MaxPeers == 0 {
		c.MaxPeers = DefaultMaxPeers
	}

	if c.MinPeers == 0 {
		c.MinPeers = DefaultMinPeers
		if c.MaxPeers > 0 && c.MinPeers > c.MaxPeers {
			c.MinPeers = c.MaxPeers
		}
	}

	if c.Protocols == nil {
		c.Protocols = DefaultProtocols()
	}
}

func (c *Config) checkPeerBounds() error {
	if c.MinPeers < 0 || c.MaxPeers < 0 {
		return fmt.Errorf("%w: min peers %d and max peers %d cannot be negative",
			ErrInvalidPeerBounds, c.MinPeers, c.MaxPeers)
	}

	if c.MinPeers > c.MaxPeers {
		return fmt.Errorf("%w: min peers %d is higher than max peers %d",
			ErrInvalidPeerBounds, c.MinPeers, c.MaxPeers)
	}

	return nil
}

// buildAddresses validates the listen and public addresses and picks
// the NAT strategy. A public address takes precedence over UPnP.
func (c *Config) buildAddresses() error {
	err := checkListenAddress(c.ListenAddress)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidListenAddress, err)
	}

	switch {
	case c.PublicAddress != "":
		c.publicAddress, err = parsePublicAddress(c.PublicAddress)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidPublicAddress, err)
		}
		c.nat = nat.ExtIP(c.publicAddress.IP)
		if c.NATEnabled {
			logger.Warn("public address is set, ignoring NAT traversal")
		}
	case c.NATEnabled:
		c.nat = nat.UPnP()
	}

	return nil
}

func (c *Config) buildBootNodes() error {
	c.bootNodes = make([]*enode.Node, 0, len(c.BootNodes))
	for _, url := range c.BootNodes {
		node, err := enode.Parse(enode.ValidSchemes, url)
		if err != nil {
			return fmt.Errorf("%w: %s: %s", ErrInvalidBootNode, url, err)
		}
		c.bootNodes = append(c.bootNodes, node)
	}
	return nil
}

// buildIdentity attempts to load the private key of the node from the base
// path. If a key does not exist, it generates a new key and saves it.
// Without base path, a new ephemeral key is generated.
func (c *Config) buildIdentity() (err error) {
	if c.BasePath == "" {
		logger.Info("generating ephemeral p2p identity")
		c.privateKey, err = generateKey("")
		return err
	}

	key, err := loadKey(c.BasePath)
	if err != nil {
		return err
	}

	if key == nil {
		logger.Infof("generating p2p identity with key file %s",
			filepath.Join(c.BasePath, DefaultKeyFile))
		key, err = generateKey(c.BasePath)
		if err != nil {
			return err
		}
	}

	c.privateKey = key
	return nil
}

// nodeDatabase returns the path of the node database,
// or an empty string for an in-memory database.
func (c *Config) nodeDatabase() string {
	if c.BasePath == "" {
		return ""
	}
	return filepath.Join(c.BasePath, DefaultNodeDatabase)
}
