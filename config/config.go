// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/naoina/toml"

	"github.com/ChainSafe/devp2p-bridge/network"
)

const (
	// DefaultLogLvl is the default global log level
	DefaultLogLvl = "info"
	// DefaultRunFor is the default time the node runs for before stopping
	DefaultRunFor = 300 * time.Second
)

// Config is a collection of configurations throughout the system
type Config struct {
	Global  GlobalConfig  `toml:"global,omitempty"`
	Log     LogConfig     `toml:"log,omitempty"`
	Network NetworkConfig `toml:"network,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	BasePath       string   `toml:"basepath,omitempty"`
	LogLvl         string   `toml:"log,omitempty"`
	RunFor         Duration `toml:"run-for,omitempty"`
	MetricsAddress string   `toml:"metrics-address,omitempty"`
	PprofAddress   string   `toml:"pprof-address,omitempty"`
}

// LogConfig represents the log levels for individual packages
// and the format of log lines.
// An empty level falls back to the global log level.
type LogConfig struct {
	NetworkLvl   string `toml:"network,omitempty"`
	StateLvl     string `toml:"state,omitempty"`
	SchedulerLvl string `toml:"scheduler,omitempty"`
	// Caller lists the caller details added to each line, among file, line and func
	Caller   []string `toml:"caller,omitempty"`
	Coloured bool     `toml:"coloured,omitempty"`
}

// NetworkConfig is to marshal/unmarshal toml network config vars
type NetworkConfig struct {
	ClientVersion string           `toml:"client-version,omitempty"`
	PublicAddress string           `toml:"public-address,omitempty"`
	ListenAddress string           `toml:"listen-address,omitempty"`
	BootNodes     []string         `toml:"bootnodes,omitempty"`
	NATEnabled    bool             `toml:"nat,omitempty"`
	MinPeers      int              `toml:"min-peers,omitempty"`
	MaxPeers      int              `toml:"max-peers,omitempty"`
	NoDiscovery   bool             `toml:"nodiscover,omitempty"`
	Protocols     []ProtocolConfig `toml:"protocols,omitempty"`
}

// ProtocolConfig is a sub-protocol served by the node, identified by its wire tag
type ProtocolConfig struct {
	Name     string          `toml:"name"`
	Versions []VersionConfig `toml:"versions"`
}

// VersionConfig is a version of a sub-protocol
type VersionConfig struct {
	Number       uint   `toml:"number"`
	MessageCount uint64 `toml:"message-count"`
}

// Duration is a time.Duration written as a string such as "5m30s" in toml.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Global: GlobalConfig{
			LogLvl: DefaultLogLvl,
			RunFor: Duration{DefaultRunFor},
		},
		Network: NetworkConfig{
			ClientVersion: network.DefaultClientVersion,
			ListenAddress: network.DefaultListenAddress,
			MinPeers:      network.DefaultMinPeers,
			MaxPeers:      network.DefaultMaxPeers,
		},
	}
}

// LoadFile decodes the toml file at the path given into cfg.
// Values absent from the file are left untouched.
func LoadFile(path string, cfg *Config) (err error) {
	fp, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("finding absolute path of %s: %w", path, err)
	}

	file, err := os.Open(filepath.Clean(fp))
	if err != nil {
		return fmt.Errorf("opening configuration file: %w", err)
	}
	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing configuration file: %w", closeErr)
		}
	}()

	err = toml.NewDecoder(file).Decode(cfg)
	if err != nil {
		return fmt.Errorf("decoding toml from %s: %w", fp, err)
	}

	return nil
}

// WriteFile encodes cfg as toml and writes it to the path given.
func WriteFile(path string, cfg *Config) error {
	data, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("encoding toml: %w", err)
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		return fmt.Errorf("writing configuration file: %w", err)
	}
	return nil
}
