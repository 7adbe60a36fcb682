// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/ChainSafe/devp2p-bridge/config"
	"github.com/ChainSafe/devp2p-bridge/internal/log"
	"github.com/ChainSafe/devp2p-bridge/network"
	"github.com/ChainSafe/devp2p-bridge/types"
)

// loadConfig loads the default configuration, overrides it with the
// toml file given by --config if any and finally with the flag values.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if path := ctx.String(ConfigFlag.Name); path != "" {
		logger.Info("loading toml configuration from " + path + "...")
		err := config.LoadFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("loading configuration: %w", err)
		}
	}

	setGlobalConfig(ctx, &cfg.Global)
	setLogConfig(ctx, &cfg.Log)
	setNetworkConfig(ctx, &cfg.Network)

	return cfg, nil
}

func setGlobalConfig(ctx *cli.Context, cfg *config.GlobalConfig) {
	if basePath := ctx.String(BasePathFlag.Name); basePath != "" {
		cfg.BasePath = basePath
	}

	if runFor := ctx.Duration(RunForFlag.Name); runFor != 0 {
		cfg.RunFor = config.Duration{Duration: runFor}
	}

	if address := ctx.String(MetricsAddressFlag.Name); address != "" {
		cfg.MetricsAddress = address
	}

	if address := ctx.String(PprofAddressFlag.Name); address != "" {
		cfg.PprofAddress = address
	}

	if lvl := ctx.String(LogFlag.Name); lvl != "" {
		cfg.LogLvl = lvl
	}
}

func setLogConfig(ctx *cli.Context, cfg *config.LogConfig) {
	if lvl := ctx.String(LogNetworkLevelFlag.Name); lvl != "" {
		cfg.NetworkLvl = lvl
	}

	if lvl := ctx.String(LogStateLevelFlag.Name); lvl != "" {
		cfg.StateLvl = lvl
	}

	if lvl := ctx.String(LogSchedulerLevelFlag.Name); lvl != "" {
		cfg.SchedulerLvl = lvl
	}

	if caller := ctx.String(LogCallerFlag.Name); caller != "" {
		cfg.Caller = strings.Split(caller, ",")
	}

	if ctx.Bool(LogColouredFlag.Name) {
		cfg.Coloured = true
	}
}

// errUnknownCallerField is returned for a caller detail other than file, line or func.
var errUnknownCallerField = errors.New("unknown log caller field")

// logFormatOptions returns the logger options setting the caller
// details and the colouring of log lines.
func logFormatOptions(cfg config.LogConfig) ([]log.Option, error) {
	var file, line, function bool
	for _, field := range cfg.Caller {
		switch strings.TrimSpace(field) {
		case "file":
			file = true
		case "line":
			line = true
		case "func":
			function = true
		default:
			return nil, fmt.Errorf("%w: %q", errUnknownCallerField, field)
		}
	}

	return []log.Option{
		log.SetCallerFile(file),
		log.SetCallerLine(line),
		log.SetCallerFunc(function),
		log.SetColoured(cfg.Coloured),
	}, nil
}

func setNetworkConfig(ctx *cli.Context, cfg *config.NetworkConfig) {
	if address := ctx.String(ListenFlag.Name); address != "" {
		cfg.ListenAddress = address
	}

	if address := ctx.String(PublicAddrFlag.Name); address != "" {
		cfg.PublicAddress = address
	}

	if bootnodes := ctx.String(BootnodesFlag.Name); bootnodes != "" {
		cfg.BootNodes = strings.Split(bootnodes, ",")
	}

	if ctx.Bool(NATFlag.Name) {
		cfg.NATEnabled = true
	}

	if minPeers := ctx.Int(MinPeersFlag.Name); minPeers > 0 {
		cfg.MinPeers = minPeers
	}

	if maxPeers := ctx.Int(MaxPeersFlag.Name); maxPeers > 0 {
		cfg.MaxPeers = maxPeers
	}

	if ctx.Bool(NoDiscoverFlag.Name) {
		cfg.NoDiscovery = true
	}
}

type logLevels struct {
	global    log.Level
	network   log.Level
	state     log.Level
	scheduler log.Level
}

// parseLogLevels parses the log levels of the configuration, package
// levels left empty default to the global level.
func parseLogLevels(global config.GlobalConfig, cfg config.LogConfig) (levels logLevels, err error) {
	levels.global = log.Info
	if global.LogLvl != "" {
		levels.global, err = log.ParseLevel(global.LogLvl)
		if err != nil {
			return levels, fmt.Errorf("parsing global log level: %w", err)
		}
	}

	packageLevels := []struct {
		name  string
		value string
		level *log.Level
	}{
		{name: "network", value: cfg.NetworkLvl, level: &levels.network},
		{name: "state", value: cfg.StateLvl, level: &levels.state},
		{name: "scheduler", value: cfg.SchedulerLvl, level: &levels.scheduler},
	}

	for _, packageLevel := range packageLevels {
		if packageLevel.value == "" {
			*packageLevel.level = levels.global
			continue
		}

		*packageLevel.level, err = log.ParseLevel(packageLevel.value)
		if err != nil {
			return levels, fmt.Errorf("parsing %s log level: %w", packageLevel.name, err)
		}
	}

	return levels, nil
}

// createNetworkConfig converts the toml network configuration to the
// network service configuration.
func createNetworkConfig(cfg *config.Config, logLvl log.Level) (*network.Config, error) {
	protocols, err := createProtocolSpecs(cfg.Network.Protocols)
	if err != nil {
		return nil, err
	}

	return &network.Config{
		LogLvl:        logLvl,
		ClientVersion: cfg.Network.ClientVersion,
		PublicAddress: cfg.Network.PublicAddress,
		ListenAddress: cfg.Network.ListenAddress,
		BootNodes:     cfg.Network.BootNodes,
		NATEnabled:    cfg.Network.NATEnabled,
		MinPeers:      cfg.Network.MinPeers,
		MaxPeers:      cfg.Network.MaxPeers,
		NoDiscovery:   cfg.Network.NoDiscovery,
		BasePath:      cfg.Global.BasePath,
		Protocols:     protocols,
	}, nil
}

func createProtocolSpecs(protocols []config.ProtocolConfig) (specs []network.ProtocolSpec, err error) {
	if len(protocols) == 0 {
		return nil, nil
	}

	specs = make([]network.ProtocolSpec, len(protocols))
	for i, protocol := range protocols {
		id, ok := types.ProtocolIDFromName(protocol.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", network.ErrUnknownProtocol, protocol.Name)
		}

		versions := make([]network.VersionInfo, len(protocol.Versions))
		for j, version := range protocol.Versions {
			versions[j] = network.VersionInfo{
				Number:       version.Number,
				MessageCount: version.MessageCount,
			}
		}

		specs[i] = network.ProtocolSpec{ID: id, Versions: versions}
	}

	return specs, nil
}
