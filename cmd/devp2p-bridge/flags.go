// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

const logLevelUsage = "Supports levels crit (silent), eror, warn, info, dbug and trce (trace)"

// Global node configuration flags
var (
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// BasePathFlag data directory holding the node key and the node database
	BasePathFlag = cli.StringFlag{
		Name:  "basepath",
		Usage: "Data directory for the node key and the node database, in memory if empty",
	}
	// RunForFlag time to run for before stopping
	RunForFlag = cli.DurationFlag{
		Name:  "run-for",
		Usage: "Time to run for before shutting down, eg. --run-for=5m. 0 runs until interrupted",
	}
	// MetricsAddressFlag address of the prometheus metrics server
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Listening address of the prometheus metrics server, disabled if empty",
	}
	// PprofAddressFlag address of the pprof profiling server
	PprofAddressFlag = cli.StringFlag{
		Name:  "pprof-address",
		Usage: "Listening address of the pprof profiling server, disabled if empty. eg. --pprof-address=localhost:6060",
	}
)

// Log level flags
var (
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. " + logLevelUsage,
	}
	LogNetworkLevelFlag = cli.StringFlag{
		Name:  "log-network",
		Usage: "Network package log level. " + logLevelUsage,
	}
	LogStateLevelFlag = cli.StringFlag{
		Name:  "log-state",
		Usage: "State package log level. " + logLevelUsage,
	}
	LogSchedulerLevelFlag = cli.StringFlag{
		Name:  "log-scheduler",
		Usage: "Scheduler package log level. " + logLevelUsage,
	}
	// LogCallerFlag caller details added to log lines
	LogCallerFlag = cli.StringFlag{
		Name:  "log-caller",
		Usage: "Comma separated caller details added to log lines, among file, line and func. eg. --log-caller=file,line",
	}
	// LogColouredFlag colours the log levels
	LogColouredFlag = cli.BoolFlag{
		Name:  "log-coloured",
		Usage: "Colours the level of log lines",
	}
)

// Network service configuration flags
var (
	// ListenFlag local listening address
	ListenFlag = cli.StringFlag{
		Name:  "listen",
		Usage: "Local listening address, eg. --listen=0.0.0.0:30303",
	}
	// PublicAddrFlag address announced to peers
	PublicAddrFlag = cli.StringFlag{
		Name:  "public-addr",
		Usage: "Public address announced to peers, eg. --public-addr=1.2.3.4:30303",
	}
	// BootnodesFlag comma separated enode URLs
	BootnodesFlag = cli.StringFlag{
		Name:  "bootnodes",
		Usage: "Comma separated enode URLs for network discovery bootstrap",
	}
	// NATFlag enables UPnP port mapping
	NATFlag = cli.BoolFlag{
		Name:  "nat",
		Usage: "Enables port mapping with UPnP",
	}
	// MinPeersFlag minimum peer count
	MinPeersFlag = cli.IntFlag{
		Name:  "min-peers",
		Usage: "Minimum peer count, below which a warning is logged",
	}
	// MaxPeersFlag maximum peer count
	MaxPeersFlag = cli.IntFlag{
		Name:  "max-peers",
		Usage: "Maximum peer count",
	}
	// NoDiscoverFlag disables network discovery
	NoDiscoverFlag = cli.BoolFlag{
		Name:  "nodiscover",
		Usage: "Disables network discovery",
	}
)

// flags used by the root command
var (
	GlobalFlags = []cli.Flag{
		ConfigFlag,
		BasePathFlag,
		RunForFlag,
		MetricsAddressFlag,
		PprofAddressFlag,
		LogFlag,
		LogNetworkLevelFlag,
		LogStateLevelFlag,
		LogSchedulerLevelFlag,
		LogCallerFlag,
		LogColouredFlag,
	}

	NetworkFlags = []cli.Flag{
		ListenFlag,
		PublicAddrFlag,
		BootnodesFlag,
		NATFlag,
		MinPeersFlag,
		MaxPeersFlag,
		NoDiscoverFlag,
	}

	RootFlags = append(GlobalFlags, NetworkFlags...)
)
