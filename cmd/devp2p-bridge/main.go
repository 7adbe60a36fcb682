// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/ChainSafe/devp2p-bridge/internal/log"
	"github.com/ChainSafe/devp2p-bridge/internal/metrics"
	"github.com/ChainSafe/devp2p-bridge/internal/pprof"
	"github.com/ChainSafe/devp2p-bridge/network"
	"github.com/ChainSafe/devp2p-bridge/scheduler"
	"github.com/ChainSafe/devp2p-bridge/state"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

var app = cli.NewApp()

func init() {
	app.Action = bridgeAction
	app.Name = "devp2p-bridge"
	app.Usage = "Serves and imports block headers over the devp2p eth protocol"
	app.Version = network.DefaultClientVersion
	app.Flags = RootFlags
}

func main() {
	if err := app.Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// bridgeAction runs the node until the configured run time elapses
// or an interrupt signal is received.
func bridgeAction(ctx *cli.Context) (err error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	levels, err := parseLogLevels(cfg.Global, cfg.Log)
	if err != nil {
		return err
	}
	formatOptions, err := logFormatOptions(cfg.Log)
	if err != nil {
		return err
	}
	log.Patch(append(formatOptions, log.SetLevel(levels.global))...)
	state.SetLogLevel(levels.state)

	networkCfg, err := createNetworkConfig(cfg, levels.network)
	if err != nil {
		return err
	}

	if cfg.Global.MetricsAddress != "" {
		metricsServer := metrics.NewServer(cfg.Global.MetricsAddress)
		err = metricsServer.Start()
		if err != nil {
			return fmt.Errorf("starting metrics server: %w", err)
		}
		defer func() {
			stopErr := metricsServer.Stop()
			if stopErr != nil {
				logger.Errorf("failed to stop metrics server: %s", stopErr)
			}
		}()
	}

	if cfg.Global.PprofAddress != "" {
		pprofService := pprof.NewService(pprof.Settings{
			ListeningAddress: cfg.Global.PprofAddress,
			BlockProfileRate: 1,
			MutexProfileRate: 1,
		}, logger.New(log.AddContext("module", "pprof")))
		err = pprofService.Start()
		if err != nil {
			return fmt.Errorf("starting pprof server: %w", err)
		}
		defer func() {
			stopErr := pprofService.Stop()
			if stopErr != nil {
				logger.Errorf("failed to stop pprof server: %s", stopErr)
			}
		}()
	}

	blockchain := state.NewInMemoryBlockchain()

	service, err := network.NewService(networkCfg)
	if err != nil {
		return fmt.Errorf("creating network service: %w", err)
	}

	sched, err := scheduler.NewScheduler(scheduler.Config{
		LogLvl:     levels.scheduler,
		Network:    service,
		Blockchain: blockchain,
	})
	if err != nil {
		stopErr := service.Stop()
		if stopErr != nil {
			logger.Errorf("failed to stop network service: %s", stopErr)
		}
		return fmt.Errorf("creating scheduler: %w", err)
	}

	err = sched.Start()
	if err != nil {
		stopErr := service.Stop()
		if stopErr != nil {
			logger.Errorf("failed to stop network service: %s", stopErr)
		}
		return fmt.Errorf("starting scheduler: %w", err)
	}
	logger.Infof("node started with %d peer(s) and %d header(s)", sched.PeerCount(), blockchain.Len())

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	waitForShutdown(cfg.Global.RunFor.Duration, signals)

	best, ok := blockchain.BestNumber()
	if ok {
		logger.Infof("stopping with %d header(s) imported, best block number %d", blockchain.Len(), best)
	}

	return sched.Stop()
}

// waitForShutdown blocks until runFor elapses or a signal is received.
// A zero runFor waits for a signal only.
func waitForShutdown(runFor time.Duration, signals <-chan os.Signal) {
	var timeout <-chan time.Time
	if runFor > 0 {
		timer := time.NewTimer(runFor)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case <-timeout:
		logger.Infof("ran for %s, shutting down...", runFor)
	case sig := <-signals:
		logger.Infof("received signal %s, shutting down...", sig)
	}
}
