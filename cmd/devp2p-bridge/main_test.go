// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_waitForShutdown(t *testing.T) {
	t.Parallel()

	t.Run("run_for_elapsed", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		waitForShutdown(10*time.Millisecond, make(chan os.Signal))
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	})

	t.Run("signal_received", func(t *testing.T) {
		t.Parallel()

		signals := make(chan os.Signal, 1)
		signals <- syscall.SIGINT
		waitForShutdown(0, signals)
	})
}

func Test_app(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "devp2p-bridge", app.Name)
	for _, f := range RootFlags {
		assert.NotEmpty(t, f.GetName())
	}
	assert.Len(t, RootFlags, 18)
}
