// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scheduler

import "errors"

var (
	ErrNilNetwork     = errors.New("network is nil")
	ErrNilBlockchain  = errors.New("blockchain is nil")
	ErrAlreadyStarted = errors.New("scheduler already started")

	errEmptyRequest = errors.New("header request has no query")
)
