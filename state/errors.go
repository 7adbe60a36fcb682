// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import "errors"

var (
	// ErrNilHeader is returned when importing a nil header or a header without number.
	ErrNilHeader = errors.New("header or header number is nil")
	// ErrNumberOverflow is returned when importing a header whose number does not fit in 64 bits.
	ErrNumberOverflow = errors.New("header number overflows uint64")
	// ErrUnsupported is returned by lookups the in-memory blockchain does not serve.
	ErrUnsupported = errors.New("operation not supported by the in-memory blockchain")
)
