// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

type blockIDKind uint8

const (
	numberKind blockIDKind = iota
	hashKind
)

// BlockID identifies a block either by its number or by its hash.
// The zero value identifies block number 0.
type BlockID struct {
	kind   blockIDKind
	number uint64
	hash   common.Hash
}

// NumberID returns a BlockID for the block number given.
func NumberID(number uint64) BlockID {
	return BlockID{kind: numberKind, number: number}
}

// HashID returns a BlockID for the block hash given.
// A zero hash still identifies a block by hash.
func HashID(hash common.Hash) BlockID {
	return BlockID{kind: hashKind, hash: hash}
}

// Number returns the block number and true if the ID is a number.
func (id BlockID) Number() (number uint64, ok bool) {
	return id.number, id.kind == numberKind
}

// Hash returns the block hash and true if the ID is a hash.
func (id BlockID) Hash() (hash common.Hash, ok bool) {
	return id.hash, id.kind == hashKind
}

func (id BlockID) String() string {
	if id.kind == hashKind {
		return "hash " + id.hash.TerminalString()
	}
	return fmt.Sprintf("number %d", id.number)
}
