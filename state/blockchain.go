// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"fmt"
	"math/bits"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/ChainSafe/devp2p-bridge/internal/log"
	"github.com/ChainSafe/devp2p-bridge/types"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "state"))

// SetLogLevel sets the log level of the state package.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}

// InMemoryBlockchain is a thread safe mapping of block numbers to block
// headers, kept in memory only. It serves the header lookups peers
// request from us.
// Every method acquires the same exclusive lock, so that no read
// ever observes an import in progress.
type InMemoryBlockchain struct {
	mutex   sync.Mutex
	headers map[uint64]*ethtypes.Header
	// numbers indexes the hash of each stored header
	numbers map[common.Hash]uint64
	best    uint64
}

// NewInMemoryBlockchain returns an empty in-memory blockchain.
func NewInMemoryBlockchain() *InMemoryBlockchain {
	return &InMemoryBlockchain{
		headers: make(map[uint64]*ethtypes.Header),
		numbers: make(map[common.Hash]uint64),
	}
}

// Header returns the header stored at the given number, or nil if not found.
// The header returned must not be modified.
func (bc *InMemoryBlockchain) Header(number uint64) *ethtypes.Header {
	bc.mutex.Lock()
	defer bc.mutex.Unlock()
	return bc.headers[number]
}

// HeaderByHash returns the header with the given hash, or nil if not found.
func (bc *InMemoryBlockchain) HeaderByHash(hash common.Hash) *ethtypes.Header {
	bc.mutex.Lock()
	defer bc.mutex.Unlock()
	number, has := bc.numbers[hash]
	if !has {
		return nil
	}
	return bc.headers[number]
}

// Body always returns nil since block bodies are not stored.
func (*InMemoryBlockchain) Body(common.Hash) *ethtypes.Body {
	return nil
}

// Receipts is not supported and always returns ErrUnsupported.
func (*InMemoryBlockchain) Receipts(common.Hash) (ethtypes.Receipts, error) {
	return nil, ErrUnsupported
}

// Transaction is not supported and always returns ErrUnsupported.
func (*InMemoryBlockchain) Transaction(common.Hash) (*ethtypes.Transaction, error) {
	return nil, ErrUnsupported
}

// BestNumber returns the highest block number stored,
// and false if the blockchain is empty.
func (bc *InMemoryBlockchain) BestNumber() (number uint64, ok bool) {
	bc.mutex.Lock()
	defer bc.mutex.Unlock()
	if len(bc.headers) == 0 {
		return 0, false
	}
	return bc.best, true
}

// Len returns the number of headers stored.
func (bc *InMemoryBlockchain) Len() int {
	bc.mutex.Lock()
	defer bc.mutex.Unlock()
	return len(bc.headers)
}

// ImportHeader stores a copy of the header at its number,
// replacing any header previously stored at that number.
func (bc *InMemoryBlockchain) ImportHeader(header *ethtypes.Header) error {
	if header == nil || header.Number == nil {
		return ErrNilHeader
	}

	if !header.Number.IsUint64() {
		return fmt.Errorf("%w: %s", ErrNumberOverflow, header.Number)
	}

	stored := ethtypes.CopyHeader(header)
	number := stored.Number.Uint64()
	hash := stored.Hash()

	bc.mutex.Lock()
	defer bc.mutex.Unlock()

	if previous, has := bc.headers[number]; has {
		delete(bc.numbers, previous.Hash())
	}

	bc.headers[number] = stored
	bc.numbers[hash] = number
	if number > bc.best || len(bc.headers) == 1 {
		bc.best = number
	}

	importedHeaders.Inc()
	bestBlockNumber.Set(float64(bc.best))
	logger.Tracef("imported header number %d with hash %s", number, hash)
	return nil
}

// HeaderRequest walks the headers starting at the block identified by start,
// collecting at most max headers. After each header, the walk moves skip+1
// blocks forward, or backward if reverse is true. The walk stops at the first
// block not stored, and when the cursor would go past zero or past the
// largest uint64. A start hash not stored yields no header.
func (bc *InMemoryBlockchain) HeaderRequest(start types.BlockID,
	max, skip uint64, reverse bool) (headers []*ethtypes.Header) {
	if max == 0 {
		return nil
	}

	bc.mutex.Lock()
	defer bc.mutex.Unlock()

	cursor, ok := bc.resolve(start)
	if !ok {
		return nil
	}

	for {
		header, has := bc.headers[cursor]
		if !has {
			break
		}

		headers = append(headers, header)
		if uint64(len(headers)) >= max {
			break
		}

		cursor, ok = nextCursor(cursor, skip, reverse)
		if !ok {
			break
		}
	}

	return headers
}

// HeaderList returns the headers for each of the IDs given, in order.
// IDs not resolving to a stored header are skipped.
func (bc *InMemoryBlockchain) HeaderList(ids []types.BlockID) (headers []*ethtypes.Header) {
	bc.mutex.Lock()
	defer bc.mutex.Unlock()

	for _, id := range ids {
		number, ok := bc.resolve(id)
		if !ok {
			continue
		}

		header, has := bc.headers[number]
		if !has {
			continue
		}
		headers = append(headers, header)
	}

	return headers
}

// resolve returns the block number for the ID given.
// It must be called with the mutex locked.
func (bc *InMemoryBlockchain) resolve(id types.BlockID) (number uint64, ok bool) {
	if hash, isHash := id.Hash(); isHash {
		number, ok = bc.numbers[hash]
		return number, ok
	}
	return id.Number()
}

func nextCursor(cursor, skip uint64, reverse bool) (next uint64, ok bool) {
	distance, carry := bits.Add64(skip, 1, 0)
	if carry != 0 {
		return 0, false
	}

	if reverse {
		next, borrow := bits.Sub64(cursor, distance, 0)
		return next, borrow == 0
	}

	next, carry = bits.Add64(cursor, distance, 0)
	return next, carry == 0
}
