// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ChainSafe/devp2p-bridge/types"
)

// VersionInfo is a wire version of a sub-protocol together with
// the number of message IDs it uses.
type VersionInfo struct {
	Number       uint
	MessageCount uint64
}

// ProtocolSpec describes the versions of a sub-protocol the node speaks.
type ProtocolSpec struct {
	ID       types.ProtocolID
	Versions []VersionInfo
}

// DefaultProtocols returns the sub-protocols served by default.
func DefaultProtocols() []ProtocolSpec {
	return []ProtocolSpec{
		{
			ID: types.Eth,
			Versions: []VersionInfo{
				{Number: 66, MessageCount: 17},
				{Number: 67, MessageCount: 17},
			},
		},
		{
			ID: types.Parity,
			Versions: []VersionInfo{
				{Number: 1, MessageCount: 21},
				{Number: 2, MessageCount: 22},
			},
		},
	}
}

// Registry holds the sub-protocols registered with the node.
// Each sub-protocol can only be registered once.
type Registry struct {
	mutex sync.RWMutex
	specs map[types.ProtocolID]ProtocolSpec
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		specs: make(map[types.ProtocolID]ProtocolSpec),
	}
}

// Register adds the sub-protocol to the registry.
func (r *Registry) Register(spec ProtocolSpec) error {
	if !spec.ID.IsKnown() {
		return fmt.Errorf("%w: %s", ErrUnknownProtocol, spec.ID)
	}

	if len(spec.Versions) == 0 {
		return fmt.Errorf("%w: %s", ErrNoVersions, spec.ID)
	}

	seen := make(map[uint]struct{}, len(spec.Versions))
	for _, version := range spec.Versions {
		if version.MessageCount == 0 {
			return fmt.Errorf("%w: %s version %d has no message",
				ErrInvalidVersion, spec.ID, version.Number)
		}

		if _, has := seen[version.Number]; has {
			return fmt.Errorf("%w: %s version %d is listed more than once",
				ErrInvalidVersion, spec.ID, version.Number)
		}
		seen[version.Number] = struct{}{}
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, has := r.specs[spec.ID]; has {
		return fmt.Errorf("%w: %s", ErrProtocolAlreadyRegistered, spec.ID)
	}

	versions := make([]VersionInfo, len(spec.Versions))
	copy(versions, spec.Versions)
	sort.Slice(versions, func(i, j int) bool { return versions[i].Number < versions[j].Number })
	r.specs[spec.ID] = ProtocolSpec{ID: spec.ID, Versions: versions}
	return nil
}

// Lookup returns the registered sub-protocol for the ID given.
func (r *Registry) Lookup(id types.ProtocolID) (spec ProtocolSpec, ok bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	spec, ok = r.specs[id]
	return spec, ok
}

// Specs returns all the registered sub-protocols ordered by ID.
func (r *Registry) Specs() []ProtocolSpec {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	specs := make([]ProtocolSpec, 0, len(r.specs))
	for _, spec := range r.specs {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].ID < specs[j].ID })
	return specs
}

// newRegistryFromSpecs registers every spec given. A spec failing
// registration is logged and left out.
func newRegistryFromSpecs(specs []ProtocolSpec) *Registry {
	registry := NewRegistry()
	for _, spec := range specs {
		err := registry.Register(spec)
		if err != nil {
			logger.Errorf("failed to register protocol %s: %s", spec.ID, err)
		}
	}
	return registry
}
