package compiler

import (
	"fmt"

	"evalgo.org/simfabric/internal/topology"
	"evalgo.org/simfabric/models"
)

// buildContext carries the name registries of exactly one compile
// pass. It is created when a load pass starts and discarded when it
// returns, so no registry state can leak between repeated compiles in
// the same process. Entities stay owned by the engine; the registries
// only borrow handles under their registered names.
type buildContext struct {
	doc *models.Platform

	zones   map[string]*topology.Zone
	links   map[string]*topology.Link
	storage map[string]*topology.StorageDevice
}

func newBuildContext(doc *models.Platform) *buildContext {
	return &buildContext{
		doc:     doc,
		zones:   make(map[string]*topology.Zone),
		links:   make(map[string]*topology.Link),
		storage: make(map[string]*topology.StorageDevice),
	}
}

func (bc *buildContext) registerZone(name string, z *topology.Zone) error {
	if _, exists := bc.zones[name]; exists {
		return fmt.Errorf("zone %q: %w", name, ErrDuplicateName)
	}
	bc.zones[name] = z
	return nil
}

func (bc *buildContext) registerLink(name string, l *topology.Link) error {
	if _, exists := bc.links[name]; exists {
		return fmt.Errorf("link %q: %w", name, ErrDuplicateName)
	}
	bc.links[name] = l
	return nil
}

func (bc *buildContext) registerStorage(name string, s *topology.StorageDevice) error {
	if _, exists := bc.storage[name]; exists {
		return fmt.Errorf("storage %q: %w", name, ErrDuplicateName)
	}
	bc.storage[name] = s
	return nil
}

func (bc *buildContext) lookupZone(name string) (*topology.Zone, error) {
	z, ok := bc.zones[name]
	if !ok {
		return nil, fmt.Errorf("zone %q: %w", name, ErrUnknownReference)
	}
	return z, nil
}

func (bc *buildContext) lookupLink(name string) (*topology.Link, error) {
	l, ok := bc.links[name]
	if !ok {
		return nil, fmt.Errorf("link %q: %w", name, ErrUnknownReference)
	}
	return l, nil
}

func (bc *buildContext) lookupStorage(name string) (*topology.StorageDevice, error) {
	s, ok := bc.storage[name]
	if !ok {
		return nil, fmt.Errorf("storage %q: %w", name, ErrUnknownReference)
	}
	return s, nil
}
