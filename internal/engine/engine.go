// Package engine provides a minimal simulation-engine facade. The
// engine owns the lifetime of every topology entity; platform loaders
// populate its root zone exactly once during startup.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"evalgo.org/simfabric/internal/topology"
)

// PlatformLoader is the single entry point a platform compiler exposes
// to the engine. It is invoked as a blocking callback with a handle to
// the live engine before any simulated execution begins; returning an
// error aborts startup.
type PlatformLoader interface {
	LoadPlatform(ctx context.Context, e *Engine) error
}

// Engine owns the topology graph of one simulation run.
type Engine struct {
	id     uuid.UUID
	root   *topology.Zone
	loaded bool
}

// New creates an engine with an empty root zone.
func New() *Engine {
	return &Engine{
		id:   uuid.New(),
		root: topology.NewZone("root", topology.RoutingEmpty),
	}
}

// ID returns the engine instance identifier.
func (e *Engine) ID() uuid.UUID { return e.id }

// Root returns the engine's root zone.
func (e *Engine) Root() *topology.Zone { return e.root }

// LoadPlatform runs the loader against the engine. It may be called at
// most once; either the whole platform is built or the error aborts
// startup and the engine stays unusable.
func (e *Engine) LoadPlatform(ctx context.Context, loader PlatformLoader) error {
	if e.loaded {
		return fmt.Errorf("engine %s: platform already loaded", e.id)
	}

	start := time.Now()
	if err := loader.LoadPlatform(ctx, e); err != nil {
		return fmt.Errorf("load platform: %w", err)
	}
	e.loaded = true

	log.Info().
		Str("engine_id", e.id.String()).
		Dur("elapsed", time.Since(start)).
		Int("hosts", len(e.AllHosts())).
		Msg("platform loaded")
	return nil
}

// ZoneByName returns the zone named name anywhere under the root, or
// nil when no such zone exists.
func (e *Engine) ZoneByName(name string) *topology.Zone {
	return topology.FindZone(e.root, name)
}

// AllHosts returns every host in the topology in zone walk order.
func (e *Engine) AllHosts() []*topology.Host {
	var hosts []*topology.Host
	topology.Walk(e.root, func(z *topology.Zone) bool {
		hosts = append(hosts, z.Hosts()...)
		return true
	})
	return hosts
}

// AllFilesystems returns every filesystem attached anywhere in the
// topology in zone walk order.
func (e *Engine) AllFilesystems() []*topology.Filesystem {
	var fss []*topology.Filesystem
	topology.Walk(e.root, func(z *topology.Zone) bool {
		fss = append(fss, z.Filesystems()...)
		return true
	})
	return fss
}
