// Package compiler turns a validated platform document into a fully
// wired topology graph owned by the engine.
//
// Compilation is one top-to-bottom pass with no backtracking. For each
// facility, in document order, the compiler builds storage systems,
// then clusters, then facility-scope links, then explicit routes, and
// seals the facility zone; the filesystem pass runs once at the end,
// after every facility exists. Every builder either creates new
// entities or resolves names already present in the pass's registries,
// so the document's declaration order is also its dependency order.
//
// The pass is single-threaded and synchronous. It either completes the
// whole platform or fails fatally; there is no partial success.
package compiler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"evalgo.org/simfabric/internal/engine"
	"evalgo.org/simfabric/internal/topology"
	"evalgo.org/simfabric/internal/validation"
	"evalgo.org/simfabric/models"
)

// Compiler compiles one platform document. It implements
// engine.PlatformLoader.
type Compiler struct {
	doc       *models.Platform
	validator *validation.Validator
}

// New creates a compiler for the given document.
func New(doc *models.Platform) *Compiler {
	return &Compiler{doc: doc, validator: validation.New()}
}

// Validate runs document validation without building anything.
func (c *Compiler) Validate() *validation.ValidationResult {
	return c.validator.ValidatePlatform(c.doc)
}

// LoadPlatform validates the document and compiles it into the
// engine's root zone.
func (c *Compiler) LoadPlatform(ctx context.Context, e *engine.Engine) error {
	passID := uuid.New()
	logger := log.With().Str("pass_id", passID.String()).Logger()

	if result := c.Validate(); !result.Valid {
		return fmt.Errorf("%w: %s", ErrInvalidDocument, result.Error())
	}
	logger.Debug().Int("facilities", len(c.doc.Facilities)).Msg("document validated")

	// Registries live exactly as long as this pass.
	bc := newBuildContext(c.doc)

	for fi := range c.doc.Facilities {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := bc.buildFacility(e.Root(), &c.doc.Facilities[fi]); err != nil {
			return err
		}
		logger.Debug().Str("facility", c.doc.Facilities[fi].Name).Msg("facility sealed")
	}

	if err := bc.buildFilesystems(c.doc.Filesystems); err != nil {
		return err
	}

	logger.Info().
		Int("zones", len(bc.zones)).
		Int("links", len(bc.links)).
		Int("storage_devices", len(bc.storage)).
		Int("filesystems", len(c.doc.Filesystems)).
		Msg("platform compiled")
	return nil
}

// buildFacility builds one facility zone and its contents in the fixed
// order storage systems, clusters, links, routes, then seals it.
func (bc *buildContext) buildFacility(root *topology.Zone, spec *models.Facility) error {
	routing := topology.RoutingFull
	if spec.Routing == models.RoutingFloyd {
		routing = topology.RoutingFloyd
	}

	facility, err := root.AddZone(spec.Name, routing)
	if err != nil {
		return fmt.Errorf("facility %q: %w", spec.Name, err)
	}
	if err := bc.registerZone(spec.Name, facility); err != nil {
		return err
	}

	for si := range spec.StorageSystems {
		if err := bc.buildStorageSystem(facility, &spec.StorageSystems[si]); err != nil {
			return err
		}
	}
	for ci := range spec.Clusters {
		if err := bc.buildCluster(facility, &spec.Clusters[ci]); err != nil {
			return err
		}
	}
	if err := bc.buildLinks(facility, spec.Links); err != nil {
		return err
	}
	if err := bc.buildRoutes(facility, spec.Routes); err != nil {
		return err
	}

	facility.Seal()
	return nil
}
