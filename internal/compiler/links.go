package compiler

import (
	"fmt"

	"evalgo.org/simfabric/internal/topology"
	"evalgo.org/simfabric/models"
)

// buildLinks creates the facility-scope links not owned by any cluster,
// in array order, and registers each under its name for later routes.
func (bc *buildContext) buildLinks(facility *topology.Zone, specs []models.Link) error {
	for i := range specs {
		spec := &specs[i]
		link, err := facility.AddLink(spec.Name, spec.Bandwidth, spec.Latency)
		if err != nil {
			return fmt.Errorf("link %q: %w", spec.Name, err)
		}
		if err := bc.registerLink(spec.Name, link); err != nil {
			return err
		}
	}
	return nil
}

// buildRoutes wires explicit routes between two previously created
// zones over a named sequence of previously created links. A name
// missing from its registry means the document declared a route before
// its zone or link, violating the required declaration order.
func (bc *buildContext) buildRoutes(facility *topology.Zone, specs []models.Route) error {
	for i := range specs {
		spec := &specs[i]

		src, err := bc.lookupZone(spec.Src)
		if err != nil {
			return fmt.Errorf("route %q -> %q: %w", spec.Src, spec.Dst, err)
		}
		dst, err := bc.lookupZone(spec.Dst)
		if err != nil {
			return fmt.Errorf("route %q -> %q: %w", spec.Src, spec.Dst, err)
		}

		links := make([]*topology.Link, 0, len(spec.Links))
		for _, name := range spec.Links {
			link, err := bc.lookupLink(name)
			if err != nil {
				return fmt.Errorf("route %q -> %q: %w", spec.Src, spec.Dst, err)
			}
			links = append(links, link)
		}

		route := &topology.Route{
			Src:       topology.Endpoint{Zone: src},
			Dst:       topology.Endpoint{Zone: dst},
			Links:     links,
			Symmetric: true,
		}
		if err := facility.AddRoute(route); err != nil {
			return fmt.Errorf("route %q -> %q: %w", spec.Src, spec.Dst, err)
		}
	}
	return nil
}
