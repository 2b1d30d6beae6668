// Package topology defines the in-memory entity graph produced by the
// platform compiler: a tree of zones containing hosts, links, routes,
// storage devices and filesystems.
//
// The engine owns every entity in the graph. The compiler and all other
// consumers (summary, fingerprint, inspection API) hold non-owning
// references and must treat the graph as read-only once a zone has been
// sealed.
package topology

import (
	"errors"
	"fmt"
)

// ErrZoneSealed is returned when a mutation is attempted on a zone that
// has already been sealed.
var ErrZoneSealed = errors.New("zone is sealed")

// Routing identifies the routing algorithm of a zone.
type Routing string

const (
	// RoutingFull computes full pairwise routes within the zone.
	RoutingFull Routing = "full"
	// RoutingFloyd uses Floyd-Warshall shortest paths within the zone.
	RoutingFloyd Routing = "floyd"
	// RoutingStar wires every host through a shared backbone.
	RoutingStar Routing = "star"
	// RoutingEmpty is a zone with no routing of its own, used for
	// storage system zones and the engine root.
	RoutingEmpty Routing = "empty"
)

// Zone is a node in a facility's containment tree. Zones nest further
// zones, hosts, links and routes. A zone becomes immutable once sealed.
type Zone struct {
	Name    string
	Routing Routing

	parent   *Zone
	children []*Zone
	hosts    []*Host
	links    []*Link
	routes   []*Route

	// Gateway is the designated entry/exit router of the zone for
	// routes that originate outside it.
	Gateway *Router

	filesystems []*Filesystem

	sealed bool
}

// NewZone creates a detached zone. Attach it with Zone.AddZone.
func NewZone(name string, routing Routing) *Zone {
	return &Zone{Name: name, Routing: routing}
}

// AddZone creates a child zone with the given routing algorithm.
func (z *Zone) AddZone(name string, routing Routing) (*Zone, error) {
	if z.sealed {
		return nil, fmt.Errorf("add zone %q: %w", name, ErrZoneSealed)
	}
	child := NewZone(name, routing)
	child.parent = z
	z.children = append(z.children, child)
	return child, nil
}

// AddHost creates a host inside the zone.
func (z *Zone) AddHost(name, speed string, cores int) (*Host, error) {
	if z.sealed {
		return nil, fmt.Errorf("add host %q: %w", name, ErrZoneSealed)
	}
	h := &Host{Name: name, Speed: speed, Cores: cores, zone: z}
	z.hosts = append(z.hosts, h)
	return h, nil
}

// AddLink creates a link inside the zone with the default shared policy.
func (z *Zone) AddLink(name, bandwidth, latency string) (*Link, error) {
	if z.sealed {
		return nil, fmt.Errorf("add link %q: %w", name, ErrZoneSealed)
	}
	l := &Link{Name: name, Bandwidth: bandwidth, Latency: latency, Sharing: SharingShared}
	z.links = append(z.links, l)
	return l, nil
}

// AddRoute installs a route in the zone. Endpoints with a nil host and
// nil zone stand for the enclosing zone's gateway.
func (z *Zone) AddRoute(r *Route) error {
	if z.sealed {
		return fmt.Errorf("add route: %w", ErrZoneSealed)
	}
	z.routes = append(z.routes, r)
	return nil
}

// AddRouter creates the zone's gateway router and designates it as the
// gateway.
func (z *Zone) AddRouter(name string) (*Router, error) {
	if z.sealed {
		return nil, fmt.Errorf("add router %q: %w", name, ErrZoneSealed)
	}
	r := &Router{Name: name, zone: z}
	z.Gateway = r
	return r, nil
}

// AttachFilesystem records a filesystem against the zone. Filesystems
// are attached after the facility pass, so sealing does not guard them.
func (z *Zone) AttachFilesystem(fs *Filesystem) {
	z.filesystems = append(z.filesystems, fs)
}

// Seal finalizes the zone. After sealing, no hosts, links, routes or
// child zones may be added.
func (z *Zone) Seal() { z.sealed = true }

// Sealed reports whether the zone has been sealed.
func (z *Zone) Sealed() bool { return z.sealed }

// Parent returns the enclosing zone, or nil for a root.
func (z *Zone) Parent() *Zone { return z.parent }

// Children returns the child zones in creation order.
func (z *Zone) Children() []*Zone { return z.children }

// Hosts returns the hosts created directly in this zone.
func (z *Zone) Hosts() []*Host { return z.hosts }

// Links returns the links created directly in this zone.
func (z *Zone) Links() []*Link { return z.links }

// Routes returns the routes installed in this zone.
func (z *Zone) Routes() []*Route { return z.routes }

// Filesystems returns the filesystems attached to this zone.
func (z *Zone) Filesystems() []*Filesystem { return z.filesystems }

// Walk visits the subtree rooted at z in pre-order using an explicit
// stack, so arbitrarily deep facility trees cannot exhaust the call
// stack. Children are visited in creation order. The walk stops early
// if fn returns false.
func Walk(z *Zone, fn func(*Zone) bool) {
	if z == nil {
		return
	}
	stack := []*Zone{z}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			return
		}
		// Push children in reverse so they pop in creation order.
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
}

// FindZone returns the first zone named name in the subtree rooted at
// z, or nil.
func FindZone(z *Zone, name string) *Zone {
	var found *Zone
	Walk(z, func(cur *Zone) bool {
		if cur.Name == name {
			found = cur
			return false
		}
		return true
	})
	return found
}
