package topology

// Sharing is the contention policy of a link.
type Sharing string

const (
	// SharingShared makes concurrent flows contend for the link's
	// capacity.
	SharingShared Sharing = "shared"
	// SharingFatpipe gives every flow the full link capacity. Used for
	// loopback links, which must not contend with other node traffic.
	SharingFatpipe Sharing = "fatpipe"
)

// Link is a network edge with a bandwidth and a latency.
type Link struct {
	Name      string
	Bandwidth string
	Latency   string
	Sharing   Sharing
}

// SetSharing sets the link's sharing policy and returns the link, so
// link creation chains the way zone building reads.
func (l *Link) SetSharing(s Sharing) *Link {
	l.Sharing = s
	return l
}

// Endpoint is one end of a route. A nil Host and nil Zone stand for the
// gateway of the zone the route is installed in.
type Endpoint struct {
	Host *Host
	Zone *Zone
}

// Gateway reports whether the endpoint designates the enclosing zone's
// gateway.
func (e Endpoint) Gateway() bool { return e.Host == nil && e.Zone == nil }

// Name returns the endpoint's display name.
func (e Endpoint) Name() string {
	switch {
	case e.Host != nil:
		return e.Host.Name
	case e.Zone != nil:
		return e.Zone.Name
	default:
		return "<gateway>"
	}
}

// Route is a bandwidth path between two endpoints expressed as an
// ordered sequence of links. Routes are immutable once installed.
type Route struct {
	Src       Endpoint
	Dst       Endpoint
	Links     []*Link
	Symmetric bool
}
