package topology

// Host is a simulated compute node. Hosts are created within exactly
// one zone and never move.
type Host struct {
	Name  string
	Speed string
	Cores int

	zone  *Zone
	disks []*Disk
}

// Zone returns the zone the host was created in.
func (h *Host) Zone() *Zone { return h.zone }

// Disks returns the disks attached to the host in creation order.
func (h *Host) Disks() []*Disk { return h.disks }

// AddDisk attaches a disk to the host. Disks share the seal state of
// the owning zone.
func (h *Host) AddDisk(name, readBW, writeBW string) (*Disk, error) {
	if h.zone != nil && h.zone.sealed {
		return nil, ErrZoneSealed
	}
	d := &Disk{Name: name, ReadBandwidth: readBW, WriteBandwidth: writeBW, host: h}
	h.disks = append(h.disks, d)
	return d, nil
}

// Disk is a physical storage unit attached to a host.
type Disk struct {
	Name           string
	ReadBandwidth  string
	WriteBandwidth string

	host *Host
}

// Host returns the owning host.
func (d *Disk) Host() *Host { return d.host }

// Router is the designated gateway of a zone.
type Router struct {
	Name string
	zone *Zone
}

// Zone returns the zone the router belongs to.
func (r *Router) Zone() *Zone { return r.zone }
