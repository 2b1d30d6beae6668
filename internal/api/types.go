package api

import "evalgo.org/simfabric/internal/topology"

// ZoneView is the JSON representation of a zone subtree.
type ZoneView struct {
	Name        string           `json:"name"`
	Routing     string           `json:"routing"`
	Sealed      bool             `json:"sealed"`
	Gateway     string           `json:"gateway,omitempty"`
	Hosts       []HostView       `json:"hosts,omitempty"`
	Links       []LinkView       `json:"links,omitempty"`
	Routes      []RouteView      `json:"routes,omitempty"`
	Filesystems []FilesystemView `json:"filesystems,omitempty"`
	Children    []*ZoneView      `json:"children,omitempty"`
}

// HostView is the JSON representation of a host.
type HostView struct {
	Name  string     `json:"name"`
	Zone  string     `json:"zone"`
	Speed string     `json:"speed"`
	Cores int        `json:"cores"`
	Disks []DiskView `json:"disks,omitempty"`
}

// DiskView is the JSON representation of a disk.
type DiskView struct {
	Name           string `json:"name"`
	ReadBandwidth  string `json:"read_bandwidth"`
	WriteBandwidth string `json:"write_bandwidth"`
}

// LinkView is the JSON representation of a link.
type LinkView struct {
	Name      string `json:"name"`
	Bandwidth string `json:"bandwidth"`
	Latency   string `json:"latency"`
	Sharing   string `json:"sharing"`
}

// RouteView is the JSON representation of a route.
type RouteView struct {
	Src       string   `json:"src"`
	Dst       string   `json:"dst"`
	Links     []string `json:"links"`
	Symmetric bool     `json:"symmetric"`
}

// FilesystemView is the JSON representation of a filesystem.
type FilesystemView struct {
	Name         string          `json:"name"`
	MaxOpenFiles int             `json:"max_open_files"`
	Partitions   []PartitionView `json:"partitions,omitempty"`
}

// PartitionView is the JSON representation of a partition.
type PartitionView struct {
	MountPoint string `json:"mount_point"`
	Size       string `json:"size"`
	Storage    string `json:"storage"`
}

// zoneView renders the subtree rooted at z.
func zoneView(z *topology.Zone) *ZoneView {
	v := &ZoneView{
		Name:    z.Name,
		Routing: string(z.Routing),
		Sealed:  z.Sealed(),
	}
	if z.Gateway != nil {
		v.Gateway = z.Gateway.Name
	}
	for _, h := range z.Hosts() {
		v.Hosts = append(v.Hosts, hostView(h))
	}
	for _, l := range z.Links() {
		v.Links = append(v.Links, LinkView{
			Name:      l.Name,
			Bandwidth: l.Bandwidth,
			Latency:   l.Latency,
			Sharing:   string(l.Sharing),
		})
	}
	for _, r := range z.Routes() {
		v.Routes = append(v.Routes, routeView(r))
	}
	for _, fs := range z.Filesystems() {
		v.Filesystems = append(v.Filesystems, filesystemView(fs))
	}
	for _, child := range z.Children() {
		v.Children = append(v.Children, zoneView(child))
	}
	return v
}

func hostView(h *topology.Host) HostView {
	v := HostView{
		Name:  h.Name,
		Zone:  h.Zone().Name,
		Speed: h.Speed,
		Cores: h.Cores,
	}
	for _, d := range h.Disks() {
		v.Disks = append(v.Disks, DiskView{
			Name:           d.Name,
			ReadBandwidth:  d.ReadBandwidth,
			WriteBandwidth: d.WriteBandwidth,
		})
	}
	return v
}

func routeView(r *topology.Route) RouteView {
	v := RouteView{
		Src:       r.Src.Name(),
		Dst:       r.Dst.Name(),
		Symmetric: r.Symmetric,
	}
	for _, l := range r.Links {
		v.Links = append(v.Links, l.Name)
	}
	return v
}

func filesystemView(fs *topology.Filesystem) FilesystemView {
	v := FilesystemView{Name: fs.Name, MaxOpenFiles: fs.MaxOpenFiles}
	for _, p := range fs.Partitions {
		storage := ""
		if p.Storage != nil {
			storage = p.Storage.Name
		}
		v.Partitions = append(v.Partitions, PartitionView{
			MountPoint: p.MountPoint,
			Size:       p.Size,
			Storage:    storage,
		})
	}
	return v
}
