package models

import (
	"strconv"
	"strings"
)

// Storage device kinds supported by the platform schema.
const (
	StorageTypeOneDisk = "OneDisk"
	StorageTypeJBOD    = "JBOD"
)

// Routing algorithms accepted for a facility. An absent routing field
// defaults to RoutingFull at compile time.
const (
	RoutingFull  = "full"
	RoutingFloyd = "floyd"
)

// HostnamePlaceholder is substituted with each node's hostname when a
// filesystem is mounted across a whole cluster.
const HostnamePlaceholder = "{hostname}"

// Platform is the root of a declarative platform description.
//
// A platform document enumerates facilities (datacenters) and the
// filesystems mounted on their storage. Declaration order matters for
// cross-references: links must be declared before the routes that use
// them, and zones before the filesystems that mount onto them.
//
// Example JSON document:
//
//	{
//	  "facilities": [
//	    {
//	      "name": "dc1",
//	      "routing": "full",
//	      "clusters": [ ... ],
//	      "storage_systems": [ ... ],
//	      "links": [ ... ],
//	      "routes": [ ... ]
//	    }
//	  ],
//	  "filesystems": [ ... ]
//	}
type Platform struct {
	// Facilities are the top-level routable domains, in document order.
	Facilities []Facility `json:"facilities" yaml:"facilities" validate:"required,min=1,dive"`

	// Filesystems are mounted after every facility has been built.
	Filesystems []Filesystem `json:"filesystems,omitempty" yaml:"filesystems,omitempty" validate:"dive"`
}

// Facility describes one top-level routable domain (a datacenter).
type Facility struct {
	// Name is the unique facility name.
	Name string `json:"name" yaml:"name" validate:"required"`

	// Routing selects the facility routing algorithm. Empty means "full".
	Routing string `json:"routing,omitempty" yaml:"routing,omitempty" validate:"omitempty,oneof=full floyd"`

	// StorageSystems are dedicated storage zones built before clusters.
	StorageSystems []StorageSystem `json:"storage_systems,omitempty" yaml:"storage_systems,omitempty" validate:"dive"`

	// Clusters are the star-topology compute zones of the facility.
	Clusters []Cluster `json:"clusters,omitempty" yaml:"clusters,omitempty" validate:"dive"`

	// Links are facility-scope links usable by inter-zone routes.
	Links []Link `json:"links,omitempty" yaml:"links,omitempty" validate:"dive"`

	// Routes wire previously declared zones together over named links.
	Routes []Route `json:"routes,omitempty" yaml:"routes,omitempty" validate:"dive"`
}

// StorageSystem describes a dedicated zone holding one server host and
// one storage device (a single disk or a JBOD aggregate).
type StorageSystem struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	ServerSpeed string `json:"server_speed" yaml:"server_speed" validate:"required"`
	Type        string `json:"type" yaml:"type" validate:"required,oneof=OneDisk JBOD"`
	DiskCount   int    `json:"disk_count" yaml:"disk_count" validate:"required,gt=0"`
	ReadBW      string `json:"read_bandwidth" yaml:"read_bandwidth" validate:"required"`
	WriteBW     string `json:"write_bandwidth" yaml:"write_bandwidth" validate:"required"`
}

// ServerName returns the canonical name of the storage system's server host.
func (s *StorageSystem) ServerName() string { return s.Name + "_server" }

// StorageName returns the registry key of the storage system's device.
func (s *StorageSystem) StorageName() string { return s.Name + "_storage" }

// DiskName returns the canonical name of disk i. A single-disk system
// uses the unsuffixed base name.
func (s *StorageSystem) DiskName(i int) string {
	if s.DiskCount == 1 {
		return s.Name + "_disk"
	}
	return s.Name + "_disk" + strconv.Itoa(i)
}

// Cluster describes a compact star-topology specification that expands
// into count templated hosts behind a shared backbone link.
type Cluster struct {
	Name     string       `json:"name" yaml:"name" validate:"required"`
	Prefix   string       `json:"prefix" yaml:"prefix" validate:"required"`
	Suffix   string       `json:"suffix" yaml:"suffix"`
	Count    int          `json:"count" yaml:"count" validate:"required,gt=0"`
	Backbone LinkSpec     `json:"backbone" yaml:"backbone" validate:"required"`
	Node     NodeTemplate `json:"node" yaml:"node" validate:"required"`
}

// BackboneName returns the name of the cluster's shared backbone link.
func (c *Cluster) BackboneName() string { return c.Name + "_backbone" }

// RouterName returns the name of the cluster's gateway router.
func (c *Cluster) RouterName() string { return c.Name + "_router" }

// Hostname synthesizes the hostname of node i as prefix + i + suffix.
func (c *Cluster) Hostname(i int) string {
	return c.Prefix + strconv.Itoa(i) + c.Suffix
}

// NodeStorageName returns the registry key of node i's storage device,
// or "" when the cluster carries no node storage template.
func (c *Cluster) NodeStorageName(i int) string {
	if c.Node.Storage == nil {
		return ""
	}
	return c.Hostname(i) + "_" + c.Node.Storage.Name
}

// NodeTemplate is the per-node part of a cluster specification.
type NodeTemplate struct {
	Speed       string       `json:"speed" yaml:"speed" validate:"required"`
	Cores       int          `json:"cores" yaml:"cores" validate:"required,gt=0"`
	PrivateLink LinkSpec     `json:"private_link" yaml:"private_link" validate:"required"`
	Loopback    LinkSpec     `json:"loopback" yaml:"loopback" validate:"required"`
	Storage     *NodeStorage `json:"storage,omitempty" yaml:"storage,omitempty"`
}

// NodeStorage templates the optional per-node storage device.
type NodeStorage struct {
	Name    string `json:"name" yaml:"name" validate:"required"`
	Type    string `json:"type" yaml:"type" validate:"required,oneof=OneDisk JBOD"`
	ReadBW  string `json:"read_bandwidth" yaml:"read_bandwidth" validate:"required"`
	WriteBW string `json:"write_bandwidth" yaml:"write_bandwidth" validate:"required"`
}

// LinkSpec is a bandwidth/latency pair used for backbones, private
// links and loopbacks.
type LinkSpec struct {
	Bandwidth string `json:"bandwidth" yaml:"bandwidth" validate:"required"`
	Latency   string `json:"latency" yaml:"latency" validate:"required"`
}

// Link declares a named facility-scope link.
type Link struct {
	Name      string `json:"name" yaml:"name" validate:"required"`
	Bandwidth string `json:"bandwidth" yaml:"bandwidth" validate:"required"`
	Latency   string `json:"latency" yaml:"latency" validate:"required"`
}

// Route declares a facility-level route between two previously declared
// zones as an ordered sequence of previously declared link names.
type Route struct {
	Src   string   `json:"src" yaml:"src" validate:"required"`
	Dst   string   `json:"dst" yaml:"dst" validate:"required"`
	Links []string `json:"links" yaml:"links" validate:"required,min=1,dive,required"`
}

// Filesystem declares a logical namespace of mounted partitions.
// Exactly one of StorageSystem or Cluster selects the mount mode:
// a storage-system filesystem mounts one partition at the literal mount
// point; a cluster filesystem mounts one partition per node, with every
// {hostname} occurrence in the mount point replaced by the node's
// synthesized hostname.
type Filesystem struct {
	Name       string `json:"name" yaml:"name" validate:"required"`
	MountPoint string `json:"mount_point" yaml:"mount_point" validate:"required"`
	Size       string `json:"size" yaml:"size" validate:"required"`

	StorageSystem string `json:"storage_system,omitempty" yaml:"storage_system,omitempty" validate:"required_without=Cluster,excluded_with=Cluster"`
	Cluster       string `json:"cluster,omitempty" yaml:"cluster,omitempty" validate:"required_without=StorageSystem,excluded_with=StorageSystem"`
}

// MountPointFor expands the mount-point template for one hostname.
func (f *Filesystem) MountPointFor(hostname string) string {
	return strings.ReplaceAll(f.MountPoint, HostnamePlaceholder, hostname)
}

// FindCluster returns the cluster specification with the given name, or
// nil if no facility declares it.
func (p *Platform) FindCluster(name string) *Cluster {
	for fi := range p.Facilities {
		for ci := range p.Facilities[fi].Clusters {
			if p.Facilities[fi].Clusters[ci].Name == name {
				return &p.Facilities[fi].Clusters[ci]
			}
		}
	}
	return nil
}

// FindStorageSystem returns the storage system specification with the
// given name, or nil if no facility declares it.
func (p *Platform) FindStorageSystem(name string) *StorageSystem {
	for fi := range p.Facilities {
		for si := range p.Facilities[fi].StorageSystems {
			if p.Facilities[fi].StorageSystems[si].Name == name {
				return &p.Facilities[fi].StorageSystems[si]
			}
		}
	}
	return nil
}
