package compiler

import (
	"fmt"

	"evalgo.org/simfabric/internal/topology"
	"evalgo.org/simfabric/models"
)

// buildCluster expands one cluster specification into a star-topology
// zone: a shared backbone link, a gateway router and count templated
// hosts, each with its own uplink, downlink and loopback plus an
// optional per-node storage device.
//
// Node indices are processed strictly in increasing order, so two
// compiles of the same specification produce structurally identical
// zones. Hostname uniqueness across clusters is the document author's
// obligation; within one cluster the prefix/index/suffix scheme
// guarantees it.
func (bc *buildContext) buildCluster(parent *topology.Zone, spec *models.Cluster) error {
	cluster, err := parent.AddZone(spec.Name, topology.RoutingStar)
	if err != nil {
		return fmt.Errorf("cluster %q: %w", spec.Name, err)
	}
	if err := bc.registerZone(spec.Name, cluster); err != nil {
		return err
	}

	backbone, err := cluster.AddLink(spec.BackboneName(), spec.Backbone.Bandwidth, spec.Backbone.Latency)
	if err != nil {
		return fmt.Errorf("cluster %q: %w", spec.Name, err)
	}

	for i := 0; i < spec.Count; i++ {
		if err := bc.buildClusterNode(cluster, spec, i, backbone); err != nil {
			return err
		}
	}

	if _, err := cluster.AddRouter(spec.RouterName()); err != nil {
		return fmt.Errorf("cluster %q: %w", spec.Name, err)
	}
	cluster.Seal()
	return nil
}

// buildClusterNode creates host i of the cluster with its links, routes
// and optional storage device.
func (bc *buildContext) buildClusterNode(cluster *topology.Zone, spec *models.Cluster, i int, backbone *topology.Link) error {
	hostname := spec.Hostname(i)
	node := &spec.Node

	host, err := cluster.AddHost(hostname, node.Speed, node.Cores)
	if err != nil {
		return fmt.Errorf("cluster %q host %q: %w", spec.Name, hostname, err)
	}

	if node.Storage != nil {
		if err := bc.buildNodeStorage(host, spec, i); err != nil {
			return err
		}
	}

	up, err := cluster.AddLink(hostname+"_LinkUP", node.PrivateLink.Bandwidth, node.PrivateLink.Latency)
	if err != nil {
		return fmt.Errorf("cluster %q host %q: %w", spec.Name, hostname, err)
	}
	down, err := cluster.AddLink(hostname+"_LinkDOWN", node.PrivateLink.Bandwidth, node.PrivateLink.Latency)
	if err != nil {
		return fmt.Errorf("cluster %q host %q: %w", spec.Name, hostname, err)
	}
	loopback, err := cluster.AddLink(hostname+"_loopback", node.Loopback.Bandwidth, node.Loopback.Latency)
	if err != nil {
		return fmt.Errorf("cluster %q host %q: %w", spec.Name, hostname, err)
	}
	loopback.SetSharing(topology.SharingFatpipe)

	// Host to gateway rides the uplink onto the backbone; the reverse
	// direction comes back over the downlink. Both are one-way. The
	// self-route uses the loopback alone.
	routes := []*topology.Route{
		{Src: topology.Endpoint{Host: host}, Dst: topology.Endpoint{}, Links: []*topology.Link{up, backbone}},
		{Src: topology.Endpoint{}, Dst: topology.Endpoint{Host: host}, Links: []*topology.Link{backbone, down}},
		{Src: topology.Endpoint{Host: host}, Dst: topology.Endpoint{Host: host}, Links: []*topology.Link{loopback}, Symmetric: true},
	}
	for _, r := range routes {
		if err := cluster.AddRoute(r); err != nil {
			return fmt.Errorf("cluster %q host %q: %w", spec.Name, hostname, err)
		}
	}
	return nil
}

// buildNodeStorage creates node i's single-disk storage device from the
// cluster's storage template and registers it as <hostname>_<name>.
func (bc *buildContext) buildNodeStorage(host *topology.Host, spec *models.Cluster, i int) error {
	tmpl := spec.Node.Storage
	storageName := spec.NodeStorageName(i)
	diskName := storageName + "_disk"

	disk, err := host.AddDisk(diskName, tmpl.ReadBW, tmpl.WriteBW)
	if err != nil {
		return fmt.Errorf("cluster %q storage %q: %w", spec.Name, storageName, err)
	}

	var device *topology.StorageDevice
	switch tmpl.Type {
	case models.StorageTypeOneDisk:
		device, err = topology.NewOneDisk(storageName, disk)
	case models.StorageTypeJBOD:
		device, err = topology.NewJBOD(storageName, []*topology.Disk{disk})
	default:
		return fmt.Errorf("cluster %q storage %q: type %q: %w",
			spec.Name, storageName, tmpl.Type, ErrUnsupportedStorageType)
	}
	if err != nil {
		return err
	}
	return bc.registerStorage(storageName, device)
}
