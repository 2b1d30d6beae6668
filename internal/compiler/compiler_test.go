package compiler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evalgo.org/simfabric/internal/engine"
	"evalgo.org/simfabric/internal/topology"
	"evalgo.org/simfabric/models"
)

// testDocument builds the canonical one-facility document used across
// the compiler tests: storage system "nfs", cluster "c0" with three
// nodes n0..n2, one trunk link and one nfs<->c0 route.
func testDocument() *models.Platform {
	return &models.Platform{
		Facilities: []models.Facility{
			{
				Name: "dc",
				StorageSystems: []models.StorageSystem{
					{
						Name:        "nfs",
						ServerSpeed: "1Gf",
						Type:        models.StorageTypeJBOD,
						DiskCount:   4,
						ReadBW:      "100MBps",
						WriteBW:     "50MBps",
					},
				},
				Clusters: []models.Cluster{
					{
						Name:     "c0",
						Prefix:   "n",
						Count:    3,
						Backbone: models.LinkSpec{Bandwidth: "100GBps", Latency: "100us"},
						Node: models.NodeTemplate{
							Speed:       "2Gf",
							Cores:       8,
							PrivateLink: models.LinkSpec{Bandwidth: "10GBps", Latency: "50us"},
							Loopback:    models.LinkSpec{Bandwidth: "1000GBps", Latency: "0ns"},
							Storage: &models.NodeStorage{
								Name:    "scratch",
								Type:    models.StorageTypeOneDisk,
								ReadBW:  "200MBps",
								WriteBW: "100MBps",
							},
						},
					},
				},
				Links: []models.Link{
					{Name: "trunk", Bandwidth: "40GBps", Latency: "10us"},
				},
				Routes: []models.Route{
					{Src: "nfs", Dst: "c0", Links: []string{"trunk"}},
				},
			},
		},
		Filesystems: []models.Filesystem{
			{Name: "shared", MountPoint: "/shared/", Size: "100TB", StorageSystem: "nfs"},
			{Name: "scratchfs", MountPoint: "/{hostname}/scratch/", Size: "1TB", Cluster: "c0"},
		},
	}
}

func compile(t *testing.T, doc *models.Platform) *engine.Engine {
	t.Helper()
	e := engine.New()
	require.NoError(t, e.LoadPlatform(context.Background(), New(doc)))
	return e
}

func TestCompileExampleScenario(t *testing.T) {
	e := compile(t, testDocument())

	cluster := e.ZoneByName("c0")
	require.NotNil(t, cluster)
	assert.Equal(t, topology.RoutingStar, cluster.Routing)
	assert.True(t, cluster.Sealed())

	hosts := cluster.Hosts()
	require.Len(t, hosts, 3)
	for i, want := range []string{"n0", "n1", "n2"} {
		assert.Equal(t, want, hosts[i].Name)
		assert.Equal(t, "2Gf", hosts[i].Speed)
		assert.Equal(t, 8, hosts[i].Cores)
	}

	// uplink + downlink + loopback per host, plus the shared backbone.
	assert.Len(t, cluster.Links(), 10)
	assert.Len(t, cluster.Routes(), 9)

	require.NotNil(t, cluster.Gateway)
	assert.Equal(t, "c0_router", cluster.Gateway.Name)
}

func TestClusterRouteShapes(t *testing.T) {
	e := compile(t, testDocument())
	cluster := e.ZoneByName("c0")
	require.NotNil(t, cluster)

	linkNames := func(r *topology.Route) []string {
		names := make([]string, 0, len(r.Links))
		for _, l := range r.Links {
			names = append(names, l.Name)
		}
		return names
	}

	routes := cluster.Routes()
	require.Len(t, routes, 9)

	for i, hostname := range []string{"n0", "n1", "n2"} {
		up := routes[3*i]
		assert.Equal(t, hostname, up.Src.Name())
		assert.True(t, up.Dst.Gateway())
		assert.Equal(t, []string{hostname + "_LinkUP", "c0_backbone"}, linkNames(up))
		assert.False(t, up.Symmetric)

		down := routes[3*i+1]
		assert.True(t, down.Src.Gateway())
		assert.Equal(t, hostname, down.Dst.Name())
		assert.Equal(t, []string{"c0_backbone", hostname + "_LinkDOWN"}, linkNames(down))
		assert.False(t, down.Symmetric)

		self := routes[3*i+2]
		assert.Equal(t, hostname, self.Src.Name())
		assert.Equal(t, hostname, self.Dst.Name())
		assert.Equal(t, []string{hostname + "_loopback"}, linkNames(self))
		assert.True(t, self.Symmetric)
	}
}

func TestLoopbackIsFatpipe(t *testing.T) {
	e := compile(t, testDocument())
	cluster := e.ZoneByName("c0")
	require.NotNil(t, cluster)

	for _, l := range cluster.Links() {
		switch {
		case l.Name == "c0_backbone":
			assert.Equal(t, topology.SharingShared, l.Sharing)
		case len(l.Name) > 9 && l.Name[len(l.Name)-9:] == "_loopback":
			assert.Equal(t, topology.SharingFatpipe, l.Sharing, l.Name)
		default:
			assert.Equal(t, topology.SharingShared, l.Sharing, l.Name)
		}
	}
}

func TestStorageSystemExpansion(t *testing.T) {
	e := compile(t, testDocument())

	zone := e.ZoneByName("nfs")
	require.NotNil(t, zone)
	assert.True(t, zone.Sealed())

	hosts := zone.Hosts()
	require.Len(t, hosts, 1)
	assert.Equal(t, "nfs_server", hosts[0].Name)
	assert.Equal(t, "1Gf", hosts[0].Speed)

	disks := hosts[0].Disks()
	require.Len(t, disks, 4)
	for i, want := range []string{"nfs_disk0", "nfs_disk1", "nfs_disk2", "nfs_disk3"} {
		assert.Equal(t, want, disks[i].Name)
		assert.Equal(t, "100MBps", disks[i].ReadBandwidth)
		assert.Equal(t, "50MBps", disks[i].WriteBandwidth)
	}
}

func TestSingleDiskStorageSystemIsUnsuffixed(t *testing.T) {
	doc := testDocument()
	doc.Facilities[0].StorageSystems[0].Type = models.StorageTypeOneDisk
	doc.Facilities[0].StorageSystems[0].DiskCount = 1

	e := compile(t, doc)
	zone := e.ZoneByName("nfs")
	require.NotNil(t, zone)

	disks := zone.Hosts()[0].Disks()
	require.Len(t, disks, 1)
	assert.Equal(t, "nfs_disk", disks[0].Name)
}

func TestClusterNodeStorage(t *testing.T) {
	e := compile(t, testDocument())
	cluster := e.ZoneByName("c0")
	require.NotNil(t, cluster)

	for _, h := range cluster.Hosts() {
		disks := h.Disks()
		require.Len(t, disks, 1)
		assert.Equal(t, h.Name+"_scratch_disk", disks[0].Name)
		assert.Equal(t, "200MBps", disks[0].ReadBandwidth)
	}
}

func TestFacilityRouting(t *testing.T) {
	doc := testDocument()
	e := compile(t, doc)
	dc := e.ZoneByName("dc")
	require.NotNil(t, dc)
	assert.Equal(t, topology.RoutingFull, dc.Routing)
	assert.True(t, dc.Sealed())

	doc = testDocument()
	doc.Facilities[0].Routing = models.RoutingFloyd
	e = compile(t, doc)
	assert.Equal(t, topology.RoutingFloyd, e.ZoneByName("dc").Routing)
}

func TestInterZoneLinksAndRoutes(t *testing.T) {
	e := compile(t, testDocument())
	dc := e.ZoneByName("dc")
	require.NotNil(t, dc)

	links := dc.Links()
	require.Len(t, links, 1)
	assert.Equal(t, "trunk", links[0].Name)

	routes := dc.Routes()
	require.Len(t, routes, 1)
	assert.Equal(t, "nfs", routes[0].Src.Name())
	assert.Equal(t, "c0", routes[0].Dst.Name())
	assert.True(t, routes[0].Symmetric)
	require.Len(t, routes[0].Links, 1)
	assert.Equal(t, "trunk", routes[0].Links[0].Name)
}

func TestCompileInvalidDocumentFails(t *testing.T) {
	doc := testDocument()
	doc.Facilities[0].Routes[0].Src = "ghost"

	e := engine.New()
	err := e.LoadPlatform(context.Background(), New(doc))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDocument))
}

func TestBuildStorageDeviceRejectsUnknownType(t *testing.T) {
	bc := newBuildContext(&models.Platform{})
	root := topology.NewZone("root", topology.RoutingEmpty)
	server, err := root.AddHost("s", "1Gf", 1)
	require.NoError(t, err)

	_, err = bc.buildStorageDevice(server, &models.StorageSystem{
		Name: "x", Type: "RAID5", DiskCount: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedStorageType))
}

func TestRegistriesRejectDuplicates(t *testing.T) {
	bc := newBuildContext(&models.Platform{})
	z := topology.NewZone("z", topology.RoutingFull)

	require.NoError(t, bc.registerZone("z", z))
	err := bc.registerZone("z", z)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateName))
}

func TestRegistriesReportUnknownNames(t *testing.T) {
	bc := newBuildContext(&models.Platform{})

	_, err := bc.lookupZone("ghost")
	assert.True(t, errors.Is(err, ErrUnknownReference))
	_, err = bc.lookupLink("ghost")
	assert.True(t, errors.Is(err, ErrUnknownReference))
	_, err = bc.lookupStorage("ghost")
	assert.True(t, errors.Is(err, ErrUnknownReference))
}

func TestCompiledZonesAreSealed(t *testing.T) {
	e := compile(t, testDocument())

	for _, name := range []string{"dc", "nfs", "c0"} {
		zone := e.ZoneByName(name)
		require.NotNil(t, zone, name)
		assert.True(t, zone.Sealed(), name)

		_, err := zone.AddHost("late", "1Gf", 1)
		assert.True(t, errors.Is(err, topology.ErrZoneSealed), name)
	}
}
