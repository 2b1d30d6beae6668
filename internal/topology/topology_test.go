package topology

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneTreeConstruction(t *testing.T) {
	root := NewZone("root", RoutingEmpty)

	dc, err := root.AddZone("dc", RoutingFull)
	require.NoError(t, err)
	assert.Equal(t, root, dc.Parent())

	cluster, err := dc.AddZone("c0", RoutingStar)
	require.NoError(t, err)

	host, err := cluster.AddHost("n0", "1Gf", 4)
	require.NoError(t, err)
	assert.Equal(t, cluster, host.Zone())

	disk, err := host.AddDisk("n0_disk", "100MBps", "50MBps")
	require.NoError(t, err)
	assert.Equal(t, host, disk.Host())

	link, err := cluster.AddLink("n0_LinkUP", "10GBps", "50us")
	require.NoError(t, err)
	assert.Equal(t, SharingShared, link.Sharing)

	link.SetSharing(SharingFatpipe)
	assert.Equal(t, SharingFatpipe, link.Sharing)
}

func TestSealedZoneRejectsMutation(t *testing.T) {
	root := NewZone("root", RoutingEmpty)
	dc, err := root.AddZone("dc", RoutingFull)
	require.NoError(t, err)

	host, err := dc.AddHost("h0", "1Gf", 1)
	require.NoError(t, err)

	dc.Seal()
	require.True(t, dc.Sealed())

	_, err = dc.AddHost("h1", "1Gf", 1)
	assert.True(t, errors.Is(err, ErrZoneSealed))

	_, err = dc.AddLink("l0", "1GBps", "1us")
	assert.True(t, errors.Is(err, ErrZoneSealed))

	_, err = dc.AddZone("child", RoutingStar)
	assert.True(t, errors.Is(err, ErrZoneSealed))

	err = dc.AddRoute(&Route{})
	assert.True(t, errors.Is(err, ErrZoneSealed))

	_, err = dc.AddRouter("r0")
	assert.True(t, errors.Is(err, ErrZoneSealed))

	_, err = host.AddDisk("d0", "1MBps", "1MBps")
	assert.True(t, errors.Is(err, ErrZoneSealed))
}

func TestWalkVisitsPreOrder(t *testing.T) {
	root := NewZone("root", RoutingEmpty)
	a, _ := root.AddZone("a", RoutingFull)
	_, _ = a.AddZone("a1", RoutingStar)
	_, _ = a.AddZone("a2", RoutingStar)
	_, _ = root.AddZone("b", RoutingFull)

	var visited []string
	Walk(root, func(z *Zone) bool {
		visited = append(visited, z.Name)
		return true
	})
	assert.Equal(t, []string{"root", "a", "a1", "a2", "b"}, visited)
}

func TestWalkStopsEarly(t *testing.T) {
	root := NewZone("root", RoutingEmpty)
	_, _ = root.AddZone("a", RoutingFull)
	_, _ = root.AddZone("b", RoutingFull)

	var visited []string
	Walk(root, func(z *Zone) bool {
		visited = append(visited, z.Name)
		return z.Name != "a"
	})
	assert.Equal(t, []string{"root", "a"}, visited)
}

func TestWalkDeepTree(t *testing.T) {
	// A containment chain far deeper than any realistic facility; the
	// iterative walk must not blow the stack.
	root := NewZone("z0", RoutingEmpty)
	cur := root
	for i := 1; i <= 100000; i++ {
		next, err := cur.AddZone("z", RoutingEmpty)
		require.NoError(t, err)
		cur = next
	}

	count := 0
	Walk(root, func(*Zone) bool {
		count++
		return true
	})
	assert.Equal(t, 100001, count)
}

func TestFindZone(t *testing.T) {
	root := NewZone("root", RoutingEmpty)
	dc, _ := root.AddZone("dc", RoutingFull)
	c0, _ := dc.AddZone("c0", RoutingStar)

	assert.Equal(t, c0, FindZone(root, "c0"))
	assert.Nil(t, FindZone(root, "ghost"))
}

func TestStorageDeviceKinds(t *testing.T) {
	root := NewZone("root", RoutingEmpty)
	host, _ := root.AddHost("h", "1Gf", 1)
	disk, _ := host.AddDisk("d", "1MBps", "1MBps")

	one, err := NewOneDisk("s", disk)
	require.NoError(t, err)
	assert.Equal(t, StorageOneDisk, one.Kind)
	assert.Len(t, one.Disks, 1)

	jbod, err := NewJBOD("j", []*Disk{disk})
	require.NoError(t, err)
	assert.Equal(t, StorageJBOD, jbod.Kind)

	// Same single disk, different kinds: the devices are not
	// interchangeable.
	assert.NotEqual(t, one.Kind, jbod.Kind)

	_, err = NewOneDisk("bad", nil)
	assert.Error(t, err)
	_, err = NewJBOD("bad", nil)
	assert.Error(t, err)
}

func TestEndpointNames(t *testing.T) {
	root := NewZone("root", RoutingEmpty)
	host, _ := root.AddHost("h", "1Gf", 1)

	assert.Equal(t, "h", Endpoint{Host: host}.Name())
	assert.Equal(t, "root", Endpoint{Zone: root}.Name())
	assert.Equal(t, "<gateway>", Endpoint{}.Name())
	assert.True(t, Endpoint{}.Gateway())
	assert.False(t, Endpoint{Host: host}.Gateway())
}
