package compiler

import (
	"fmt"

	"evalgo.org/simfabric/internal/topology"
	"evalgo.org/simfabric/models"
)

// MaxOpenFiles is the fixed open-file limit of every filesystem the
// compiler creates. The document schema carries no per-filesystem
// limit.
const MaxOpenFiles = 100000000

// buildFilesystems runs the filesystem pass. It happens once, after
// every facility has been built and sealed, because a cluster-mode
// filesystem may reference any cluster in the whole document.
func (bc *buildContext) buildFilesystems(specs []models.Filesystem) error {
	for i := range specs {
		spec := &specs[i]
		fs := topology.NewFilesystem(spec.Name, MaxOpenFiles)

		var err error
		switch {
		case spec.StorageSystem != "":
			err = bc.mountStorageSystem(fs, spec)
		case spec.Cluster != "":
			err = bc.mountCluster(fs, spec)
		default:
			err = fmt.Errorf("filesystem %q: needs a storage_system or cluster target", spec.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// mountStorageSystem mounts one partition at the literal mount point
// onto the storage system's device. No placeholder substitution is
// performed in this mode.
func (bc *buildContext) mountStorageSystem(fs *topology.Filesystem, spec *models.Filesystem) error {
	storageName := spec.StorageSystem + "_storage"
	device, err := bc.lookupStorage(storageName)
	if err != nil {
		return fmt.Errorf("filesystem %q: %w", spec.Name, err)
	}
	zone, err := bc.lookupZone(spec.StorageSystem)
	if err != nil {
		return fmt.Errorf("filesystem %q: %w", spec.Name, err)
	}

	fs.MountPartition(spec.MountPoint, device, spec.Size)
	zone.AttachFilesystem(fs)
	return nil
}

// mountCluster looks the cluster specification up in the document and
// mounts one partition per node, substituting every {hostname}
// occurrence in the mount-point template with the node's synthesized
// hostname. The filesystem is attached to the cluster zone once, after
// the per-node loop.
func (bc *buildContext) mountCluster(fs *topology.Filesystem, spec *models.Filesystem) error {
	cluster := bc.doc.FindCluster(spec.Cluster)
	if cluster == nil {
		return fmt.Errorf("filesystem %q: cluster %q: %w", spec.Name, spec.Cluster, ErrUnknownReference)
	}

	for i := 0; i < cluster.Count; i++ {
		storageName := cluster.NodeStorageName(i)
		if storageName == "" {
			return fmt.Errorf("filesystem %q: cluster %q has no node storage: %w",
				spec.Name, spec.Cluster, ErrUnknownReference)
		}
		device, err := bc.lookupStorage(storageName)
		if err != nil {
			return fmt.Errorf("filesystem %q: %w", spec.Name, err)
		}
		fs.MountPartition(spec.MountPointFor(cluster.Hostname(i)), device, spec.Size)
	}

	zone, err := bc.lookupZone(spec.Cluster)
	if err != nil {
		return fmt.Errorf("filesystem %q: %w", spec.Name, err)
	}
	zone.AttachFilesystem(fs)
	return nil
}
