package compiler

import (
	"fmt"

	"evalgo.org/simfabric/internal/topology"
	"evalgo.org/simfabric/models"
)

// buildStorageSystem creates a dedicated zone under parent holding one
// server host and one storage device. Names derive from the
// specification name: <name>_server, <name>_storage, <name>_disk or
// <name>_diskN. The zone is sealed before returning.
func (bc *buildContext) buildStorageSystem(parent *topology.Zone, spec *models.StorageSystem) error {
	zone, err := parent.AddZone(spec.Name, topology.RoutingEmpty)
	if err != nil {
		return fmt.Errorf("storage system %q: %w", spec.Name, err)
	}
	if err := bc.registerZone(spec.Name, zone); err != nil {
		return err
	}

	server, err := zone.AddHost(spec.ServerName(), spec.ServerSpeed, 1)
	if err != nil {
		return fmt.Errorf("storage system %q: %w", spec.Name, err)
	}

	device, err := bc.buildStorageDevice(server, spec)
	if err != nil {
		return err
	}
	if err := bc.registerStorage(spec.StorageName(), device); err != nil {
		return err
	}

	zone.Seal()
	return nil
}

func (bc *buildContext) buildStorageDevice(server *topology.Host, spec *models.StorageSystem) (*topology.StorageDevice, error) {
	switch spec.Type {
	case models.StorageTypeJBOD:
		disks := make([]*topology.Disk, 0, spec.DiskCount)
		for i := 0; i < spec.DiskCount; i++ {
			disk, err := server.AddDisk(spec.DiskName(i), spec.ReadBW, spec.WriteBW)
			if err != nil {
				return nil, fmt.Errorf("storage system %q: %w", spec.Name, err)
			}
			disks = append(disks, disk)
		}
		return topology.NewJBOD(spec.StorageName(), disks)
	case models.StorageTypeOneDisk:
		disk, err := server.AddDisk(spec.DiskName(0), spec.ReadBW, spec.WriteBW)
		if err != nil {
			return nil, fmt.Errorf("storage system %q: %w", spec.Name, err)
		}
		return topology.NewOneDisk(spec.StorageName(), disk)
	default:
		return nil, fmt.Errorf("storage system %q: type %q: %w",
			spec.Name, spec.Type, ErrUnsupportedStorageType)
	}
}
