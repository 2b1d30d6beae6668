package topology

import (
	"errors"
	"fmt"
)

// StorageKind distinguishes the supported storage device aggregations.
// The kind is part of a device's identity: a single-disk JBOD and a
// OneDisk device over the same disk are distinct devices.
type StorageKind string

const (
	// StorageOneDisk wraps exactly one disk.
	StorageOneDisk StorageKind = "OneDisk"
	// StorageJBOD presents one or more independent disks as one device.
	StorageJBOD StorageKind = "JBOD"
)

var errNoDisks = errors.New("storage device needs at least one disk")

// StorageDevice aggregates one or more disks under a registered name.
type StorageDevice struct {
	Name  string
	Kind  StorageKind
	Disks []*Disk
}

// NewOneDisk creates a OneDisk storage device over a single disk.
func NewOneDisk(name string, disk *Disk) (*StorageDevice, error) {
	if disk == nil {
		return nil, fmt.Errorf("one-disk storage %q: %w", name, errNoDisks)
	}
	return &StorageDevice{Name: name, Kind: StorageOneDisk, Disks: []*Disk{disk}}, nil
}

// NewJBOD creates a JBOD storage device over one or more disks.
func NewJBOD(name string, disks []*Disk) (*StorageDevice, error) {
	if len(disks) == 0 {
		return nil, fmt.Errorf("jbod storage %q: %w", name, errNoDisks)
	}
	return &StorageDevice{Name: name, Kind: StorageJBOD, Disks: disks}, nil
}
