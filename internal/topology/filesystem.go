package topology

// Filesystem is a logical namespace of mounted partitions.
type Filesystem struct {
	Name         string
	MaxOpenFiles int
	Partitions   []*Partition
}

// NewFilesystem creates an empty filesystem.
func NewFilesystem(name string, maxOpenFiles int) *Filesystem {
	return &Filesystem{Name: name, MaxOpenFiles: maxOpenFiles}
}

// MountPartition maps a mount-point path onto one storage device with a
// declared capacity.
func (f *Filesystem) MountPartition(mountPoint string, storage *StorageDevice, size string) *Partition {
	p := &Partition{MountPoint: mountPoint, Size: size, Storage: storage}
	f.Partitions = append(f.Partitions, p)
	return p
}

// Partition is one mount of a path onto a storage device.
type Partition struct {
	MountPoint string
	Size       string
	Storage    *StorageDevice
}
