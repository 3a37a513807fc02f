// Package fsinfo reports capacity and usage for the volume backing a
// filesystem path.
package fsinfo

import (
	"github.com/cockroachdb/errors"
)

// Space holds a point-in-time snapshot of a volume's byte counts.
type Space struct {
	Capacity int64
	Free     int64
	InUse    int64
}

// FileSystem queries the volume that holds a single filesystem location.
type FileSystem struct {
	drive string
	space Space
}

// New creates a FileSystem for the volume holding location. The location is
// not checked until the first Refresh.
func New(location string) (*FileSystem, error) {
	if location == "" {
		return nil, errors.New("no filesystem location provided")
	}
	return &FileSystem{drive: location}, nil
}

// Drive returns the location this FileSystem was created with.
func (f *FileSystem) Drive() string {
	return f.drive
}

// Refresh queries the platform for the volume's current capacity and free
// space and updates the cached Space.
func (f *FileSystem) Refresh() error {
	return f.refresh()
}

// FreeDiskSpace refreshes and returns the volume's space snapshot. The
// returned Space is owned by the FileSystem and overwritten by the next
// Refresh.
func (f *FileSystem) FreeDiskSpace() (*Space, error) {
	err := f.Refresh()
	if err != nil {
		return nil, err
	}
	return &f.space, nil
}
