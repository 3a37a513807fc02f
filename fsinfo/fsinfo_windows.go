//go:build windows

package fsinfo

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

func (f *FileSystem) refresh() error {
	drive, err := windows.UTF16PtrFromString(f.drive)
	if err != nil {
		return errors.Wrapf(err, "invalid filesystem location %s", f.drive)
	}

	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	err = windows.GetDiskFreeSpaceEx(drive, &freeBytesAvailable, &totalBytes, &totalFreeBytes)
	if err != nil {
		return errors.Wrapf(err, "failed to stat the filesystem at %s", f.drive)
	}

	f.space.Capacity = int64(totalBytes)
	f.space.Free = int64(freeBytesAvailable)
	f.space.InUse = f.space.Capacity - f.space.Free

	return nil
}
