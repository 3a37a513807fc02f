//go:build darwin || freebsd || linux

package fsinfo

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

func (f *FileSystem) refresh() error {
	var stat unix.Statfs_t
	err := unix.Statfs(f.drive, &stat)
	if err != nil {
		return errors.Wrapf(err, "failed to stat the filesystem at %s", f.drive)
	}

	blockSize := int64(stat.Bsize)
	f.space.Capacity = int64(stat.Blocks) * blockSize
	f.space.Free = int64(stat.Bfree) * blockSize
	f.space.InUse = f.space.Capacity - f.space.Free

	return nil
}
