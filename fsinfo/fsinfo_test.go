package fsinfo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/corekit/fsinfo"
)

func TestFreeDiskSpace(t *testing.T) {
	fs, err := fsinfo.New(os.TempDir())
	require.NoError(t, err)
	require.Equal(t, os.TempDir(), fs.Drive())

	space, err := fs.FreeDiskSpace()
	require.NoError(t, err)
	require.Greater(t, space.Capacity, int64(0))
	require.GreaterOrEqual(t, space.Free, int64(0))
	require.LessOrEqual(t, space.Free, space.Capacity)
	require.Equal(t, space.Capacity-space.Free, space.InUse)
}

func TestNewRejectsEmptyLocation(t *testing.T) {
	_, err := fsinfo.New("")
	require.Error(t, err)
}

func TestRefreshMissingPath(t *testing.T) {
	fs, err := fsinfo.New(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	require.Error(t, fs.Refresh())
}
