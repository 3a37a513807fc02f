package memutils_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/corekit/memutils"
)

func TestCheckPow2(t *testing.T) {
	require.NoError(t, memutils.CheckPow2(1, "value"))
	require.NoError(t, memutils.CheckPow2(64, "value"))

	err := memutils.CheckPow2(48, "value")
	require.ErrorIs(t, err, memutils.PowerOfTwoError)
	require.ErrorContains(t, err, "value is 48")
}

func TestNextPow2(t *testing.T) {
	require.Equal(t, 1, memutils.NextPow2(0))
	require.Equal(t, 1, memutils.NextPow2(1))
	require.Equal(t, 8, memutils.NextPow2(5))
	require.Equal(t, 8, memutils.NextPow2(8))
	require.Equal(t, 1024, memutils.NextPow2(513))
}

func TestStatisticsAdd(t *testing.T) {
	var total memutils.Statistics
	total.Clear()

	total.AddStatistics(&memutils.Statistics{
		ChunkCount:      2,
		AllocationCount: 5,
		ChunkBytes:      1024,
		AllocationBytes: 320,
	})
	total.AddStatistics(&memutils.Statistics{
		ChunkCount:      1,
		AllocationCount: 3,
		ChunkBytes:      512,
		AllocationBytes: 192,
	})

	require.Equal(t, memutils.Statistics{
		ChunkCount:      3,
		AllocationCount: 8,
		ChunkBytes:      1536,
		AllocationBytes: 512,
	}, total)
}
