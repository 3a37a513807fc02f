package pool_test

import (
	"encoding/json"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/corekit/memutils"
	"github.com/vkngwrapper/corekit/pool"
)

func TestRegistryRegister(t *testing.T) {
	registry := pool.NewRegistry(nil)
	require.Equal(t, 0, registry.Count())

	require.NoError(t, registry.Register("payloads", pool.NewPool[payload](8)))
	require.NoError(t, registry.Register("counters", pool.NewPool[int](16)))
	require.Equal(t, 2, registry.Count())

	err := registry.Register("payloads", pool.NewPool[payload](4))
	require.Error(t, err)
	require.Equal(t, 2, registry.Count())

	require.True(t, registry.Unregister("payloads"))
	require.False(t, registry.Unregister("payloads"))
	require.Equal(t, 1, registry.Count())
}

func TestRegistryCalculateStatistics(t *testing.T) {
	registry := pool.NewRegistry(nil)

	payloads := pool.NewPool[payload](8)
	counters := pool.NewPool[int](16)
	require.NoError(t, registry.Register("payloads", payloads))
	require.NoError(t, registry.Register("counters", counters))

	for i := 0; i < 3; i++ {
		require.NotNil(t, payloads.Alloc())
	}
	require.NotNil(t, counters.Alloc())

	var stats memutils.Statistics
	stats.Clear()
	registry.CalculateStatistics(&stats)

	payloadSize := int(unsafe.Sizeof(payload{}))
	counterSize := int(unsafe.Sizeof(int(0)))
	require.Equal(t, memutils.Statistics{
		ChunkCount:      2,
		AllocationCount: 4,
		ChunkBytes:      8*payloadSize + 16*counterSize,
		AllocationBytes: 3*payloadSize + 1*counterSize,
	}, stats)
}

func TestRegistryBuildStatsString(t *testing.T) {
	registry := pool.NewRegistry(nil)

	payloads := pool.NewPool[payload](8)
	require.NoError(t, registry.Register("payloads", payloads))
	require.NotNil(t, payloads.Alloc())

	statsString := registry.BuildStatsString()
	require.NotEmpty(t, statsString)

	var document map[string]map[string]int
	require.NoError(t, json.Unmarshal([]byte(statsString), &document))

	poolData, exists := document["payloads"]
	require.True(t, exists)
	require.Equal(t, 8, poolData["Capacity"])
	require.Equal(t, 1, poolData["Allocations"])
	require.Equal(t, 7, poolData["FreeSlots"])
}
