package pool

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/corekit/memutils"
	"golang.org/x/exp/slog"
)

// StatsReporter is the part of a Pool the Registry cares about. Pools of any
// element type satisfy it.
type StatsReporter interface {
	// AddStatistics sums the reporter's chunk and allocation counts into the
	// statistics currently present in the provided memutils.Statistics object.
	AddStatistics(stats *memutils.Statistics)
	// PoolJsonData populates a json object with information about this reporter
	PoolJsonData(json jwriter.ObjectState)
}

// Registry tracks named pools so their statistics can be aggregated and
// dumped in one place. Unlike a Pool, a Registry is a shared diagnostic
// surface and locks internally.
type Registry struct {
	mutex  sync.RWMutex
	logger *slog.Logger
	pools  *swiss.Map[string, StatsReporter]
}

// NewRegistry creates an empty Registry. A nil logger falls back to
// slog.Default.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger: logger,
		pools:  swiss.NewMap[string, StatsReporter](8),
	}
}

// Register adds a pool under the provided name. Names are unique: registering
// a second pool under a live name returns an error.
func (r *Registry) Register(name string, pool StatsReporter) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	_, exists := r.pools.Get(name)
	if exists {
		return errors.Newf("a pool named %s is already registered", name)
	}
	r.pools.Put(name, pool)

	r.logger.Debug("Registry::Register", slog.String("Name", name))
	return nil
}

// Unregister removes the pool registered under name, if any, and reports
// whether a pool was removed.
func (r *Registry) Unregister(name string) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	removed := r.pools.Delete(name)
	if removed {
		r.logger.Debug("Registry::Unregister", slog.String("Name", name))
	}
	return removed
}

// Count returns the number of registered pools.
func (r *Registry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.pools.Count()
}

// CalculateStatistics sums the statistics of every registered pool into the
// statistics currently present in the provided memutils.Statistics object.
func (r *Registry) CalculateStatistics(stats *memutils.Statistics) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	r.pools.Iter(func(name string, pool StatsReporter) bool {
		pool.AddStatistics(stats)
		return false
	})
}

// BuildStatsString returns a JSON document with one object per registered
// pool, keyed by registration name.
func (r *Registry) BuildStatsString() string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	writer := jwriter.NewWriter()
	objState := writer.Object()

	r.pools.Iter(func(name string, pool StatsReporter) bool {
		poolObj := objState.Name(name).Object()
		pool.PoolJsonData(poolObj)
		poolObj.End()
		return false
	})

	objState.End()
	return string(writer.Bytes())
}
