// Package pool implements a growable, chunked object pool. A Pool hands out
// objects of a single element type from fixed-size chunks of backing memory,
// growing by linking additional chunks when the active chunk is exhausted and
// recycling retired chunks before creating new ones. Typical usage: size the
// pool for the expected working set, Alloc during a processing cycle, then
// Release to begin the next cycle without repaying construction cost.
package pool

import (
	"fmt"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/corekit/memutils"
	"golang.org/x/exp/slog"
)

// chunk is one fixed-capacity buffer of elements. used is the cursor of the
// next free slot, counted from the front of items.
type chunk[T any] struct {
	items []T
	used  int
}

// Pool is a chunked object pool specialized for a single element type.
//
// The pool owns every chunk it has ever created in the chunks arena, in
// creation order. chain and free are positional views into that arena: chain
// is the primary allocation chain, walked left to right, and free holds
// retired chunks available for reuse. Holding ownership in a single arena
// means teardown releases each chunk exactly once no matter how many views
// referenced it.
//
// A Pool is single-owner: it performs no internal synchronization, and
// concurrent use from multiple goroutines requires external locking or one
// pool per goroutine.
type Pool[T any] struct {
	logger *slog.Logger

	chunks []chunk[T]
	chain  []int
	free   []int

	// current is a position within chain, or -1 when the pool holds no
	// chunks.
	current  int
	capacity int
	elemSize int
}

var _ memutils.Validatable = &Pool[int]{}

// NewPool creates a pool with one eagerly-allocated chunk of numItems
// elements. If numItems <= 0 the pool starts empty: Alloc returns nil until
// the pool is given a size through Resize or Reserve.
func NewPool[T any](numItems int) *Pool[T] {
	return NewPoolWithLogger[T](nil, numItems)
}

// NewPoolWithLogger is NewPool with a logger for growth diagnostics. A nil
// logger falls back to slog.Default.
func NewPoolWithLogger[T any](logger *slog.Logger, numItems int) *Pool[T] {
	if logger == nil {
		logger = slog.Default()
	}

	p := &Pool[T]{
		logger:   logger,
		current:  -1,
		elemSize: int(unsafe.Sizeof(*new(T))),
	}
	if numItems > 0 {
		p.chain = append(p.chain, p.newChunk(numItems))
		p.current = 0
	}
	return p
}

// Alloc returns a pointer to the next free element of the active chunk,
// growing the pool first when the active chunk is full. The element is always
// zeroed, even when the slot comes from recycled chunk memory. The pointer
// stays valid until Clear or Reserve, or until Release for elements outside
// the head chunk; the pool never moves an element it has handed out.
//
// Alloc returns nil on a pool that holds no chunks (constructed without a
// size and never resized). Callers must check.
func (p *Pool[T]) Alloc() *T {
	if p.current < 0 {
		return nil
	}

	active := &p.chunks[p.chain[p.current]]
	if active.used == len(active.items) {
		p.Resize(len(active.items))
		active = &p.chunks[p.chain[p.current]]
	}

	var zero T
	slot := &active.items[active.used]
	*slot = zero
	active.used++

	return slot
}

// Resize grows the pool by one chunk of at least growSize elements and makes
// it the active chunk. Retired chunks of sufficient size are reused before
// any new memory is allocated; only a brand-new chunk raises Capacity. A
// growSize smaller than the active chunk is ignored, so chunk sizes along the
// chain never decrease. On a pool that holds no chunks, Resize creates the
// first chunk.
func (p *Pool[T]) Resize(growSize int) {
	if p.current >= 0 {
		active := &p.chunks[p.chain[p.current]]
		if growSize < len(active.items) {
			return
		}
	}

	if len(p.chain) == 0 {
		p.chain = append(p.chain, p.newChunk(growSize))
		p.current = 0
		memutils.DebugValidate(p)
		return
	}

	index, reused := p.takeRetired(growSize)
	if !reused {
		index = p.newChunk(growSize)
	}
	p.chain = append(p.chain, index)
	p.current = len(p.chain) - 1

	p.logger.Debug("Pool::Resize",
		slog.Int("NumItems", len(p.chunks[index].items)),
		slog.Bool("Reused", reused),
	)
	memutils.DebugValidate(p)
}

// Release rewinds every chunk cursor to zero and retires every chunk after
// the head into the free list, making the head chunk active again. All
// elements handed out so far are logically invalidated, but no chunk memory
// is freed, so the next allocation cycle reuses it. Release on a pool that
// holds no chunks is a no-op.
func (p *Pool[T]) Release() {
	if p.current < 0 {
		return
	}

	for _, index := range p.chain {
		p.chunks[index].used = 0
	}
	p.free = append(p.free, p.chain[1:]...)
	p.chain = p.chain[:1]
	p.current = 0

	memutils.DebugValidate(p)
}

// Reset rewinds the active position to the head of the chain without touching
// chunk cursors or the free list. Because the cursors are untouched,
// subsequent Alloc calls treat non-head chunks as already full and growth
// re-triggers once the head is consumed. This is a deliberately narrow
// operation for callers that track their own logical element count; callers
// that want a fully reusable pool should call Release instead.
func (p *Pool[T]) Reset() {
	if p.current < 0 {
		return
	}
	p.current = 0
}

// Reserve destructively re-initializes the pool: every existing chunk is
// discarded, invalidating all previously returned elements, and a single
// fresh chunk of size elements becomes the new head. Capacity afterwards is
// exactly size. Reserve does not preserve pool contents even when growing;
// see Resize for non-destructive growth.
func (p *Pool[T]) Reserve(size int) {
	p.Clear()

	p.chain = append(p.chain, p.newChunk(size))
	p.current = 0

	memutils.DebugValidate(p)
}

// Clear tears the pool down: every chunk is released, whether on the primary
// chain or the free list, and the pool returns to its empty state with zero
// capacity. All previously returned elements are invalidated. Calling Clear
// on an already-empty pool is a no-op.
func (p *Pool[T]) Clear() {
	p.chunks = nil
	p.chain = nil
	p.free = nil
	p.current = -1
	p.capacity = 0
}

// Capacity returns the total element slots committed across all chunks the
// pool currently owns, retired chunks included. The value only decreases on
// Clear or Reserve.
func (p *Pool[T]) Capacity() int {
	return p.capacity
}

// ReservedMem returns Capacity in bytes.
func (p *Pool[T]) ReservedMem() int {
	return p.capacity * p.elemSize
}

// FreeMem returns the free slots remaining in the active chunk only. It is a
// deliberately cheap chunk-local metric, not a pool-wide free count.
func (p *Pool[T]) FreeMem() int {
	if p.current < 0 {
		return 0
	}
	active := &p.chunks[p.chain[p.current]]
	return len(active.items) - active.used
}

// DumpAllocations returns a human-readable allocation count for diagnostics.
func (p *Pool[T]) DumpAllocations() string {
	used := 0
	if p.current >= 0 {
		used = p.chunks[p.chain[p.current]].used
	}
	return fmt.Sprintf("Number allocations = %d\n", used)
}

// AddStatistics sums this pool's chunk and allocation counts into the
// statistics currently present in the provided memutils.Statistics object.
func (p *Pool[T]) AddStatistics(stats *memutils.Statistics) {
	stats.ChunkCount += len(p.chunks)
	stats.ChunkBytes += p.capacity * p.elemSize

	allocations := p.allocationCount()
	stats.AllocationCount += allocations
	stats.AllocationBytes += allocations * p.elemSize
}

// PoolJsonData populates a json object with information about this pool
func (p *Pool[T]) PoolJsonData(json jwriter.ObjectState) {
	json.Name("Capacity").Int(p.capacity)
	json.Name("ReservedBytes").Int(p.ReservedMem())
	json.Name("ChunkCount").Int(len(p.chunks))
	json.Name("RetiredChunks").Int(len(p.free))
	json.Name("Allocations").Int(p.allocationCount())
	json.Name("FreeSlots").Int(p.FreeMem())
}

// Validate performs internal consistency checks on the pool's chunk
// bookkeeping. When the pool is functioning correctly it should not be
// possible for this method to return an error, but it may assist in
// diagnosing issues with the implementation.
func (p *Pool[T]) Validate() error {
	if p.current >= len(p.chain) {
		return errors.Newf("the active position %d is beyond the chain length %d", p.current, len(p.chain))
	}
	if p.current < 0 && len(p.chain) != 0 {
		return errors.Newf("the pool reports no active chunk, but the chain holds %d chunks", len(p.chain))
	}

	seen := make([]bool, len(p.chunks))
	for _, index := range p.chain {
		if index < 0 || index >= len(p.chunks) {
			return errors.Newf("the chain references chunk %d, which does not exist", index)
		}
		if seen[index] {
			return errors.Newf("chunk %d appears more than once across the chain and free list", index)
		}
		seen[index] = true
	}
	for _, index := range p.free {
		if index < 0 || index >= len(p.chunks) {
			return errors.Newf("the free list references chunk %d, which does not exist", index)
		}
		if seen[index] {
			return errors.Newf("chunk %d appears more than once across the chain and free list", index)
		}
		seen[index] = true

		if p.chunks[index].used != 0 {
			return errors.Newf("retired chunk %d has %d live slots, but retired chunks must be empty", index, p.chunks[index].used)
		}
	}
	for index, present := range seen {
		if !present {
			return errors.Newf("chunk %d is owned by the pool but unreachable from both the chain and the free list", index)
		}
	}

	totalSlots := 0
	for index := range p.chunks {
		c := &p.chunks[index]
		if c.used > len(c.items) {
			return errors.Newf("chunk %d has cursor %d beyond its size %d", index, c.used, len(c.items))
		}
		totalSlots += len(c.items)
	}
	if totalSlots != p.capacity {
		return errors.Newf("the pool reports capacity %d, but its chunks hold %d slots", p.capacity, totalSlots)
	}

	return nil
}

func (p *Pool[T]) allocationCount() int {
	count := 0
	for _, index := range p.chain {
		count += p.chunks[index].used
	}
	return count
}

// newChunk commits a new chunk into the owning arena and returns its index.
func (p *Pool[T]) newChunk(numItems int) int {
	p.chunks = append(p.chunks, chunk[T]{items: make([]T, numItems)})
	p.capacity += numItems
	return len(p.chunks) - 1
}

// takeRetired removes and returns the first retired chunk with at least
// minSize slots, if any.
func (p *Pool[T]) takeRetired(minSize int) (int, bool) {
	for i, index := range p.free {
		if len(p.chunks[index].items) >= minSize {
			p.free = append(p.free[:i], p.free[i+1:]...)
			return index, true
		}
	}
	return 0, false
}
