/*
Package sync provides a sharded map, generic over a hashable key and
an arbitrary value, built for throughput under concurrent access from
the bulk kernels rather than for the general-purpose
semantics of the standard library's sync.Map. For other synchronization
primitives, such as condition variables, mutual exclusion locks, object
pools, or atomic memory primitives, use the standard library.
*/
package sync

import (
	"context"
	"runtime"
	"sync"

	"github.com/exascience/parabulk/parallel"
	"github.com/exascience/parabulk/speculative"
)

/*
A Hasher represents a key type with a hash value, used by Map to pick
a shard. It embeds comparable because every Shard stores its entries
in a plain Go map keyed on K itself.

If Go would allow access to the predefined hash functions for Go
types, this interface would not be needed.
*/
type Hasher interface {
	comparable
	Hash() uint64
}

/*
A Shard is one of the partial maps that make up a larger Map[K, V], and
can be locked individually. Its enclosed map can then be accessed
without blocking accesses to other shards.
*/
type Shard[K Hasher, V any] struct {
	sync.RWMutex
	entries map[K]V
}

/*
A Map is a sharded map that consists of several Shard[K, V] values that
can be locked and accessed individually, so that concurrent access to
distinct keys rarely contends on the same lock.

The zero Map is not valid; use NewMap.
*/
type Map[K Hasher, V any] struct {
	shards []Shard[K, V]
}

/*
NewMap returns a map with shardCount shards.

If shardCount is <= 0, runtime.GOMAXPROCS(0) is used instead.
*/
func NewMap[K Hasher, V any](shardCount int) *Map[K, V] {
	if shardCount <= 0 {
		shardCount = runtime.GOMAXPROCS(0)
	}
	shards := make([]Shard[K, V], shardCount)
	for i := range shards {
		shards[i].entries = make(map[K]V)
	}
	return &Map[K, V]{shards}
}

/*
Shard retrieves the shard that a particular key belongs to.

The shard must be locked/unlocked properly by callers to safely access
its contents. In most cases it is easier to use one of the high-level
methods, Load, LoadOrStore, LoadOrCompute, Delete, DeleteOrStore,
DeleteOrCompute, and Modify, which take care of locking implicitly.
*/
func (m *Map[K, V]) Shard(key K) *Shard[K, V] {
	shards := m.shards
	return &shards[key.Hash()%uint64(len(shards))]
}

// Delete deletes the value for a key.
func (m *Map[K, V]) Delete(key K) {
	shard := m.Shard(key)
	shard.Lock()
	delete(shard.entries, key)
	shard.Unlock()
}

/*
Load returns the value stored in the map for a key, or the zero value
for V if no value is present. ok indicates whether a value was found.
*/
func (m *Map[K, V]) Load(key K) (value V, ok bool) {
	shard := m.Shard(key)
	shard.RLock()
	value, ok = shard.entries[key]
	shard.RUnlock()
	return
}

/*
LoadOrStore returns the existing value for the key if present.
Otherwise, it stores and returns value. loaded is true if the value was
loaded, false if stored.
*/
func (m *Map[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	shard := m.Shard(key)
	shard.RLock()
	actual, loaded = shard.entries[key]
	shard.RUnlock()
	if loaded {
		return
	}
	shard.Lock()
	if actual, loaded = shard.entries[key]; !loaded {
		actual = value
		shard.entries[key] = value
	}
	shard.Unlock()
	return
}

/*
LoadOrCompute returns the existing value for the key if present.
Otherwise, it calls compute, and then stores and returns the computed
value. loaded is true if the value was loaded, false if stored.

compute is invoked either zero times or once. While compute is
executing, no locks related to this map are held.

The computed value may not be the one returned, since a concurrent
goroutine may have already stored a value for the key in the meantime.
In that case, the value stored by that goroutine is returned instead.
*/
func (m *Map[K, V]) LoadOrCompute(key K, compute func() V) (actual V, loaded bool) {
	shard := m.Shard(key)
	shard.RLock()
	actual, loaded = shard.entries[key]
	shard.RUnlock()
	if loaded {
		return
	}
	value := compute()
	shard.Lock()
	if actual, loaded = shard.entries[key]; !loaded {
		actual = value
		shard.entries[key] = actual
	}
	shard.Unlock()
	return
}

/*
DeleteOrStore deletes and returns the existing value for the key if
present. Otherwise, it stores and returns value. deleted is true if a
value was deleted, false if one was stored.
*/
func (m *Map[K, V]) DeleteOrStore(key K, value V) (actual V, deleted bool) {
	shard := m.Shard(key)
	shard.Lock()
	if actual, deleted = shard.entries[key]; deleted {
		delete(shard.entries, key)
	} else {
		actual = value
		shard.entries[key] = value
	}
	shard.Unlock()
	return
}

/*
DeleteOrCompute deletes and returns the existing value for the key if
present. Otherwise, it calls compute, and then stores and returns the
computed value. deleted is true if a value was deleted, false if one
was stored.

compute is invoked either zero times or once. While compute is
executing, a lock is held on a portion of the map, so the function
should be brief.
*/
func (m *Map[K, V]) DeleteOrCompute(key K, compute func() V) (actual V, deleted bool) {
	shard := m.Shard(key)
	shard.Lock()
	if actual, deleted = shard.entries[key]; deleted {
		delete(shard.entries, key)
	} else {
		actual = compute()
		shard.entries[key] = actual
	}
	shard.Unlock()
	return
}

/*
Modify looks up the value for the key if present and passes it to
modify. ok indicates whether a value was found. The replacement
returned by modify is stored for key if storeNotDelete is true,
otherwise the key is deleted. Modify returns the same results as
modify.

modify is invoked exactly once. While modify is executing, a lock is
held on a portion of the map, so the function should be brief.

This is the most general modification method for Map. The other
mutating methods are potentially more efficient, so prefer one of them
when it fits.
*/
func (m *Map[K, V]) Modify(key K, modify func(value V, ok bool) (replacement V, storeNotDelete bool)) (replacement V, storeNotDelete bool) {
	shard := m.Shard(key)
	shard.Lock()
	value, ok := shard.entries[key]
	if replacement, storeNotDelete = modify(value, ok); storeNotDelete {
		shard.entries[key] = replacement
	} else {
		delete(shard.entries, key)
	}
	shard.Unlock()
	return
}

func (shard *Shard[K, V]) rangeLocked(f func(key K, value V) bool) bool {
	shard.Lock()
	defer shard.Unlock()
	for key, value := range shard.entries {
		if !f(key, value) {
			return false
		}
	}
	return true
}

/*
Range calls f sequentially for each key and value present in the map.
If f returns false, Range stops the iteration.

Range does not necessarily correspond to any consistent snapshot of
the Map's contents: no key is visited more than once, but if the value
for a key is stored or deleted concurrently, Range may reflect any
mapping for that key from any point during the call.
*/
func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	for i := range m.shards {
		if !m.shards[i].rangeLocked(f) {
			return
		}
	}
}

/*
ParallelRange calls f in parallel for each key and value present in
the map. If f returns false for any entry, the shards of the
corresponding batch stop early, but ParallelRange otherwise waits for
all batches to finish.

ParallelRange does not necessarily correspond to any consistent
snapshot of the Map's contents: no key is visited more than once, but
if the value for a key is stored or deleted concurrently,
ParallelRange may reflect any mapping for that key from any point
during the call.
*/
func (m *Map[K, V]) ParallelRange(f func(key K, value V) bool) {
	shards := m.shards
	parallel.RangeAnd(0, len(shards), 0, func(low, high int) bool {
		for i := low; i < high; i++ {
			if !shards[i].rangeLocked(f) {
				return false
			}
		}
		return true
	})
}

func (shard *Shard[K, V]) rangeLockedWithContext(ctx context.Context, f func(key K, value V) bool) bool {
	shard.Lock()
	defer shard.Unlock()
	for key, value := range shard.entries {
		select {
		case <-ctx.Done():
			return true
		default:
			if !f(key, value) {
				return false
			}
		}
	}
	return true
}

/*
SpeculativeRange calls f in parallel for each key and value present in
the map. If f returns false, SpeculativeRange stops the iteration, and
makes an attempt to terminate the goroutines that were started by this
call early by canceling a shared context.

SpeculativeRange is useful as an alternative to ParallelRange when
false is a common and/or early return value for f, so that the
remaining shards can stop sooner. When false is an uncommon and/or
late return value, ParallelRange avoids the extra cancellation
bookkeeping.

SpeculativeRange does not necessarily correspond to any consistent
snapshot of the Map's contents: no key is visited more than once, but
if the value for a key is stored or deleted concurrently,
SpeculativeRange may reflect any mapping for that key from any point
during the call.
*/
func (m *Map[K, V]) SpeculativeRange(f func(key K, value V) bool) {
	shards := m.shards
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	speculative.RangeAnd(0, len(shards), 0, func(low, high int) bool {
		for i := low; i < high; i++ {
			if !shards[i].rangeLockedWithContext(ctx, f) {
				cancel()
				return false
			}
		}
		return true
	})
}
