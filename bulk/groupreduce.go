package bulk

import (
	"github.com/exascience/parabulk"
	"github.com/exascience/parabulk/monoid"
	"github.com/exascience/parabulk/seq"
	parabulksync "github.com/exascience/parabulk/sync"
)

// GroupReduce partitions a by key(a[i]) and, within each group,
// combines the matching elements with m, writing the per-group result
// into dst under that group's key. Where dst already holds a value for
// a key, the new values are combined onto it.
//
// Within a block, elements are combined in input order. The per-block
// results are merged into dst in whatever order the blocks reach
// dst.Modify, which is not fixed across runs, so the result follows
// input order only when m.F is commutative.
//
// GroupReduce is a convenience built over SlicedFor and
// parabulksync.Map[K, T]: each block computes its own local per-key
// reduction first, then merges it into dst once, so concurrent blocks
// contend on dst.Modify at most once per distinct key per block rather
// than once per element.
func GroupReduce[T any, K parabulksync.Hasher](a seq.Indexable[T], key func(T) K, m monoid.T[T], dst *parabulksync.Map[K, T], fl parabulk.Flags) {
	n := a.Size()
	SlicedFor(n, BlockDefault, func(_, s, e int) {
		local := make(map[K]T)
		order := make([]K, 0)
		for j := s; j < e; j++ {
			v := a.At(j)
			k := key(v)
			if val, ok := local[k]; ok {
				local[k] = m.F(val, v)
				continue
			}
			order = append(order, k)
			local[k] = v
		}
		for _, k := range order {
			val := local[k]
			dst.Modify(k, func(value T, ok bool) (T, bool) {
				if !ok {
					return val, true
				}
				return m.F(value, val), true
			})
		}
	}, fl)
}
