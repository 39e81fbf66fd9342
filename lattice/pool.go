package lattice

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"

	"github.com/npillmayer/wakame/dict"
)

// Lattices own a node arena and per-position buckets whose capacity is
// worth keeping between analyses. To avoid re-allocating them for
// every call we will pool whole lattices.
type latticePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalLatticePool *latticePool

func init() {
	globalLatticePool = &latticePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			la := &Lattice{}
			return la, nil
		})
	globalLatticePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalLatticePool.opool = pool.NewObjectPool(globalLatticePool.ctx, factory, config)
}

// New returns a lattice for the given dictionaries, pooled for
// efficiency. Callers must hand it back with Free after use.
func New(d *dict.Dict, u *dict.UserDict) *Lattice {
	o, _ := globalLatticePool.opool.BorrowObject(globalLatticePool.ctx)
	la, ok := o.(*Lattice)
	if !ok {
		la = &Lattice{}
	}
	la.dic = d
	la.udic = u
	return la
}

// Free clears the lattice and puts it back into the pool. The lattice
// and any nodes obtained from it must not be used afterwards.
func (la *Lattice) Free() {
	la.reset()
	la.dic = nil
	la.udic = nil
	_ = globalLatticePool.opool.ReturnObject(globalLatticePool.ctx, la)
}
