package completion

import "sync/atomic"

// Thunk is the dispatch function of the primitive handle form. The external
// subsystem stores it together with the opaque state and invokes it exactly
// once with the final result code.
type Thunk func(state any, result int32)

// Primitive is the (dispatch function, opaque state) pair handed across the
// operation-starter boundary. The zero value is the block-until-complete
// sentinel: it tells the starter to complete the operation synchronously
// instead of invoking a callback.
type Primitive struct {
	Func  Thunk
	State any
}

// BlockUntilComplete returns the sentinel primitive requesting synchronous
// completion. Converting a nil *Callback yields the same value.
func BlockUntilComplete() Primitive {
	return Primitive{}
}

// IsBlocking reports whether p is the block-until-complete sentinel.
func (p Primitive) IsBlocking() bool {
	return p.Func == nil
}

// Run invokes the primitive exactly as the external subsystem would,
// delivering result to the underlying callback. Running the blocking
// sentinel is a no-op.
func (p Primitive) Run(result int32) {
	if p.Func != nil {
		p.Func(p.State, result)
	}
}

// Callback is a single-use completion target minted by a Factory. It holds
// no resources beyond its share of the factory's liveness cell and performs
// no work other than delivering one result code to the bound method.
type Callback struct {
	deliver func(result int32)
	done    atomic.Bool
}

// Run delivers result to the bound method if the owning object is still
// live, and consumes the callback either way. Normally the asynchronous
// subsystem runs the callback; call Run manually only when the operation
// starter reported synchronous completion.
//
// Running a callback more than once is a programmer error and panics.
func (c *Callback) Run(result int32) {
	if !c.done.CompareAndSwap(false, true) {
		panic("completion: callback already run")
	}
	c.deliver(result)
}

// ToPrimitive converts cb to the primitive handle form expected by
// operation starters. A nil cb converts to the block-until-complete
// sentinel rather than erroring: a missing callback signals
// synchronous-wait semantics by convention.
func ToPrimitive(cb *Callback) Primitive {
	if cb == nil {
		return BlockUntilComplete()
	}
	return Primitive{Func: runCallback, State: cb}
}

func runCallback(state any, result int32) {
	state.(*Callback).Run(result)
}
