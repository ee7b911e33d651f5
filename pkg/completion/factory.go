package completion

import "sync/atomic"

// backPointer is the liveness cell shared between one factory generation
// and every callback minted under it. Callbacks resolve their target through
// it instead of holding the owner directly, so the factory can invalidate
// all of them by nulling the owner slot — without tracking callbacks
// individually.
//
// The reference count keeps the cell's lifetime explicit: it lives exactly
// as long as the longer-lived of the factory and any outstanding callback.
// Go's GC would reclaim the memory anyway, but the explicit count is what
// makes the no-leak property observable and the cancel semantics
// deterministic.
type backPointer[T any] struct {
	refs  atomic.Int64
	owner atomic.Pointer[T]
}

func newBackPointer[T any](owner *T) *backPointer[T] {
	bp := &backPointer[T]{}
	bp.owner.Store(owner)
	// The factory's own reference.
	bp.refs.Store(1)
	return bp
}

func (bp *backPointer[T]) addRef() {
	bp.refs.Add(1)
}

func (bp *backPointer[T]) release() {
	if bp.refs.Add(-1) == 0 {
		bp.owner.Store(nil)
	}
}

func (bp *backPointer[T]) object() *T {
	return bp.owner.Load()
}

func (bp *backPointer[T]) dropOwner() {
	bp.owner.Store(nil)
}

// Factory mints single-use Callbacks bound to methods of one owning object
// and mediates cancellation of everything it minted. Embed a *Factory[T] in
// the object whose methods receive completions and Close it on teardown.
//
// Minting, CancelAll and Close must happen on the owner's goroutine; minted
// callbacks may be run from elsewhere (see the package documentation).
type Factory[T any] struct {
	owner *T
	bp    *backPointer[T]
}

// NewFactory creates a factory delivering completions to owner. A factory
// with no owner is meaningless: a nil owner is a programmer error and
// panics.
func NewFactory[T any](owner *T) *Factory[T] {
	if owner == nil {
		panic("completion: factory owner must not be nil")
	}
	return &Factory[T]{
		owner: owner,
		bp:    newBackPointer(owner),
	}
}

// NewCallback mints a single-use callback bound to method. The callback
// keeps the current liveness cell alive on its own, decoupling its lifetime
// from the factory's: the factory may be cancelled or closed while the
// callback is still held by the asynchronous subsystem.
//
// The callback must eventually be run exactly once. Minting from a closed
// factory panics.
func (f *Factory[T]) NewCallback(method func(owner *T, result int32)) *Callback {
	if f.bp == nil {
		panic("completion: factory is closed")
	}
	bp := f.bp
	bp.addRef()
	return &Callback{
		deliver: func(result int32) {
			if owner := bp.object(); owner != nil {
				method(owner, result)
			}
			bp.release()
		},
	}
}

// CancelAll invalidates every callback minted so far and starts a fresh
// generation for subsequent mints. It is O(1): outstanding callbacks are
// not tracked or enumerated. They remain valid objects — the asynchronous
// subsystem may still run them — but their delivery becomes a no-op.
func (f *Factory[T]) CancelAll() {
	f.retire()
	f.bp = newBackPointer(f.owner)
}

// Close invalidates every callback minted so far and retires the factory.
// Callbacks run afterwards find no live target and are consumed silently.
// Close is safe to call more than once; minting after Close panics.
func (f *Factory[T]) Close() {
	if f.bp == nil {
		return
	}
	f.retire()
	f.bp = nil
}

func (f *Factory[T]) retire() {
	f.bp.dropOwner()
	f.bp.release()
}

// Owner returns the object this factory delivers completions to.
func (f *Factory[T]) Owner() *T {
	return f.owner
}
