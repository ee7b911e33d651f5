// Package completion provides single-use completion callbacks for
// asynchronous operations, with safe mass cancellation.
//
// The package is centred around two types. A Callback is an opaque,
// single-use notification target: whoever owns the asynchronous operation
// invokes it exactly once with a result code when the operation finishes.
// A Factory mints Callbacks bound to methods of one owning object and can
// invalidate every callback it ever minted in a single O(1) operation,
// no matter how many are still held by the asynchronous subsystem.
//
// The binding between a callback and its target is indirect: callbacks
// never reference the owner directly, only through a shared reference-counted
// cell whose owner slot the factory nulls out on cancellation. A callback
// invoked after cancellation (or after the factory is closed) delivers
// nothing and is consumed cleanly — target-gone is an expected condition,
// not an error.
//
// # Usage
//
//	type downloader struct {
//	    factory *completion.Factory[downloader]
//	    buf     []byte
//	}
//
//	func newDownloader() *downloader {
//	    d := &downloader{}
//	    d.factory = completion.NewFactory(d)
//	    return d
//	}
//
//	func (d *downloader) fetchNext(s starter.Starter) {
//	    cb := d.factory.NewCallback((*downloader).didRead)
//	    if code := s.Submit(ctx, readOp, completion.ToPrimitive(cb)); code != completion.Pending {
//	        // Completed synchronously; no callback will fire, run it manually.
//	        cb.Run(code)
//	    }
//	}
//
//	func (d *downloader) didRead(result int32) {
//	    // result > 0 carries the byte count; negative values are error codes.
//	}
//
// Closing the factory (or calling CancelAll) from the owner's teardown path
// guarantees didRead is never called on a dead downloader, even though the
// asynchronous subsystem may still hold and later run the callback.
//
// # Contract
//
// Every minted callback must eventually be run exactly once, either by the
// asynchronous subsystem or manually after a synchronous completion. Running
// a callback twice is a programmer error and panics. A callback that is
// never run keeps its share of the factory's liveness cell alive; the
// package cannot detect abandonment.
//
// # Concurrency
//
// A factory must be minted from, cancelled, and closed on one goroutine —
// normally the owning object's goroutine. Callbacks may be run from another
// goroutine: the liveness cell uses atomic operations, so Run racing
// CancelAll never corrupts state. Whether such a racing delivery lands
// before or after the cancellation is unspecified; serialize externally if
// the ordering matters.
package completion
