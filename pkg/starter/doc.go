// Package starter defines the operation-starter contract consumed by
// completion callbacks and provides Runner, an in-process worker-pool
// implementation of it.
//
// A Starter begins asynchronous operations. For every submission it either
// completes the operation synchronously — returning the final result code,
// in which case no callback will fire and the caller must run its callback
// manually — or returns completion.Pending and guarantees exactly one later
// invocation of the supplied primitive callback with the final code. When
// the caller passes the block-until-complete sentinel instead of a real
// callback, the operation runs inline and Submit returns its result.
//
// # Usage
//
//	import (
//	    "context"
//
//	    "github.com/dmitrymomot/asynckit/pkg/completion"
//	    "github.com/dmitrymomot/asynckit/pkg/starter"
//	)
//
//	func example(ctx context.Context) error {
//	    r := starter.NewRunner(starter.WithMaxConcurrent(8))
//	    if err := r.Start(ctx); err != nil {
//	        return err
//	    }
//	    defer r.Stop()
//
//	    f := starter.SubmitFuture(ctx, r, func(ctx context.Context) int32 {
//	        // long-running work
//	        return completion.OK
//	    })
//
//	    _, err := f.Await()
//	    return err
//	}
//
// Configuration can come from the environment:
//
//	cfg, err := starter.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	r := starter.NewRunner(starter.WithConfig(cfg))
//
// # Shutdown semantics
//
// Stop drains in-flight operations up to the configured drain timeout, then
// cancels their context and waits for them to return — operations must
// honour context cancellation for Stop to terminate. Operations still queued
// when Stop runs are not dropped: each is completed through its callback
// with completion.ErrAborted, preserving the exactly-one-invocation
// guarantee for every accepted submission.
package starter
