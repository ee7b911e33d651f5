package starter

import (
	"context"

	"github.com/dmitrymomot/asynckit/pkg/completion"
)

// Operation is one unit of asynchronous work. It returns the operation's
// final result code — never completion.Pending. Long-running operations
// should return early with completion.ErrAborted when ctx is cancelled.
type Operation func(ctx context.Context) int32

// Starter begins asynchronous operations.
//
// Submit returns completion.Pending when the operation was accepted for
// asynchronous execution; cb is then guaranteed to be invoked exactly once
// with the final result code. Any other return value means the operation
// completed synchronously: cb will never be invoked and the caller must run
// its callback manually to reuse the completion path. When cb is the
// block-until-complete sentinel, the operation runs inline on the caller's
// goroutine and Submit returns its result.
type Starter interface {
	Submit(ctx context.Context, op Operation, cb completion.Primitive) int32
}
