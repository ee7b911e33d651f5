package starter

import (
	"context"
	"time"

	"github.com/dmitrymomot/asynckit/pkg/completion"
)

// futureState receives the completion for a Future. It exists as a named
// type so the future can own a completion factory bound to it.
type futureState struct {
	code    int32
	done    chan struct{}
	factory *completion.Factory[futureState]
}

func (s *futureState) complete(code int32) {
	s.code = code
	s.factory.Close()
	close(s.done)
}

// Future represents the eventual result code of a submitted operation.
type Future struct {
	state *futureState
}

// SubmitFuture submits op to s and returns a Future resolving to the
// operation's result code. It handles both halves of the starter contract:
// when Submit reports synchronous completion, the minted callback is run
// manually with the returned code, so Await behaves identically either way.
func SubmitFuture(ctx context.Context, s Starter, op Operation) *Future {
	st := &futureState{done: make(chan struct{})}
	st.factory = completion.NewFactory(st)
	cb := st.factory.NewCallback((*futureState).complete)

	if code := s.Submit(ctx, op, completion.ToPrimitive(cb)); code != completion.Pending {
		cb.Run(code)
	}

	return &Future{state: st}
}

// Await blocks until the operation completes and returns its result code,
// together with the code's sentinel error when the code denotes a failure.
func (f *Future) Await() (int32, error) {
	<-f.state.done
	return f.state.code, completion.ResultError(f.state.code)
}

// AwaitWithTimeout waits for completion up to timeout. If the operation
// does not complete in time it returns ErrTimeout; the operation itself
// keeps running and a later Await still observes its result.
func (f *Future) AwaitWithTimeout(timeout time.Duration) (int32, error) {
	select {
	case <-f.state.done:
		return f.state.code, completion.ResultError(f.state.code)
	case <-time.After(timeout):
		return 0, ErrTimeout
	}
}

// IsComplete checks whether the operation has completed without blocking.
func (f *Future) IsComplete() bool {
	select {
	case <-f.state.done:
		return true
	default:
		return false
	}
}
