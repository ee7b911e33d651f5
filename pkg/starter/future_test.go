package starter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asynckit/pkg/completion"
	"github.com/dmitrymomot/asynckit/pkg/starter"
)

// syncStarter completes every operation synchronously: it never returns
// completion.Pending and never invokes the callback.
type syncStarter struct{}

func (syncStarter) Submit(ctx context.Context, op starter.Operation, cb completion.Primitive) int32 {
	return op(ctx)
}

// pendingStarter accepts every operation and never completes it.
type pendingStarter struct{}

func (pendingStarter) Submit(ctx context.Context, op starter.Operation, cb completion.Primitive) int32 {
	return completion.Pending
}

func TestFuture_Await(t *testing.T) {
	t.Parallel()

	t.Run("resolves with the operation result", func(t *testing.T) {
		t.Parallel()

		r := starter.NewRunner(starter.WithLogger(discardLogger()))
		require.NoError(t, r.Start(context.Background()))
		defer r.Stop()

		f := starter.SubmitFuture(context.Background(), r, func(ctx context.Context) int32 {
			return 42
		})

		code, err := f.Await()
		require.NoError(t, err)
		assert.EqualValues(t, 42, code)
		assert.True(t, f.IsComplete())
	})

	t.Run("failure codes map to sentinel errors", func(t *testing.T) {
		t.Parallel()

		r := starter.NewRunner(starter.WithLogger(discardLogger()))
		require.NoError(t, r.Start(context.Background()))
		defer r.Stop()

		f := starter.SubmitFuture(context.Background(), r, func(ctx context.Context) int32 {
			return completion.ErrTimedOut
		})

		code, err := f.Await()
		assert.Equal(t, completion.ErrTimedOut, code)
		assert.ErrorIs(t, err, completion.ErrOperationTimedOut)
	})

	t.Run("synchronous starter path", func(t *testing.T) {
		t.Parallel()

		// Submit returns the final code directly; SubmitFuture must run the
		// callback manually so Await behaves identically.
		f := starter.SubmitFuture(context.Background(), syncStarter{}, func(ctx context.Context) int32 {
			return 1024
		})

		require.True(t, f.IsComplete())
		code, err := f.Await()
		require.NoError(t, err)
		assert.EqualValues(t, 1024, code)
	})

	t.Run("stopped runner resolves with ErrAborted", func(t *testing.T) {
		t.Parallel()

		r := starter.NewRunner(starter.WithLogger(discardLogger()))
		require.NoError(t, r.Start(context.Background()))
		require.NoError(t, r.Stop())

		f := starter.SubmitFuture(context.Background(), r, func(ctx context.Context) int32 {
			return completion.OK
		})

		code, err := f.Await()
		assert.Equal(t, completion.ErrAborted, code)
		assert.ErrorIs(t, err, completion.ErrOperationAborted)
	})
}

func TestFuture_AwaitWithTimeout(t *testing.T) {
	t.Parallel()

	t.Run("times out while the operation is outstanding", func(t *testing.T) {
		t.Parallel()

		f := starter.SubmitFuture(context.Background(), pendingStarter{}, func(ctx context.Context) int32 {
			return completion.OK
		})

		assert.False(t, f.IsComplete())

		_, err := f.AwaitWithTimeout(20 * time.Millisecond)
		assert.ErrorIs(t, err, starter.ErrTimeout)
	})

	t.Run("returns the result when completion wins", func(t *testing.T) {
		t.Parallel()

		r := starter.NewRunner(starter.WithLogger(discardLogger()))
		require.NoError(t, r.Start(context.Background()))
		defer r.Stop()

		f := starter.SubmitFuture(context.Background(), r, func(ctx context.Context) int32 {
			return 7
		})

		code, err := f.AwaitWithTimeout(5 * time.Second)
		require.NoError(t, err)
		assert.EqualValues(t, 7, code)
	})
}
