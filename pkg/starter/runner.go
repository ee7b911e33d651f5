package starter

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eapache/queue"
	"github.com/google/uuid"

	"github.com/dmitrymomot/asynckit/pkg/completion"
)

// submission is one accepted asynchronous operation waiting for a worker
// slot.
type submission struct {
	id uuid.UUID
	op Operation
	cb completion.Primitive
}

// Runner executes submitted operations on a bounded worker pool. It
// implements Starter: accepted submissions return completion.Pending and
// the supplied callback is invoked exactly once when the operation
// finishes, is aborted by Stop, or panics.
type Runner struct {
	id      string
	logger  *slog.Logger
	sem     chan struct{}
	notify  chan struct{}
	pending *queue.Queue // of *submission, guarded by mu
	mu      sync.Mutex

	queueCap     int
	drainTimeout time.Duration

	// Lifecycle context stops the dispatch loop; operations run under a
	// detached context so a graceful Stop can let them finish first.
	ctx      context.Context
	cancel   context.CancelFunc
	opCtx    context.Context
	opCancel context.CancelFunc

	wg      sync.WaitGroup // in-flight operations
	loopWg  sync.WaitGroup // dispatch loop
	started bool
	stopped atomic.Bool
}

// NewRunner creates a runner. It does not execute anything until Start is
// called.
func NewRunner(opts ...Option) *Runner {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &Runner{
		id:           uuid.New().String(),
		logger:       options.logger,
		sem:          make(chan struct{}, options.maxConcurrent),
		notify:       make(chan struct{}, 1),
		pending:      queue.New(),
		queueCap:     options.queueCapacity,
		drainTimeout: options.drainTimeout,
	}
}

// Start begins dispatching submitted operations. The runner stops when Stop
// is called; ctx only parents the dispatch loop, it does not cancel
// in-flight operations directly.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started || r.stopped.Load() {
		return ErrAlreadyStarted
	}
	r.started = true
	r.ctx, r.cancel = context.WithCancel(ctx)
	r.opCtx, r.opCancel = context.WithCancel(context.Background())

	r.loopWg.Add(1)
	go r.dispatch()

	r.logger.Info("runner started",
		slog.String("runner_id", r.id),
		slog.Int("max_concurrent", cap(r.sem)),
		slog.Int("queue_capacity", r.queueCap))

	return nil
}

// Stop shuts the runner down. In-flight operations get up to the drain
// timeout to finish before their context is cancelled; operations still
// queued are completed through their callbacks with completion.ErrAborted.
// Stop is safe to call more than once.
func (r *Runner) Stop() error {
	r.mu.Lock()
	if !r.started {
		r.mu.Unlock()
		return ErrNotStarted
	}
	if r.stopped.Load() {
		r.mu.Unlock()
		return nil
	}
	r.stopped.Store(true)
	r.mu.Unlock()

	r.cancel()
	r.loopWg.Wait()

	r.logger.Info("runner stopping, draining in-flight operations",
		slog.String("runner_id", r.id))

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(r.drainTimeout):
		r.logger.Warn("drain timeout exceeded, cancelling in-flight operations",
			slog.String("runner_id", r.id),
			slog.Duration("drain_timeout", r.drainTimeout))
		r.opCancel()
		<-done
	}
	r.opCancel()

	// Accepted-but-unstarted submissions still owe their callers exactly
	// one completion.
	for {
		r.mu.Lock()
		if r.pending.Length() == 0 {
			r.mu.Unlock()
			break
		}
		sub := r.pending.Remove().(*submission)
		r.mu.Unlock()

		sub.cb.Run(completion.ErrAborted)
		r.logger.Debug("queued operation aborted",
			slog.String("runner_id", r.id),
			slog.String("op_id", sub.id.String()))
	}

	r.logger.Info("runner stopped", slog.String("runner_id", r.id))
	return nil
}

// Run starts the runner and returns a function suitable for errgroup.
func (r *Runner) Run(ctx context.Context) func() error {
	return func() error {
		if err := r.Start(ctx); err != nil {
			return err
		}

		<-ctx.Done()

		return r.Stop()
	}
}

// Submit implements Starter.
//
// With the block-until-complete sentinel the operation runs inline under the
// caller's ctx regardless of runner state. Otherwise the operation is queued
// for asynchronous execution and Submit returns completion.Pending; a runner
// that is not running completes synchronously with completion.ErrAborted,
// and a full queue with completion.ErrNoSpace — in both cases the caller
// runs its callback manually, as with any synchronous completion.
func (r *Runner) Submit(ctx context.Context, op Operation, cb completion.Primitive) int32 {
	if op == nil {
		return completion.ErrBadArgument
	}

	id := uuid.New()

	if cb.IsBlocking() {
		return r.runOperation(ctx, id, op)
	}

	r.mu.Lock()
	if !r.started || r.stopped.Load() {
		r.mu.Unlock()
		return completion.ErrAborted
	}
	if r.pending.Length() >= r.queueCap {
		r.mu.Unlock()
		return completion.ErrNoSpace
	}
	r.pending.Add(&submission{id: id, op: op, cb: cb})
	r.mu.Unlock()

	select {
	case r.notify <- struct{}{}:
	default:
	}

	r.logger.Debug("operation queued",
		slog.String("runner_id", r.id),
		slog.String("op_id", id.String()))

	return completion.Pending
}

// dispatch moves submissions from the pending queue onto worker goroutines,
// bounded by the semaphore.
func (r *Runner) dispatch() {
	defer r.loopWg.Done()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-r.notify:
		}

		for {
			select {
			case r.sem <- struct{}{}:
			case <-r.ctx.Done():
				return
			}

			r.mu.Lock()
			if r.pending.Length() == 0 {
				r.mu.Unlock()
				<-r.sem
				break
			}
			sub := r.pending.Remove().(*submission)
			r.mu.Unlock()

			r.wg.Add(1)
			go r.execute(sub)
		}
	}
}

func (r *Runner) execute(sub *submission) {
	defer r.wg.Done()
	defer func() { <-r.sem }()

	start := time.Now()
	code := r.runOperation(r.opCtx, sub.id, sub.op)
	sub.cb.Run(code)

	r.logger.Debug("operation completed",
		slog.String("runner_id", r.id),
		slog.String("op_id", sub.id.String()),
		slog.Int("result", int(code)),
		slog.Duration("duration", time.Since(start)))
}

// runOperation executes op, converting a panic into completion.ErrFailed so
// the completion is still delivered exactly once.
func (r *Runner) runOperation(ctx context.Context, id uuid.UUID, op Operation) (code int32) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("operation panicked",
				slog.String("runner_id", r.id),
				slog.String("op_id", id.String()),
				slog.Any("panic", rec))
			code = completion.ErrFailed
		}
	}()

	return op(ctx)
}
