package starter

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring a runner
type Option func(*options)

type options struct {
	maxConcurrent int
	queueCapacity int
	drainTimeout  time.Duration
	logger        *slog.Logger
}

func defaultOptions() *options {
	return &options{
		maxConcurrent: 4,
		queueCapacity: 64,
		drainTimeout:  30 * time.Second,
		logger:        slog.Default(),
	}
}

// WithMaxConcurrent sets the maximum number of operations executing at once
func WithMaxConcurrent(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxConcurrent = n
		}
	}
}

// WithQueueCapacity sets how many accepted submissions may wait for a
// worker slot before Submit reports completion.ErrNoSpace
func WithQueueCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.queueCapacity = n
		}
	}
}

// WithDrainTimeout sets how long Stop waits for in-flight operations before
// cancelling their context
func WithDrainTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.drainTimeout = d
		}
	}
}

// WithLogger sets the logger for the runner
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConfig applies an environment-driven Config to the runner
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if cfg.MaxConcurrent > 0 {
			o.maxConcurrent = cfg.MaxConcurrent
		}
		if cfg.QueueCapacity > 0 {
			o.queueCapacity = cfg.QueueCapacity
		}
		if cfg.DrainTimeout > 0 {
			o.drainTimeout = cfg.DrainTimeout
		}
	}
}
