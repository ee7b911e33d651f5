package completion

import "errors"

// Sentinel errors corresponding to the negative result codes; see
// ResultError.
var (
	// ErrOperationFailed corresponds to ErrFailed and to any unknown
	// negative code.
	ErrOperationFailed = errors.New("completion: operation failed")

	// ErrOperationAborted corresponds to ErrAborted.
	ErrOperationAborted = errors.New("completion: operation aborted")

	// ErrOperationBadArgument corresponds to ErrBadArgument.
	ErrOperationBadArgument = errors.New("completion: invalid argument")

	// ErrOperationTimedOut corresponds to ErrTimedOut.
	ErrOperationTimedOut = errors.New("completion: operation timed out")

	// ErrOperationNotSupported corresponds to ErrNotSupported.
	ErrOperationNotSupported = errors.New("completion: operation not supported")

	// ErrOperationNoSpace corresponds to ErrNoSpace.
	ErrOperationNoSpace = errors.New("completion: submission queue is full")
)
