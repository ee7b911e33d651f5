package completion

// Result codes shared across the completion boundary. Non-negative values
// denote success, with positive values carrying a magnitude such as a byte
// count. Negative values denote errors. The callback layer passes codes
// through without interpreting them; only callers and operation starters
// assign meaning.
const (
	// OK reports success with no magnitude attached.
	OK int32 = 0

	// Pending is returned by an operation starter when the operation was
	// accepted and the supplied callback will be invoked exactly once
	// later. It is a status of the submission, never a delivered result.
	Pending int32 = -1

	// ErrFailed is the generic failure code.
	ErrFailed int32 = -2

	// ErrAborted reports that the operation was cancelled or its runner
	// shut down before the operation could complete.
	ErrAborted int32 = -3

	// ErrBadArgument reports an invalid submission.
	ErrBadArgument int32 = -4

	// ErrTimedOut reports that the operation exceeded its deadline.
	ErrTimedOut int32 = -5

	// ErrNotSupported reports an operation the starter cannot perform.
	ErrNotSupported int32 = -6

	// ErrNoSpace reports that the starter's submission queue is full.
	ErrNoSpace int32 = -7
)

// IsError reports whether code denotes a failure. Pending is a submission
// status, not a failure.
func IsError(code int32) bool {
	return code < 0 && code != Pending
}

// ResultError maps a failure code to its sentinel error, for logging and
// for surfaces that report errors rather than raw codes. Success codes and
// Pending map to nil; unknown negative codes map to ErrOperationFailed.
func ResultError(code int32) error {
	switch {
	case code >= OK, code == Pending:
		return nil
	case code == ErrAborted:
		return ErrOperationAborted
	case code == ErrBadArgument:
		return ErrOperationBadArgument
	case code == ErrTimedOut:
		return ErrOperationTimedOut
	case code == ErrNotSupported:
		return ErrOperationNotSupported
	case code == ErrNoSpace:
		return ErrOperationNoSpace
	default:
		return ErrOperationFailed
	}
}
