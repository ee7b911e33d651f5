// Package asynckit provides small, focused building blocks for
// callback-driven asynchronous completion in Go.
//
// The packages are independent and can be used separately:
//
//   - pkg/completion — single-use completion callbacks minted by a
//     per-object factory, with O(1) mass cancellation: destroying or
//     resetting the factory silently disarms every callback it ever minted,
//     no matter where the asynchronous subsystem is holding them.
//   - pkg/starter — the operation-starter contract those callbacks cross,
//     plus a worker-pool Runner implementing it and a Future bridge for
//     callers that prefer to block.
//
// The design follows the classic completion-callback pattern: operations
// report a signed 32-bit result code (non-negative for success, optionally
// carrying a byte count; negative for errors), a starter either completes
// synchronously or promises exactly one callback invocation, and object
// lifetime is decoupled from callback lifetime through a reference-counted
// liveness cell.
package asynckit
