// Package promise provides a single-shot future that settles exactly once,
// either fulfilled with a value or rejected with an error.
//
// # Continuations
//
// Callbacks registered with Then never run on the caller's stack. They are
// appended to a Queue when the promise settles (or right away when it has
// already settled) and a single goroutine per Queue runs them one at a time.
// Each promise owns its queue unless WithQueue says otherwise, so the
// continuations of one promise run in registration order and those of
// promises sharing a queue run in settlement order. A continuation waiting
// on a different promise never blocks it.
//
// # Rejection reasons
//
// Reject takes an error. Reason wraps arbitrary values into a
// *RejectionError so that non-error reasons keep their printed form.
package promise
