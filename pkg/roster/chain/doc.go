// Package chain provides a fluent wrapper around roster.Result[T]
// for composing roster operations without branching on failure at each
// step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Failures short-circuit: once a step fails, later steps are skipped and
// the original failure is carried to Finally.
package chain
