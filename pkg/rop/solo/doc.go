// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. They are the building blocks for the channel stages in lite
// and for the result-typed operations in demolib.
//
// Highlights:
// - Succeed: lift a plain value onto the success rail
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - DoubleTee: side effects per rail without changing the result
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
