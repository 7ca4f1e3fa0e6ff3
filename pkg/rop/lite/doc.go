// Package lite provides lightweight channel-lifted helpers that wrap solo
// primitives for concurrent pipelines. It is meant for simple fan-out/fan-in
// flows. When ctx is done the workers stop and every input still queued
// comes out as a cancelled result.
//
// Common usage:
// - Run: execute a stage over an input channel with a fixed number of lines
// - Turnout: same as Run, but the stage may change the value type
// - Map/Try: lift solo operations into stages
// - Finally: map Result[In] to Out on completion
package lite
