// Package demolib exposes three small value operations that show how a Go
// library reports bad input:
//
//   - DivideBy returns 1/n and rejects n == 0 with ErrInvalidArgument
//   - NegativeThrows returns its input and rejects negatives with ErrRange
//   - NeverThrows returns its input and never fails
//
// Each operation also comes in a result-typed form (DivideByResult and
// friends) for use on rop rails, and in a batch form (ReciprocalAll,
// CheckAll) that fans a slice of inputs out over worker lines.
//
// All operations are pure and safe for concurrent use.
package demolib
