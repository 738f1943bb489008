// Package result contains Result[T, F], the outcome of an operation that
// either succeeded with a T or failed with an F.
//
// Highlights:
// - Ok/Err: construct a Result
// - From: lift a (T, error) pair into Result[T, error]
// - IsOk/IsErr: test the variant
// - Ok()/Err(): read a payload with the comma-ok idiom
// - Unwrap/UnwrapErr: read a payload, panicking on the wrong variant
// - Value: read the Ok payload as (T, error) without panicking
//
// A Result is never mutated after construction, so it can be shared between
// goroutines freely. It encodes to JSON and YAML as {"type": ..., "value": ...}.
package result
