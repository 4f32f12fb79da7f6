// Package maybe holds the shared building blocks for nil-safe helpers:
// the Option[T] value, the Outcome[T] pair produced by Try-variants, and the
// failure boundary that recovers panics raised by callbacks.
//
// Subpackages group the operations by receiver:
// - ref: values whose absence is nil (pointers, interfaces, maps, slices...)
// - opt: Option[T] values
// - seq, dict, index: sequences, maps and slices
// - chain: fluent composition over Option[T]
// - check, call: argument checks and nil-safe callback invocation
// - catchlog: zap-backed handlers for captured failures
package maybe
