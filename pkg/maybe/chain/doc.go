// Package chain provides a fluent wrapper around maybe.Option[T] for
// building nil-propagating steps that read left to right.
//
// Key operations:
// - Start/FromValue/FromPtr: begin a chain
// - Do/DoOr: side effects on a present value
// - If/IfNot: drop the value when a predicate disagrees
// - Map: transform T -> T; With: transform T -> U (free function)
// - Recover: supply a value lazily when absent
// - Return/Option: collapse the chain
package chain
