// Package ref contains nil-propagating helpers for values whose absence is
// nil: pointers, interfaces, maps, slices, channels and funcs.
//
// Every helper short-circuits on a nil source without calling the supplied
// callback. Only the Try-variants recover panics; the rest let them through.
//
// Highlights:
// - Do/DoOr/DoSelect: side effects on present sources
// - With/Return: convert a present source, or fall back to zero/default
// - If/IfNot: keep a source only when a predicate agrees
// - Recover: lazily supply a replacement for a nil source
// - OfType: checked type assertion
// - TryDo/TryWith (+Filter, +Kinds, +Err): capture failures in an Outcome
package ref
