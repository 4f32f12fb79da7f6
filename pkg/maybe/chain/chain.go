package chain

import (
	"github.com/ib-77/maybe/pkg/maybe"
	"github.com/ib-77/maybe/pkg/maybe/opt"
)

// Chain wraps a maybe.Option to enable fluent chaining
type Chain[T any] struct {
	option maybe.Option[T]
}

// Start creates a new chain from a maybe.Option
func Start[T any](o maybe.Option[T]) Chain[T] {
	return Chain[T]{option: o}
}

// FromValue creates a new chain from a present value
func FromValue[T any](v T) Chain[T] {
	return Start(maybe.Some(v))
}

// FromPtr creates a chain that is absent when p is nil
func FromPtr[T any](p *T) Chain[T] {
	return Start(maybe.FromPtr(p))
}

// Option returns the underlying maybe.Option
func (c Chain[T]) Option() maybe.Option[T] {
	return c.option
}

func (c Chain[T]) Do(action func(v T)) Chain[T] {
	return Chain[T]{option: opt.Do(c.option, action)}
}

func (c Chain[T]) DoOr(action func(v T), onAbsent func()) Chain[T] {
	return Chain[T]{option: opt.DoOr(c.option, action, onAbsent)}
}

func (c Chain[T]) If(condition func(v T) bool) Chain[T] {
	return Chain[T]{option: opt.If(c.option, condition)}
}

func (c Chain[T]) IfNot(condition func(v T) bool) Chain[T] {
	return Chain[T]{option: opt.IfNot(c.option, condition)}
}

// Map transforms a present value to a new value of the same type
func (c Chain[T]) Map(convert func(v T) T) Chain[T] {
	return Chain[T]{option: opt.WithOption(c.option, convert)}
}

func (c Chain[T]) Recover(supply func() T) Chain[T] {
	if c.option.HasValue() {
		return c
	}
	return FromValue(supply())
}

// Return collapses the chain, using defaultV when absent
func (c Chain[T]) Return(defaultV T) T {
	return c.option.OrElse(defaultV)
}

// With chains a conversion to another type
func With[T, U any](c Chain[T], convert func(v T) U) Chain[U] {
	return Chain[U]{option: opt.WithOption(c.option, convert)}
}

// TryWith converts a present value and captures any panic raised by convert
func TryWith[T, U any](c Chain[T], convert func(v T) U) maybe.Outcome[U] {
	return opt.TryWith(c.option, convert)
}
