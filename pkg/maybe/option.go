package maybe

import "fmt"

// Option is either Present with a value or Absent.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Of builds an Option from the comma-ok idiom.
func Of[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) HasValue() bool {
	return o.present
}

func (o Option[T]) IsAbsent() bool {
	return !o.present
}

// Value returns the payload, or the zero value of T when absent.
func (o Option[T]) Value() T {
	return o.value
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) OrElse(defaultV T) T {
	if o.present {
		return o.value
	}
	return defaultV
}

// Ptr returns a pointer to a copy of the payload, or nil when absent.
func (o Option[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) String() string {
	if !o.present {
		return "Absent"
	}
	return fmt.Sprintf("Present(%v)", o.value)
}
