package maybe

import (
	"errors"
	"fmt"
)

// Filter decides whether a failure raised by a callback is captured.
type Filter func(err error) bool

// PanicError wraps a panic value that is not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// AcceptAll captures every failure.
func AcceptAll(error) bool {
	return true
}

// KindOf matches failures whose chain contains an error of type E.
func KindOf[E error]() Filter {
	return func(err error) bool {
		var target E
		return errors.As(err, &target)
	}
}

// Is matches failures whose chain contains target.
func Is(target error) Filter {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

// AnyOf matches when at least one of kinds matches. No kinds matches nothing.
func AnyOf(kinds ...Filter) Filter {
	return func(err error) bool {
		for _, k := range kinds {
			if k != nil && k(err) {
				return true
			}
		}
		return false
	}
}

// Guard runs fn and recovers a panic raised by it. A recovered failure is
// returned when accept reports true; otherwise the original panic value is
// raised again. A nil accept captures everything.
func Guard(fn func(), accept Filter) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		failure := toError(r)
		if accept != nil && !accept(failure) {
			panic(r)
		}
		err = failure
	}()

	fn()
	return nil
}

// GuardValue is Guard for a value-returning fn. The value is the zero value
// of R when a failure was captured.
func GuardValue[R any](fn func() R, accept Filter) (R, error) {
	var out R
	err := Guard(func() {
		out = fn()
	}, accept)
	if err != nil {
		var zero R
		return zero, err
	}
	return out, nil
}

func toError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}
