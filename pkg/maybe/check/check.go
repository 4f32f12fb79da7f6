// Package check validates arguments up front. Failures are returned as
// errors; default-supplying variants never fail.
package check

import (
	"errors"
	"fmt"

	"github.com/ib-77/maybe/pkg/maybe"
)

var ErrArgumentNil = errors.New("argument is nil")

// ArgumentNilError names the argument that was nil.
type ArgumentNilError struct {
	Name string
}

func (e *ArgumentNilError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, ErrArgumentNil)
}

func (e *ArgumentNilError) Unwrap() error {
	return ErrArgumentNil
}

func CheckNil[S any](source S, argumentName string) (S, error) {
	if maybe.IsNil(source) {
		return source, &ArgumentNilError{Name: argumentName}
	}
	return source, nil
}

// CheckNilFunc is CheckNil with a caller-built error.
func CheckNilFunc[S any](source S, makeErr func() error) (S, error) {
	if maybe.IsNil(source) {
		return source, makeErr()
	}
	return source, nil
}

func CheckNilWithDefault[S any](source S, defaultV S) S {
	if maybe.IsNil(source) {
		return defaultV
	}
	return source
}

// Check fails with makeErr(source) when condition rejects source. Unlike
// CheckNil it calls condition even for nil sources.
func Check[S any](source S, condition func(s S) bool, makeErr func(s S) error) (S, error) {
	if !condition(source) {
		return source, makeErr(source)
	}
	return source, nil
}

func CheckWithDefault[S any](source S, condition func(s S) bool, defaultV S) S {
	if !condition(source) {
		return defaultV
	}
	return source
}

// All runs every check and joins the failures. With breakOnError it stops at
// the first one.
func All(breakOnError bool, checks ...func() error) error {
	var err error
	for _, c := range checks {
		if c == nil {
			continue
		}
		if next := c(); next != nil {
			err = maybe.JoinErrors(err, next)
			if breakOnError {
				return err
			}
		}
	}
	return err
}
