package maybe

import (
	"errors"
	"reflect"
)

// IsNil reports whether i is nil, including typed nils stored in an
// interface (nil pointer, map, slice, chan, func or interface).
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// GetErrors splits a joined error into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// JoinErrors appends next to the parts already joined in err.
func JoinErrors(err error, next error) error {
	if next == nil {
		return err
	}
	e := GetErrors(err)
	e = append(e, next)
	return errors.Join(e...)
}
