// Package call invokes optional callbacks and event handlers, doing nothing
// when the callback is nil.
package call

func Execute(action func()) {
	if action != nil {
		action()
	}
}

func Execute1[T any](action func(T), arg T) {
	if action != nil {
		action(arg)
	}
}

func Execute2[T1, T2 any](action func(T1, T2), arg1 T1, arg2 T2) {
	if action != nil {
		action(arg1, arg2)
	}
}

func Execute3[T1, T2, T3 any](action func(T1, T2, T3), arg1 T1, arg2 T2, arg3 T3) {
	if action != nil {
		action(arg1, arg2, arg3)
	}
}

func Execute4[T1, T2, T3, T4 any](action func(T1, T2, T3, T4), arg1 T1, arg2 T2, arg3 T3, arg4 T4) {
	if action != nil {
		action(arg1, arg2, arg3, arg4)
	}
}

// Handler is an event callback receiving the sender and event arguments.
type Handler[A any] func(sender any, args A)

// Fire invokes a non-nil handler and returns it.
func Fire[A any](handler Handler[A], sender any, args A) Handler[A] {
	if handler != nil {
		handler(sender, args)
	}
	return handler
}

// FireAll invokes every non-nil handler in order.
func FireAll[A any](handlers []Handler[A], sender any, args A) {
	for _, h := range handlers {
		Fire(h, sender, args)
	}
}
