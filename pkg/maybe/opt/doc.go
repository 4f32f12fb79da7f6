// Package opt mirrors package ref for maybe.Option values. Callbacks always
// receive the unwrapped payload, never the Option itself.
package opt
