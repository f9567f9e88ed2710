// Package opt provides an optional value that distinguishes "absent" from
// "present with the zero value". It decodes from JSON so that an omitted
// field stays unset while an explicit null or empty value is recorded as set.
package opt

import (
	"bytes"
	"encoding/json"
)

// Option holds a value of T that may be absent.
type Option[T any] struct {
	value T
	set   bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, set: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSet reports whether a value is present.
func (o Option[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.set
}

// OrElse returns the value when present, otherwise fallback.
func (o Option[T]) OrElse(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// Map transforms a present value with fn and keeps absence as is.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.set {
		return None[U]()
	}
	return Some(fn(o.value))
}

// UnmarshalJSON marks the option as set. JSON null sets the zero value.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.value = zero
		return nil
	}
	return json.Unmarshal(data, &o.value)
}

// MarshalJSON encodes an absent option as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
