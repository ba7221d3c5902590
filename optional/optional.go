// Package optional models a value that may be absent without resorting to nil
// or sentinel values. The kvstore package returns it from Lookup and Remove so
// that a stored zero value is never confused with a missing key.
package optional

import "fmt"

// Value holds either nothing (None) or exactly one T (Some).
// The zero Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some wraps value. Zero values and nil pointers are legitimate contents.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None returns an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// NonEmpty reports whether a value is present.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty reports whether no value is present.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and whether it was present. When absent, the zero T is returned.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the value, panicking if it is absent.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("called GetOrPanic on None")
	}

	return o.value
}

// GetOrElse returns the value if present, otherwise defaultValue.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// String renders "Some(value)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}
