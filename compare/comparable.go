// Package compare provides equality relations for generic code.
package compare

// Comparable is implemented by types that decide their own equality.
type Comparable[T any] interface {
	Equals(other T) bool
}

// EqualFunc is an equality relation over T. Implementations must be reflexive,
// symmetric and transitive, otherwise containers built on them misbehave.
type EqualFunc[T any] func(a, b T) bool

// Operator returns an EqualFunc backed by the == operator.
func Operator[T comparable]() EqualFunc[T] {
	return func(a, b T) bool {
		return a == b
	}
}

// Method returns an EqualFunc backed by T's own Equals method.
func Method[T Comparable[T]]() EqualFunc[T] {
	return func(a, b T) bool {
		return a.Equals(b)
	}
}
