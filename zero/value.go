// Package zero provides the zero value of a type parameter.
package zero

// Value returns the zero value for type T.
//
//	zero.Value[int]()       // 0
//	zero.Value[*Thing]()    // nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
