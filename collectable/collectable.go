// Package collectable describes keys that can be both digested and compared,
// which is what the kvstore key index needs from a key.
package collectable

import (
	"errors"
	"fmt"
	"hash"
	"reflect"

	"github.com/amp-labs/amp-kvstore/compare"
	"github.com/amp-labs/amp-kvstore/hashing"
)

// ErrUnsupportedType is returned when attempting to hash an unsupported type.
var ErrUnsupportedType = errors.New("unsupported type for hashing")

// Collectable combines hashing.Hashable and compare.Comparable. The digest
// narrows the candidates, Equals makes the final call.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

// comparableWrapper adapts a plain comparable value to Collectable.
type comparableWrapper[T comparable] struct {
	value T
}

// UpdateHash dispatches on the dynamic type of the wrapped value. Values that
// already implement hashing.Hashable are trusted to hash themselves.
func (w *comparableWrapper[T]) UpdateHash(h hash.Hash) error { //nolint:cyclop
	switch typedValue := any(w.value).(type) {
	case hashing.Hashable:
		return typedValue.UpdateHash(h)
	case string:
		return hashing.HashableString(typedValue).UpdateHash(h)
	case bool:
		return hashing.HashableBool(typedValue).UpdateHash(h)
	case int:
		return hashing.HashableInt(typedValue).UpdateHash(h)
	case int8:
		return hashing.HashableInt8(typedValue).UpdateHash(h)
	case int16:
		return hashing.HashableInt16(typedValue).UpdateHash(h)
	case int32:
		return hashing.HashableInt32(typedValue).UpdateHash(h)
	case int64:
		return hashing.HashableInt64(typedValue).UpdateHash(h)
	case uint:
		return hashing.HashableUint(typedValue).UpdateHash(h)
	case uint8:
		return hashing.HashableUint8(typedValue).UpdateHash(h)
	case uint16:
		return hashing.HashableUint16(typedValue).UpdateHash(h)
	case uint32:
		return hashing.HashableUint32(typedValue).UpdateHash(h)
	case uint64:
		return hashing.HashableUint64(typedValue).UpdateHash(h)
	case float32:
		return hashing.HashableFloat32(typedValue).UpdateHash(h)
	case float64:
		return hashing.HashableFloat64(typedValue).UpdateHash(h)
	default:
		return hashByKind(h, typedValue)
	}
}

// hashByKind covers named types built on the kinds above, such as
// type UserID string, plus byte arrays. Equal values of one type always
// produce the same bytes, which is all the index relies on.
func hashByKind(h hash.Hash, value any) error {
	v := reflect.ValueOf(value)

	switch v.Kind() { //nolint:exhaustive
	case reflect.String:
		return hashing.HashableString(v.String()).UpdateHash(h)
	case reflect.Bool:
		return hashing.HashableBool(v.Bool()).UpdateHash(h)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hashing.HashableInt64(v.Int()).UpdateHash(h)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return hashing.HashableUint64(v.Uint()).UpdateHash(h)
	case reflect.Float32, reflect.Float64:
		return hashing.HashableFloat64(v.Float()).UpdateHash(h)
	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			buf := make([]byte, v.Len())
			for i := range buf {
				buf[i] = byte(v.Index(i).Uint())
			}

			return hashing.HashableBytes(buf).UpdateHash(h)
		}
	}

	return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
}

// Equals uses the == operator.
func (w *comparableWrapper[T]) Equals(other T) bool {
	return w.value == other
}

// FromComparable wraps a comparable value as a Collectable. Strings, booleans,
// the numeric types, types defined on top of them, byte arrays and anything
// implementing hashing.Hashable are supported; for other types (structs,
// pointers, channels) UpdateHash returns ErrUnsupportedType.
func FromComparable[T comparable](value T) Collectable[T] {
	return &comparableWrapper[T]{value: value}
}
