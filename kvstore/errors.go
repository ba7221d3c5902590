package kvstore

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is matched (via errors.Is) by every *DuplicateKeyError.
	ErrDuplicateKey = errors.New("duplicate key")

	// errUnhashableKey is only logged: keys that can't be digested go to the
	// index's overflow list instead of being refused.
	errUnhashableKey = errors.New("unhashable key")

	// ErrUnknownKeyHash is returned by HashFuncByName for names it doesn't know.
	ErrUnknownKeyHash = errors.New("unknown key hash")
)

// DuplicateKeyError is returned by Insert when an equal key is already stored.
// The store is left exactly as it was.
type DuplicateKeyError struct {
	Key any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: %v", ErrDuplicateKey, e.Key)
}

// Is makes errors.Is(err, ErrDuplicateKey) work without unwrapping.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey //nolint:errorlint
}
