//go:build !assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = true

// True panics if value is false.
func True(value bool, args ...any) {
	if !value {
		panic(message(args))
	}
}
